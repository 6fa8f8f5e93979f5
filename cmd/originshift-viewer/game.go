package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Kiryonn/OriginShiftTests/config"
	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/metrics"
	"github.com/Kiryonn/OriginShiftTests/originshift"
	"github.com/Kiryonn/OriginShiftTests/render"
	"github.com/Kiryonn/OriginShiftTests/solver"
)

// game implements ebiten.Game around one engine.
type game struct {
	engine   *originshift.Engine
	metrics  *metrics.Metrics
	fades    *fades
	logger   *slog.Logger
	variant  string
	roots    int
	perFrame int
	cell     int
	dt       float32
	textfile string
	shotPath string
	paused   bool
	steps    int

	// solution display; from and to are the endpoints, pickTo tells which
	// one the next left click moves
	showPath bool
	from, to gridgraph.Cell
	pickTo   bool
	path     gridgraph.Path
}

func newGame(cfg *config.Config, logger *slog.Logger) (*game, error) {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	tree, err := mazetree.New(cfg.Maze.Size())
	if err != nil {
		return nil, err
	}

	g := &game{
		metrics:  metrics.New(cfg.Metrics.Namespace),
		fades:    newFades(cfg.Viewer.FadeSeconds),
		logger:   logger,
		variant:  cfg.Maze.Variant,
		roots:    cfg.Maze.Roots,
		perFrame: cfg.Viewer.StepsPerFrame,
		cell:     cfg.Output.CellSize,
		dt:       1 / float32(cfg.Viewer.TPS),
		textfile: cfg.Metrics.Textfile,
		shotPath: cfg.Output.PNG,
		showPath: cfg.Maze.Solve,
	}
	g.from, g.to = solver.Endpoints(tree.Size())
	g.engine, err = originshift.New(tree,
		originshift.WithSeed(seed, seed^0x9e3779b97f4a7c15),
		originshift.WithSink(originshift.SinkFuncs{Added: g.fades.added, Removed: g.fades.removed}),
		originshift.WithLogger(logger),
		originshift.WithMetrics(g.metrics),
	)
	if err != nil {
		return nil, err
	}
	if err := g.engine.SpawnRoots(cfg.Maze.Roots); err != nil {
		return nil, err
	}
	g.refreshPath()
	logger.Info("viewer started", slog.String("size", tree.Size().String()), slog.Uint64("seed", seed))

	return g, nil
}

// advance runs n steps of the configured variant.
func (g *game) advance(n int) {
	for range n {
		switch g.variant {
		case config.VariantWeighted:
			g.engine.StepWeighted(nil)
		case config.VariantMulti:
			g.engine.StepAll()
		default:
			g.engine.Step()
		}
	}
	g.steps += n
	g.refreshPath()
}

func (g *game) reset() {
	g.engine.Reset()
	g.restart()
	g.logger.Info("maze reset")
}

// grow resizes the maze by delta cells in both dimensions. Sizes below
// gridgraph.MinDim are refused.
func (g *game) grow(delta int) error {
	size := g.engine.Tree().Size()
	next := gridgraph.Size{Height: size.Height + delta, Width: size.Width + delta}
	if err := g.engine.Resize(next); err != nil {
		return err
	}
	g.from, g.to = solver.Endpoints(next)
	g.restart()
	g.logger.Info("maze resized", slog.String("size", next.String()))

	return nil
}

// restart clears per-run state after a canonical rebuild and re-seeds the
// configured forest, capped to the new grid.
func (g *game) restart() {
	g.fades.clear()
	g.steps = 0
	n := min(g.roots, g.engine.Tree().Len()/2)
	if err := g.engine.SpawnRoots(n); err != nil {
		g.logger.Warn("roots not restored", "error", err)
	}
	g.refreshPath()
}

// toggleRoot detaches c when it has a parent and re-attaches it when it is
// a root.
func (g *game) toggleRoot(c gridgraph.Cell) error {
	var err error
	if g.engine.Tree().IsRoot(c) {
		err = g.engine.RemoveRoot(c)
	} else {
		err = g.engine.AddRoot(c)
	}
	if err != nil {
		return err
	}
	g.refreshPath()

	return nil
}

// pick moves one solution endpoint to c, alternating between the start and
// the end, and shows the solution.
func (g *game) pick(c gridgraph.Cell) {
	if g.pickTo {
		g.to = c
	} else {
		g.from = c
	}
	g.pickTo = !g.pickTo
	g.showPath = true
	g.refreshPath()
}

// refreshPath recomputes the displayed solution. Endpoints in different
// trees show no path.
func (g *game) refreshPath() {
	g.path = nil
	if !g.showPath {
		return
	}
	p, err := solver.Solve(g.engine.Tree(), g.from, g.to)
	switch {
	case errors.Is(err, solver.ErrNoPath):
	case err != nil:
		g.logger.Warn("solve failed", "error", err)
	default:
		g.path = p
	}
}

// screenshot writes the maze, the visible solution and the glowing passages
// to a PNG file and returns its name.
func (g *game) screenshot() (string, error) {
	name := g.shotPath
	if name == "" {
		name = fmt.Sprintf("originshift-%s-%d.png", g.engine.Tree().Size(), g.steps)
	}
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	err = render.PNG(f, g.engine.Tree(),
		render.WithCellSize(g.cell),
		render.WithSolution(g.path),
		render.WithFresh(g.fades.edges()...))
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close screenshot: %w", cerr)
	}
	if err != nil {
		return "", err
	}
	if g.path != nil {
		g.metrics.ObservePath(len(g.path))
	}

	return name, nil
}

// cellAt maps a logical screen position to a cell, false outside the grid.
func (g *game) cellAt(x, y int) (gridgraph.Cell, bool) {
	if x < 0 || y < 0 {
		return gridgraph.Cell{}, false
	}
	c := gridgraph.Cell{Row: y / g.cell, Col: x / g.cell}

	return c, g.engine.Tree().Size().Contains(c)
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.showPath = !g.showPath
		g.refreshPath()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if name, err := g.screenshot(); err != nil {
			g.logger.Error("screenshot failed", "error", err)
		} else {
			g.logger.Info("screenshot saved", slog.String("path", name))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.resizeWindow(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.resizeWindow(-1)
	}

	if c, ok := g.cellAt(ebiten.CursorPosition()); ok {
		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			g.pick(c)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			if err := g.toggleRoot(c); err != nil {
				g.logger.Info("root not toggled", slog.String("cell", c.String()), "error", err)
			}
		}
	}

	switch {
	case !g.paused:
		g.advance(g.perFrame)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.advance(1)
	}
	g.fades.update(g.dt)

	return nil
}

func (g *game) resizeWindow(delta int) {
	if err := g.grow(delta); err != nil {
		g.logger.Info("resize refused", "error", err)
		return
	}
	ebiten.SetWindowSize(g.Layout(0, 0))
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	tree := g.engine.Tree()

	onPath := make(map[gridgraph.Cell]int, len(g.path))
	for i, c := range g.path {
		onPath[c] = i
	}
	consecutive := func(a, b gridgraph.Cell) bool {
		i, ok1 := onPath[a]
		j, ok2 := onPath[b]
		return ok1 && ok2 && (i-j == 1 || j-i == 1)
	}

	for _, e := range tree.Edges() {
		col := blend(render.EdgeColor, render.FreshColor, g.fades.level(e))
		if consecutive(e.From, e.To) {
			col = render.PathColor
		}
		fillRect(screen, linkRect(e, g.cell), col)
	}
	for _, c := range tree.Size().Cells() {
		col := render.NodeColor
		if _, ok := onPath[c]; ok {
			col = render.PathNode
		}
		if tree.IsRoot(c) {
			col = render.RootColor
		}
		fillRect(screen, nodeRect(c, g.cell), col)
	}

	status := fmt.Sprintf("steps %d  roots %d  coverage %.0f%%",
		g.steps, tree.RootCount(), 100*g.engine.Visits().Coverage())
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout implements ebiten.Game. The logical screen is one cell per grid cell.
func (g *game) Layout(_, _ int) (int, int) {
	size := g.engine.Tree().Size()

	return size.Width * g.cell, size.Height * g.cell
}

// close flushes metrics to the textfile, if one is configured.
func (g *game) close() error {
	if g.textfile == "" {
		return nil
	}

	return g.metrics.WriteTextfile(g.textfile)
}

// nodeRect is the square drawn for c: its cell shrunk by a quarter on each side.
func nodeRect(c gridgraph.Cell, cell int) image.Rectangle {
	x, y := c.Col*cell, c.Row*cell

	return image.Rect(x, y, x+cell, y+cell).Inset(cell / 4)
}

// linkRect is the bar joining the centres of e's two cells.
func linkRect(e gridgraph.Edge, cell int) image.Rectangle {
	half := cell / 2
	a := image.Pt(e.From.Col*cell+half, e.From.Row*cell+half)
	b := image.Pt(e.To.Col*cell+half, e.To.Row*cell+half)

	return image.Rectangle{Min: a, Max: b}.Canon().Inset(-max(1, cell/8))
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}
