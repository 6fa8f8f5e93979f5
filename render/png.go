package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
)

// Palette used by Image.
var (
	Background = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	NodeColor  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	EdgeColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	RootColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	PathColor  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	PathNode   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	FreshColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

const (
	defaultCell  = 32
	minCellSize  = 8
	arrowDivisor = 3 // arrow side = cell size / arrowDivisor
)

// Option configures Image and PNG.
type Option func(*options)

type options struct {
	cell     int
	solution gridgraph.Path
	fresh    map[gridgraph.Edge]struct{}
}

// WithCellSize sets the cell side in pixels. Values below 8 are raised to 8.
func WithCellSize(px int) Option {
	return func(o *options) {
		o.cell = max(px, minCellSize)
	}
}

// WithSolution highlights path.
func WithSolution(path gridgraph.Path) Option {
	return func(o *options) {
		o.solution = path
	}
}

// WithFresh highlights recently added edges.
func WithFresh(edges ...gridgraph.Edge) Option {
	return func(o *options) {
		for _, e := range edges {
			o.fresh[e] = struct{}{}
		}
	}
}

// PNG encodes Image(t, opts...) to w.
func PNG(w io.Writer, t *mazetree.Tree, opts ...Option) error {
	img, err := Image(t, opts...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

// Image rasterizes t. The picture is Width×cell by Height×cell pixels.
func Image(t *mazetree.Tree, opts ...Option) (*image.RGBA, error) {
	o := options{cell: defaultCell, fresh: map[gridgraph.Edge]struct{}{}}
	for _, opt := range opts {
		opt(&o)
	}
	size := t.Size()
	cs := o.cell

	onPath := make(map[gridgraph.Cell]int, len(o.solution))
	for i, c := range o.solution {
		onPath[c] = i
	}
	// a link is on the solution when its ends are consecutive path cells
	solutionLink := func(a, b gridgraph.Cell) bool {
		i, ok1 := onPath[a]
		j, ok2 := onPath[b]
		return ok1 && ok2 && (i-j == 1 || j-i == 1)
	}

	base := image.NewRGBA(image.Rect(0, 0, size.Width*cs, size.Height*cs))
	draw.Draw(base, base.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	thick := max(cs/10, 2)
	edges := t.Edges()
	edgeColor := func(e gridgraph.Edge) color.RGBA {
		if _, ok := o.fresh[e]; ok {
			return FreshColor
		}
		if solutionLink(e.From, e.To) {
			return PathColor
		}
		return EdgeColor
	}
	for _, e := range edges {
		col := edgeColor(e)
		fillLink(base, center(e.From, cs), center(e.To, cs), thick, col)
	}

	node := max(cs/4, 3)
	for _, c := range size.Cells() {
		col := NodeColor
		if _, ok := onPath[c]; ok {
			col = PathNode
		}
		if t.IsRoot(c) {
			col = RootColor
		}
		p := center(c, cs)
		fillRect(base, image.Rect(p.X-node/2, p.Y-node/2, p.X-node/2+node, p.Y-node/2+node), col)
	}

	out := image_utils.NewCompositeImage()
	if err := out.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base layer: %w", err)
	}
	arrows := newArrowCache(max(cs/arrowDivisor, 4))
	for _, e := range edges {
		a := arrows.get(direction(e), edgeColor(e))
		// centre the arrow on the midpoint of the link
		from, to := center(e.From, cs), center(e.To, cs)
		mid := image.Pt((from.X+to.X)/2, (from.Y+to.Y)/2)
		half := arrows.side / 2
		if err := out.AddImage(a, image.Pt(mid.X-half, mid.Y-half)); err != nil {
			return nil, fmt.Errorf("render: arrow %s: %w", e, err)
		}
	}

	return image_utils.ToRGBA(out), nil
}

// dir is the direction from a child to its parent.
type dir uint8

const (
	up dir = iota
	down
	left
	right
)

func direction(e gridgraph.Edge) dir {
	switch {
	case e.To.Row < e.From.Row:
		return up
	case e.To.Row > e.From.Row:
		return down
	case e.To.Col < e.From.Col:
		return left
	default:
		return right
	}
}

type arrowKey struct {
	d   dir
	col color.RGBA
}

// arrowCache keeps resized arrow heads, one per direction and colour.
type arrowCache struct {
	side   int
	images map[arrowKey]image.Image
}

func newArrowCache(side int) *arrowCache {
	return &arrowCache{side: side, images: make(map[arrowKey]image.Image, 8)}
}

func (c *arrowCache) get(d dir, col color.RGBA) image.Image {
	k := arrowKey{d: d, col: col}
	if img, ok := c.images[k]; ok {
		return img
	}
	var raw image.Image
	switch d {
	case up:
		raw = image_utils.UpArrow(col)
	case down:
		raw = image_utils.DownArrow(col)
	case left:
		raw = image_utils.LeftArrow(col)
	default:
		raw = image_utils.RightArrow(col)
	}
	img := image_utils.ToRGBA(image_utils.ResizeImage(raw, c.side, c.side))
	c.images[k] = img

	return img
}

func center(c gridgraph.Cell, cs int) image.Point {
	return image.Pt(c.Col*cs+cs/2, c.Row*cs+cs/2)
}

// fillLink draws a thick axis-aligned segment between two centres.
func fillLink(dst *image.RGBA, a, b image.Point, thick int, col color.Color) {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	h := thick / 2
	r = image.Rect(r.Min.X-h, r.Min.Y-h, r.Max.X-h+thick, r.Max.Y-h+thick)
	fillRect(dst, r, col)
}

func fillRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}
