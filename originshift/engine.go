package originshift

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/metrics"
	"github.com/Kiryonn/OriginShiftTests/visits"
)

// Shift describes one origin move.
type Shift struct {
	From      gridgraph.Cell // previous origin, now a child of To
	To        gridgraph.Cell // new origin
	Detached  gridgraph.Cell // To's former parent; meaningful only if HadParent
	HadParent bool           // false when To was already a root (two trees merged)
}

// Engine applies origin-shift steps to a tree it does not own exclusively:
// callers may read the tree between steps but must mutate it only through
// the engine, or call Reset afterwards.
type Engine struct {
	tree    *mazetree.Tree
	visits  *visits.Tracker
	rng     *rand.Rand
	sink    EdgeSink
	logger  *slog.Logger
	metrics *metrics.Metrics

	// scratch reused across steps
	nbuf  []gridgraph.Cell
	wbuf  []float64
	moves []move
	dests []destination
	seen  map[gridgraph.Cell]struct{}
}

type move struct {
	root, dest gridgraph.Cell
}

// destination is a StepAll target with its parent as it was before the step.
type destination struct {
	cell, parent gridgraph.Cell
	had          bool
}

// New wraps tree in an engine. Every current root counts as visited once.
// Returns ErrNilTree, ErrEmptyTree or ErrOptionViolation.
func New(tree *mazetree.Tree, opts ...Option) (*Engine, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if tree.Len() == 0 {
		return nil, ErrEmptyTree
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine{
		tree:    tree,
		rng:     o.Rand,
		sink:    o.Sink,
		logger:  o.Logger,
		metrics: o.Metrics,
		nbuf:    make([]gridgraph.Cell, 0, 4),
		wbuf:    make([]float64, 0, 4),
		seen:    make(map[gridgraph.Cell]struct{}),
	}
	e.visits = visits.New(tree.Size(), tree.Root())
	for _, r := range tree.Roots()[1:] {
		e.visits.Increment(r)
	}
	e.metrics.ObserveRoots(tree.RootCount())
	e.metrics.ObserveCoverage(e.visits.Coverage())

	return e, nil
}

// Tree returns the tree being mutated.
func (e *Engine) Tree() *mazetree.Tree { return e.tree }

// Visits returns the engine's own visit tracker. Every step variant updates
// it; Resize and Reset clear it.
func (e *Engine) Visits() *visits.Tracker { return e.visits }

// Step moves the oldest root to a uniformly chosen neighbour.
//
// Events: EdgeRemoved(To, Detached) when To had a parent, then
// EdgeAdded(From, To).
// Complexity: O(1).
func (e *Engine) Step() Shift {
	r := e.tree.Root()
	e.nbuf = gridgraph.AppendNeighbors(e.nbuf[:0], r, e.tree.Size())
	c := e.nbuf[e.rng.IntN(len(e.nbuf))]

	s := e.shift(r, c)
	e.visits.Increment(c)
	e.observe(metrics.VariantUniform)

	return s
}

// StepWeighted is Step with each neighbour c weighted 1/(v.Count(c)+1).
// The new origin is counted in v after the move (and in the engine's own
// tracker when v is a different one).
//
// A nil v means Visits(). A v sized for another grid is reset to the
// current size first.
func (e *Engine) StepWeighted(v *visits.Tracker) Shift {
	size := e.tree.Size()
	r := e.tree.Root()
	if v == nil {
		v = e.visits
	} else if v.Size() != size {
		v.Reset(size, r)
	}

	e.nbuf = gridgraph.AppendNeighbors(e.nbuf[:0], r, size)
	c := e.pickWeighted(e.nbuf, v)

	s := e.shift(r, c)
	v.Increment(c)
	if v != e.visits {
		e.visits.Increment(c)
	}
	e.observe(metrics.VariantWeighted)

	return s
}

// StepAll moves every root at once and returns the new root set.
//
// Phase 1 picks a destination for every root without touching the tree.
// Phase 2 points every root at its destination, and only then clears every
// destination's parent. Roots sharing a destination merge; a root that is
// another root's destination stays a root.
//
// Events describe the net change: EdgeRemoved for each destination that
// had a parent before the step, then EdgeAdded for each root that is not
// itself a destination.
// Complexity: O(k) for k roots.
func (e *Engine) StepAll() []gridgraph.Cell {
	size := e.tree.Size()
	roots := e.tree.Roots()

	e.moves = e.moves[:0]
	for _, r := range roots {
		e.nbuf = gridgraph.AppendNeighbors(e.nbuf[:0], r, size)
		e.moves = append(e.moves, move{root: r, dest: e.nbuf[e.rng.IntN(len(e.nbuf))]})
	}
	out := e.applyMoves(e.moves)

	if len(out) < len(roots) {
		e.logger.Debug("roots merged", slog.Int("before", len(roots)), slog.Int("after", len(out)))
	}
	e.observe(metrics.VariantMulti)

	return out
}

// applyMoves is phase 2 of StepAll. moves must hold exactly one entry per
// current root.
func (e *Engine) applyMoves(moves []move) []gridgraph.Cell {
	clear(e.seen)
	e.dests = e.dests[:0]
	for _, m := range moves {
		if _, dup := e.seen[m.dest]; dup {
			continue
		}
		e.seen[m.dest] = struct{}{}
		p, had := e.tree.ParentOf(m.dest)
		e.dests = append(e.dests, destination{cell: m.dest, parent: p, had: had})
	}

	for _, m := range moves {
		must(e.tree.SetParent(m.root, m.dest))
	}
	for _, d := range e.dests {
		must(e.tree.ClearParent(d.cell))
	}

	for _, d := range e.dests {
		if d.had {
			e.sink.EdgeRemoved(d.cell, d.parent)
		}
	}
	for _, m := range moves {
		if _, isDest := e.seen[m.root]; !isDest {
			e.sink.EdgeAdded(m.root, m.dest)
		}
	}

	out := make([]gridgraph.Cell, len(e.dests))
	for i, d := range e.dests {
		out[i] = d.cell
		e.visits.Increment(d.cell)
	}

	return out
}

// AddRoot detaches c from its parent, splitting its tree in two. Adding an
// existing root is a no-op.
func (e *Engine) AddRoot(c gridgraph.Cell) error {
	if err := e.tree.Size().Check(c); err != nil {
		return fmt.Errorf("originshift: AddRoot: %w", err)
	}
	p, had := e.tree.ParentOf(c)
	if !had {
		return nil
	}
	must(e.tree.ClearParent(c))
	e.sink.EdgeRemoved(c, p)
	e.visits.Increment(c)

	e.logger.Debug("root added", slog.String("cell", c.String()), slog.Int("roots", e.tree.RootCount()))
	e.metrics.ObserveRoots(e.tree.RootCount())

	return nil
}

// SpawnRoots detaches uniformly random cells until the tree has n roots.
// Cells that are already roots are redrawn. Asking for fewer roots than the
// tree has is a no-op; asking for more than half the cells returns
// ErrTooManyRoots.
func (e *Engine) SpawnRoots(n int) error {
	size := e.tree.Size()
	if n > size.Len()/2 {
		return fmt.Errorf("%w: %d roots on %s", ErrTooManyRoots, n, size)
	}
	for e.tree.RootCount() < n {
		c := size.Cell(e.rng.IntN(size.Len()))
		if e.tree.IsRoot(c) {
			continue
		}
		must(e.AddRoot(c))
	}

	return nil
}

// RemoveRoot attaches root c to a random neighbour belonging to another
// tree, merging the two. Attaching inside its own tree would close a loop,
// so such neighbours are never chosen.
//
// Returns ErrNotRoot, ErrLastRoot, ErrNoForeignNeighbor or
// gridgraph.ErrCellOutOfBounds.
// Complexity: O(depth) per neighbour.
func (e *Engine) RemoveRoot(c gridgraph.Cell) error {
	size := e.tree.Size()
	if err := size.Check(c); err != nil {
		return fmt.Errorf("originshift: RemoveRoot: %w", err)
	}
	if !e.tree.IsRoot(c) {
		return fmt.Errorf("%w: %s", ErrNotRoot, c)
	}
	if e.tree.RootCount() == 1 {
		return ErrLastRoot
	}

	ci := size.Index(c)
	e.nbuf = gridgraph.AppendNeighbors(e.nbuf[:0], c, size)
	k := 0
	for _, n := range e.nbuf {
		if e.rootIndex(size.Index(n)) != ci {
			e.nbuf[k] = n
			k++
		}
	}
	if k == 0 {
		return fmt.Errorf("%w: %s", ErrNoForeignNeighbor, c)
	}
	n := e.nbuf[e.rng.IntN(k)]
	must(e.tree.SetParent(c, n))
	e.sink.EdgeAdded(c, n)

	e.logger.Debug("root removed", slog.String("cell", c.String()), slog.Int("roots", e.tree.RootCount()))
	e.metrics.ObserveRoots(e.tree.RootCount())

	return nil
}

// Resize rebuilds the canonical tree at size. Every old edge is reported
// removed, then every new edge added, and the visit counts restart.
// Returns gridgraph.ErrInvalidSize without touching anything.
func (e *Engine) Resize(size gridgraph.Size) error {
	if err := size.Validate(); err != nil {
		return fmt.Errorf("originshift: resize: %w", err)
	}
	e.rebuild(size)

	return nil
}

// Reset rebuilds the canonical tree at the current size, as Resize does.
func (e *Engine) Reset() {
	e.rebuild(e.tree.Size())
}

func (e *Engine) rebuild(size gridgraph.Size) {
	for _, ed := range e.tree.Edges() {
		e.sink.EdgeRemoved(ed.From, ed.To)
	}
	must(e.tree.Initialize(size))
	for _, ed := range e.tree.Edges() {
		e.sink.EdgeAdded(ed.From, ed.To)
	}
	e.visits.Reset(size, e.tree.Root())

	e.logger.Debug("maze rebuilt", slog.String("size", size.String()))
	e.metrics.ObserveRebuild()
	e.metrics.ObserveCoverage(e.visits.Coverage())
}

// shift points r at c and makes c a root.
func (e *Engine) shift(r, c gridgraph.Cell) Shift {
	old, had := e.tree.ParentOf(c)
	must(e.tree.SetParent(r, c))
	must(e.tree.ClearParent(c))

	if had {
		e.sink.EdgeRemoved(c, old)
	} else {
		e.logger.Debug("roots merged", slog.String("into", c.String()), slog.Int("roots", e.tree.RootCount()))
	}
	e.sink.EdgeAdded(r, c)

	return Shift{From: r, To: c, Detached: old, HadParent: had}
}

// pickWeighted draws one candidate with probability proportional to
// 1/(count+1) by inverting the cumulative weights.
func (e *Engine) pickWeighted(cands []gridgraph.Cell, v *visits.Tracker) gridgraph.Cell {
	e.wbuf = e.wbuf[:0]
	total := 0.0
	for _, c := range cands {
		total += v.Weight(c)
		e.wbuf = append(e.wbuf, total)
	}
	u := e.rng.Float64() * total
	for i, cum := range e.wbuf {
		if u < cum {
			return cands[i]
		}
	}

	return cands[len(cands)-1]
}

// rootIndex follows parent links from flat index i to its root.
// The walk is capped at Len steps so a corrupted tree cannot hang it.
func (e *Engine) rootIndex(i int) int {
	for steps := e.tree.Len(); steps > 0; steps-- {
		p := e.tree.ParentIndex(i)
		if p < 0 {
			return i
		}
		i = p
	}

	return i
}

func (e *Engine) observe(variant string) {
	e.metrics.ObserveStep(variant, e.tree.RootCount())
	e.metrics.ObserveCoverage(e.visits.Coverage())
}

// must panics on errors the engine's own bookkeeping rules out: every cell
// it passes to the tree comes from the tree's grid and neighbour lists.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("originshift: %v", err))
	}
}
