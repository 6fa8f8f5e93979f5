package originshift_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/originshift"
	"github.com/Kiryonn/OriginShiftTests/visits"
)

// newEngine builds a canonical h×w tree and a seeded engine around it.
func newEngine(t *testing.T, h, w int, opts ...originshift.Option) *originshift.Engine {
	t.Helper()
	tree, err := mazetree.New(gridgraph.Size{Height: h, Width: w})
	require.NoError(t, err)
	e, err := originshift.New(tree, append([]originshift.Option{originshift.WithSeed(1, 2)}, opts...)...)
	require.NoError(t, err)

	return e
}

func TestNew_Errors(t *testing.T) {
	_, err := originshift.New(nil)
	assert.ErrorIs(t, err, originshift.ErrNilTree)

	assert.NotPanics(t, func() {
		_, err = originshift.New(&mazetree.Tree{})
	})
	assert.ErrorIs(t, err, originshift.ErrEmptyTree)

	tree, err := mazetree.New(gridgraph.Size{Height: 3, Width: 3})
	require.NoError(t, err)
	_, err = originshift.New(tree, originshift.WithRand(nil))
	assert.ErrorIs(t, err, originshift.ErrOptionViolation)
}

// TestStep_Invariant runs long uniform walks and checks the tree after every step.
func TestStep_Invariant(t *testing.T) {
	for _, sz := range []gridgraph.Size{{Height: 3, Width: 3}, {Height: 3, Width: 8}, {Height: 6, Width: 4}, {Height: 9, Width: 9}} {
		t.Run(sz.String(), func(t *testing.T) {
			e := newEngine(t, sz.Height, sz.Width)
			for i := 0; i < 20*sz.Len(); i++ {
				e.Step()
				require.NoError(t, e.Tree().Validate(), "step %d", i)
				require.Equal(t, 1, e.Tree().RootCount())
			}
		})
	}
}

// TestStep_Shift checks the shape of a single move.
func TestStep_Shift(t *testing.T) {
	e := newEngine(t, 5, 5)
	for i := 0; i < 200; i++ {
		before := e.Tree().Root()
		s := e.Step()

		assert.Equal(t, before, s.From)
		assert.True(t, gridgraph.Adjacent(s.From, s.To))
		assert.Equal(t, s.To, e.Tree().Root())
		assert.True(t, s.HadParent, "single-root destinations always had a parent")

		p, ok := e.Tree().ParentOf(s.From)
		require.True(t, ok)
		assert.Equal(t, s.To, p)
	}
}

// TestStep_FirstMoveOn3x3 starts from the canonical 3×3 tree, whose root
// (2,2) has exactly two neighbours, both pointing at it.
func TestStep_FirstMoveOn3x3(t *testing.T) {
	rec := &originshift.Recorder{}
	e := newEngine(t, 3, 3, originshift.WithSink(rec))
	require.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, e.Tree().Root())

	s := e.Step()
	assert.Contains(t, []gridgraph.Cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, s.To)
	assert.Equal(t, s.From, s.Detached)

	require.Len(t, rec.Events, 2)
	assert.Equal(t, originshift.Event{Kind: originshift.Removed, Edge: gridgraph.Edge{From: s.To, To: s.From}}, rec.Events[0])
	assert.Equal(t, originshift.Event{Kind: originshift.Added, Edge: gridgraph.Edge{From: s.From, To: s.To}}, rec.Events[1])
}

// TestStep_EventsReplay rebuilds the edge set from events alone and compares
// it with the tree.
func TestStep_EventsReplay(t *testing.T) {
	edges := map[gridgraph.Edge]bool{}
	sink := originshift.SinkFuncs{
		Added:   func(from, to gridgraph.Cell) { edges[gridgraph.Edge{From: from, To: to}] = true },
		Removed: func(from, to gridgraph.Cell) { delete(edges, gridgraph.Edge{From: from, To: to}) },
	}
	e := newEngine(t, 6, 7, originshift.WithSink(sink))
	for _, ed := range e.Tree().Edges() {
		edges[ed] = true
	}

	for i := 0; i < 300; i++ {
		switch i % 3 {
		case 0:
			e.Step()
		case 1:
			e.StepWeighted(nil)
		default:
			e.StepAll()
		}
	}

	want := map[gridgraph.Edge]bool{}
	for _, ed := range e.Tree().Edges() {
		want[ed] = true
	}
	assert.Equal(t, want, edges)
}

// TestStepWeighted_Coverage walks a 7×7 maze for ten times its cell count.
func TestStepWeighted_Coverage(t *testing.T) {
	e := newEngine(t, 7, 7)
	for i := 0; i < 700; i++ {
		e.StepWeighted(e.Visits())
	}
	require.NoError(t, e.Tree().Validate())
	assert.GreaterOrEqual(t, e.Visits().Coverage(), 0.95, "unvisited: %v", e.Visits().Unvisited())
}

// TestStepWeighted_ExternalTracker checks that a caller-owned tracker of the
// wrong size is reset and that both trackers see the new origin.
func TestStepWeighted_ExternalTracker(t *testing.T) {
	e := newEngine(t, 4, 4)
	v := visits.New(gridgraph.Size{Height: 9, Width: 9}, gridgraph.Cell{})

	s := e.StepWeighted(v)
	assert.Equal(t, gridgraph.Size{Height: 4, Width: 4}, v.Size())
	assert.Equal(t, 1, v.Count(s.To))
	assert.Equal(t, 1, e.Visits().Count(s.To))
	assert.Equal(t, 2, v.Covered(), "old root and new root")
}

func TestAddRemoveRoot(t *testing.T) {
	rec := &originshift.Recorder{}
	e := newEngine(t, 3, 3, originshift.WithSink(rec))
	tree := e.Tree()
	corner := gridgraph.Cell{Row: 0, Col: 0}
	origin := gridgraph.Cell{Row: 2, Col: 2}

	err := e.RemoveRoot(origin)
	assert.ErrorIs(t, err, originshift.ErrLastRoot)
	assert.ErrorIs(t, e.RemoveRoot(corner), originshift.ErrNotRoot)
	assert.ErrorIs(t, e.AddRoot(gridgraph.Cell{Row: 3, Col: 0}), gridgraph.ErrCellOutOfBounds)

	require.NoError(t, e.AddRoot(corner))
	require.NoError(t, e.AddRoot(corner), "adding an existing root is a no-op")
	assert.Equal(t, 2, tree.RootCount())
	assert.NoError(t, tree.Validate())
	assert.Equal(t, []originshift.Event{
		{Kind: originshift.Removed, Edge: gridgraph.Edge{From: corner, To: gridgraph.Cell{Row: 0, Col: 1}}},
	}, rec.Events)

	// (2,2)'s neighbours (1,2) and (2,1) both hang below it.
	err = e.RemoveRoot(origin)
	assert.True(t, errors.Is(err, originshift.ErrNoForeignNeighbor), "got %v", err)

	rec.Reset()
	require.NoError(t, e.RemoveRoot(corner))
	assert.Equal(t, 1, tree.RootCount())
	assert.Equal(t, origin, tree.Root())
	assert.NoError(t, tree.Validate())
	require.Len(t, rec.Events, 1)
	assert.Equal(t, originshift.Added, rec.Events[0].Kind)
	assert.Equal(t, corner, rec.Events[0].Edge.From)
}

// TestStepAll_Forest keeps a forest shifting and checks it after every step.
func TestStepAll_Forest(t *testing.T) {
	rec := &originshift.Recorder{}
	e := newEngine(t, 8, 8, originshift.WithSink(rec))
	for _, c := range []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 3, Col: 4}, {Row: 4, Col: 4}, {Row: 7, Col: 0}, {Row: 5, Col: 2}} {
		require.NoError(t, e.AddRoot(c))
	}

	for i := 0; i < 200; i++ {
		rec.Reset()
		before := e.Tree().RootCount()
		roots := e.StepAll()

		require.NoError(t, e.Tree().Validate(), "step %d", i)
		assert.Equal(t, e.Tree().Roots(), roots)
		assert.LessOrEqual(t, len(roots), before)
		assert.GreaterOrEqual(t, len(roots), 1)

		// every removal precedes every addition
		seenAdd := false
		for _, ev := range rec.Events {
			if ev.Kind == originshift.Added {
				seenAdd = true
			} else {
				assert.False(t, seenAdd, "removal after addition at step %d", i)
			}
		}
	}
}

func TestSpawnRoots(t *testing.T) {
	e := newEngine(t, 6, 6)
	require.NoError(t, e.SpawnRoots(5))
	assert.Equal(t, 5, e.Tree().RootCount())
	require.NoError(t, e.Tree().Validate())
	for _, r := range e.Tree().Roots() {
		assert.Positive(t, e.Visits().Count(r), "root %s counted as visited", r)
	}

	require.NoError(t, e.SpawnRoots(2), "fewer than present is a no-op")
	assert.Equal(t, 5, e.Tree().RootCount())

	assert.ErrorIs(t, e.SpawnRoots(19), originshift.ErrTooManyRoots)
	assert.Equal(t, 5, e.Tree().RootCount())
}

// TestStepAll_SingleRoot behaves like Step when there is one root.
func TestStepAll_SingleRoot(t *testing.T) {
	e := newEngine(t, 5, 5)
	for i := 0; i < 100; i++ {
		before := e.Tree().Root()
		roots := e.StepAll()
		require.Len(t, roots, 1)
		assert.True(t, gridgraph.Adjacent(before, roots[0]))
		require.NoError(t, e.Tree().Validate())
	}
}

// TestResize_MatchesFresh shifts a while, resizes to the same size and
// compares with a freshly built tree.
func TestResize_MatchesFresh(t *testing.T) {
	rec := &originshift.Recorder{}
	e := newEngine(t, 5, 6, originshift.WithSink(rec))
	for i := 0; i < 50; i++ {
		e.Step()
	}
	extra := gridgraph.Cell{Row: 1, Col: 1}
	if e.Tree().IsRoot(extra) {
		extra = gridgraph.Cell{Row: 3, Col: 3}
	}
	require.NoError(t, e.AddRoot(extra))

	rec.Reset()
	size := e.Tree().Size()
	require.NoError(t, e.Resize(size))

	fresh, err := mazetree.New(size)
	require.NoError(t, err)
	assert.True(t, fresh.Equal(e.Tree()))
	assert.Equal(t, 1, e.Tree().RootCount())
	assert.Equal(t, 1, e.Visits().Covered())
	assert.Equal(t, 1, e.Visits().Count(e.Tree().Root()))

	// 28 old edges (two roots) out, 29 canonical edges in
	require.Len(t, rec.Events, 28+29)
	for _, ev := range rec.Events[:28] {
		assert.Equal(t, originshift.Removed, ev.Kind)
	}
	for _, ev := range rec.Events[28:] {
		assert.Equal(t, originshift.Added, ev.Kind)
	}
}

func TestResize(t *testing.T) {
	e := newEngine(t, 4, 4)
	before := e.Tree().Clone()

	err := e.Resize(gridgraph.Size{Height: 2, Width: 10})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidSize)
	assert.True(t, before.Equal(e.Tree()), "rejected resize leaves the tree alone")

	big := gridgraph.Size{Height: 10, Width: 12}
	require.NoError(t, e.Resize(big))
	assert.Equal(t, big, e.Tree().Size())
	assert.Equal(t, big, e.Visits().Size())
	for i := 0; i < 500; i++ {
		e.Step()
	}
	assert.NoError(t, e.Tree().Validate())

	e.Reset()
	fresh, err := mazetree.New(big)
	require.NoError(t, err)
	assert.True(t, fresh.Equal(e.Tree()))
}

// TestSeedDeterminism checks that equal seeds give equal mazes.
func TestSeedDeterminism(t *testing.T) {
	a := newEngine(t, 9, 9)
	b := newEngine(t, 9, 9)
	for i := 0; i < 400; i++ {
		a.StepWeighted(nil)
		b.StepWeighted(nil)
	}
	assert.True(t, a.Tree().Equal(b.Tree()))
}
