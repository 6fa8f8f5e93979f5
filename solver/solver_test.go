package solver_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/originshift"
	"github.com/Kiryonn/OriginShiftTests/solver"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// shuffled returns an h×w maze after steps uniform origin shifts.
func shuffled(t *testing.T, h, w, steps int, seed uint64) *mazetree.Tree {
	t.Helper()
	tree, err := mazetree.New(gridgraph.Size{Height: h, Width: w})
	require.NoError(t, err)
	e, err := originshift.New(tree, originshift.WithSeed(seed, seed+1))
	require.NoError(t, err)
	for i := 0; i < steps; i++ {
		e.Step()
	}

	return tree
}

// TestSolve_ThreeByThree solves corner to corner after one shift.
func TestSolve_ThreeByThree(t *testing.T) {
	tree := shuffled(t, 3, 3, 1, 9)
	assert.Contains(t, []gridgraph.Cell{cell(1, 2), cell(2, 1)}, tree.Root())

	path, err := solver.Solve(tree, cell(0, 0), cell(2, 2))
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.NoError(t, gridgraph.ValidatePath(path, tree.Size()))
}

func TestSolve_Self(t *testing.T) {
	tree := shuffled(t, 4, 4, 30, 1)
	for _, c := range tree.Size().Cells() {
		path, err := solver.Solve(tree, c, c)
		require.NoError(t, err)
		assert.Equal(t, gridgraph.Path{c}, path)
	}
}

func TestSolve_OutOfBounds(t *testing.T) {
	tree := shuffled(t, 3, 3, 0, 1)
	_, err := solver.Solve(tree, cell(-1, 0), cell(0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
	_, err = solver.Solve(tree, cell(0, 0), cell(0, 3))
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
	_, err = solver.Reference(tree, cell(3, 3), cell(0, 0))
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
}

// TestSolve_MatchesReference compares the tree walk with Dijkstra on many
// shuffled mazes and random endpoint pairs.
func TestSolve_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for trial := 0; trial < 20; trial++ {
		h, w := 3+rng.IntN(10), 3+rng.IntN(10)
		tree := shuffled(t, h, w, rng.IntN(20*h*w), uint64(trial))
		size := tree.Size()

		for k := 0; k < 25; k++ {
			from := size.Cell(rng.IntN(size.Len()))
			to := size.Cell(rng.IntN(size.Len()))

			got, err := solver.Solve(tree, from, to)
			require.NoError(t, err)
			want, err := solver.Reference(tree, from, to)
			require.NoError(t, err)

			require.Equal(t, want, got, "%s: %s→%s", size, from, to)
			assert.Equal(t, from, got[0])
			assert.Equal(t, to, got[len(got)-1])
			assert.NoError(t, gridgraph.ValidatePath(got, size))
		}
	}
}

// agreeOnAllPairs checks Solve against Reference for every ordered cell
// pair, including pairs split across a forest.
func agreeOnAllPairs(t *testing.T, tree *mazetree.Tree) {
	t.Helper()
	cells := tree.Size().Cells()
	for _, from := range cells {
		for _, to := range cells {
			got, gotErr := solver.Solve(tree, from, to)
			want, wantErr := solver.Reference(tree, from, to)
			if wantErr != nil {
				require.ErrorIs(t, wantErr, solver.ErrNoPath)
				require.ErrorIs(t, gotErr, solver.ErrNoPath, "%s→%s", from, to)
				continue
			}
			require.NoError(t, gotErr, "%s→%s", from, to)
			require.Equal(t, want, got, "%s→%s", from, to)
		}
	}
}

// TestSolve_MatchesReferenceWeighted uses mazes grown by visit-weighted steps.
func TestSolve_MatchesReferenceWeighted(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		tree, err := mazetree.New(gridgraph.Size{Height: 5, Width: 6})
		require.NoError(t, err)
		e, err := originshift.New(tree, originshift.WithSeed(seed, 77))
		require.NoError(t, err)
		for i := 0; i < 400; i++ {
			e.StepWeighted(nil)
		}
		agreeOnAllPairs(t, tree)
	}
}

// TestSolve_MatchesReferenceForest uses forests moved by simultaneous steps.
func TestSolve_MatchesReferenceForest(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		tree, err := mazetree.New(gridgraph.Size{Height: 6, Width: 6})
		require.NoError(t, err)
		e, err := originshift.New(tree, originshift.WithSeed(seed, 5))
		require.NoError(t, err)
		require.NoError(t, e.SpawnRoots(4))

		for i := 0; i < 60; i++ {
			e.StepAll()
			if i%20 == 19 {
				require.NoError(t, tree.Validate())
				agreeOnAllPairs(t, tree)
			}
		}
	}
}

// TestSolve_Forest returns ErrNoPath across trees.
func TestSolve_Forest(t *testing.T) {
	tree := shuffled(t, 3, 3, 0, 1)
	// canonical: (0,0)→(0,1)→(0,2)→(1,2)→(2,2)
	require.NoError(t, tree.ClearParent(cell(0, 2)))

	_, err := solver.Solve(tree, cell(0, 0), cell(2, 0))
	assert.ErrorIs(t, err, solver.ErrNoPath)
	_, err = solver.Reference(tree, cell(0, 0), cell(2, 0))
	assert.ErrorIs(t, err, solver.ErrNoPath)

	path, err := solver.Solve(tree, cell(0, 0), cell(0, 2))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{cell(0, 0), cell(0, 1), cell(0, 2)}, path)
}

// TestSolve_BrokenTree detects a hand-made loop instead of spinning.
func TestSolve_BrokenTree(t *testing.T) {
	tree := shuffled(t, 3, 3, 0, 1)
	// (1,1)→(1,2) and now (1,2)→(1,1)
	require.NoError(t, tree.SetParent(cell(1, 2), cell(1, 1)))

	_, err := solver.Solve(tree, cell(1, 0), cell(2, 2))
	assert.ErrorIs(t, err, solver.ErrBrokenTree)
	_, err = solver.Depth(tree, cell(1, 0))
	assert.ErrorIs(t, err, solver.ErrBrokenTree)
	_, err = solver.PathToRoot(tree, cell(0, 0))
	assert.ErrorIs(t, err, solver.ErrBrokenTree)
}

func TestPathToRootAndDepth(t *testing.T) {
	tree := shuffled(t, 3, 3, 0, 1)

	path, err := solver.PathToRoot(tree, cell(0, 0))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}, path)

	d, err := solver.Depth(tree, cell(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = solver.Depth(tree, tree.Root())
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = solver.Depth(tree, cell(5, 5))
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
}

// TestDiameter_Canonical: in the comb, the longest path joins the two
// left corners through the last column.
func TestDiameter_Canonical(t *testing.T) {
	tree := shuffled(t, 3, 3, 0, 1)

	path, err := solver.Diameter(context.Background(), tree)
	require.NoError(t, err)
	require.Len(t, path, 7)
	assert.ElementsMatch(t, []gridgraph.Cell{cell(0, 0), cell(2, 0)}, []gridgraph.Cell{path[0], path[6]})

	far, d, err := solver.Farthest(context.Background(), tree, cell(2, 0))
	require.NoError(t, err)
	assert.Equal(t, cell(0, 0), far)
	assert.Equal(t, 6, d)
}

// TestDiameter_IsLongest checks no sampled path beats the diameter.
func TestDiameter_IsLongest(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	tree := shuffled(t, 9, 11, 3000, 4)
	size := tree.Size()

	diam, err := solver.Diameter(context.Background(), tree)
	require.NoError(t, err)
	require.NoError(t, gridgraph.ValidatePath(diam, size))

	for k := 0; k < 200; k++ {
		p, err := solver.Solve(tree, size.Cell(rng.IntN(size.Len())), size.Cell(rng.IntN(size.Len())))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(p), len(diam))
	}
}

func TestFarthest_Cancelled(t *testing.T) {
	tree := shuffled(t, 5, 5, 10, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := solver.Farthest(ctx, tree, cell(0, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEndpoints(t *testing.T) {
	from, to := solver.Endpoints(gridgraph.Size{Height: 6, Width: 4})
	assert.Equal(t, cell(5, 0), from)
	assert.Equal(t, cell(0, 3), to)
}
