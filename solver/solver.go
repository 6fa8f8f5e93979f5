package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kiryonn/OriginShiftTests/bfs"
	"github.com/Kiryonn/OriginShiftTests/dijkstra"
	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
)

var (
	// ErrNoPath indicates endpoints in different trees of a forest.
	ErrNoPath = errors.New("solver: no path between cells")

	// ErrBrokenTree indicates a parent chain longer than the grid, i.e. a loop.
	ErrBrokenTree = errors.New("solver: parent chain does not reach a root")
)

// Solve returns the unique path from→to, both inclusive. from == to yields
// the single-cell path.
// Complexity: O(depth(from) + depth(to)) time and space.
func Solve(t *mazetree.Tree, from, to gridgraph.Cell) (gridgraph.Path, error) {
	size := t.Size()
	if err := checkEndpoints(size, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return gridgraph.Path{from}, nil
	}

	up, err := chain(t, size.Index(from))
	if err != nil {
		return nil, err
	}
	pos := make(map[int]int, len(up))
	for i, v := range up {
		pos[v] = i
	}

	// climb from to until the first chain is met
	down := make([]int, 0, 8)
	v := size.Index(to)
	for steps := t.Len(); ; steps-- {
		if k, ok := pos[v]; ok {
			path := make(gridgraph.Path, 0, k+1+len(down))
			for _, u := range up[:k+1] {
				path = append(path, size.Cell(u))
			}
			for i := len(down) - 1; i >= 0; i-- {
				path = append(path, size.Cell(down[i]))
			}

			return path, nil
		}
		if steps == 0 {
			return nil, fmt.Errorf("%w: from %s", ErrBrokenTree, to)
		}
		down = append(down, v)
		v = t.ParentIndex(v)
		if v < 0 {
			return nil, fmt.Errorf("%w: %s and %s", ErrNoPath, from, to)
		}
	}
}

// PathToRoot returns c followed by its ancestors, ending at c's root.
func PathToRoot(t *mazetree.Tree, c gridgraph.Cell) (gridgraph.Path, error) {
	size := t.Size()
	if err := size.Check(c); err != nil {
		return nil, fmt.Errorf("solver: PathToRoot: %w", err)
	}
	idx, err := chain(t, size.Index(c))
	if err != nil {
		return nil, err
	}
	return toPath(size, idx), nil
}

// Depth returns the number of edges between c and its root.
func Depth(t *mazetree.Tree, c gridgraph.Cell) (int, error) {
	size := t.Size()
	if err := size.Check(c); err != nil {
		return 0, fmt.Errorf("solver: Depth: %w", err)
	}
	v, d := size.Index(c), 0
	for ; t.ParentIndex(v) >= 0; d++ {
		if d == t.Len() {
			return 0, fmt.Errorf("%w: from %s", ErrBrokenTree, c)
		}
		v = t.ParentIndex(v)
	}

	return d, nil
}

// Reference solves from→to with Dijkstra over the undirected passages.
// Complexity: O(H×W log(H×W)).
func Reference(t *mazetree.Tree, from, to gridgraph.Cell) (gridgraph.Path, error) {
	size := t.Size()
	if err := checkEndpoints(size, from, to); err != nil {
		return nil, err
	}
	idx, _, err := dijkstra.ShortestPath(dijkstra.Unweighted(t.Passages()), size.Index(from), size.Index(to))
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNoPath, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("solver: reference: %w", err)
	}

	return toPath(size, idx), nil
}

// Farthest returns the cell of from's tree farthest from from, and its
// distance in edges.
// Complexity: O(H×W).
func Farthest(ctx context.Context, t *mazetree.Tree, from gridgraph.Cell) (gridgraph.Cell, int, error) {
	size := t.Size()
	if err := size.Check(from); err != nil {
		return gridgraph.Cell{}, 0, fmt.Errorf("solver: Farthest: %w", err)
	}
	res, err := bfs.BFS(bfs.Adjacency(t.Passages()), size.Index(from), bfs.WithContext(ctx))
	if err != nil {
		return gridgraph.Cell{}, 0, fmt.Errorf("solver: Farthest: %w", err)
	}
	v, d := res.Farthest()

	return size.Cell(v), d, nil
}

// Diameter returns the longest path in the tree holding the oldest root,
// found by two breadth-first sweeps: the farthest cell a from the root,
// then the farthest cell from a.
// Complexity: O(H×W).
func Diameter(ctx context.Context, t *mazetree.Tree) (gridgraph.Path, error) {
	size := t.Size()
	passages := bfs.Adjacency(t.Passages())

	first, err := bfs.BFS(passages, size.Index(t.Root()), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("solver: Diameter: %w", err)
	}
	a, _ := first.Farthest()

	second, err := bfs.BFS(passages, a, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("solver: Diameter: %w", err)
	}
	b, _ := second.Farthest()
	idx, err := second.PathTo(b)
	if err != nil {
		return nil, fmt.Errorf("solver: Diameter: %w", err)
	}

	return toPath(size, idx), nil
}

// Endpoints returns the default solution endpoints: bottom-left and
// top-right corners.
func Endpoints(size gridgraph.Size) (from, to gridgraph.Cell) {
	return gridgraph.Cell{Row: size.Height - 1, Col: 0}, gridgraph.Cell{Row: 0, Col: size.Width - 1}
}

// chain returns v and its ancestors as flat indices, root last.
func chain(t *mazetree.Tree, v int) ([]int, error) {
	out := make([]int, 0, 16)
	for {
		out = append(out, v)
		if len(out) > t.Len() {
			return nil, fmt.Errorf("%w: from %s", ErrBrokenTree, t.Size().Cell(out[0]))
		}
		p := t.ParentIndex(v)
		if p < 0 {
			return out, nil
		}
		v = p
	}
}

func checkEndpoints(size gridgraph.Size, from, to gridgraph.Cell) error {
	if err := size.Check(from); err != nil {
		return fmt.Errorf("solver: from: %w", err)
	}
	if err := size.Check(to); err != nil {
		return fmt.Errorf("solver: to: %w", err)
	}

	return nil
}

func toPath(size gridgraph.Size, idx []int) gridgraph.Path {
	path := make(gridgraph.Path, len(idx))
	for i, v := range idx {
		path[i] = size.Cell(v)
	}

	return path
}
