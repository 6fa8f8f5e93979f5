package mazetree

import (
	"fmt"
	"slices"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
)

// noParent marks a root in the parent arena.
const noParent = -1

// Tree is a maze stored as a parent-pointer arena over a Height×Width grid.
// It is not safe for concurrent use.
type Tree struct {
	size   gridgraph.Size
	parent []int // parent[i] = flat index of i's parent, or noParent
	roots  []int // root indices, oldest first
}

// New builds the canonical starting maze for size. See Initialize.
func New(size gridgraph.Size) (*Tree, error) {
	t := &Tree{}
	if err := t.Initialize(size); err != nil {
		return nil, err
	}

	return t, nil
}

// Initialize rebuilds t as the canonical comb arborescence:
//
//	(r,c) → (r,c+1)      for c < W-1   (every row flows right)
//	(r,W-1) → (r+1,W-1)  for r < H-1   (the last column is a spine flowing down)
//
// leaving (H-1,W-1) as the single root. Any previous state is discarded.
// Returns gridgraph.ErrInvalidSize if a dimension is below gridgraph.MinDim.
func (t *Tree) Initialize(size gridgraph.Size) error {
	if err := size.Validate(); err != nil {
		return fmt.Errorf("mazetree: initialize: %w", err)
	}

	n := size.Len()
	if cap(t.parent) >= n {
		t.parent = t.parent[:n]
	} else {
		t.parent = make([]int, n)
	}
	t.size = size

	lastRow, lastCol := size.Height-1, size.Width-1
	for r := 0; r < size.Height; r++ {
		for c := 0; c < size.Width; c++ {
			i := r*size.Width + c
			switch {
			case c < lastCol:
				t.parent[i] = i + 1
			case r < lastRow:
				t.parent[i] = i + size.Width
			default:
				t.parent[i] = noParent
			}
		}
	}
	t.roots = append(t.roots[:0], n-1)

	return nil
}

// Resize rebuilds the tree from scratch at the new size. It is not
// incremental: every cell, old or new, gets its canonical parent.
func (t *Tree) Resize(size gridgraph.Size) error {
	return t.Initialize(size)
}

// Reset rebuilds the canonical tree at the current size.
func (t *Tree) Reset() {
	// the current size was validated when it was set
	_ = t.Initialize(t.size)
}

// Size returns the grid dimensions.
func (t *Tree) Size() gridgraph.Size { return t.size }

// Len returns the number of cells.
func (t *Tree) Len() int { return len(t.parent) }

// Root returns the oldest root. In single-root mode it is the root.
func (t *Tree) Root() gridgraph.Cell {
	return t.size.Cell(t.roots[0])
}

// Roots returns a copy of the root set, oldest first.
func (t *Tree) Roots() []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(t.roots))
	for i, r := range t.roots {
		out[i] = t.size.Cell(r)
	}

	return out
}

// RootCount returns the number of roots.
func (t *Tree) RootCount() int { return len(t.roots) }

// IsRoot reports whether c has no parent. Out-of-bounds cells are never roots.
func (t *Tree) IsRoot(c gridgraph.Cell) bool {
	return t.size.Contains(c) && t.parent[t.size.Index(c)] == noParent
}

// ParentOf returns c's parent and true, or the zero Cell and false when c is
// a root or out of bounds.
// Complexity: O(1).
func (t *Tree) ParentOf(c gridgraph.Cell) (gridgraph.Cell, bool) {
	if !t.size.Contains(c) {
		return gridgraph.Cell{}, false
	}
	p := t.parent[t.size.Index(c)]
	if p == noParent {
		return gridgraph.Cell{}, false
	}

	return t.size.Cell(p), true
}

// ParentIndex is the flat-index form of ParentOf: it returns -1 for a root.
// The caller guarantees 0 <= i < Len().
func (t *Tree) ParentIndex(i int) int {
	return t.parent[i]
}

// SetParent overwrites c's outgoing edge so that it points at p. If c was a
// root it stops being one.
//
// Only bounds and adjacency are checked. Keeping the parent relation acyclic
// is the caller's job; Validate can confirm it afterwards.
func (t *Tree) SetParent(c, p gridgraph.Cell) error {
	if err := t.size.Check(c); err != nil {
		return fmt.Errorf("mazetree: SetParent(%s, %s): %w", c, p, err)
	}
	if err := t.size.Check(p); err != nil {
		return fmt.Errorf("mazetree: SetParent(%s, %s): %w", c, p, err)
	}
	if !gridgraph.Adjacent(c, p) {
		return fmt.Errorf("mazetree: SetParent(%s, %s): %w", c, p, gridgraph.ErrNotAdjacent)
	}

	i := t.size.Index(c)
	if t.parent[i] == noParent {
		t.dropRoot(i)
	}
	t.parent[i] = t.size.Index(p)

	return nil
}

// ClearParent removes c's outgoing edge, promoting c to a root. Clearing a
// root is a no-op.
func (t *Tree) ClearParent(c gridgraph.Cell) error {
	if err := t.size.Check(c); err != nil {
		return fmt.Errorf("mazetree: ClearParent(%s): %w", c, err)
	}

	i := t.size.Index(c)
	if t.parent[i] == noParent {
		return nil
	}
	t.parent[i] = noParent
	t.roots = append(t.roots, i)

	return nil
}

// dropRoot removes index i from the root list.
func (t *Tree) dropRoot(i int) {
	if k := slices.Index(t.roots, i); k >= 0 {
		t.roots = slices.Delete(t.roots, k, k+1)
	}
}

// Edges returns every cell→parent link in row-major order of the child.
func (t *Tree) Edges() []gridgraph.Edge {
	out := make([]gridgraph.Edge, 0, len(t.parent)-len(t.roots))
	for i, p := range t.parent {
		if p == noParent {
			continue
		}
		out = append(out, gridgraph.Edge{From: t.size.Cell(i), To: t.size.Cell(p)})
	}

	return out
}

// Passages returns the undirected adjacency lists of the maze, indexed by
// flat cell index. Each cell→parent link appears in both endpoints' lists.
func (t *Tree) Passages() [][]int {
	adj := make([][]int, len(t.parent))
	for i, p := range t.parent {
		if p == noParent {
			continue
		}
		adj[i] = append(adj[i], p)
		adj[p] = append(adj[p], i)
	}

	return adj
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	return &Tree{
		size:   t.size,
		parent: slices.Clone(t.parent),
		roots:  slices.Clone(t.roots),
	}
}

// Equal reports whether t and o have the same size and parent mapping.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}

	return t.size == o.size && slices.Equal(t.parent, o.parent)
}
