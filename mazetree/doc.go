// Package mazetree stores a perfect maze as a rooted spanning arborescence
// over the cells of a rectangular grid.
//
// Every cell points at a parent cell that is one of its orthogonal
// neighbours, except the root(s), which point nowhere. Following parents
// from any cell reaches a root in at most Height×Width−1 hops; the passages of
// the maze are exactly the cell→parent links, so the maze is perfect
// (one simple path between any two cells) whenever there is a single root.
//
// Representation:
//
//   - parent[i] holds the flat row-major index of cell i's parent, or -1.
//   - roots keeps the root indices in the order they became roots.
//
// The Tree performs no cycle checks on SetParent/ClearParent: the
// origin-shift engine is the sole mutator and its edge swap preserves the
// invariant by construction. Validate is an opt-in O(n) check for tests and
// debugging tools.
//
// Complexity:
//
//   - New / Resize / Reset: O(H×W).
//   - ParentOf, SetParent, ClearParent, IsRoot: O(1) (+O(roots) bookkeeping).
//   - Edges, Passages, Validate: O(H×W).
//
// Errors:
//
//   - gridgraph.ErrInvalidSize from New / Resize.
//   - gridgraph.ErrCellOutOfBounds, gridgraph.ErrNotAdjacent from SetParent.
//   - ErrDisconnectedTree (wrapping ErrCycle or ErrRootCount) from Validate.
package mazetree
