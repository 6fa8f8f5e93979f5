// Package solver finds paths in a maze tree.
//
// Solve exploits the parent pointers: the path between two cells of a tree
// runs from the first cell up to the branch point where both root chains
// meet, then down to the second cell. It touches only the cells on the two
// chains, O(depth(from) + depth(to)), and never builds a graph.
//
// Reference computes the same path with Dijkstra over the maze passages.
// On a perfect maze the path between two cells is unique, so both must
// agree; tests use Reference as the oracle.
//
// Farthest and Diameter run breadth-first sweeps over the passages. Two
// sweeps find the longest path of a tree, which makes good default
// solution endpoints.
//
// Errors:
//
//   - gridgraph.ErrCellOutOfBounds for endpoints outside the grid.
//   - ErrNoPath when the endpoints are in different trees of a forest.
//   - ErrBrokenTree when a parent chain does not end at a root.
package solver
