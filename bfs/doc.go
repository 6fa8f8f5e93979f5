// Package bfs provides breadth-first search over graphs whose vertices are the
// integers 0..Order()-1, returning unweighted distances, parent links, and
// visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance from start, -1 if not reached
//   - Parent: vertex → predecessor in the BFS tree, -1 for start and unreached
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Hop distances on maze passages: the farthest cell from a start, the
//     maze diameter (two sweeps on a tree), and a second oracle for the solver.
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors returns them, so the
//	visit sequence is reproducible for a fixed graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(bfs.Adjacency(tree.Passages()), start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	far, depth := res.Farthest()
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if start is outside [0, Order()).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for a vertex BFS never reached.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
