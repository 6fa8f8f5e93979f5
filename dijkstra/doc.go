// Package dijkstra implements Dijkstra's shortest-path algorithm over graphs
// whose vertices are the integers 0..Order()-1.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source to every
//     reachable vertex in O((V + E) log V), expanding the next-closest vertex
//     from a min-heap.
//   - Vertices are dense ints, so distances and predecessors live in slices
//     rather than maps. A maze passage graph maps cell (r,c) to r*width+c.
//   - Supports path reconstruction, distance caps and "impassable" edge
//     thresholds through functional options.
//
// When to use:
//
//   - As the reference oracle for the tree-walking maze solver: on a perfect
//     maze every shortest path is the unique path, so both must agree.
//   - On any static graph with non-negative weights.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled once (V extractions).
//   - Each relaxation may push one heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for dist and prev slices.
//   - O(E) worst-case heap entries under "lazy decrease-key".
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source was not set.
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  a vertex is outside [0, Order()).
//   - ErrNegativeWeight:  an arc has a negative weight (O(E) pre-scan).
//   - ErrUnreachable:     ShortestPath target cannot be reached.
//   - ErrBadMaxDistance:  (panic) negative MaxDistance.
//   - ErrBadInfThreshold: (panic) non-positive InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g Graph, opts ...Option) (dist []int64, prev []int, err error)
//	func ShortestPath(g Graph, from, to int) (path []int, cost int64, err error)
//
//	  - dist[v]: minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev[v]: predecessor of v on one shortest path, -1 for the source and
//	             unreachable vertices. Nil unless WithReturnPath() is given.
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent calls are safe as long as g is not
//     mutated meanwhile.
package dijkstra
