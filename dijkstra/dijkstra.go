// Package dijkstra implements Dijkstra's shortest-path algorithm on graphs
// with dense integer vertices.
//
// Notes on implementation choices:
//
//   - We scan all arcs up front (O(E)) to detect negative weights and fail fast.
//   - Any arc with weight ≥ InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the heap minimum exceeds MaxDistance.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries skipped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance (math.MaxInt64 if unreachable).
//   - prev: if ReturnPath, prev[v] is v's predecessor or -1; nil otherwise.
//   - err:  ErrNoSource, ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == noVertex {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: source %d, order %d", ErrVertexNotFound, cfg.Source, n)
	}

	// Pre-scan all arcs to fail fast on negative weights.
	for u := 0; u < n; u++ {
		for _, a := range g.Arcs(u) {
			if a.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
			if a.To < 0 || a.To >= n {
				return nil, nil, fmt.Errorf("%w: arc %d→%d, order %d", ErrVertexNotFound, u, a.To, n)
			}
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertices of one shortest path from→to, inclusive,
// and its cost. from == to yields [from] at cost 0.
// Returns ErrUnreachable when to cannot be reached, plus every Dijkstra error.
func ShortestPath(g Graph, from, to int) ([]int, int64, error) {
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if to < 0 || to >= len(dist) {
		return nil, 0, fmt.Errorf("%w: target %d, order %d", ErrVertexNotFound, to, len(dist))
	}
	if dist[to] == math.MaxInt64 {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrUnreachable, from, to)
	}

	path := []int{to}
	for v := to; prev[v] != noVertex; v = prev[v] {
		path = append(path, prev[v])
	}
	slices.Reverse(path)

	return path, dist[to], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    []int64 // vertex → current best distance from Source
	prev    []int   // vertex → predecessor on the shortest path
	visited []bool  // vertex → distance finalized
	pq      nodePQ  // min-heap of *nodeItem, lazy decrease-key
}

// init sets every distance to +∞ and pushes Source at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = noVertex
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest vertex and relaxes its arcs, until
// the heap is empty or its minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbour of settled u.
func (r *runner) relax(u int) {
	for _, a := range r.g.Arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// strict "<" avoids pushing duplicates on ties
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		r.prev[a.To] = u
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay
// in the heap and are skipped when popped (visited check).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
