// Package visits counts how often each cell has held the origin, which lets
// the weighted origin-shift prefer under-visited neighbours and tells the
// driver when every cell has been reached at least once.
package visits

import (
	"github.com/Kiryonn/OriginShiftTests/gridgraph"
)

// Tracker holds one non-negative counter per cell. Counts are only
// meaningful for the topology they were reset with; reset again on every
// initialize or resize of the maze.
type Tracker struct {
	size    gridgraph.Size
	counts  []int
	covered int // cells with count > 0
}

// New returns a tracker for size with root already counted once.
func New(size gridgraph.Size, root gridgraph.Cell) *Tracker {
	t := &Tracker{}
	t.Reset(size, root)

	return t
}

// Reset zeroes every counter for size and records root as visited once.
// A root outside size is ignored.
func (t *Tracker) Reset(size gridgraph.Size, root gridgraph.Cell) {
	n := size.Len()
	if cap(t.counts) >= n {
		t.counts = t.counts[:n]
		clear(t.counts)
	} else {
		t.counts = make([]int, n)
	}
	t.size = size
	t.covered = 0
	if size.Contains(root) {
		t.Increment(root)
	}
}

// Size returns the topology the counters belong to.
func (t *Tracker) Size() gridgraph.Size { return t.size }

// Increment adds one visit to c. Out-of-bounds cells are ignored.
func (t *Tracker) Increment(c gridgraph.Cell) {
	if !t.size.Contains(c) {
		return
	}
	i := t.size.Index(c)
	if t.counts[i] == 0 {
		t.covered++
	}
	t.counts[i]++
}

// Count returns the visits recorded for c, 0 when out of bounds.
func (t *Tracker) Count(c gridgraph.Cell) int {
	if !t.size.Contains(c) {
		return 0
	}

	return t.counts[t.size.Index(c)]
}

// Weight returns the sampling weight 1/(Count(c)+1).
func (t *Tracker) Weight(c gridgraph.Cell) float64 {
	return 1 / float64(t.Count(c)+1)
}

// Covered returns how many cells have been visited at least once.
func (t *Tracker) Covered() int { return t.covered }

// Coverage returns Covered()/cells in [0,1].
func (t *Tracker) Coverage() float64 {
	if len(t.counts) == 0 {
		return 0
	}

	return float64(t.covered) / float64(len(t.counts))
}

// Complete reports whether every cell has been visited.
func (t *Tracker) Complete() bool {
	return len(t.counts) > 0 && t.covered == len(t.counts)
}

// Unvisited returns the cells never visited, row-major.
func (t *Tracker) Unvisited() []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(t.counts)-t.covered)
	for i, n := range t.counts {
		if n == 0 {
			out = append(out, t.size.Cell(i))
		}
	}

	return out
}
