package mazetree

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
)

// Validate checks the arborescence invariant in O(H×W):
//
//  1. every parent is an in-bounds orthogonal neighbour;
//  2. the passages (cell–parent links, undirected) contain no cycle;
//  3. the number of connected components equals the number of roots,
//     and the root list matches the cells without a parent.
//
// With one root this is exactly "perfect maze". Passing (2) and (3) also rules
// out directed cycles, since a directed cycle is an undirected one.
//
// Returns nil or ErrDisconnectedTree wrapping the specific cause
// (ErrCycle, ErrRootCount, gridgraph.ErrNotAdjacent, gridgraph.ErrCellOutOfBounds).
func (t *Tree) Validate() error {
	n := len(t.parent)
	sets := make([]*disjoint.Element, n)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	parentless := 0
	for i, p := range t.parent {
		if p == noParent {
			parentless++
			continue
		}
		c := t.size.Cell(i)
		if p < 0 || p >= n {
			return fmt.Errorf("%w: %s has parent index %d: %w", ErrDisconnectedTree, c, p, gridgraph.ErrCellOutOfBounds)
		}
		if !gridgraph.Adjacent(c, t.size.Cell(p)) {
			return fmt.Errorf("%w: %s→%s: %w", ErrDisconnectedTree, c, t.size.Cell(p), gridgraph.ErrNotAdjacent)
		}
		// Already joined means this link closes a loop.
		if sets[i].Find() == sets[p].Find() {
			return fmt.Errorf("%w: %w through %s→%s", ErrDisconnectedTree, ErrCycle, c, t.size.Cell(p))
		}
		disjoint.Union(sets[i], sets[p])
	}

	if parentless != len(t.roots) {
		return fmt.Errorf("%w: %w: %d parentless cells, %d recorded roots",
			ErrDisconnectedTree, ErrRootCount, parentless, len(t.roots))
	}
	for _, r := range t.roots {
		if t.parent[r] != noParent {
			return fmt.Errorf("%w: %w: recorded root %s has a parent",
				ErrDisconnectedTree, ErrRootCount, t.size.Cell(r))
		}
	}

	components := make(map[*disjoint.Element]struct{}, len(t.roots))
	for _, s := range sets {
		components[s.Find()] = struct{}{}
	}
	if len(components) != parentless {
		return fmt.Errorf("%w: %w: %d components, %d roots",
			ErrDisconnectedTree, ErrRootCount, len(components), parentless)
	}

	return nil
}
