package mazetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
)

// TestValidate_RootBookkeeping corrupts the root list directly; the public
// API cannot reach this state.
func TestValidate_RootBookkeeping(t *testing.T) {
	tr, err := New(gridgraph.Size{Height: 3, Width: 3})
	require.NoError(t, err)

	tr.roots = append(tr.roots, 0)
	assert.ErrorIs(t, tr.Validate(), ErrRootCount)

	tr.roots = []int{0}
	assert.ErrorIs(t, tr.Validate(), ErrRootCount)
}

// TestValidate_NonAdjacentParent writes a jump straight into the arena.
func TestValidate_NonAdjacentParent(t *testing.T) {
	tr, err := New(gridgraph.Size{Height: 3, Width: 3})
	require.NoError(t, err)

	tr.parent[0] = 8
	err = tr.Validate()
	assert.ErrorIs(t, err, ErrDisconnectedTree)
	assert.ErrorIs(t, err, gridgraph.ErrNotAdjacent)
}
