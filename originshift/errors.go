package originshift

import "errors"

var (
	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("originshift: invalid option supplied")

	// ErrNotRoot is returned by RemoveRoot for a cell that already has a parent.
	ErrNotRoot = errors.New("originshift: cell is not a root")

	// ErrLastRoot is returned when removing the root would leave none.
	ErrLastRoot = errors.New("originshift: cannot remove the last root")

	// ErrNoForeignNeighbor is returned when a root has no neighbour in
	// another tree to attach to.
	ErrNoForeignNeighbor = errors.New("originshift: no neighbour in a different tree")

	// ErrTooManyRoots is returned by SpawnRoots when more than half the
	// cells would become roots.
	ErrTooManyRoots = errors.New("originshift: too many roots requested")
)

// ErrNilTree is returned by New when no tree is given.
var ErrNilTree = errors.New("originshift: tree is nil")

// ErrEmptyTree is returned by New for a tree that was never initialised.
var ErrEmptyTree = errors.New("originshift: tree has no cells")
