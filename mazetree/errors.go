package mazetree

import "errors"

var (
	// ErrDisconnectedTree indicates the parent relation is not a valid
	// spanning arborescence (or forest, with several roots).
	ErrDisconnectedTree = errors.New("mazetree: parent relation is not a spanning arborescence")
	// ErrCycle indicates the passages contain a cycle.
	ErrCycle = errors.New("mazetree: passages contain a cycle")
	// ErrRootCount indicates the number of components differs from the number of roots.
	ErrRootCount = errors.New("mazetree: component count does not match root count")
)
