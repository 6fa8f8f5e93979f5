// Package originshift mutates a maze tree with the origin-shift algorithm.
//
// What:
//
//	The maze is an arborescence over grid cells: every cell points at one
//	orthogonal neighbour, and following those pointers from anywhere ends at
//	the root (the "origin"). One step picks a neighbour c of the origin r,
//	points r at c and clears c's own pointer, so c becomes the new origin.
//	The result is again a spanning arborescence, so the maze stays perfect
//	after any number of steps.
//
// Variants:
//
//   - Step         uniform choice among the origin's neighbours.
//   - StepWeighted neighbours weighted 1/(visits+1), steering the origin
//     towards cells it has rarely held.
//   - StepAll      every root of a forest moves at once. All choices are
//     read before any write, and every SetParent is applied before any
//     ClearParent, so a root that is also another root's destination ends
//     up as a root.
//
// Each parent change is reported to an EdgeSink (EdgeRemoved before
// EdgeAdded), which is how renderers animate without diffing the tree.
//
// Complexity:
//
//   - Step, StepWeighted: O(1) time, no allocation.
//   - StepAll:            O(k) for k roots.
//   - Resize, Reset:      O(H×W).
//   - RemoveRoot:         O(depth) per neighbour to find its tree.
//
// Errors:
//
//   - ErrOptionViolation   invalid option passed to New.
//   - ErrNotRoot           RemoveRoot on a cell that has a parent.
//   - ErrLastRoot          RemoveRoot on the only root.
//   - ErrNoForeignNeighbor RemoveRoot when every neighbour is in the same tree.
//   - gridgraph errors     from Resize, AddRoot and RemoveRoot.
//
// An Engine is not safe for concurrent use. Drivers call it from a single
// loop (a CLI for-loop or a game Update).
package originshift
