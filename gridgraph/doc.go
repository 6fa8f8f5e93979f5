// Package gridgraph treats a rectangular grid of cells as an orthogonal graph,
// the topology every maze in this module lives on.
//
// What:
//
//   - Cell is a (Row, Col) coordinate; Size is a (Height, Width) pair.
//   - Neighbors returns the in-bounds 4-neighbourhood of a cell (N, S, W, E).
//   - Size.Index / Size.Cell map cells to a row-major flat index and back,
//     so callers can keep per-cell state in plain slices.
//   - Edge and Path are the value types exchanged with renderers and solvers.
//
// Why:
//
//   - Origin-shift only ever moves the root to a grid neighbour, so the
//     neighbourhood function is the single source of truth for legal moves.
//   - Flat indices give O(1) access without hashing.
//
// Complexity:
//
//   - Neighbors, Index, Cell, Contains: O(1).
//   - Cells: O(W×H).
//   - ValidatePath: O(len(path)).
//
// Errors:
//
//   - ErrInvalidSize: a dimension is below MinDim.
//   - ErrCellOutOfBounds: a cell lies outside [0,Height)×[0,Width).
//   - ErrNotAdjacent: two cells are not orthogonal neighbours.
//   - ErrInvalidPath: a path is empty, repeats a cell or jumps.
package gridgraph
