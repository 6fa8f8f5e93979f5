package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a grid dimension smaller than MinDim.
	ErrInvalidSize = errors.New("gridgraph: height and width must be at least 3")
	// ErrCellOutOfBounds indicates a cell outside the current grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotAdjacent indicates two cells that are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
	// ErrInvalidPath indicates a malformed path.
	ErrInvalidPath = errors.New("gridgraph: invalid path")
)
