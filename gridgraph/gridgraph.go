// Package gridgraph provides the orthogonal grid topology shared by the maze
// tree, the origin-shift engine and the solvers.
package gridgraph

import "fmt"

// MinDim is the smallest accepted height or width. Anything smaller has no
// interior structure worth shifting.
const MinDim = 3

// Cell is a grid coordinate. Row grows downwards, Col grows to the right.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Size holds the grid dimensions in cells.
type Size struct {
	Height, Width int
}

// String formats the size as "HxW".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Height, s.Width)
}

// Edge is a directed cell→parent link (From points at To).
type Edge struct {
	From, To Cell
}

// String formats the edge as "(r,c)->(r,c)".
func (e Edge) String() string {
	return e.From.String() + "->" + e.To.String()
}

// Path is an ordered sequence of orthogonally adjacent, pairwise distinct cells.
type Path []Cell

// orthogonal lists the neighbour offsets in (dRow, dCol) form: up, down, left, right.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NewSize validates and returns a Size.
// Returns ErrInvalidSize if either dimension is below MinDim.
func NewSize(height, width int) (Size, error) {
	s := Size{Height: height, Width: width}
	if err := s.Validate(); err != nil {
		return Size{}, err
	}

	return s, nil
}

// Validate reports ErrInvalidSize (wrapped with the offending size) when
// either dimension is below MinDim.
func (s Size) Validate() error {
	if s.Height < MinDim || s.Width < MinDim {
		return fmt.Errorf("%w: got %s", ErrInvalidSize, s)
	}

	return nil
}

// Len returns the number of cells, Height×Width.
func (s Size) Len() int {
	return s.Height * s.Width
}

// Contains reports whether c lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (s Size) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < s.Height && c.Col >= 0 && c.Col < s.Width
}

// Check returns ErrCellOutOfBounds wrapped with context when c is outside s.
func (s Size) Check(c Cell) error {
	if !s.Contains(c) {
		return fmt.Errorf("%w: %s not in %s", ErrCellOutOfBounds, c, s)
	}

	return nil
}

// Index maps c to its row-major index Row*Width+Col.
// The caller guarantees s.Contains(c).
func (s Size) Index(c Cell) int {
	return c.Row*s.Width + c.Col
}

// Cell converts a row-major index back to a Cell.
func (s Size) Cell(idx int) Cell {
	return Cell{Row: idx / s.Width, Col: idx % s.Width}
}

// Cells returns every cell in row-major order.
func (s Size) Cells() []Cell {
	out := make([]Cell, 0, s.Len())
	for r := 0; r < s.Height; r++ {
		for c := 0; c < s.Width; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}

	return out
}

// Neighbors returns the orthogonal in-bounds neighbours of c, in the order
// up, down, left, right. A cell outside s has no neighbours.
// Complexity: O(1).
func Neighbors(c Cell, s Size) []Cell {
	return AppendNeighbors(make([]Cell, 0, 4), c, s)
}

// AppendNeighbors appends the neighbours of c to dst and returns the extended
// slice. Hot loops pass a reused buffer to avoid allocating per step.
func AppendNeighbors(dst []Cell, c Cell, s Size) []Cell {
	if !s.Contains(c) {
		return dst
	}
	for _, d := range orthogonal {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if s.Contains(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Adjacent reports whether a and b differ by exactly one step along one axis.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}

// ValidatePath checks that p is non-empty, stays inside s, moves one
// orthogonal step at a time and never revisits a cell.
// Returns ErrInvalidPath or ErrCellOutOfBounds wrapped with the first failing position.
func ValidatePath(p Path, s Size) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	seen := make(map[Cell]struct{}, len(p))
	for i, c := range p {
		if err := s.Check(c); err != nil {
			return fmt.Errorf("%w at index %d", err, i)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s repeated at index %d", ErrInvalidPath, c, i)
		}
		seen[c] = struct{}{}
		if i > 0 && !Adjacent(p[i-1], c) {
			return fmt.Errorf("%w: %s and %s at index %d: %w", ErrInvalidPath, p[i-1], c, i, ErrNotAdjacent)
		}
	}

	return nil
}
