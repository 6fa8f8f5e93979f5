package render

import (
	"strings"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
)

// ASCII glyphs.
const (
	Wall     = '#'
	Open     = ' '
	RootMark = '@'
	PathMark = '.'
)

// ASCII draws t on a (2H+1)×(2W+1) character grid: cells sit at odd
// coordinates, walls fill every gap not crossed by a parent link. Roots are
// '@' and cells and passages of solution are '.'. Lines end with '\n'.
func ASCII(t *mazetree.Tree, solution gridgraph.Path) string {
	size := t.Size()
	rows, cols := 2*size.Height+1, 2*size.Width+1
	grid := make([][]byte, rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(Wall), cols))
	}

	for _, c := range size.Cells() {
		grid[2*c.Row+1][2*c.Col+1] = Open
	}
	for _, e := range t.Edges() {
		grid[e.From.Row+e.To.Row+1][e.From.Col+e.To.Col+1] = Open
	}

	for i, c := range solution {
		if !size.Contains(c) {
			continue
		}
		grid[2*c.Row+1][2*c.Col+1] = PathMark
		if i > 0 && gridgraph.Adjacent(solution[i-1], c) {
			p := solution[i-1]
			grid[p.Row+c.Row+1][p.Col+c.Col+1] = PathMark
		}
	}
	for _, r := range t.Roots() {
		grid[2*r.Row+1][2*r.Col+1] = RootMark
	}

	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for _, line := range grid {
		b.Write(line)
		b.WriteByte('\n')
	}

	return b.String()
}
