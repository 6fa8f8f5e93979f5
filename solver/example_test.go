package solver_test

import (
	"fmt"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/solver"
)

// ExampleSolve solves the canonical 3×3 maze between its default endpoints.
func ExampleSolve() {
	tree, _ := mazetree.New(gridgraph.Size{Height: 3, Width: 3})
	from, to := solver.Endpoints(tree.Size())

	path, _ := solver.Solve(tree, from, to)
	fmt.Println(path)
	// Output: [(2,0) (2,1) (2,2) (1,2) (0,2)]
}
