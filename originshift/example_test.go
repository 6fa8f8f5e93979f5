package originshift_test

import (
	"fmt"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/originshift"
)

// ExampleEngine_Step shifts the origin of a fresh 3×3 maze once and prints
// the resulting root count and whether the maze is still perfect.
func ExampleEngine_Step() {
	tree, _ := mazetree.New(gridgraph.Size{Height: 3, Width: 3})
	e, _ := originshift.New(tree, originshift.WithSeed(42, 0))

	s := e.Step()
	fmt.Println(gridgraph.Adjacent(s.From, s.To), tree.RootCount(), tree.Validate())
	// Output: true 1 <nil>
}

// ExampleRecorder logs the edge events of one step.
func ExampleRecorder() {
	tree, _ := mazetree.New(gridgraph.Size{Height: 3, Width: 3})
	rec := &originshift.Recorder{}
	e, _ := originshift.New(tree, originshift.WithSeed(1, 1), originshift.WithSink(rec))

	e.Step()
	for _, ev := range rec.Events {
		fmt.Println(ev.Kind)
	}
	// Output:
	// removed
	// added
}
