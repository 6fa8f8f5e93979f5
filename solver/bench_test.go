package solver_test

import (
	"testing"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
	"github.com/Kiryonn/OriginShiftTests/mazetree"
	"github.com/Kiryonn/OriginShiftTests/originshift"
	"github.com/Kiryonn/OriginShiftTests/solver"
)

func benchTree(b *testing.B) *mazetree.Tree {
	b.Helper()
	tree, err := mazetree.New(gridgraph.Size{Height: 100, Width: 100})
	if err != nil {
		b.Fatal(err)
	}
	e, err := originshift.New(tree, originshift.WithSeed(1, 2))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 200000; i++ {
		e.Step()
	}

	return tree
}

func BenchmarkSolve(b *testing.B) {
	tree := benchTree(b)
	from, to := solver.Endpoints(tree.Size())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Solve(tree, from, to)
	}
}

func BenchmarkReference(b *testing.B) {
	tree := benchTree(b)
	from, to := solver.Endpoints(tree.Size())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Reference(tree, from, to)
	}
}
