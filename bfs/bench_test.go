package bfs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Kiryonn/OriginShiftTests/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a full side×side lattice.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	adj := make(bfs.Adjacency, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			u := r*side + c
			if c+1 < side {
				adj[u] = append(adj[u], u+1)
				adj[u+1] = append(adj[u+1], u)
			}
			if r+1 < side {
				adj[u] = append(adj[u], u+side)
				adj[u+side] = append(adj[u+side], u)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(adj, 0)
	}
}

// BenchmarkBFS_RandomTree runs BFS on a random tree, the shape of a maze.
func BenchmarkBFS_RandomTree(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewPCG(1, 1))
	edges := make([][2]int, 0, N-1)
	for v := 1; v < N; v++ {
		edges = append(edges, [2]int{rng.IntN(v), v})
	}
	g := undirected(N, edges...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
