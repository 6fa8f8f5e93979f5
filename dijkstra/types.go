// Package dijkstra defines the graph contract, options and errors of the
// shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was given.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a vertex outside [0, Order()).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that the target of ShortestPath is not reachable.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every arc impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noVertex marks "no source" and "no predecessor".
const noVertex = -1

// Arc is a weighted outgoing edge.
type Arc struct {
	To     int
	Weight int64
}

// Graph is the read-only view Dijkstra needs. Vertices are 0..Order()-1.
type Graph interface {
	Order() int
	Arcs(u int) []Arc
}

// Unweighted adapts adjacency lists to Graph with every arc weighing 1.
// Undirected graphs list each edge in both endpoints' lists.
type Unweighted [][]int

// Order implements Graph.
func (a Unweighted) Order() int { return len(a) }

// Arcs implements Graph.
func (a Unweighted) Arcs(u int) []Arc {
	out := make([]Arc, len(a[u]))
	for i, v := range a[u] {
		out[i] = Arc{To: v, Weight: 1}
	}

	return out
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex (required, within [0, Order())).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices farther than this are not settled. Default math.MaxInt64.
// InfEdgeThreshold – arcs with weight ≥ this are impassable. Default math.MaxInt64.
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as walls.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no path, and no caps.
func DefaultOptions() Options {
	return Options{
		Source:           noVertex,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
