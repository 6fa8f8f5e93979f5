package originshift

import "github.com/Kiryonn/OriginShiftTests/gridgraph"

// EdgeSink receives parent changes synchronously, in the order they happen.
// from is the child cell, to its (old or new) parent.
type EdgeSink interface {
	EdgeAdded(from, to gridgraph.Cell)
	EdgeRemoved(from, to gridgraph.Cell)
}

// NopSink discards every event.
type NopSink struct{}

// EdgeAdded implements EdgeSink.
func (NopSink) EdgeAdded(_, _ gridgraph.Cell) {}

// EdgeRemoved implements EdgeSink.
func (NopSink) EdgeRemoved(_, _ gridgraph.Cell) {}

// SinkFuncs adapts plain functions to EdgeSink. Nil fields are skipped.
type SinkFuncs struct {
	Added   func(from, to gridgraph.Cell)
	Removed func(from, to gridgraph.Cell)
}

// EdgeAdded implements EdgeSink.
func (s SinkFuncs) EdgeAdded(from, to gridgraph.Cell) {
	if s.Added != nil {
		s.Added(from, to)
	}
}

// EdgeRemoved implements EdgeSink.
func (s SinkFuncs) EdgeRemoved(from, to gridgraph.Cell) {
	if s.Removed != nil {
		s.Removed(from, to)
	}
}

// EventKind tells an added edge from a removed one.
type EventKind uint8

const (
	Added EventKind = iota + 1
	Removed
)

// String returns "added" or "removed".
func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is one recorded edge change.
type Event struct {
	Kind EventKind
	Edge gridgraph.Edge
}

// Recorder is an EdgeSink that keeps every event in order.
type Recorder struct {
	Events []Event
}

// EdgeAdded implements EdgeSink.
func (r *Recorder) EdgeAdded(from, to gridgraph.Cell) {
	r.Events = append(r.Events, Event{Kind: Added, Edge: gridgraph.Edge{From: from, To: to}})
}

// EdgeRemoved implements EdgeSink.
func (r *Recorder) EdgeRemoved(from, to gridgraph.Cell) {
	r.Events = append(r.Events, Event{Kind: Removed, Edge: gridgraph.Edge{From: from, To: to}})
}

// Reset drops the recorded events and keeps the backing array.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
