package main

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Kiryonn/OriginShiftTests/gridgraph"
)

// fade is one glowing passage: level runs from 1 down to 0.
type fade struct {
	tween *gween.Tween
	level float32
}

// fades tracks the glow of recently added passages. It is fed by the engine's
// edge events and advanced once per tick.
type fades struct {
	seconds float32
	active  map[gridgraph.Edge]*fade
}

// newFades returns a tracker whose glows last seconds. Zero disables glowing.
func newFades(seconds float64) *fades {
	return &fades{
		seconds: float32(seconds),
		active:  make(map[gridgraph.Edge]*fade),
	}
}

func (f *fades) added(from, to gridgraph.Cell) {
	if f.seconds <= 0 {
		return
	}
	f.active[gridgraph.Edge{From: from, To: to}] = &fade{
		tween: gween.New(1, 0, f.seconds, ease.OutQuad),
		level: 1,
	}
}

func (f *fades) removed(from, to gridgraph.Cell) {
	delete(f.active, gridgraph.Edge{From: from, To: to})
}

// update advances every glow by dt seconds and drops the finished ones.
func (f *fades) update(dt float32) {
	for e, fd := range f.active {
		v, done := fd.tween.Update(dt)
		if done {
			delete(f.active, e)
			continue
		}
		fd.level = v
	}
}

// level returns e's glow in [0,1].
func (f *fades) level(e gridgraph.Edge) float32 {
	if fd, ok := f.active[e]; ok {
		return fd.level
	}

	return 0
}

// edges returns the passages still glowing, in no particular order.
func (f *fades) edges() []gridgraph.Edge {
	out := make([]gridgraph.Edge, 0, len(f.active))
	for e := range f.active {
		out = append(out, e)
	}

	return out
}

func (f *fades) clear() { clear(f.active) }

func (f *fades) len() int { return len(f.active) }

// blend mixes from towards to by t in [0,1].
func blend(from, to color.RGBA, t float32) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}

	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
