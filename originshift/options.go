package originshift

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/Kiryonn/OriginShiftTests/metrics"
)

// Option configures an Engine. An invalid Option is recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the collaborators of an Engine.
type Options struct {
	// Rand drives every random choice. Seed it for reproducible mazes.
	Rand *rand.Rand

	// Sink receives edge events. Defaults to NopSink.
	Sink EdgeSink

	// Logger gets debug records for rebuilds and root-set changes.
	Logger *slog.Logger

	// Metrics, when set, counts steps and tracks roots and coverage.
	Metrics *metrics.Metrics

	err error
}

// DefaultOptions returns a time-seeded PCG generator, a NopSink, a discard
// logger and no metrics.
func DefaultOptions() Options {
	//nolint:gosec // maze generation does not need a cryptographic source
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	return Options{
		Rand:   r,
		Sink:   NopSink{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRand sets the random source. A nil source is an ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewPCG(seed1, seed2))).
func WithSeed(seed1, seed2 uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed1, seed2)))
}

// WithSink sets the edge-event sink. nil keeps NopSink.
func WithSink(s EdgeSink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithLogger sets the logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches a Prometheus collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
