// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph adjacency lists.
//
// Options:
//
//	– WithLogger:           charmbracelet/log logger for debug tracing (default: discard).
//	– WithMaxDistance:      optional cap on distances to record; vertices beyond it stay +Inf.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrUnknownSource   if the source vertex is not a key of the graph.
//	– ErrUnknownTarget   if Route is asked for a target that is not a key of the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrUnknownSource indicates that the source vertex does not exist in the graph.
	ErrUnknownSource = errors.New("dijkstra: source vertex not found in graph")

	// ErrUnknownTarget indicates that the Route target does not exist in the graph.
	ErrUnknownTarget = errors.New("dijkstra: target vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat zero-weight edges as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Distances maps each vertex ID to its shortest distance from the source.
// Unreachable vertices hold math.Inf(1).
type Distances map[string]float64

// Predecessors maps each vertex ID to the vertex preceding it on a shortest
// path from the source. The source and unreachable vertices map to "".
type Predecessors map[string]string

// Path is a concrete route produced by Route.
type Path struct {
	// Vertices lists the route from source to target inclusive; empty if unreachable.
	Vertices []string

	// Distance is the total weight of the route, math.Inf(1) if unreachable.
	Distance float64
}

// Reachable reports whether the path connects source and target.
func (p Path) Reachable() bool { return len(p.Vertices) > 0 }

// Options configures the behavior of the engine.
//
// Logger           – receives debug records for each run; never nil after DefaultOptions.
// MaxDistance      – candidates above this value are not recorded. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this value are skipped. Default +Inf.
type Options struct {
	Logger           *log.Logger
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithLogger routes debug tracing to l. A nil logger restores the discard default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.Logger = l
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed limit are left at +Inf with no predecessor.
// Panics with ErrBadMaxDistance if limit is negative or NaN.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered non-traversable.
// Panics with ErrBadInfThreshold if threshold is zero, negative or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the plain algorithm: no caps, no walls, no logging.
func DefaultOptions() Options {
	return Options{
		Logger:           discardLogger(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
