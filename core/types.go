// Package core declares the Graph and Edge types, sentinel errors and the
// structured EdgeError returned by validation.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph is matched by every validation failure.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrDanglingEdge indicates an edge whose destination is not a vertex of the graph.
	ErrDanglingEdge = errors.New("core: dangling edge")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge whose weight is NaN.
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a single outgoing connection of a vertex.
//
// The source vertex is implied by the Graph key the Edge is stored under.
type Edge struct {
	// To is the destination vertex ID.
	To string `json:"to" yaml:"to" toml:"to"`

	// Weight is the non-negative traversal cost.
	Weight float64 `json:"weight" yaml:"weight" toml:"weight"`
}

// Graph maps each vertex ID to its outgoing edges, in insertion order.
//
// A vertex without outgoing edges is present as a key with a nil or empty slice.
type Graph map[string][]Edge

// NewGraph returns an empty Graph ready for AddVertex/AddEdge.
// Complexity: O(1)
func NewGraph() Graph {
	return make(Graph)
}

// EdgeError describes one offending edge found by Validate or Violations.
//
// errors.Is matches both ErrInvalidGraph and the specific Reason
// (ErrDanglingEdge, ErrNegativeWeight, ErrBadWeight or ErrEmptyVertexID).
type EdgeError struct {
	From   string  // source vertex of the edge (or the empty key itself)
	To     string  // destination vertex of the edge
	Weight float64 // offending weight (meaningful for ErrNegativeWeight)
	Reason error   // specific sentinel
}

// Error renders the failure with the offending vertex pair and, for
// negative weights, the weight itself.
func (e *EdgeError) Error() string {
	switch e.Reason {
	case ErrDanglingEdge:
		return fmt.Sprintf("invalid graph: node %q links to a non-existent node %q", e.From, e.To)
	case ErrNegativeWeight:
		return fmt.Sprintf("invalid graph: negative weight %g in edge from %q to %q", e.Weight, e.From, e.To)
	case ErrBadWeight:
		return fmt.Sprintf("invalid graph: NaN weight in edge from %q to %q", e.From, e.To)
	case ErrEmptyVertexID:
		if e.From == "" {
			return "invalid graph: empty vertex ID"
		}
		return fmt.Sprintf("invalid graph: node %q links to an empty vertex ID", e.From)
	default:
		return fmt.Sprintf("invalid graph: edge from %q to %q: %v", e.From, e.To, e.Reason)
	}
}

// Unwrap exposes both the umbrella and the specific sentinel to errors.Is.
func (e *EdgeError) Unwrap() []error {
	return []error{ErrInvalidGraph, e.Reason}
}
