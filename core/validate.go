// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Well-formedness checks run before any algorithm touches a Graph.
// Policy:
//   - Vertices are scanned in sorted order, edges in stored order, so the
//     first reported failure is deterministic across runs.
//   - Checks per edge, in order: empty destination, dangling destination, NaN weight, negative weight.
//   - Validation never mutates the graph.

package core

import "math"

// Validate reports the first malformed vertex or edge of g, or nil.
//
// Implementation:
//   - Stage 1: Enumerate vertices via Vertices() (sorted).
//   - Stage 2: For each outgoing edge, check the destination is a key, then the weight.
//   - Stage 3: Return the first *EdgeError encountered.
//
// Errors:
//   - *EdgeError matching ErrInvalidGraph and one of
//     ErrEmptyVertexID, ErrDanglingEdge, ErrBadWeight, ErrNegativeWeight.
//
// Notes:
//   - Beyond dangling edges and negative weights, two more inputs are rejected.
//     Empty IDs (as keys or destinations): "" is the "no predecessor" marker
//     in dijkstra.Predecessors, so a real vertex named "" would be
//     indistinguishable from an unset link.
//   - NaN weights: NaN never compares less than a distance, so it would
//     silently disable relaxation instead of failing.
//
// Complexity:
//   - Time O(V·log V + E), Space O(V).
func Validate(g Graph) error {
	var found *EdgeError
	walk(g, func(e *EdgeError) bool {
		found = e
		return false
	})
	if found != nil {
		return found
	}

	return nil
}

// Violations is the exhaustive form of Validate: it returns every failure in
// the same order Validate would encounter them. A valid graph yields nil.
//
// Complexity:
//   - Time O(V·log V + E), Space O(V + k) for k violations.
func Violations(g Graph) []*EdgeError {
	var out []*EdgeError
	walk(g, func(e *EdgeError) bool {
		out = append(out, e)
		return true
	})

	return out
}

// walk feeds each violation to yield until yield returns false.
func walk(g Graph, yield func(*EdgeError) bool) {
	for _, from := range g.Vertices() {
		if from == "" {
			if !yield(&EdgeError{Reason: ErrEmptyVertexID}) {
				return
			}
			continue
		}
		for _, e := range g[from] {
			var reason error
			switch {
			case e.To == "":
				reason = ErrEmptyVertexID
			case !g.HasVertex(e.To):
				reason = ErrDanglingEdge
			case math.IsNaN(e.Weight):
				reason = ErrBadWeight
			case e.Weight < 0:
				reason = ErrNegativeWeight
			default:
				continue
			}
			if !yield(&EdgeError{From: from, To: e.To, Weight: e.Weight, Reason: reason}) {
				return
			}
		}
	}
}
