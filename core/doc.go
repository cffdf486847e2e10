// Package core provides the adjacency-list Graph consumed by the shortest-path
// engine, together with the validator that guards it.
//
// The Graph G = (V,E) is a plain mapping from vertex ID to the ordered list of
// its outgoing edges:
//
//	g := core.Graph{
//	    "A": {{To: "B", Weight: 10}, {To: "C", Weight: 5}},
//	    "B": {{To: "D", Weight: 1}},
//	    "C": nil,
//	    "D": nil,
//	}
//
// Invariants expected by algorithms (checked by Validate):
//
//   - Closed vertex set: every Edge.To is itself a key of the Graph.
//   - Non-negative weights: every Edge.Weight ≥ 0.
//   - Non-empty IDs: "" is reserved as the "no predecessor" marker.
//
// Algorithms treat a Graph as immutable input; no function in this module
// mutates a Graph it did not build.
//
// Core Methods:
//
//	// Building
//	NewGraph() Graph                           // O(1)
//	AddVertex(id string) error                 // O(1), idempotent
//	AddEdge(from, to string, w float64) error  // O(1) amortized, endpoints auto-added
//
//	// Query
//	HasVertex(id string) bool                  // O(1)
//	Vertices() []string                        // O(V·log V), sorted
//	Neighbors(id string) ([]Edge, error)       // O(1), stored order
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(V)
//
//	// Cloning
//	Clone() Graph                              // O(V+E) deep copy
//
//	// Validation
//	Validate(g Graph) error                    // O(V·log V + E), first failure
//	Violations(g Graph) []*EdgeError           // O(V·log V + E), every failure
//
// Errors:
//
//	ErrInvalidGraph   – umbrella for every validation failure
//	ErrDanglingEdge   – edge points to a vertex that is not a key
//	ErrNegativeWeight – edge weight < 0
//	ErrBadWeight      – edge weight is NaN
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – query on a missing vertex
package core
