// File: methods_edges.go
// Role: Edge insertion & adjacency queries.
//
// Determinism:
//   - Neighbors() preserves insertion order; the engine relaxes edges in that order.
package core

import "fmt"

// AddEdge appends a directed edge from→to with weight w, auto-adding both endpoints.
//
// Behavior highlights:
//   - Parallel edges and self-loops are stored as given.
//   - Weights are NOT checked here; Validate rejects negatives before any algorithm runs.
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g Graph) AddEdge(from, to string, w float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g[to]; !ok {
		g[to] = nil
	}
	g[from] = append(g[from], Edge{To: to, Weight: w})

	return nil
}

// Neighbors returns the outgoing edges of id in insertion order.
//
// The returned slice aliases graph storage; callers must treat it as read-only.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the ID) if id is not a vertex.
func (g Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return edges, nil
}

// EdgeCount returns |E|, counting parallel edges individually.
// Complexity: O(V)
func (g Graph) EdgeCount() int {
	n := 0
	for _, edges := range g {
		n += len(edges)
	}

	return n
}
