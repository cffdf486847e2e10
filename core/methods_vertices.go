// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
package core

import "sort"

// AddVertex inserts a vertex with no outgoing edges if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity:
//   - Time O(1), Space O(1).
func (g Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g[id]; !ok {
		g[id] = nil
	}

	return nil
}

// HasVertex reports whether id is a key of the graph.
// Complexity: O(1)
func (g Graph) HasVertex(id string) bool {
	_, ok := g[id]
	return ok
}

// Vertices returns every vertex ID, sorted ascending.
//
// Sorting gives validators and tests a reproducible enumeration even though
// the underlying storage is a Go map.
//
// Complexity:
//   - Time O(V·log V), Space O(V).
func (g Graph) Vertices() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g Graph) VertexCount() int { return len(g) }
