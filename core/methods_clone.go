// File: methods_clone.go
// Role: Deep copies of graph instances.

package core

// Clone returns a deep copy of the Graph: every vertex and a fresh copy of
// each edge slice, so appending to the clone never touches the original.
//
// Complexity: O(V + E)
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}
	clone := make(Graph, len(g))
	for id, edges := range g {
		if edges == nil {
			clone[id] = nil
			continue
		}
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		clone[id] = cp
	}

	return clone
}
