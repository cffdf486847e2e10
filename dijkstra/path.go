package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathtree/core"
)

// ReconstructPath walks prev backward from target and returns the vertices
// from source to target inclusive.
//
// The result is empty when target has no chain back to source: target is
// unreachable, target is "" or absent from prev, or the chain ends at a
// different root. ReconstructPath(prev, s, s) is always [s].
//
// A chain longer than len(prev) can only come from a hand-built cyclic map;
// it is treated as no path rather than looping forever.
//
// Complexity: O(path length)
func ReconstructPath(prev Predecessors, source, target string) []string {
	if target == "" {
		return []string{}
	}

	var path []string
	for cur := target; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if len(path) > len(prev)+1 {
			return []string{}
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if len(path) == 0 || path[0] != source {
		return []string{}
	}

	return path
}

// Route runs the whole pipeline: core.Validate, ShortestPaths from source,
// then ReconstructPath to target.
//
// An unreachable target is not an error: the returned Path has no vertices
// and an infinite Distance.
//
// Errors:
//   - *core.EdgeError (matching core.ErrInvalidGraph) if g is malformed.
//   - ErrUnknownSource / ErrUnknownTarget if an endpoint is not a vertex.
func Route(g core.Graph, source, target string, opts ...Option) (Path, error) {
	if err := core.Validate(g); err != nil {
		return Path{}, err
	}
	dist, prev, err := ShortestPaths(g, source, opts...)
	if err != nil {
		return Path{}, err
	}
	if !g.HasVertex(target) {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}

	p := Path{Vertices: ReconstructPath(prev, source, target), Distance: dist[target]}
	if !p.Reachable() {
		p.Distance = math.Inf(1)
	}

	return p, nil
}
