// Package pathtree is a small in-memory toolkit for two textbook structures:
// single-source shortest paths over non-negative weighted directed graphs,
// and an ordered binary search tree multiset.
//
// Subpackages:
//
//	core/     - adjacency-list Graph, Edge, and the validator (dangling edges, negative weights)
//	dijkstra/ - lazy-decrease-key Dijkstra, predecessor-based path reconstruction, Route pipeline
//	bfs/      - hop-count breadth-first search and reachability over the same Graph
//	bst/      - binary search tree of float64 with duplicates routed right
//	graphio/  - TOML / YAML / JSON decoders for adjacency lists
//
// The graph pipeline is linear:
//
//	core.Validate → dijkstra.ShortestPaths → dijkstra.ReconstructPath
//
// Quick example:
//
//	g := core.Graph{
//	    "A": {{To: "B", Weight: 10}, {To: "C", Weight: 5}},
//	    "B": nil,
//	    "C": {{To: "B", Weight: 4}},
//	}
//	p, err := dijkstra.Route(g, "A", "B") // p.Vertices == [A C B], p.Distance == 9
//
//	go get github.com/katalvlaran/pathtree
package pathtree
