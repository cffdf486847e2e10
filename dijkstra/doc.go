// Package dijkstra provides Dijkstra's single-source shortest-path algorithm on
// core.Graph adjacency lists with non-negative float64 weights, plus
// predecessor-based path reconstruction.
//
// Overview:
//
//   - ShortestPaths computes, for every vertex, the minimum total weight from a
//     source vertex and a predecessor map that encodes a shortest-path tree.
//   - ReconstructPath walks that predecessor map back from a target.
//   - Route chains core.Validate → ShortestPaths → ReconstructPath.
//
// Lazy decrease-key:
//
//   - The heap never removes or re-keys entries. When a vertex's distance
//     improves, a new (distance, vertex) entry is pushed; the old one stays.
//   - On pop, an entry whose distance is strictly greater than the recorded
//     distance is stale and discarded without relaxing any edge.
//   - Pop order among equal distances is unspecified; distances do not
//     depend on it, predecessors may on graphs with several shortest paths.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E), each relaxation pushes at most one entry.
//   - Space: O(V + E) for the maps and the worst-case heap.
//
// Error handling (sentinel errors):
//
//   - ErrUnknownSource: the source is not a key of the graph.
//   - ErrUnknownTarget: Route's target is not a key of the graph.
//   - core.ErrInvalidGraph: Route's validation failed (dangling edge, negative weight).
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option constructors.
//
// ShortestPaths itself does not validate: negative weights are rejected by
// core.Validate upstream and are not re-checked inside the loop.
//
// Logging:
//
//	dist, prev, err := dijkstra.ShortestPaths(g, "A",
//	    dijkstra.WithLogger(log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})),
//	)
//
// emits "run started" and "run finished" debug records with pop, stale and
// relaxation counters (charmbracelet/log). Without WithLogger nothing is written.
//
// Thread safety:
//
//   - Each call owns its state; concurrent calls on the same unmodified graph are safe.
//   - Mutating a graph while a call reads it is a data race.
package dijkstra
