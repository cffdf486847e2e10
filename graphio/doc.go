// Package graphio decodes core.Graph adjacency lists from TOML, YAML and JSON
// documents.
//
// Every format uses the same shape: a top-level mapping from vertex ID to the
// ordered list of outgoing edges, each edge an object with "to" and "weight".
// A vertex without outgoing edges is listed with an empty list.
//
// TOML:
//
//	A = [ { to = "B", weight = 10.0 }, { to = "C", weight = 5.0 } ]
//	B = [ { to = "C", weight = 1.0 } ]
//	C = []
//
// YAML:
//
//	A: [{to: B, weight: 10}, {to: C, weight: 5}]
//	B: [{to: C, weight: 1}]
//	C: []
//
// JSON:
//
//	{"A": [{"to": "B", "weight": 10}], "B": []}
//
// Unknown edge fields are rejected, so a misspelled "wieght" fails loudly
// instead of silently decoding to zero. Decoding never validates the graph;
// run core.Validate on the result before handing it to an algorithm.
//
// The package reads from an io.Reader and never opens files itself.
package graphio
