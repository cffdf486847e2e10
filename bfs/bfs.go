// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// BFS ignores edge weights: it answers "which vertices can be reached, and in
// how few edges". It is the weight-free companion of the dijkstra package and
// shares its reachability: a vertex is reached by BFS exactly when Dijkstra
// assigns it a finite distance (without caps or walls).
//
// Edges are followed in stored order and vertices enqueued on first sight, so
// Order and Parent are deterministic for a given graph.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathtree/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Graph  // read-only input
	opts  Options     // depth limit, edge filter, visit hook
	queue []queueItem // FIFO of discovered, not yet visited vertices
	res   *Result     // Order/Depth/Parent built incrementally
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrStartVertexNotFound for an absent start, ErrOptionViolation for
// bad options, or any error returned by the OnVisit hook.
//
// Complexity: O(V + E)
func BFS(g core.Graph, startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := len(g)
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the set of vertices reachable from startID, start included.
func Reachable(g core.Graph, startID string) (map[string]bool, error) {
	res, err := BFS(g, startID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		seen[id] = true
	}

	return seen, nil
}

// enqueue records depth and parent of id and appends it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// 1) Dequeue the oldest item (FIFO keeps depths non-decreasing).
		item := w.queue[0]
		w.queue = w.queue[1:]

		// 2) Visit: record order and run the hook; a hook error aborts the search.
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		// 3) Respect MaxDepth before looking at neighbors.
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}

		// 4) Enqueue each unseen destination of a permitted edge, in stored order.
		for _, e := range w.graph[item.id] {
			if !w.opts.FilterEdge(item.id, e) || w.res.Reached(e.To) {
				continue
			}
			w.enqueue(e.To, next, item.id)
		}
	}

	return nil
}
