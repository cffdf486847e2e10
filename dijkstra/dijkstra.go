// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - The graph is assumed validated (core.Validate); negative weights are not re-checked.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     discarding an entry at pop time when its distance exceeds the recorded one.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - Candidates above MaxDistance are never recorded.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathtree/core"
)

// ShortestPaths computes shortest distances from source to every vertex of g,
// together with the predecessor map encoding a shortest-path tree.
//
// Returns:
//
//   - dist: every vertex of g; math.Inf(1) if unreachable (or beyond MaxDistance).
//   - prev: every vertex of g; prev[v] == u means the shortest path to v ends with u→v.
//     The source and unreachable vertices map to "".
//   - err:  ErrUnknownSource (wrapped with the ID) if source is not a key of g.
//
// Preconditions:
//
//   - g passed core.Validate. Negative weights void the correctness guarantee.
//   - g is never mutated; calling twice with the same inputs yields equal maps.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPaths(g core.Graph, source string, opts ...Option) (Distances, Predecessors, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	// 1) Allocate per-run state; the graph itself is only read.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(Distances, len(g)),
		prev:    make(Predecessors, len(g)),
		pq:      make(nodePQ, 0, len(g)),
	}
	// 2) Initialize maps and heap, then run the main loop to exhaustion.
	r.init(source)
	r.process()

	// 3) Report counters; silent unless a logger was configured.
	cfg.Logger.Debug("dijkstra: run finished",
		"source", source,
		"vertices", len(g),
		"pops", r.pops,
		"stale", r.stale,
		"relaxations", r.relaxations,
	)

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       core.Graph   // read-only input
	options Options      // caps, thresholds, logger
	dist    Distances    // vertex → best known distance
	prev    Predecessors // vertex → predecessor on the best known path
	pq      nodePQ       // min-heap with lazily deleted stale entries

	pops        int // entries popped, stale included
	stale       int // entries discarded at pop time
	relaxations int // successful distance improvements
}

// init sets dist[v]=+Inf and prev[v]="" for every v, then seeds the heap with (0, source).
func (r *runner) init(source string) {
	// 1) Every vertex starts unreachable with no predecessor.
	for v := range r.g {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}

	// 2) Distance to the source is zero.
	r.dist[source] = 0

	// 3) Seed the heap with the single entry (0, source).
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
	r.options.Logger.Debug("dijkstra: run started", "source", source, "vertices", len(r.g))
}

// process pops the closest entry until the heap is empty. An entry whose
// distance is strictly greater than the recorded one is stale and skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		r.pops++

		// 2) Lazy deletion: a better entry for this vertex was already
		//    processed, so this one carries an outdated distance.
		if item.dist > r.dist[item.id] {
			r.stale++
			continue
		}

		// 3) item.dist is final for item.id; relax its outgoing edges.
		r.relax(item.id, item.dist)
	}
}

// relax tries every outgoing edge of u, reached at distance d.
// An improvement updates dist and prev together and pushes a fresh heap entry.
func (r *runner) relax(u string, d float64) {
	for _, e := range r.g[u] {
		// 1) Edges at or above InfEdgeThreshold are walls.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// 2) Candidate distance Source → … → u → e.To; never record beyond MaxDistance.
		candidate := d + e.Weight
		if candidate > r.options.MaxDistance {
			continue
		}

		// 3) Only a strictly shorter path counts; "<" keeps the first-found predecessor on ties.
		if candidate >= r.dist[e.To] {
			continue
		}

		// 4) Record the improvement: distance and predecessor move together.
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.relaxations++

		// 5) Push a fresh entry; any older entry for e.To turns stale.
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}
}

// nodeItem is one (distance, vertex) heap entry. The same vertex may have
// several entries; all but the smallest become stale.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Order among equal distances is unspecified.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop after it swapped the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
