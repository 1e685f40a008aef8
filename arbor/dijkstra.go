package arbor

import (
	"container/heap"
	"math"
)

// infinity is the sentinel distance for nodes not yet reached; larger
// than any reachable hop count.
const infinity = math.MaxInt

// ShortestPath returns the node ids of a minimum-hop path from label src
// to label dst, inclusive of both endpoints. Every edge costs 1.
//
// The result is empty when either label is unknown or no path exists
// (the two cases are indistinguishable by design); it is [id] when
// src == dst.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (a *Arbor) ShortestPath(src, dst string) []int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.idOf[src]
	if !ok {
		return nil
	}
	t, ok := a.idOf[dst]
	if !ok {
		return nil
	}

	r := newSearch(a.adjacency)
	r.run(s, t)
	if r.dist[t] == infinity {
		return nil
	}

	return r.rebuild(t)
}

// search holds the mutable state of a single unit-weight Dijkstra run.
type search struct {
	adjacency [][]int // read-only view of the graph
	dist      []int   // id → best known distance from source
	parent    []int   // id → predecessor on the shortest path, -1 at the source
	pq        pathPQ  // lazy min-heap of (id, dist) entries
}

// newSearch initializes distances to infinity and parents to -1.
func newSearch(adjacency [][]int) *search {
	n := len(adjacency)
	r := &search{
		adjacency: adjacency,
		dist:      make([]int, n),
		parent:    make([]int, n),
		pq:        make(pathPQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = infinity
		r.parent[i] = -1
	}

	return r
}

// run executes the main loop from source s, stopping early once target t
// is popped with its final distance.
func (r *search) run(s, t int) {
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pathItem{id: s, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pathItem)
		u, d := item.id, item.dist

		// Lazy decrease-key: an entry whose distance no longer matches
		// the recorded best is stale and is discarded unprocessed.
		if d != r.dist[u] {
			continue
		}
		// Early exit: t's distance is final once it pops.
		if u == t {
			break
		}

		r.relax(u, d)
	}
}

// relax attempts to improve the distance of every neighbor of u through
// the unit-weight edge u→v, pushing a fresh heap entry on success.
func (r *search) relax(u, d int) {
	for _, v := range r.adjacency[u] {
		if r.dist[v] > d+1 {
			r.dist[v] = d + 1
			r.parent[v] = u
			heap.Push(&r.pq, &pathItem{id: v, dist: d + 1})
		}
	}
}

// rebuild walks parent links from t back to the source and reverses.
func (r *search) rebuild(t int) []int {
	var path []int
	for cur := t; cur != -1; cur = r.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathItem represents a node and its candidate distance from the source.
type pathItem struct {
	id   int // node id
	dist int // distance from source, in hops
}

// pathPQ is a min-heap of *pathItem ordered by dist ascending. Shorter
// rediscoveries push duplicates; stale entries are filtered at pop time
// against the dist slice.
type pathPQ []*pathItem

// Len returns the number of items in the heap.
func (pq pathPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq pathPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *pathItem.
func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
