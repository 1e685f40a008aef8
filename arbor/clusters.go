package arbor

import (
	"fmt"
	"sort"
)

// ClusterGroup pairs one top-level VEB cluster with the ids stored in it
// and their labels, in ascending id order.
type ClusterGroup struct {
	Cluster int      // top-level cluster index
	IDs     []int    // ids routed to this cluster, ascending
	Labels  []string // label per id, or an "(unused:#id)" marker
}

// ClusterView returns the diagnostic cluster/label grouping of the owned
// index: the full sorted, deduplicated key set, grouped by top-level
// cluster index, each key paired with its label. Keys with no label
// binding are marked "(unused:#k)" — the graph's own operations never
// produce such keys, but the branch is kept for ids inserted out of band.
//
// Groups are ordered by ascending cluster index; empty clusters are
// omitted.
func (a *Arbor) ClusterView() []ClusterGroup {
	a.mu.RLock()
	defer a.mu.RUnlock()

	keys := a.index.Enumerate()
	sort.Ints(keys)
	keys = dedupeSorted(keys)

	byCluster := make(map[int][]int)
	var order []int
	for _, k := range keys {
		h := a.index.ClusterOf(k)
		if _, seen := byCluster[h]; !seen {
			order = append(order, h)
		}
		byCluster[h] = append(byCluster[h], k)
	}
	sort.Ints(order)

	groups := make([]ClusterGroup, 0, len(order))
	for _, h := range order {
		ids := byCluster[h]
		labels := make([]string, len(ids))
		for i, k := range ids {
			if k >= 0 && k < len(a.labelOf) {
				labels[i] = a.labelOf[k]
			} else {
				labels[i] = fmt.Sprintf("(unused:#%d)", k)
			}
		}
		groups = append(groups, ClusterGroup{Cluster: h, IDs: ids, Labels: labels})
	}

	return groups
}

// dedupeSorted removes adjacent duplicates from a sorted slice in place.
func dedupeSorted(keys []int) []int {
	if len(keys) == 0 {
		return keys
	}
	out := keys[:1]
	for _, k := range keys[1:] {
		if k != out[len(out)-1] {
			out = append(out, k)
		}
	}

	return out
}
