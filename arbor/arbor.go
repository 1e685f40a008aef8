package arbor

import (
	"fmt"
	"sync"

	"github.com/arborlab/porphyry/vebindex"
)

// Arbor is a labeled undirected graph over dense integer node ids.
//
// Invariants: len(labelOf) == len(idOf); ids are allocated contiguously
// from 0; idOf[labelOf[i]] == i for every valid i; every allocated id
// has been inserted into the owned index.
type Arbor struct {
	mu sync.RWMutex // coarse lock around the whole instance

	capacity  int             // fixed universe size U
	adjacency [][]int         // id → neighbor ids; each edge appears once per endpoint
	idOf      map[string]int  // label → id
	labelOf   []string        // id → label
	index     *vebindex.Index // owns every allocated id as a set element
}

// New constructs an empty Arbor with the given options.
func New(opts ...Option) *Arbor {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Capacity was validated by the option constructor, so the index
	// construction cannot fail.
	ix, _ := vebindex.New(cfg.Capacity)

	return &Arbor{
		capacity: cfg.Capacity,
		idOf:     make(map[string]int),
		index:    ix,
	}
}

// Capacity returns the fixed node capacity U.
func (a *Arbor) Capacity() int { return a.capacity }

// EnsureNode returns the id bound to label, allocating the next
// sequential id on first reference. Idempotent for known labels.
// Returns ErrCapacityExceeded when the new id would reach the capacity.
func (a *Arbor) EnsureNode(label string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ensureNode(label)
}

// ensureNode is EnsureNode without locking; callers hold the write lock.
func (a *Arbor) ensureNode(label string) (int, error) {
	if id, ok := a.idOf[label]; ok {
		return id, nil
	}
	id := len(a.labelOf)
	if id >= a.capacity {
		return 0, fmt.Errorf("%w: universe size %d", ErrCapacityExceeded, a.capacity)
	}
	a.idOf[label] = id
	a.labelOf = append(a.labelOf, label)
	a.adjacency = append(a.adjacency, nil)
	a.index.Insert(id)

	return id, nil
}

// Connect records an undirected edge between parent and child, allocating
// either endpoint as needed. Duplicate edges and self-loops are permitted
// and stored as-is. The only possible error is ErrCapacityExceeded from
// endpoint allocation.
func (a *Arbor) Connect(parent, child string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.ensureNode(parent)
	if err != nil {
		return fmt.Errorf("Connect(%q,%q): %w", parent, child, err)
	}
	c, err := a.ensureNode(child)
	if err != nil {
		return fmt.Errorf("Connect(%q,%q): %w", parent, child, err)
	}

	a.adjacency[p] = append(a.adjacency[p], c)
	a.adjacency[c] = append(a.adjacency[c], p)

	return nil
}

// Order returns the number of allocated nodes.
func (a *Arbor) Order() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.labelOf)
}

// IDOf returns the id bound to label; ok is false for unknown labels.
func (a *Arbor) IDOf(label string) (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	id, ok := a.idOf[label]

	return id, ok
}

// LabelOf returns the label bound to id; ok is false for unallocated ids.
func (a *Arbor) LabelOf(id int) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if id < 0 || id >= len(a.labelOf) {
		return "", false
	}

	return a.labelOf[id], true
}

// Labels maps a sequence of ids to their labels, substituting "#<id>"
// for ids with no binding.
func (a *Arbor) Labels(ids []int) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]string, len(ids))
	for i, id := range ids {
		if id >= 0 && id < len(a.labelOf) {
			out[i] = a.labelOf[id]
		} else {
			out[i] = fmt.Sprintf("#%d", id)
		}
	}

	return out
}

// Neighbors returns a copy of the adjacency list of id, in insertion
// order. Nil for unallocated ids.
func (a *Arbor) Neighbors(id int) []int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if id < 0 || id >= len(a.adjacency) {
		return nil
	}

	return append([]int(nil), a.adjacency[id]...)
}

// IndexContains reports whether id is stored in the owned VEB index.
func (a *Arbor) IndexContains(id int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.index.Contains(id)
}

// IndexMin returns the smallest allocated id; ok is false when no node
// has been allocated yet.
func (a *Arbor) IndexMin() (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.index.Min()
}

// IndexMax returns the largest allocated id; ok is false when no node
// has been allocated yet.
func (a *Arbor) IndexMax() (int, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.index.Max()
}

// IndexKeys returns every allocated id, ascending, materialized from
// the owned index.
func (a *Arbor) IndexKeys() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.index.Enumerate()
}
