package vebindex

import (
	"errors"
	"math"
)

// ErrBadUniverse indicates a requested universe size below the minimum of 1.
var ErrBadUniverse = errors.New("vebindex: universe size must be at least 1")

// noKey marks an empty minimum/maximum slot. Valid keys are never negative,
// so the sentinel cannot collide with stored data. It never escapes the
// public API: emptiness is surfaced through IsEmpty and the ok results of
// Min and Max.
const noKey = -1

// baseUniverse is the largest universe stored flat in min/max alone,
// with no summary and no clusters.
const baseUniverse = 2

// Index is one node of the recursive VEB structure.
//
// Each Index exclusively owns its summary and clusters; the structure is
// a strict forest with no shared or back references.
type Index struct {
	universe int      // fixed universe size U; keys live in [0, U)
	min, max int      // cached extremes, or noKey when empty
	summary  *Index   // tracks non-empty clusters; nil iff U ≤ 2
	clusters []*Index // r sub-indexes of size r; empty iff U ≤ 2
}

// New constructs an empty Index over the universe [0, universe).
// Returns ErrBadUniverse if universe < 1.
//
// The full recursive structure (summary and clusters at every level) is
// allocated eagerly, so Insert never allocates.
func New(universe int) (*Index, error) {
	if universe < 1 {
		return nil, ErrBadUniverse
	}

	return newIndex(universe), nil
}

// newIndex builds one recursion level; universe is already validated.
func newIndex(universe int) *Index {
	ix := &Index{universe: universe, min: noKey, max: noKey}
	if universe <= baseUniverse {
		return ix
	}
	r := ceilSqrt(universe)
	ix.summary = newIndex(r)
	ix.clusters = make([]*Index, r)
	for h := range ix.clusters {
		ix.clusters[h] = newIndex(r)
	}

	return ix
}

// ceilSqrt returns ceil(sqrt(n)), the single rounding parameter used for
// both cluster count and cluster size. r*r ≥ n, so every key in [0, n)
// routes to a cluster index below r.
func ceilSqrt(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// high routes key x to its cluster index at this level.
func (ix *Index) high(x int) int { return x / ceilSqrt(ix.universe) }

// low is the offset of key x within its cluster at this level.
func (ix *Index) low(x int) int { return x % ceilSqrt(ix.universe) }

// Universe returns the fixed universe size U; keys live in [0, U).
func (ix *Index) Universe() int { return ix.universe }

// IsEmpty reports whether the index holds no keys.
func (ix *Index) IsEmpty() bool { return ix.min == noKey }

// Min returns the smallest stored key; ok is false when the index is empty.
func (ix *Index) Min() (int, bool) {
	if ix.min == noKey {
		return 0, false
	}

	return ix.min, true
}

// Max returns the largest stored key; ok is false when the index is empty.
func (ix *Index) Max() (int, bool) {
	if ix.max == noKey {
		return 0, false
	}

	return ix.max, true
}

// ClusterCount returns the number of top-level clusters
// (0 for base-case universes of size ≤ 2).
func (ix *Index) ClusterCount() int { return len(ix.clusters) }

// ClusterOf returns the top-level cluster index that key x routes to.
func (ix *Index) ClusterOf(x int) int { return ix.high(x) }

// emptyInsert seeds the first key of an empty (sub)index in O(1).
func (ix *Index) emptyInsert(x int) { ix.min, ix.max = x, x }

// Insert adds key x to the index. x must lie in [0, Universe()); the
// caller guarantees bounds. Inserting a key that is already present is a
// no-op at the base case and idempotent for membership.
//
// Complexity: O(log log U) — the min-swap caches the minimum at this
// level and pushes the displaced key down one recursion step, and an
// empty cluster is seeded without further recursion.
func (ix *Index) Insert(x int) {
	if ix.min == noKey {
		ix.emptyInsert(x)
		return
	}

	// Min-swap: the new key becomes the cached minimum and the old
	// minimum descends into the recursive structure instead.
	if x < ix.min {
		x, ix.min = ix.min, x
	}

	if ix.universe > baseUniverse {
		h, l := ix.high(x), ix.low(x)
		if ix.clusters[h].min == noKey {
			// First key of this cluster: mark it active in the summary
			// and seed its min/max directly, no deeper recursion.
			ix.summary.Insert(h)
			ix.clusters[h].emptyInsert(l)
		} else {
			ix.clusters[h].Insert(l)
		}
	}

	if x > ix.max {
		ix.max = x
	}
}

// Contains reports whether key x is stored in the index.
// Complexity: O(log log U).
func (ix *Index) Contains(x int) bool {
	if ix.min != noKey && (x == ix.min || x == ix.max) {
		return true
	}
	if ix.universe <= baseUniverse {
		return false
	}
	h := ix.high(x)
	if h < 0 || h >= len(ix.clusters) {
		return false
	}
	c := ix.clusters[h]
	if c.min == noKey {
		return false
	}

	return c.Contains(ix.low(x))
}

// Enumerate returns every stored key: the cached minimum first, then each
// non-empty cluster in ascending index order with child keys re-offset by
// h*r+l. For distinct inserted keys the result is strictly ascending; an
// empty index yields a nil slice.
func (ix *Index) Enumerate() []int {
	var out []int
	ix.enumerate(&out)

	return out
}

// enumerate appends this level's keys to out.
func (ix *Index) enumerate(out *[]int) {
	if ix.min == noKey {
		return
	}
	*out = append(*out, ix.min)
	if ix.universe <= baseUniverse {
		if ix.max != ix.min {
			*out = append(*out, ix.max)
		}
		return
	}
	r := ceilSqrt(ix.universe)
	var child []int
	for h, c := range ix.clusters {
		if c.min == noKey {
			continue
		}
		child = child[:0]
		c.enumerate(&child)
		for _, l := range child {
			*out = append(*out, h*r+l)
		}
	}
}
