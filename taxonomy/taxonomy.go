// SPDX-License-Identifier: MIT
// Package: porphyry/taxonomy
//
// taxonomy.go — the built-in sample ladder and the synthetic generator.
//
// Contract:
//   - Edge emission order is fixed and documented; node ids follow from it.
//   - Builders return only sentinel errors or propagated arbor errors;
//     they never panic.

package taxonomy

import (
	"fmt"

	"github.com/arborlab/porphyry/arbor"
)

// porphyrianEdges is the classic sample ladder, in emission order.
// substance splits into body/incorporeal, body into living/non_living,
// living into animal/plant, animal by differentia into rational and
// irrational branches, down to individuals and a sample bird.
var porphyrianEdges = [][2]string{
	{"substance", "body"},
	{"substance", "incorporeal"},
	{"body", "living"},
	{"body", "non_living"},
	{"living", "animal"},
	{"living", "plant"},
	{"animal", "rational_animal"},
	{"animal", "irrational_animal"},
	{"rational_animal", "man"},
	{"rational_animal", "immortal_rational_animal"},
	{"man", "Plato"},
	{"man", "Socrates"},
	{"man", "Aristotle"},
	{"irrational_animal", "equine"},
	{"irrational_animal", "canine"},
	{"irrational_animal", "bird"},
	{"bird", "chicken"},
}

// Porphyrian populates a with the classic sample taxonomy. Edge order is
// fixed, so node ids are reproducible. The only possible error is a
// propagated arbor.ErrCapacityExceeded (the sample needs 18 nodes).
func Porphyrian(a *arbor.Arbor) error {
	for _, e := range porphyrianEdges {
		if err := a.Connect(e[0], e[1]); err != nil {
			return fmt.Errorf("Porphyrian: %w", err)
		}
	}

	return nil
}

// PorphyrianOrder returns the number of distinct labels the sample uses.
func PorphyrianOrder() int { return 18 }

// Synthetic populates a with an N-level tree of branching factor B.
// Level 1 is the single root "L1_0"; each node of level k spawns B
// children at level k+1, labeled "L<level>_<ordinal>" with ordinals
// counted left to right within the level.
//
// Returns ErrBadShape for levels < 1 or branching < 1; capacity errors
// from the target graph propagate wrapped.
//
// Complexity: O(B^levels) nodes and edges.
func Synthetic(a *arbor.Arbor, levels, branching int) error {
	if levels < 1 || branching < 1 {
		return fmt.Errorf("Synthetic: levels=%d branching=%d: %w", levels, branching, ErrBadShape)
	}

	root := "L1_0"
	if _, err := a.EnsureNode(root); err != nil {
		return fmt.Errorf("Synthetic: %w", err)
	}

	prev := []string{root}
	for lvl := 2; lvl <= levels; lvl++ {
		cur := make([]string, 0, len(prev)*branching)
		for _, p := range prev {
			for b := 0; b < branching; b++ {
				name := fmt.Sprintf("L%d_%d", lvl, len(cur))
				if err := a.Connect(p, name); err != nil {
					return fmt.Errorf("Synthetic: %w", err)
				}
				cur = append(cur, name)
			}
		}
		prev = cur
	}

	return nil
}
