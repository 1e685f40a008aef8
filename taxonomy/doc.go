// SPDX-License-Identifier: MIT
// Package: porphyry/taxonomy
//
// Package taxonomy populates an arbor.Arbor with deterministic
// Porphyrian-style taxonomies.
//
// What:
//
//   - Porphyrian(a): the classic sample ladder — substance through body,
//     living, animal, down to individuals (Plato, Socrates, Aristotle)
//     and the contrasting irrational branch (equine, canine, bird,
//     chicken). Fixed edge set, fixed order, hence fixed node ids.
//   - Synthetic(a, levels, branching): an N-level tree with branching
//     factor B and labels "L<level>_<ordinal>", for capacity and
//     performance exercises.
//   - Document: a YAML taxonomy (ordered "taxa" list of label+children)
//     loaded via Load/LoadFile and applied to a graph in document order.
//
// Determinism:
//
//	Builders and documents insert edges in a stable order, so node ids —
//	and therefore VEB cluster placement and DOT output — are reproducible
//	run to run.
//
// Errors:
//
//   - ErrBadShape: Synthetic called with levels < 1 or branching < 1.
//   - ErrEmptyDocument: a YAML document with no taxa.
//   - Decode failures are wrapped with "%w"; capacity errors from the
//     target graph propagate unchanged (branch with errors.Is against
//     arbor.ErrCapacityExceeded).
package taxonomy
