// SPDX-License-Identifier: MIT
// Package: porphyry/taxonomy
//
// errors.go — sentinel errors for the taxonomy package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by editing
//     the sentinel text.
//   - Capacity errors from the target arbor.Arbor are propagated as-is.

package taxonomy

import "errors"

// ErrBadShape indicates Synthetic was called with a non-positive level
// count or branching factor.
// Usage: if errors.Is(err, taxonomy.ErrBadShape) { /* fix the shape */ }.
var ErrBadShape = errors.New("taxonomy: levels and branching must be at least 1")

// ErrEmptyDocument indicates a loaded document contains no taxa.
// Usage: if errors.Is(err, taxonomy.ErrEmptyDocument) { /* reject input */ }.
var ErrEmptyDocument = errors.New("taxonomy: document has no taxa")

// ErrDecode indicates the document bytes could not be decoded as YAML.
// The wrapped error carries the decoder's detail.
var ErrDecode = errors.New("taxonomy: document decode failed")
