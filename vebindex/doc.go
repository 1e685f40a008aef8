// Package vebindex implements a recursive Van Emde Boas (VEB) integer-set
// index over a fixed universe [0, U), supporting fast insert, membership
// tests, and ordered enumeration of all stored keys.
//
// What:
//
//   - Index is a static-universe set: the universe size is fixed at
//     construction and never changes.
//   - Insert and Contains run in O(log log U) by recursively splitting the
//     key space into r = ceil(sqrt(U)) clusters of size r, plus a summary
//     index of size r tracking which clusters are non-empty.
//   - The current minimum and maximum are cached at every level, so Min
//     and Max are O(1); the classic min-swap keeps the minimum out of the
//     recursive structure entirely.
//   - Enumerate materializes every stored key in ascending order.
//   - ClusterCount and ClusterOf expose the top-level cluster routing for
//     diagnostic views (see arbor.ClusterView).
//
// Why:
//
//   - Dense integer identifiers (graph node ids, slot numbers, tickets)
//     want a set structure faster than balanced trees and cheaper than a
//     full bitmap scan for ordered walks.
//
// Splitting scheme:
//
//	A single rounding parameter r = ceil(sqrt(U)) is used for both the
//	cluster count and the cluster size (rather than the textbook
//	floor/ceil asymmetric split). Since r*r ≥ U, every key x in [0, U)
//	routes to cluster x/r < r, so the scheme is internally consistent;
//	high/low and Enumerate all derive from the same r.
//
// Complexity (U = universe size):
//
//   - Insert, Contains: O(log log U) time.
//   - Min, Max, IsEmpty: O(1).
//   - Enumerate: O(k · log log U) for k stored keys.
//   - Memory: O(U) across the eagerly allocated recursive structure.
//
// Contract:
//
//   - Keys must lie in [0, Universe()). Out-of-range keys are out of
//     contract: Contains answers false where it safely can, Insert does
//     not bounds-check. Deletion is not supported.
//   - An Index is not safe for concurrent mutation; callers own the
//     synchronization boundary (arbor locks around its Index).
//
// Errors:
//
//   - ErrBadUniverse: requested universe size is below 1.
package vebindex
