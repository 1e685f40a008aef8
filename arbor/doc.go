// Package arbor provides a labeled undirected graph whose node
// identifiers are allocated densely from, and indexed by, a Van Emde
// Boas integer-set index (vebindex), with unit-weight shortest-path
// queries between labels.
//
// What:
//
//   - Arbor binds string labels to dense integer node ids, starting at 0.
//     A label is allocated exactly once, the first time it is referenced;
//     EnsureNode is idempotent.
//   - Every allocated id is inserted into the owned vebindex.Index, whose
//     universe size is the Arbor's fixed capacity.
//   - Connect appends an undirected edge between two labels, allocating
//     endpoints as needed. Parallel edges and self-loops are permitted
//     and recorded as-is (no dedup).
//   - ShortestPath runs Dijkstra with unit edge weights (lazy
//     decrease-key heap, early exit on the target) and reconstructs the
//     id path via parent links.
//   - ClusterView groups the stored ids by their top-level VEB cluster
//     and pairs each with its label — a diagnostic window into the index.
//
// Why:
//
//   - Taxonomies and ontologies want cheap label↔id bookkeeping plus
//     "how many steps from X to Y" queries; the VEB index keeps the id
//     space enumerable in order without sorting.
//
// Concurrency:
//
//	A single RWMutex guards the whole Arbor: mutations take the write
//	lock, queries and views the read lock. The owned index is never
//	handed out raw; it is mutated and read only under that lock, through
//	EnsureNode and the IndexContains/IndexMin/IndexMax/IndexKeys views.
//
// Errors:
//
//   - ErrCapacityExceeded: allocating one more label would reach the
//     configured capacity. Recoverable — rebuild with a larger capacity.
//   - Unknown labels never error: ShortestPath returns an empty path,
//     IDOf reports ok=false. Callers cannot distinguish "no path" from
//     "unknown label" by the path result alone; that is deliberate.
package arbor
