// Package render turns an arbor.Arbor into human-readable diagrams:
// an ASCII tree for terminals and Graphviz DOT text for clean renders.
//
// What:
//
//   - ASCIITree writes an indented tree rooted at a chosen label, using
//     ASCII-only connectors ("+-", "| ") for portability. Traversal
//     follows adjacency away from the parent; already-visited nodes are
//     not re-entered, so cyclic graphs still terminate.
//   - DOT produces Graphviz text via gonum's graph/encoding/dot: every
//     node is declared as n<id> with its label attribute, every
//     undirected edge is emitted once (u < v), self-loops are omitted.
//     Render with: dot -Tpng out.dot -o out.png.
//   - PathString joins a shortest-path id sequence into the familiar
//     "Plato -> man -> ... -> chicken" form.
//
// The package only consumes the graph's read-only views; it never
// mutates the Arbor.
//
// Errors:
//
//   - ErrRootNotFound: the requested ASCII tree root label is unbound.
package render
