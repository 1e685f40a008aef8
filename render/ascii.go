package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arborlab/porphyry/arbor"
)

// ErrRootNotFound indicates the requested tree root label is not bound
// in the graph.
var ErrRootNotFound = errors.New("render: root label not found")

// ASCIITree writes the tree reachable from root to w, one node per
// line, with ASCII-only connectors. Children are visited in adjacency
// (insertion) order; the edge back to the parent is suppressed, and no
// node is printed twice.
func ASCIITree(w io.Writer, a *arbor.Arbor, root string) error {
	id, ok := a.IDOf(root)
	if !ok {
		return fmt.Errorf("ASCIITree(%q): %w", root, ErrRootNotFound)
	}
	p := &asciiPrinter{w: w, a: a, visited: make(map[int]bool)}
	p.visited[id] = true

	return p.walk(id, "", "")
}

// asciiPrinter carries traversal state for one ASCIITree call.
type asciiPrinter struct {
	w       io.Writer
	a       *arbor.Arbor
	visited map[int]bool
}

// walk prints u with linePrefix, then recurses into its unvisited
// neighbors with childPrefix extended per branch position.
func (p *asciiPrinter) walk(u int, linePrefix, childPrefix string) error {
	label, _ := p.a.LabelOf(u)
	if _, err := fmt.Fprintf(p.w, "%s%s\n", linePrefix, label); err != nil {
		return err
	}

	var kids []int
	for _, v := range p.a.Neighbors(u) {
		if !p.visited[v] {
			p.visited[v] = true
			kids = append(kids, v)
		}
	}

	for i, c := range kids {
		line, next := childPrefix+"+-", childPrefix+"| "
		if i+1 == len(kids) {
			next = childPrefix + "  "
		}
		if err := p.walk(c, line, next); err != nil {
			return err
		}
	}

	return nil
}

// PathString joins the labels of a path id sequence with " -> ".
// Unbound ids render as "#<id>"; an empty path yields the empty string.
func PathString(a *arbor.Arbor, ids []int) string {
	if len(ids) == 0 {
		return ""
	}

	return strings.Join(a.Labels(ids), " -> ")
}
