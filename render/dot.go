package render

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arborlab/porphyry/arbor"
)

// dotNode is a gonum node carrying the taxonomy label as a DOT attribute.
type dotNode struct {
	id    int64
	label string
}

// ID implements graph.Node.
func (n dotNode) ID() int64 { return n.id }

// DOTID names the node n<id> in the emitted text.
func (n dotNode) DOTID() string { return fmt.Sprintf("n%d", n.id) }

// Attributes implements encoding.Attributer for per-node label output.
func (n dotNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: n.label}}
}

// attrs is a fixed attribute list satisfying encoding.Attributer.
type attrs []encoding.Attribute

// Attributes implements encoding.Attributer.
func (a attrs) Attributes() []encoding.Attribute { return a }

// dotGraph decorates the assembled gonum graph with top-level DOT
// attributes: top-to-bottom ranking and rounded box nodes.
type dotGraph struct {
	*simple.UndirectedGraph
}

// DOTAttributers implements dot.Attributers.
func (dotGraph) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return attrs{{Key: "rankdir", Value: "TB"}},
		attrs{{Key: "shape", Value: "box"}, {Key: "style", Value: "rounded"}},
		attrs{}
}

// DOT renders the graph as Graphviz DOT text under the given graph
// name. Every node appears as n<id> with its label attribute; every
// undirected edge is emitted once (u < v), which also drops self-loops
// and collapses parallel edges, matching how taxonomy diagrams are read.
func DOT(a *arbor.Arbor, name string) ([]byte, error) {
	g := simple.NewUndirectedGraph()

	n := a.Order()
	nodes := make([]dotNode, n)
	for id := 0; id < n; id++ {
		label, _ := a.LabelOf(id)
		nodes[id] = dotNode{id: int64(id), label: label}
		g.AddNode(nodes[id])
	}
	for u := 0; u < n; u++ {
		for _, v := range a.Neighbors(u) {
			if u < v {
				g.SetEdge(simple.Edge{F: nodes[u], T: nodes[v]})
			}
		}
	}

	return dot.Marshal(dotGraph{g}, name, "", "  ")
}
