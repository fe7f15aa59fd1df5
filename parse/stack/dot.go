package stack

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
)

// RenderDotGraph renders the whole stack DAG in Graphviz format.
// Every live node appears once, labeled with its state and byte
// position; edges are labeled with the symbol and size of the tree
// they carry. Pending edges are dashed, extra trees are marked.
func (s *Stack) RenderDotGraph() string {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "RL")

	nodes := make(map[*stackNode]dot.Node)

	var visit func(n *stackNode) dot.Node
	visit = func(n *stackNode) dot.Node {
		if g, ok := nodes[n]; ok {
			return g
		}
		label := fmt.Sprintf("state: %d\nbytes: %d", n.state, n.position.Bytes)
		if n.state == parse.RootState && len(n.links) == 0 {
			label = "root"
		} else if n.state == parse.ErrorState {
			label = fmt.Sprintf("error\nbytes: %d", n.position.Bytes)
		}
		g := graph.Node(fmt.Sprintf("node_%d", len(nodes))).Label(label)
		nodes[n] = g
		for _, link := range n.links {
			edge := g.Edge(visit(link.node), edgeLabel(link.tree))
			if link.pending {
				edge.Attr("style", "dashed")
			}
		}
		return g
	}

	for v, head := range s.versions {
		versionNode := graph.Node(fmt.Sprintf("version_%d", v)).
			Label(fmt.Sprintf("version %d", v)).
			Attr("shape", "box")
		versionNode.Edge(visit(head))
	}

	return graph.String()
}

// WriteDotGraph writes the Graphviz rendering of the stack to w.
func (s *Stack) WriteDotGraph(w io.Writer) error {
	_, err := io.WriteString(w, s.RenderDotGraph())
	return err
}

func edgeLabel(tree *parse.Tree) string {
	label := fmt.Sprintf("sym %d (%d bytes)", tree.Symbol, tree.Size.Bytes)
	if tree.Extra {
		label += " extra"
	}
	return label
}
