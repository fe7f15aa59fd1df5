package stack

import (
	"github.com/Michael-F-Bryan/tree-sitter/parse"
)

// stackLink connects a node to one of its predecessors. The link owns
// one reference to its tree and one to the predecessor node.
type stackLink struct {
	node    *stackNode
	tree    *parse.Tree
	pending bool
}

// stackNode is one head or interior entry of the stack DAG. Links
// point backward, toward the root. refCount is the number of links
// from newer nodes plus the number of version-table slots holding
// this node.
type stackNode struct {
	state    parse.StateID
	position parse.Length
	links    []stackLink
	refCount int
}

func newStackNode(state parse.StateID, position parse.Length) *stackNode {
	n := &stackNode{state: state, position: position}
	parse.RecordAlloc(n)
	return n
}

func (n *stackNode) retain() {
	if n.refCount < 0 {
		panic("stack: retain of released node")
	}
	n.refCount++
}

func (n *stackNode) release() {
	if n.refCount <= 0 {
		panic("stack: release of released node")
	}
	n.refCount--
	if n.refCount == 0 {
		for _, l := range n.links {
			l.tree.Release()
			l.node.release()
		}
		n.links = nil
		parse.RecordFree(n)
	}
}

// addLink splices a predecessor link into n. An identical link
// (same target, tree, and pending flag) is dropped. A link whose
// target duplicates an existing target's (state, position) under the
// same tree is not added either; instead the duplicate target's own
// links are folded into the existing target, collapsing the shared
// suffix one level at a time.
func (n *stackNode) addLink(link stackLink) {
	for _, existing := range n.links {
		if existing.tree != link.tree || existing.pending != link.pending {
			continue
		}
		if existing.node == link.node {
			return
		}
		if existing.node.state == link.node.state &&
			existing.node.position == link.node.position {
			for _, deeper := range link.node.links {
				existing.node.addLink(deeper)
			}
			return
		}
	}
	link.node.retain()
	link.tree.Retain()
	n.links = append(n.links, link)
}
