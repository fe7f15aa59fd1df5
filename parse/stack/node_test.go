package stack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
)

func TestAddLinkSuppressesDuplicateLinks(t *testing.T) {
	f := newFixture(t)

	a := newStackNode(stateA, treeLen)
	a.retain()
	b := newStackNode(stateB, treeLen.Mul(2))
	b.retain()

	b.addLink(stackLink{node: a, tree: f.trees[0]})
	b.addLink(stackLink{node: a, tree: f.trees[0]})
	require.Len(t, b.links, 1)

	// same target and tree but different pending flag is a new link
	b.addLink(stackLink{node: a, tree: f.trees[0], pending: true})
	require.Len(t, b.links, 2)

	b.release()
	a.release()
}

func TestAddLinkCollapsesEquivalentTargets(t *testing.T) {
	f := newFixture(t)

	left := newStackNode(stateB, treeLen)
	left.retain()
	right := newStackNode(stateC, treeLen)
	right.retain()

	first := newStackNode(stateD, treeLen.Mul(2))
	first.retain()
	first.addLink(stackLink{node: left, tree: f.trees[0]})

	second := newStackNode(stateD, treeLen.Mul(2))
	second.retain()
	second.addLink(stackLink{node: right, tree: f.trees[1]})

	top := newStackNode(stateE, treeLen.Mul(3))
	top.retain()
	top.addLink(stackLink{node: first, tree: f.trees[2]})

	// second duplicates first's (state, position) under the same
	// tree, so its links fold into first instead of a new link.
	top.addLink(stackLink{node: second, tree: f.trees[2]})
	require.Len(t, top.links, 1)
	require.Len(t, first.links, 2)
	require.Same(t, left, first.links[0].node)
	require.Same(t, right, first.links[1].node)

	top.release()
	second.release()
	first.release()
	right.release()
	left.release()
}

func TestPositionsAreConsistentAlongEveryPath(t *testing.T) {
	f := mergedPopFixture(t)
	s := f.stack

	seen := make(map[*stackNode]bool)
	var visit func(n *stackNode)
	visit = func(n *stackNode) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, link := range n.links {
			require.Equal(t, n.position, link.node.position.Add(link.tree.Size))
			visit(link.node)
		}
	}
	for _, head := range s.versions {
		visit(head)
	}
}

func TestPopThenRepushRestoresStack(t *testing.T) {
	f := popFixture(t)
	s := f.stack
	before := stackEntries(s, 0)

	pop := s.PopCount(0, 2)
	require.Len(t, pop.Slices, 1)
	slice := pop.Slices[0]

	states := []parse.StateID{stateB, stateC}
	for i, tree := range slice.Trees {
		s.Push(slice.Version, tree, false, states[i])
	}
	require.Equal(t, before, stackEntries(s, slice.Version))

	pop.Release()
}
