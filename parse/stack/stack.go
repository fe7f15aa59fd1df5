// Package stack implements the graph-structured stack used by a
// generalized LR parser to explore concurrent interpretations of the
// same input. The stack is a DAG of parser states whose edges carry
// lexical trees. Versions are stable cursors naming its heads; pushes
// grow one version, pops walk every path backward at once, and merge
// collapses versions whose heads became indistinguishable.
package stack

import (
	"fmt"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
)

// Version names one head of the stack. Versions are dense indices
// starting at 0; removing a version renumbers the ones above it, so a
// Version is only valid until the next mutation of the table.
type Version int

// Stack is a graph-structured parse stack. It is not safe for
// concurrent use; a parse driver owns its stack exclusively.
type Stack struct {
	root     *stackNode
	versions []*stackNode
}

// New creates a stack whose version 0 points at the root sentinel.
func New() *Stack {
	s := &Stack{root: newStackNode(parse.RootState, parse.LengthZero())}
	s.root.retain()
	s.root.retain()
	s.versions = []*stackNode{s.root}
	return s
}

// Delete releases every node and tree still owned by the stack.
func (s *Stack) Delete() {
	for _, head := range s.versions {
		head.release()
	}
	s.versions = nil
	s.root.release()
	s.root = nil
}

// VersionCount returns the number of live versions.
func (s *Stack) VersionCount() int {
	return len(s.versions)
}

// TopState returns the parser state at the head of v.
func (s *Stack) TopState(v Version) parse.StateID {
	return s.head(v).state
}

// TopPosition returns the position at the head of v: the sum of the
// sizes of every tree below it.
func (s *Stack) TopPosition(v Version) parse.Length {
	return s.head(v).position
}

// Push grows version v by one node in the given state, linked to the
// previous head through tree. A pending push can be undone later by
// PopPending.
func (s *Stack) Push(v Version, tree *parse.Tree, pending bool, state parse.StateID) {
	cur := s.head(v)
	node := newStackNode(state, cur.position.Add(tree.Size))
	node.addLink(stackLink{node: cur, tree: tree, pending: pending})
	node.retain()
	s.versions[v] = node
	cur.release()
}

// RemoveVersion deletes v and renumbers the versions above it down
// by one.
func (s *Stack) RemoveVersion(v Version) {
	s.head(v).release()
	s.versions = append(s.versions[:v], s.versions[v+1:]...)
}

// Merge collapses every pair of versions whose heads share the same
// state and position, splicing the links of the later head into the
// earlier one. Shared suffixes below the merged heads collapse too.
func (s *Stack) Merge() {
	for i := 0; i < len(s.versions); i++ {
		for j := i + 1; j < len(s.versions); j++ {
			a, b := s.versions[i], s.versions[j]
			if a.state != b.state || a.position != b.position {
				continue
			}
			if a != b {
				for _, link := range b.links {
					a.addLink(link)
				}
			}
			s.RemoveVersion(Version(j))
			j--
		}
	}
}

// addVersion appends a new version pointing at node.
func (s *Stack) addVersion(node *stackNode) Version {
	node.retain()
	s.versions = append(s.versions, node)
	return Version(len(s.versions) - 1)
}

// renumberVersion moves the head of version from into the slot of
// version to, then deletes from. Used by PopPending so the popped
// head lands back on the version it was popped from.
func (s *Stack) renumberVersion(from, to Version) {
	s.versions[to].release()
	s.versions[to] = s.versions[from]
	s.versions = append(s.versions[:from], s.versions[from+1:]...)
}

func (s *Stack) head(v Version) *stackNode {
	if v < 0 || int(v) >= len(s.versions) {
		panic(fmt.Sprintf("stack: no version %d", v))
	}
	return s.versions[v]
}
