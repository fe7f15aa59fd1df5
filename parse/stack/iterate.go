package stack

import "github.com/Michael-F-Bryan/tree-sitter/parse"

type stackAction int

const (
	actionNone stackAction = 0
	actionPop  stackAction = 1 << 0
	actionStop stackAction = 1 << 1
)

// iterator is one frontier entry of a backward walk: a path from the
// starting head to node, with the trees collected along the way held
// most-recently-traversed first. treeCount ignores extra trees.
type iterator struct {
	node         *stackNode
	trees        []*parse.Tree
	treeCount    int
	isPending    bool
	enteredError bool
}

func (it *iterator) clone() iterator {
	dup := *it
	dup.trees = append([]*parse.Tree(nil), it.trees...)
	return dup
}

// advance steps the iterator backward across one link, collecting the
// link's tree. Crossing from a non-error node into an error node sets
// enteredError for the duration of the next visit.
func (it *iterator) advance(link stackLink) {
	prev := it.node
	it.node = link.node
	it.trees = append(it.trees, link.tree)
	if !link.tree.Extra {
		it.treeCount++
	}
	it.isPending = link.pending
	it.enteredError = link.node.state == parse.ErrorState && prev.state != parse.ErrorState
}

// iterate advances every path from the head of v backward in
// lockstep, one link per round, visiting each frontier entry through
// callback. Nodes with several links fork the walk, preserving link
// order. Returning actionPop harvests the entry's path as a slice;
// actionStop abandons the entry. Entries that reach the root stop by
// themselves. Paths converging on the same endpoint share one newly
// allocated version.
func (s *Stack) iterate(v Version, callback func(*iterator) stackAction) []Slice {
	iterators := []iterator{{node: s.head(v)}}

	var slices []Slice
	versionFor := make(map[*stackNode]Version)

	for len(iterators) > 0 {
		for i, size := 0, len(iterators); i < size; i++ {
			node := iterators[i].node
			action := callback(&iterators[i])

			if action&actionPop != 0 {
				version, seen := versionFor[node]
				if !seen {
					version = s.addVersion(node)
					versionFor[node] = version
				}
				slices = append(slices, Slice{
					Version: version,
					Trees:   harvestTrees(iterators[i].trees),
				})
			}

			if action&actionStop != 0 || len(node.links) == 0 {
				iterators = append(iterators[:i], iterators[i+1:]...)
				i--
				size--
				continue
			}

			for j := 1; j < len(node.links); j++ {
				fork := iterators[i].clone()
				fork.advance(node.links[j])
				iterators = append(iterators, fork)
			}
			iterators[i].advance(node.links[0])
		}
	}

	return slices
}

// harvestTrees turns a most-recent-first path into a root-to-tip
// slice payload, retaining each tree for the caller.
func harvestTrees(trees []*parse.Tree) []*parse.Tree {
	result := make([]*parse.Tree, len(trees))
	for i, tree := range trees {
		result[len(trees)-1-i] = tree
		tree.Retain()
	}
	return result
}

// IterateAction controls an Iterate walk.
type IterateAction int

const (
	// IterateNone keeps walking past the visited entry.
	IterateNone IterateAction = iota
	// IteratePop harvests the path to the visited entry as a slice
	// and stops walking it.
	IteratePop
	// IterateStop abandons the path without harvesting it.
	IterateStop
)

// IterateCallback visits one frontier entry: the state at the entry's
// node, the trees collected so far (most recent first; valid only for
// the duration of the call), the number of non-extra trees among
// them, whether the entry reached the root, and whether the entry's
// last traversed link was pending.
type IterateCallback func(state parse.StateID, trees []*parse.Tree, treeCount int, isDone, isPending bool) IterateAction

// Iterate walks every path from the head of v toward the root,
// breadth-first in link order, and reports each visited entry to
// callback. Paths the callback popped are returned as slices, with
// versions allocated per distinct endpoint; the trees in those slices
// are retained for the caller.
func (s *Stack) Iterate(v Version, callback IterateCallback) PopResult {
	slices := s.iterate(v, func(it *iterator) stackAction {
		done := len(it.node.links) == 0
		switch callback(it.node.state, it.trees, it.treeCount, done, it.isPending) {
		case IteratePop:
			return actionPop | actionStop
		case IterateStop:
			return actionStop
		default:
			return actionNone
		}
	})
	return PopResult{Status: PopSucceeded, Slices: slices}
}
