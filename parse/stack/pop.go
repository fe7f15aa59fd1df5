package stack

import "github.com/Michael-F-Bryan/tree-sitter/parse"

// PopStatus reports how a pop traversal ended.
type PopStatus int

const (
	// PopSucceeded means every harvested path reached the requested
	// number of non-extra trees.
	PopSucceeded PopStatus = iota
	// PopStoppedAtError means at least one path crossed into an
	// error-state node and was truncated there. The returned slices
	// are still valid.
	PopStoppedAtError
	// PopFailed means no path could produce a slice; the stack was
	// left untouched.
	PopFailed
)

// Slice is one popped path: the version now pointing at the path's
// endpoint and the trees collected along the way, in root-to-tip
// order. The caller owns one reference to each tree.
type Slice struct {
	Version Version
	Trees   []*parse.Tree
}

// PopResult is the outcome of PopCount, PopPending, or Iterate.
type PopResult struct {
	Status PopStatus
	Slices []Slice
}

// Release drops the tree references owned by the result's slices.
// Slices that share their tree array with an earlier slice are
// skipped, so every reference is released exactly once.
func (r *PopResult) Release() {
	for i, slice := range r.Slices {
		if sharesTrees(r.Slices[:i], slice) {
			continue
		}
		for _, tree := range slice.Trees {
			tree.Release()
		}
	}
	r.Slices = nil
}

func sharesTrees(prior []Slice, slice Slice) bool {
	if len(slice.Trees) == 0 {
		return false
	}
	for _, p := range prior {
		if len(p.Trees) > 0 && &p.Trees[0] == &slice.Trees[0] {
			return true
		}
	}
	return false
}

// PopCount walks backward from the head of v until each path has
// collected count non-extra trees, and returns one slice per path.
// Extra trees along the way are collected without being counted.
// Distinct endpoints get fresh versions appended to the table; paths
// that converge on one endpoint share its version. The source version
// itself is left untouched. A path that crosses into an error-state
// node is truncated at the error node and the whole result is marked
// PopStoppedAtError. If no path can supply count trees the result is
// PopFailed and nothing is mutated.
func (s *Stack) PopCount(v Version, count int) PopResult {
	if count < 0 {
		panic("stack: negative pop count")
	}
	status := PopSucceeded
	slices := s.iterate(v, func(it *iterator) stackAction {
		if it.treeCount == count {
			return actionPop | actionStop
		}
		if it.enteredError {
			status = PopStoppedAtError
			return actionPop | actionStop
		}
		return actionNone
	})
	if len(slices) == 0 {
		status = PopFailed
	}
	return PopResult{Status: status, Slices: slices}
}

// PopPending undoes the head of v if it was pushed in pending mode:
// it pops like PopCount(v, 1), so one non-extra tree plus any extra
// trees above it, and moves v back onto the first revealed node. If the
// head's producing link was not pending, the stack is unchanged and
// the result carries no slices. If the link was pending but the pop
// cannot produce a slice (the remaining trees are all extra), the
// result is PopFailed and the stack is unchanged, as with PopCount.
func (s *Stack) PopPending(v Version) PopResult {
	head := s.head(v)
	if len(head.links) == 0 || !head.links[0].pending {
		return PopResult{Status: PopSucceeded}
	}

	result := s.PopCount(v, 1)
	if len(result.Slices) == 0 {
		return result
	}

	from := result.Slices[0].Version
	s.renumberVersion(from, v)
	for i := range result.Slices {
		switch {
		case result.Slices[i].Version == from:
			result.Slices[i].Version = v
		case result.Slices[i].Version > from:
			result.Slices[i].Version--
		}
	}
	return result
}
