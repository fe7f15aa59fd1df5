package stack

import "github.com/Michael-F-Bryan/tree-sitter/parse"

// Stats summarizes the live shape of the stack DAG.
type Stats struct {
	Versions    int
	Nodes       int
	Links       int
	Trees       int          // distinct trees held by links
	TotalBytes  int          // bytes covered by all link trees
	MaxPosition parse.Length // furthest head position
}

// CollectStats walks the whole DAG once and summarizes it.
func (s *Stack) CollectStats() Stats {
	stats := Stats{Versions: len(s.versions)}

	seenNodes := make(map[*stackNode]bool)
	seenTrees := make(map[*parse.Tree]bool)

	var visit func(n *stackNode)
	visit = func(n *stackNode) {
		if seenNodes[n] {
			return
		}
		seenNodes[n] = true
		stats.Nodes++
		for _, link := range n.links {
			stats.Links++
			if !seenTrees[link.tree] {
				seenTrees[link.tree] = true
				stats.Trees++
				stats.TotalBytes += link.tree.Size.Bytes
			}
			visit(link.node)
		}
	}

	for _, head := range s.versions {
		visit(head)
		if head.position.Bytes > stats.MaxPosition.Bytes {
			stats.MaxPosition = head.position
		}
	}
	return stats
}
