package prefixtrie

// Rough per-allocation costs used for the footprint estimate: a node struct
// plus its map header, and one map entry (key, pointer and bucket slack).
// A structural estimate, not allocator accounting.
const (
	perNodeOverhead = 48
	perEdgeOverhead = 16
)

// Stats summarizes the structure of the trie.
type Stats struct {
	Strings      int     // completed sequences stored
	Nodes        int     // total nodes including root and sentinel markers
	MaxDepth     int     // deepest completed sequence, in symbols
	AvgDepth     float64 // mean depth of completed sequences
	AvgBranching float64 // mean child count over branching non-sentinel nodes
	MemoryBytes  int     // estimated footprint
}

// Stats computes structural statistics in a single depth-first traversal.
func (t *Trie[S]) Stats() Stats {
	var end S
	stats := Stats{Nodes: 1} // count the root

	totalDepth := 0
	branchingNodes := 0
	totalChildren := 0

	stack := []frame[S]{}
	for _, child := range t.root.Children() {
		stack = append(stack, frame[S]{depth: 1, node: child})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stats.Nodes++

		if top.node.Key() == end {
			// The sentinel hangs one level below the last real symbol.
			depth := top.depth - 1
			stats.Strings++
			totalDepth += depth
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
			continue
		}

		if !top.node.IsLeaf() {
			branchingNodes++
			totalChildren += top.node.Len()
			for _, child := range top.node.Children() {
				stack = append(stack, frame[S]{depth: top.depth + 1, node: child})
			}
		}
	}

	if stats.Strings > 0 {
		stats.AvgDepth = float64(totalDepth) / float64(stats.Strings)
	}
	if branchingNodes > 0 {
		stats.AvgBranching = float64(totalChildren) / float64(branchingNodes)
	}

	edges := stats.Nodes - 1 // every non-root node has exactly one incoming edge
	stats.MemoryBytes = stats.Nodes*perNodeOverhead + edges*perEdgeOverhead
	return stats
}
