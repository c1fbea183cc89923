package prefixtrie

import (
	"github.com/khalid-nowaf/prefixtrie/pkg/trie"
)

// Trie is the engine over a graph of trie nodes. It stores sequences of
// symbols; the zero symbol is reserved as the completion sentinel, so stored
// sequences must not contain it.
type Trie[S trie.Symbol] struct {
	root *trie.Node[S]
}

// New creates an empty trie for the given symbol width.
func New[S trie.Symbol]() *Trie[S] {
	var end S
	return &Trie[S]{root: trie.NewNode(end)}
}

// nodeAt walks the symbol path and returns the node at its end, or nil if
// any edge along the way is missing. An empty path yields the root.
func (t *Trie[S]) nodeAt(path []S) *trie.Node[S] {
	runner := t.root
	for _, sym := range path {
		runner = runner.Child(sym)
		if runner == nil {
			return nil
		}
	}
	return runner
}

// Insert adds the sequence to the trie. This method is idempotent, and the
// empty sequence is a no-op: the empty string is trivially contained but
// never separately stored.
func (t *Trie[S]) Insert(seq []S) {
	if len(seq) == 0 {
		return
	}
	runner := t.root
	for _, sym := range seq {
		runner = runner.Attach(sym)
	}
	var end S
	runner.Attach(end)
}

// Contains reports whether the symbol path exists in the trie. Note this is
// a prefix-position check: it returns true for any prefix of a stored
// sequence, completed or not, and always true for the empty sequence. Use
// ContainsWord to test completed membership.
func (t *Trie[S]) Contains(seq []S) bool {
	return t.nodeAt(seq) != nil
}

// ContainsWord reports whether the sequence was inserted as a complete
// entry, i.e. the full path exists and carries the completion marker.
func (t *Trie[S]) ContainsWord(seq []S) bool {
	if len(seq) == 0 {
		return false
	}
	node := t.nodeAt(seq)
	if node == nil {
		return false
	}
	var end S
	return node.HasChild(end)
}

// Remove deletes a completed sequence from the trie. Removing the empty
// sequence, an absent sequence, or a path that was never completed is a
// no-op. Ancestor nodes left childless by the removal are pruned bottom-up;
// pruning stops at the first node that still has children, so sequences
// sharing a prefix with the removed one are untouched. The root is never
// pruned.
func (t *Trie[S]) Remove(seq []S) {
	if len(seq) == 0 {
		return
	}

	// Record the downward path instead of keeping parent pointers, so the
	// node graph stays a strict ownership tree.
	type step struct {
		parent *trie.Node[S]
		sym    S
	}
	path := make([]step, 0, len(seq))
	runner := t.root
	for _, sym := range seq {
		next := runner.Child(sym)
		if next == nil {
			return
		}
		path = append(path, step{parent: runner, sym: sym})
		runner = next
	}

	var end S
	if !runner.HasChild(end) {
		// The path exists only as a prefix of longer sequences.
		return
	}
	runner.Detach(end)

	// Replay the path in reverse, pruning nodes that became childless.
	for i := len(path) - 1; i >= 0; i-- {
		child := path[i].parent.Child(path[i].sym)
		if !child.IsLeaf() {
			break
		}
		path[i].parent.Detach(path[i].sym)
	}
}

// Clear discards the whole node graph and reinitializes an empty root.
func (t *Trie[S]) Clear() {
	var end S
	t.root = trie.NewNode(end)
}

// Size returns the number of completed sequences stored in the trie.
func (t *Trie[S]) Size() int {
	return t.Count(nil)
}

// Count returns the number of completed sequences whose path starts with the
// given prefix, or 0 if the prefix path does not exist. The empty prefix
// counts everything.
func (t *Trie[S]) Count(prefix []S) int {
	start := t.nodeAt(prefix)
	if start == nil {
		return 0
	}

	var end S
	count := 0
	stack := make([]*trie.Node[S], 0, start.Len())
	for _, child := range start.Children() {
		stack = append(stack, child)
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Key() == end {
			count++
			continue
		}
		for _, child := range node.Children() {
			stack = append(stack, child)
		}
	}
	return count
}
