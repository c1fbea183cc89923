package prefixtrie

import (
	"github.com/khalid-nowaf/prefixtrie/pkg/trie"
)

// frame is one pending entry of the iterative depth-first traversal: the
// node to expand and the depth it was pushed at.
type frame[S trie.Symbol] struct {
	depth int
	node  *trie.Node[S]
}

// Match returns every completed sequence whose path starts with the given
// prefix, in ascending symbol order. The empty prefix matches everything.
// Each call recomputes from the current graph, and the returned sequences
// are copies.
func (t *Trie[S]) Match(prefix []S) [][]S {
	matches := [][]S{}
	t.MatchWithCallback(prefix, func(seq []S) {
		matches = append(matches, seq)
	})
	return matches
}

// MatchWithCallback passes each completed sequence matching the prefix to
// the visit callback.
//
// The traversal is an iterative depth-first walk over an explicit stack.
// Every stack entry records the depth it was pushed at, and a single shared
// postfix buffer accumulates the symbols below the prefix; on popping an
// entry shallower than the buffer, trailing symbols are discarded to
// resynchronize. This bounds memory to the longest stored sequence instead
// of one partial-path copy per pending branch.
func (t *Trie[S]) MatchWithCallback(prefix []S, visit func(seq []S)) {
	start := t.nodeAt(prefix)
	if start == nil {
		return
	}

	var end S
	stack := []frame[S]{}
	// Push children in descending symbol order so they pop in ascending
	// order. The sentinel is the smallest symbol, so a completed sequence is
	// always emitted before its extensions.
	push := func(node *trie.Node[S], depth int) {
		keys := node.SortedKeys()
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame[S]{depth: depth, node: node.Child(keys[i])})
		}
	}

	push(start, len(prefix))
	postfix := []S{}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Discard postfix symbols from deeper branches already walked.
		for len(prefix)+len(postfix) > top.depth {
			postfix = postfix[:len(postfix)-1]
		}

		if top.node.Key() == end {
			seq := make([]S, 0, len(prefix)+len(postfix))
			seq = append(append(seq, prefix...), postfix...)
			visit(seq)
			continue
		}

		postfix = append(postfix, top.node.Key())
		push(top.node, top.depth+1)
	}
}
