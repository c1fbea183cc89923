package trie

import "slices"

// Symbol is one unit of the alphabet a trie is built over. Byte wide symbols
// cover raw byte strings, rune wide symbols cover whole code points.
type Symbol interface {
	~uint8 | ~int32
}

// Node is a single vertex in a prefix trie. Each node exclusively owns its
// children; detaching a child with no other reference releases its whole
// subtree.
type Node[S Symbol] struct {
	key      S
	children map[S]*Node[S]
}

// NewNode creates a node for the given edge symbol with no children.
func NewNode[S Symbol](key S) *Node[S] {
	return &Node[S]{
		key:      key,
		children: map[S]*Node[S]{},
	}
}

// Key returns the symbol this node represents on the edge from its parent.
func (n *Node[S]) Key() S {
	return n.key
}

// Children returns the live children mapping. Mutating the map mutates the
// trie, use the read-only accessors below unless mutation is the point.
func (n *Node[S]) Children() map[S]*Node[S] {
	return n.children
}

// Child returns the child reached over the given symbol, or nil.
func (n *Node[S]) Child(key S) *Node[S] {
	return n.children[key]
}

// HasChild reports whether an edge for the given symbol exists.
func (n *Node[S]) HasChild(key S) bool {
	_, ok := n.children[key]
	return ok
}

// Attach adds a child for the symbol if no child exists there yet.
// It returns the new added child or the existing one.
func (n *Node[S]) Attach(key S) *Node[S] {
	if child, ok := n.children[key]; ok {
		return child
	}
	child := NewNode(key)
	n.children[key] = child
	return child
}

// Detach removes the child for the given symbol, releasing its subtree.
// Detaching a missing symbol is a no-op.
func (n *Node[S]) Detach(key S) {
	delete(n.children, key)
}

// IsLeaf checks if the node is a leaf (has no children).
func (n *Node[S]) IsLeaf() bool {
	return len(n.children) == 0
}

// Len returns the number of children.
func (n *Node[S]) Len() int {
	return len(n.children)
}

// SortedKeys returns the child symbols in ascending order. Go randomizes map
// iteration, so every deterministic traversal goes through here.
func (n *Node[S]) SortedKeys() []S {
	keys := make([]S, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// ForEachChild applies a function to each child in ascending symbol order.
func (n *Node[S]) ForEachChild(f func(child *Node[S])) {
	for _, key := range n.SortedKeys() {
		f(n.children[key])
	}
}
