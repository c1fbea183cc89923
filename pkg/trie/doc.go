// ## Overview
// Package trie implements the generic vertex type for an uncompressed
// per-symbol prefix trie. A node holds the symbol on the edge from its parent
// and exclusively owns a mapping from next symbol to child node; there is no
// sharing between nodes and no back-reference to the parent. All traversal
// and mutation algorithms live in the engine package built on top of this one,
// the node only exposes structural access.
//
// ## Example usage:
//
//	root := trie.NewNode[byte](0)
//	child := root.Attach('a')
//	child.Attach('b')
//
//	// Walk children in deterministic (ascending symbol) order
//	root.ForEachChild(func(c *trie.Node[byte]) {
//		fmt.Printf("%c\n", c.Key())
//	})
//
// The package is generic over the symbol width, so the same structure serves
// byte strings and rune (wide character) strings.
package trie
