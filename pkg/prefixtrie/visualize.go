package prefixtrie

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/prefixtrie/pkg/trie"
)

// Visualize renders the node graph as an indented tree for inspection. A `*`
// marks a node that also terminates a completed sequence, `[END]` is the
// sentinel marker itself. Purely diagnostic, not part of the functional
// contract.
func (t *Trie[S]) Visualize() string {
	var b strings.Builder
	b.WriteString("Root\n")
	visualizeNode(t.root, "", &b)
	return b.String()
}

func visualizeNode[S trie.Symbol](node *trie.Node[S], indent string, b *strings.Builder) {
	var end S
	keys := node.SortedKeys()
	for i, key := range keys {
		connector, childIndent := "├── ", indent+"│   "
		if i == len(keys)-1 {
			connector, childIndent = "└── ", indent+"    "
		}

		if key == end {
			b.WriteString(indent + connector + "[END]\n")
			continue
		}

		child := node.Child(key)
		marker := ""
		if child.HasChild(end) {
			marker = " *"
		}
		fmt.Fprintf(b, "%s%s%c%s\n", indent, connector, child.Key(), marker)
		visualizeNode(child, childIndent, b)
	}
}
