package prefixtrie

// RuneTrie stores strings as sequences of code points: one trie node per
// rune. The wide-symbol counterpart of StringTrie; prefixes, depths and edit
// distances are all counted in runes.
type RuneTrie struct {
	trie *Trie[rune]
}

// NewRuneTrie creates an empty rune-symbol trie.
func NewRuneTrie() *RuneTrie {
	return &RuneTrie{trie: New[rune]()}
}

// Insert adds the string. Idempotent; the empty string is a no-op.
func (t *RuneTrie) Insert(s string) {
	t.trie.Insert([]rune(s))
}

// Contains reports whether s exists as a prefix position in the trie.
func (t *RuneTrie) Contains(s string) bool {
	return t.trie.Contains([]rune(s))
}

// ContainsWord reports whether s was inserted as a complete string.
func (t *RuneTrie) ContainsWord(s string) bool {
	return t.trie.ContainsWord([]rune(s))
}

// Remove deletes a completed string; absent or incomplete strings are a
// no-op.
func (t *RuneTrie) Remove(s string) {
	t.trie.Remove([]rune(s))
}

// Clear resets the trie to empty.
func (t *RuneTrie) Clear() {
	t.trie.Clear()
}

// Size returns the number of complete strings stored.
func (t *RuneTrie) Size() int {
	return t.trie.Size()
}

// Count returns how many complete strings start with the prefix.
func (t *RuneTrie) Count(prefix string) int {
	return t.trie.Count([]rune(prefix))
}

// Match returns all complete strings starting with the prefix, in code point
// order.
func (t *RuneTrie) Match(prefix string) []string {
	matches := []string{}
	t.trie.MatchWithCallback([]rune(prefix), func(seq []rune) {
		matches = append(matches, string(seq))
	})
	return matches
}

// MatchWithCallback passes each complete string starting with the prefix to
// visit.
func (t *RuneTrie) MatchWithCallback(prefix string, visit func(word string)) {
	t.trie.MatchWithCallback([]rune(prefix), func(seq []rune) {
		visit(string(seq))
	})
}

// MatchFuzzy returns every stored string within maxDistance edits of the
// query, with its exact distance, in traversal order. Distances are counted
// in runes, so one substituted code point is one edit.
func (t *RuneTrie) MatchFuzzy(query string, maxDistance int) []FuzzyMatch {
	hits := t.trie.MatchFuzzy([]rune(query), maxDistance)
	matches := make([]FuzzyMatch, len(hits))
	for i, hit := range hits {
		matches[i] = FuzzyMatch{Word: string(hit.Seq), Distance: hit.Distance}
	}
	return matches
}

// Stats computes structural statistics.
func (t *RuneTrie) Stats() Stats {
	return t.trie.Stats()
}

// Visualize renders the node graph for inspection.
func (t *RuneTrie) Visualize() string {
	return t.trie.Visualize()
}
