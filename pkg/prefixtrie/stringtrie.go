package prefixtrie

// FuzzyMatch is one string-facing fuzzy search hit.
type FuzzyMatch struct {
	Word     string
	Distance int
}

// StringTrie stores byte strings: one trie node per byte. Multi-byte UTF-8
// sequences are stored byte by byte, which keeps prefix semantics byte
// oriented; use RuneTrie for code point oriented storage.
type StringTrie struct {
	trie *Trie[byte]
}

// NewStringTrie creates an empty byte-symbol trie.
func NewStringTrie() *StringTrie {
	return &StringTrie{trie: New[byte]()}
}

// Insert adds the string. Idempotent; the empty string is a no-op.
func (t *StringTrie) Insert(s string) {
	t.trie.Insert([]byte(s))
}

// Contains reports whether s exists as a prefix position in the trie. The
// empty string is always contained. See ContainsWord for completed
// membership.
func (t *StringTrie) Contains(s string) bool {
	return t.trie.Contains([]byte(s))
}

// ContainsWord reports whether s was inserted as a complete string.
func (t *StringTrie) ContainsWord(s string) bool {
	return t.trie.ContainsWord([]byte(s))
}

// Remove deletes a completed string; absent or incomplete strings are a
// no-op.
func (t *StringTrie) Remove(s string) {
	t.trie.Remove([]byte(s))
}

// Clear resets the trie to empty.
func (t *StringTrie) Clear() {
	t.trie.Clear()
}

// Size returns the number of complete strings stored.
func (t *StringTrie) Size() int {
	return t.trie.Size()
}

// Count returns how many complete strings start with the prefix.
func (t *StringTrie) Count(prefix string) int {
	return t.trie.Count([]byte(prefix))
}

// Match returns all complete strings starting with the prefix, in byte
// order.
func (t *StringTrie) Match(prefix string) []string {
	matches := []string{}
	t.trie.MatchWithCallback([]byte(prefix), func(seq []byte) {
		matches = append(matches, string(seq))
	})
	return matches
}

// MatchWithCallback passes each complete string starting with the prefix to
// visit.
func (t *StringTrie) MatchWithCallback(prefix string, visit func(word string)) {
	t.trie.MatchWithCallback([]byte(prefix), func(seq []byte) {
		visit(string(seq))
	})
}

// MatchFuzzy returns every stored string within maxDistance edits of the
// query, with its exact distance, in traversal order.
func (t *StringTrie) MatchFuzzy(query string, maxDistance int) []FuzzyMatch {
	hits := t.trie.MatchFuzzy([]byte(query), maxDistance)
	matches := make([]FuzzyMatch, len(hits))
	for i, hit := range hits {
		matches[i] = FuzzyMatch{Word: string(hit.Seq), Distance: hit.Distance}
	}
	return matches
}

// Stats computes structural statistics.
func (t *StringTrie) Stats() Stats {
	return t.trie.Stats()
}

// Visualize renders the node graph for inspection.
func (t *StringTrie) Visualize() string {
	return t.trie.Visualize()
}
