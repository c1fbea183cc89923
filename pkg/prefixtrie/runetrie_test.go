package prefixtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneTrieInsertAndContains(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("hello")
	tr.Insert("world")
	tr.Insert("こんにちは")

	assert.True(t, tr.ContainsWord("hello"))
	assert.True(t, tr.ContainsWord("world"))
	assert.True(t, tr.ContainsWord("こんにちは"))
	assert.False(t, tr.Contains("goodbye"))
}

func TestRuneTrieSizeAndCount(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("test")
	tr.Insert("testing")
	tr.Insert("tester")

	assert.Equal(t, 3, tr.Size())
	assert.Equal(t, 3, tr.Count("test"))
	assert.Equal(t, 1, tr.Count("testi"))
}

func TestRuneTrieRemove(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("hello")
	tr.Insert("help")

	tr.Remove("hello")

	assert.False(t, tr.Contains("hello"))
	assert.True(t, tr.ContainsWord("help"))
	assert.Equal(t, 1, tr.Size())
}

func TestRuneTrieUnicodePrefixes(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("café")
	tr.Insert("naïve")
	tr.Insert("résumé")
	tr.Insert("Москва")
	tr.Insert("北京")

	assert.True(t, tr.ContainsWord("café"))
	assert.True(t, tr.ContainsWord("Москва"))
	assert.True(t, tr.Contains("北"), "A single code point is a valid prefix position")
	assert.Equal(t, 5, tr.Size())
}

func TestRuneTrieDepthCountsRunes(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("北京") // six bytes, two runes

	stats := tr.Stats()

	assert.Equal(t, 1, stats.Strings)
	assert.Equal(t, 2, stats.MaxDepth, "Depth is measured in symbols, one per rune")
}

func TestRuneTrieFuzzyCountsRuneEdits(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("café")

	results := tr.MatchFuzzy("cafe", 1)

	assert.Equal(t, []FuzzyMatch{{Word: "café", Distance: 1}}, results,
		"Substituting one accented code point is a single edit in a rune trie")
}

func TestStringTrieFuzzyCountsByteEdits(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("café") // é is two bytes

	assert.Empty(t, tr.MatchFuzzy("cafe", 1),
		"In a byte trie the accent substitution costs two edits")
	assert.Equal(t, []FuzzyMatch{{Word: "café", Distance: 2}}, tr.MatchFuzzy("cafe", 2))
}

func TestRuneTrieMatchOrder(t *testing.T) {
	tr := NewRuneTrie()
	tr.Insert("za")
	tr.Insert("éa")
	tr.Insert("aa")

	assert.Equal(t, []string{"aa", "za", "éa"}, tr.Match(""),
		"Order follows code point values, so é sorts after z")
}
