package prefixtrie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchEmptyPrefixMatchesEverything(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("hello")
	tr.Insert("world")

	assert.Equal(t, []string{"hello", "world"}, tr.Match(""))
}

func TestMatchNoMatches(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("hello")
	tr.Insert("world")

	assert.Empty(t, tr.Match("xyz"))
}

func TestMatchOnEmptyTrie(t *testing.T) {
	tr := NewStringTrie()

	assert.Empty(t, tr.Match(""))
	assert.Empty(t, tr.Match("a"))
}

func TestMatchSingleMatch(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("hello")
	tr.Insert("world")

	assert.Equal(t, []string{"world"}, tr.Match("wor"))
}

func TestMatchMultipleMatches(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("race")
	tr.Insert("racecar")
	tr.Insert("raceday")
	tr.Insert("raccoon")

	matches := tr.Match("race")

	assert.Equal(t, []string{"race", "racecar", "raceday"}, matches,
		"A word should come before its extensions, and raccoon must not match")
}

func TestMatchCommonPrefix(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("apple")
	tr.Insert("application")
	tr.Insert("apply")
	tr.Insert("apricot")

	assert.Equal(t, []string{"apple", "application", "apply"}, tr.Match("app"))
}

func TestMatchIsInSymbolOrder(t *testing.T) {
	tr := NewStringTrie()
	// Insertion order must not leak into match order.
	for _, word := range []string{"zebra", "apple", "mango", "ap", "z"} {
		tr.Insert(word)
	}

	assert.Equal(t, []string{"ap", "apple", "mango", "z", "zebra"}, tr.Match(""))
}

func TestMatchIsRestartable(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("new")
	tr.Insert("news")

	first := tr.Match("new")
	second := tr.Match("new")

	assert.Equal(t, first, second, "Each call recomputes the same result")

	tr.Insert("newt")
	assert.Equal(t, []string{"new", "news", "newt"}, tr.Match("new"),
		"A later call sees mutations made in between")
}

func TestMatchWithCallback(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("test")
	tr.Insert("testing")
	tr.Insert("tester")

	visited := []string{}
	tr.MatchWithCallback("test", func(word string) {
		visited = append(visited, word)
	})

	assert.Equal(t, []string{"test", "tester", "testing"}, visited)
}

func TestMatchWithCallbackNoMatches(t *testing.T) {
	tr := NewStringTrie()
	tr.Insert("hello")

	calls := 0
	tr.MatchWithCallback("world", func(string) { calls++ })

	assert.Zero(t, calls, "Callback must not fire for a missing prefix")
}

func TestMatchDeepBranchResynchronization(t *testing.T) {
	tr := NewStringTrie()
	// Two deep sibling branches force the postfix buffer to rewind across
	// several levels between pops.
	tr.Insert("abcdef")
	tr.Insert("abcxyz")
	tr.Insert("ab")

	assert.Equal(t, []string{"ab", "abcdef", "abcxyz"}, tr.Match(""))
}

func BenchmarkMatch(b *testing.B) {
	tr := NewStringTrie()
	for i := 0; i < 4096; i++ {
		tr.Insert(fmt.Sprintf("word-%04d", i))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr.Match("word-1")
	}
}
