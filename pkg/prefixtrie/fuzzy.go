package prefixtrie

import (
	"github.com/khalid-nowaf/prefixtrie/pkg/trie"
)

// SeqMatch is one fuzzy search hit: a completed sequence and its exact
// Levenshtein distance to the query.
type SeqMatch[S trie.Symbol] struct {
	Seq      []S
	Distance int
}

// MatchFuzzy returns every completed sequence within the given Levenshtein
// distance of the query (unit-cost insertions, deletions and substitutions),
// paired with its exact distance. A negative maxDistance yields no results.
//
// One dynamic-programming row is carried per depth level, holding the edit
// distances between the query and the path walked so far. A branch is
// abandoned as soon as the minimum of its row exceeds maxDistance: no
// sequence beneath it can get back under budget. Results come in traversal
// (ascending symbol) order, not distance order; callers wanting ranked
// output must sort afterwards.
func (t *Trie[S]) MatchFuzzy(query []S, maxDistance int) []SeqMatch[S] {
	if maxDistance < 0 {
		return nil
	}

	// row[i] is the distance from the empty path to the first i query
	// symbols: i deletions.
	row := make([]int, len(query)+1)
	for i := range row {
		row[i] = i
	}

	var end S
	results := []SeqMatch[S]{}
	path := []S{}

	var descend func(node *trie.Node[S], prev []int)
	descend = func(node *trie.Node[S], prev []int) {
		for _, key := range node.SortedKeys() {
			if key == end {
				// The sentinel consumes no edge, so the distance of the
				// completed path is the previous row's final entry.
				if d := prev[len(query)]; d <= maxDistance {
					results = append(results, SeqMatch[S]{
						Seq:      append([]S{}, path...),
						Distance: d,
					})
				}
				continue
			}
			next := nextRow(prev, query, key)
			if minOf(next) > maxDistance {
				continue
			}
			path = append(path, key)
			descend(node.Child(key), next)
			path = path[:len(path)-1]
		}
	}
	descend(t.root, row)
	return results
}

// nextRow advances a DP row across one trie edge using the standard
// Levenshtein recurrence.
func nextRow[S trie.Symbol](prev []int, query []S, sym S) []int {
	next := make([]int, len(prev))
	next[0] = prev[0] + 1
	for i := 1; i < len(prev); i++ {
		cost := 1
		if query[i-1] == sym {
			cost = 0
		}
		next[i] = min(next[i-1]+1, prev[i]+1, prev[i-1]+cost)
	}
	return next
}

func minOf(row []int) int {
	lowest := row[0]
	for _, v := range row[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}
