// ## Overview
// Package prefixtrie implements an in-memory associative structure over
// strings with prefix enumeration, bounded fuzzy (edit distance) lookup,
// structural statistics and a reversible JSON encoding. The engine owns a
// graph of trie.Node vertices; a completed string is marked by a sentinel
// child (the zero symbol) under the last node of its path, so a string can be
// a strict prefix of another stored string and still be tracked on its own.
//
// The core type Trie is generic over the symbol width and works on symbol
// sequences. StringTrie and RuneTrie wrap it with a string facing API, for
// byte oriented and code point oriented storage respectively.
//
// ## Example usage:
//
//	t := prefixtrie.NewStringTrie()
//	t.Insert("race")
//	t.Insert("racecar")
//
//	t.Match("race")                // ["race", "racecar"]
//	t.MatchFuzzy("racecat", 1)     // [{racecar 1}]
//	t.Count("rac")                 // 2
//
// The structure is not safe for concurrent mutation; callers needing shared
// access must serialize it externally. Read-only traversals (Match, Count,
// Stats, Visualize, MatchFuzzy) may run concurrently with each other but
// never concurrently with Insert, Remove or Clear.
package prefixtrie
