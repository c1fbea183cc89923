package cli

import (
	"github.com/khalid-nowaf/prefixtrie/pkg/prefixtrie"
	"github.com/rs/zerolog"
)

// Context carries the shared trie and logger into every command.
type Context struct {
	Trie *prefixtrie.RuneTrie
	Log  zerolog.Logger
}

// CLI is the command tree for the prefixtrie binary.
var CLI struct {
	Complete CompleteCmd `cmd:"" help:"List completions for a prefix over the loaded word lists"`
	Fuzzy    FuzzyCmd    `cmd:"" help:"Find words within an edit distance budget"`
	Stats    StatsCmd    `cmd:"" help:"Print structural statistics for the loaded word lists"`
	Repl     ReplCmd     `cmd:"" help:"Interactive session against an in-memory trie"`
}
