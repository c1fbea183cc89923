package cli

import (
	"fmt"
	"sort"
)

type CompleteCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Word list files (plain text lines or .json trie encodings)"`
	Prefix string   `help:"Prefix to complete, empty lists every word" default:""`
	Count  bool     `help:"Print only the number of matches"`
}

// Run executes the complete command.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	if err := loadWordLists(ctx, cmd.Files); err != nil {
		return err
	}

	if cmd.Count {
		fmt.Println(ctx.Trie.Count(cmd.Prefix))
		return nil
	}

	ctx.Trie.MatchWithCallback(cmd.Prefix, func(word string) {
		fmt.Println(word)
	})
	return nil
}

type FuzzyCmd struct {
	Query    string   `arg:"" help:"String to search around"`
	Files    []string `arg:"" type:"existingfile" help:"Word list files (plain text lines or .json trie encodings)"`
	Distance int      `help:"Maximum edit distance" default:"2"`
	Ranked   bool     `help:"Sort results by distance instead of traversal order"`
}

// Run executes the fuzzy command.
func (cmd *FuzzyCmd) Run(ctx *Context) error {
	if err := loadWordLists(ctx, cmd.Files); err != nil {
		return err
	}

	hits := ctx.Trie.MatchFuzzy(cmd.Query, cmd.Distance)
	if cmd.Ranked {
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Distance < hits[j].Distance
		})
	}

	for _, hit := range hits {
		fmt.Printf("%s\t%d\n", hit.Word, hit.Distance)
	}
	ctx.Log.Info().
		Str("query", cmd.Query).
		Int("distance", cmd.Distance).
		Int("hits", len(hits)).
		Msg("fuzzy search done")
	return nil
}

type StatsCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Word list files (plain text lines or .json trie encodings)"`
	Viz   bool     `help:"Also print the tree rendering (small tries only)"`
}

// Run executes the stats command.
func (cmd *StatsCmd) Run(ctx *Context) error {
	if err := loadWordLists(ctx, cmd.Files); err != nil {
		return err
	}

	printStats(ctx)
	if cmd.Viz {
		fmt.Print(ctx.Trie.Visualize())
	}
	return nil
}

func printStats(ctx *Context) {
	stats := ctx.Trie.Stats()
	fmt.Printf("strings:        %d\n", stats.Strings)
	fmt.Printf("nodes:          %d\n", stats.Nodes)
	fmt.Printf("max depth:      %d\n", stats.MaxDepth)
	fmt.Printf("avg depth:      %.2f\n", stats.AvgDepth)
	fmt.Printf("avg branching:  %.2f\n", stats.AvgBranching)
	fmt.Printf("est. memory:    %d bytes\n", stats.MemoryBytes)
}
