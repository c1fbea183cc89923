package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

type ReplCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Word lists to preload"`
}

const replHelp = `commands:
  add WORD...        insert words
  rm WORD...         remove words
  has PREFIX         check a prefix position
  word WORD          check complete membership
  match [PREFIX]     list completions (empty prefix lists everything)
  fuzzy QUERY [D]    bounded edit distance search, default distance 2
  count [PREFIX]     count completions under a prefix
  size               number of stored words
  stats              structural statistics
  viz                render the tree
  save FILE          write the trie encoding to a file
  load FILE          load a word list or .json encoding
  clear              drop everything
  quit               leave`

// Run starts the interactive session.
func (cmd *ReplCmd) Run(ctx *Context) error {
	if err := loadWordLists(ctx, cmd.Files); err != nil {
		return err
	}

	rl, err := readline.New("trie> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF on ctrl-d
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := runReplCommand(ctx, rl.Stdout(), fields[0], fields[1:]); err != nil {
			fmt.Fprintf(rl.Stdout(), "error: %v\n", err)
		}
	}
}

func runReplCommand(ctx *Context, out io.Writer, name string, args []string) error {
	switch name {
	case "add":
		if len(args) == 0 {
			return errors.New("add needs at least one word")
		}
		for _, word := range args {
			ctx.Trie.Insert(word)
		}

	case "rm":
		if len(args) == 0 {
			return errors.New("rm needs at least one word")
		}
		for _, word := range args {
			ctx.Trie.Remove(word)
		}

	case "has":
		if len(args) != 1 {
			return errors.New("has needs exactly one prefix")
		}
		fmt.Fprintln(out, ctx.Trie.Contains(args[0]))

	case "word":
		if len(args) != 1 {
			return errors.New("word needs exactly one word")
		}
		fmt.Fprintln(out, ctx.Trie.ContainsWord(args[0]))

	case "match":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		ctx.Trie.MatchWithCallback(prefix, func(word string) {
			fmt.Fprintln(out, word)
		})

	case "fuzzy":
		if len(args) == 0 {
			return errors.New("fuzzy needs a query")
		}
		distance := 2
		if len(args) > 1 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad distance %q: %w", args[1], err)
			}
			distance = d
		}
		for _, hit := range ctx.Trie.MatchFuzzy(args[0], distance) {
			fmt.Fprintf(out, "%s\t%d\n", hit.Word, hit.Distance)
		}

	case "count":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		fmt.Fprintln(out, ctx.Trie.Count(prefix))

	case "size":
		fmt.Fprintln(out, ctx.Trie.Size())

	case "stats":
		stats := ctx.Trie.Stats()
		fmt.Fprintf(out, "strings %d, nodes %d, max depth %d, avg depth %.2f, avg branching %.2f, est. %d bytes\n",
			stats.Strings, stats.Nodes, stats.MaxDepth, stats.AvgDepth, stats.AvgBranching, stats.MemoryBytes)

	case "viz":
		fmt.Fprint(out, ctx.Trie.Visualize())

	case "save":
		if len(args) != 1 {
			return errors.New("save needs a file path")
		}
		return saveWordList(ctx.Trie, args[0])

	case "load":
		if len(args) != 1 {
			return errors.New("load needs a file path")
		}
		words, err := loadWordList(ctx.Trie, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "loaded %d words\n", words)

	case "clear":
		ctx.Trie.Clear()

	case "help":
		fmt.Fprintln(out, replHelp)

	default:
		return fmt.Errorf("unknown command %q, try help", name)
	}
	return nil
}
