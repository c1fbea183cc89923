package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/khalid-nowaf/prefixtrie/pkg/prefixtrie"
)

// loadWordLists reads every file into the context trie. Files ending in
// .json are treated as a serialized trie encoding, anything else is line
// oriented: one word per line, blank lines skipped.
func loadWordLists(ctx *Context, files []string) error {
	for _, file := range files {
		start := time.Now()
		words, err := loadWordList(ctx.Trie, file)
		if err != nil {
			return err
		}
		ctx.Log.Info().
			Str("file", file).
			Int("words", words).
			Dur("took", time.Since(start)).
			Msg("loaded word list")
	}
	return nil
}

func loadWordList(tr *prefixtrie.RuneTrie, file string) (int, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return loadEncodedWordList(tr, file)
	}
	return loadPlainWordList(tr, file)
}

func loadPlainWordList(tr *prefixtrie.RuneTrie, file string) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	words := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		tr.Insert(word)
		words++
	}
	return words, scanner.Err()
}

// loadEncodedWordList decodes into a staging trie first, so a malformed file
// does not wipe words already loaded from earlier files.
func loadEncodedWordList(tr *prefixtrie.RuneTrie, file string) (int, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}

	staging := prefixtrie.NewRuneTrie()
	if err := staging.FromJSON(string(data)); err != nil {
		return 0, fmt.Errorf("%s: %w", file, err)
	}

	words := 0
	staging.MatchWithCallback("", func(word string) {
		tr.Insert(word)
		words++
	})
	return words, nil
}

// saveWordList writes the trie encoding to a file, for later reloading.
func saveWordList(tr *prefixtrie.RuneTrie, file string) error {
	return os.WriteFile(file, []byte(tr.ToJSON()), 0o644)
}
