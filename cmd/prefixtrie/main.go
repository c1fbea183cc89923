package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/prefixtrie/pkg/cli"
	"github.com/khalid-nowaf/prefixtrie/pkg/prefixtrie"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(&cli.Context{
		Trie: prefixtrie.NewRuneTrie(),
		Log:  log,
	}); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
