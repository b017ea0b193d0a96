// Command define looks up a single word and prints its first definition.
//
// Usage:
//
//	define <word>
//
// Exit codes: 0 = definition found, 1 = empty query, no data or error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/heartmarshall/wordlookup/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordlookup/internal/app"
	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/lookup"
	"github.com/heartmarshall/wordlookup/internal/transport/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "define: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log)

	w := lookup.New(logger, freedict.NewProvider(cfg.Dictionary, logger), cli.NewRenderer(os.Stdout))
	w.SetQuery(ctx, strings.Join(os.Args[1:], " "))

	// The outcome is already rendered; the error only selects the exit code.
	_ = w.Search(ctx)

	if w.View().State != lookup.StateSuccess {
		return 1
	}
	return 0
}
