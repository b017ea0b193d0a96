// Command wordlookup serves the dictionary lookup page and its JSON API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml), an optional
// .env file and the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordlookup/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "wordlookup: %v\n", err)
		os.Exit(1)
	}
}
