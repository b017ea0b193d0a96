// Package cli renders lookup views as terminal text.
package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/heartmarshall/wordlookup/internal/lookup"
)

// Renderer prints Success and Error views; Idle views produce no output.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	answer *color.Color
	failed *color.Color
}

// NewRenderer creates a Renderer writing to out. Colors follow fatih/color's
// terminal detection (disabled when stdout is not a TTY or NO_COLOR is set).
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		answer: color.New(color.FgGreen),
		failed: color.New(color.FgRed),
	}
}

// Render implements lookup.Renderer.
func (r *Renderer) Render(_ context.Context, v lookup.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch v.State {
	case lookup.StateError:
		r.failed.Fprintln(r.out, *v.ErrorMessage) //nolint:errcheck
	case lookup.StateSuccess:
		r.answer.Fprint(r.out, "Answer: ") //nolint:errcheck
		fmt.Fprintln(r.out, v.Result.DefinitionText)
		if v.Result.AudioURL != nil {
			fmt.Fprintf(r.out, "Pronunciation: %s\n", *v.Result.AudioURL)
		}
	}
}
