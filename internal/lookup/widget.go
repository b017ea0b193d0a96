// Package lookup implements the word lookup widget: a query, one dictionary
// request per search, and three mutually exclusive display states.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/wordlookup/internal/domain"
	"github.com/heartmarshall/wordlookup/internal/provider"
)

// ErrSuperseded is returned by Search when a newer Search or Clear happened
// while the request was in flight. The response is dropped.
var ErrSuperseded = errors.New("lookup superseded by a newer action")

type dictionaryProvider interface {
	FetchEntries(ctx context.Context, word string) ([]provider.Entry, error)
}

// Widget holds the state of one mounted lookup component.
type Widget struct {
	log    *slog.Logger
	dict   dictionaryProvider
	render Renderer

	mu           sync.Mutex
	query        string
	result       *Result
	errorMessage *string
	// seq is bumped by every Search and Clear; a response only applies if
	// its seq is still current.
	seq uint64

	// renderMu serializes publish so the last Render always sees the latest state.
	renderMu sync.Mutex
}

// New mounts a widget in the Idle state. A nil renderer is replaced by NopRenderer.
func New(logger *slog.Logger, dict dictionaryProvider, render Renderer) *Widget {
	if render == nil {
		render = NopRenderer
	}
	return &Widget{
		log:    logger.With("component", "lookup"),
		dict:   dict,
		render: render,
	}
}

// SetQuery replaces the current search term. Result and error are untouched.
func (w *Widget) SetQuery(ctx context.Context, q string) {
	w.mu.Lock()
	w.query = q
	w.mu.Unlock()

	w.publish(ctx)
}

// Search looks up the current query. The outcome is always written to the
// widget state; the returned error only classifies it for the caller:
// domain.ErrEmptyQuery, domain.ErrLookupFailed (wrapping the cause) or
// ErrSuperseded.
func (w *Widget) Search(ctx context.Context) error {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.result = nil
	w.errorMessage = nil
	word := domain.NormalizeQuery(w.query)
	if word == "" {
		w.setError(domain.MsgEmptyQuery)
		w.mu.Unlock()
		w.publish(ctx)
		return domain.ErrEmptyQuery
	}
	w.mu.Unlock()
	w.publish(ctx)

	res, err := w.fetch(ctx, word)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		w.log.DebugContext(ctx, "discarding stale lookup response",
			slog.String("word", word),
			slog.Uint64("seq", seq),
		)
		return ErrSuperseded
	}
	if err != nil {
		w.result = nil
		w.setError(domain.MessageFor(err))
	} else {
		w.result = &res
		w.errorMessage = nil
	}
	w.mu.Unlock()
	w.publish(ctx)

	return err
}

// fetch performs the request and extraction. Not-found and transport failures
// both wrap domain.ErrLookupFailed; only the log line tells them apart.
func (w *Widget) fetch(ctx context.Context, word string) (Result, error) {
	entries, err := w.dict.FetchEntries(ctx, word)
	if err != nil {
		w.log.WarnContext(ctx, "dictionary request failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return Result{}, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}

	res, ok := extract(entries)
	if !ok {
		w.log.InfoContext(ctx, "no definition found",
			slog.String("word", word),
			slog.Int("entries", len(entries)),
		)
		return Result{}, fmt.Errorf("%w: no definition for %q", domain.ErrLookupFailed, word)
	}

	w.log.DebugContext(ctx, "definition found",
		slog.String("word", word),
		slog.Bool("has_audio", res.AudioURL != nil),
	)
	return res, nil
}

// Clear resets query, result and error. Any in-flight search is superseded.
func (w *Widget) Clear(ctx context.Context) {
	w.mu.Lock()
	w.seq++
	w.query = ""
	w.result = nil
	w.errorMessage = nil
	w.mu.Unlock()

	w.publish(ctx)
}

// View returns a snapshot of the current state.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// snapshot must be called with mu held.
func (w *Widget) snapshot() View {
	v := View{Query: w.query, State: StateIdle}
	if w.result != nil {
		r := *w.result
		if r.AudioURL != nil {
			a := *r.AudioURL
			r.AudioURL = &a
		}
		v.Result = &r
		v.State = StateSuccess
	}
	if w.errorMessage != nil {
		msg := *w.errorMessage
		v.ErrorMessage = &msg
		v.State = StateError
	}
	return v
}

// setError must be called with mu held.
func (w *Widget) setError(msg string) {
	w.errorMessage = &msg
}

func (w *Widget) publish(ctx context.Context) {
	w.renderMu.Lock()
	defer w.renderMu.Unlock()
	w.render.Render(ctx, w.View())
}
