// Package web serves the HTML surface of the lookup widget: one page with an
// input, Search and Clear buttons, and the error or result block.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/lookup"
	"github.com/heartmarshall/wordlookup/internal/session"
)

const maxFormBody = 4 << 10

// Handler renders the page and handles the two form actions. Actions answer
// with 303 See Other so a reload never repeats the lookup.
type Handler struct {
	log *slog.Logger
}

// NewHandler creates a web Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{log: logger.With("handler", "web")}
}

// Page renders the session's current view.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := RenderPage(w, widget.View()); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Search reads the "word" form field into the query and runs a search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	widget.SetQuery(r.Context(), r.PostFormValue("word"))
	if err := widget.Search(r.Context()); err != nil && !errors.Is(err, lookup.ErrSuperseded) {
		h.log.DebugContext(r.Context(), "search finished with error", slog.String("error", err.Error()))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Clear resets the widget.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	widget.Clear(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
