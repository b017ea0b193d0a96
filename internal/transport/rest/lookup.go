package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordlookup/internal/lookup"
	"github.com/heartmarshall/wordlookup/internal/session"
)

const maxSearchBody = 4 << 10

// LookupHandler exposes the session's widget as JSON. Every endpoint replies
// with the widget View; lookup failures are part of the View, not HTTP errors.
type LookupHandler struct {
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(logger *slog.Logger) *LookupHandler {
	return &LookupHandler{log: logger.With("handler", "lookup")}
}

// SearchRequest is the body of POST /api/lookup/search.
type SearchRequest struct {
	Word string `json:"word"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// State returns the current View.
func (h *LookupHandler) State(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "no session"})
		return
	}
	writeJSON(w, http.StatusOK, widget.View())
}

// Search sets the query from the body and runs a search.
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "no session"})
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxSearchBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	widget.SetQuery(r.Context(), req.Word)
	if err := widget.Search(r.Context()); err != nil && !errors.Is(err, lookup.ErrSuperseded) {
		h.log.DebugContext(r.Context(), "search finished with error", slog.String("error", err.Error()))
	}

	writeJSON(w, http.StatusOK, widget.View())
}

// Clear resets the widget.
func (h *LookupHandler) Clear(w http.ResponseWriter, r *http.Request) {
	widget, ok := session.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "no session"})
		return
	}
	widget.Clear(r.Context())
	writeJSON(w, http.StatusOK, widget.View())
}
