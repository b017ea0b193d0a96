// Package transport assembles the HTTP surface: page routes, JSON routes and
// health probes behind the shared middleware stack.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/session"
	"github.com/heartmarshall/wordlookup/internal/transport/middleware"
	"github.com/heartmarshall/wordlookup/internal/transport/rest"
	"github.com/heartmarshall/wordlookup/internal/transport/web"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger   *slog.Logger
	Sessions *session.Store
	Session  config.SessionConfig
	CORS     config.CORSConfig
	Version  string
}

// NewRouter builds the application handler.
//
//	GET  /                    page
//	POST /search, /clear      page form actions (303 to /)
//	GET  /api/lookup          current view as JSON
//	POST /api/lookup/search   {"word": "..."}
//	POST /api/lookup/clear
//	GET  /live, /health       probes
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	)

	health := rest.NewHealthHandler(deps.Sessions, deps.Version)
	r.Get("/live", health.Live)
	r.Get("/health", health.Health)

	withSession := middleware.Session(deps.Sessions, deps.Session)

	page := web.NewHandler(deps.Logger)
	r.Group(func(r chi.Router) {
		r.Use(withSession)
		r.Get("/", page.Page)
		r.Post("/search", page.Search)
		r.Post("/clear", page.Clear)
	})

	api := rest.NewLookupHandler(deps.Logger)
	r.Route("/api/lookup", func(r chi.Router) {
		r.Use(middleware.CORS(deps.CORS), withSession)
		r.Get("/", api.State)
		r.Post("/search", api.Search)
		r.Post("/clear", api.Clear)
	})

	return r
}
