package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/lookup"
	"github.com/heartmarshall/wordlookup/internal/session"
	"github.com/heartmarshall/wordlookup/pkg/ctxutil"
)

type sessionStore interface {
	Get(id uuid.UUID) (*lookup.Widget, bool)
	Mount() (uuid.UUID, *lookup.Widget)
}

// Session returns middleware that resolves the session cookie to a mounted
// widget, mounting a new one when the cookie is missing, malformed or expired.
// The widget and session ID are stored in the request context.
func Session(store sessionStore, cfg config.SessionConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				id     uuid.UUID
				widget *lookup.Widget
				ok     bool
			)

			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed
					widget, ok = store.Get(parsed)
				}
			}

			if !ok {
				id, widget = store.Mount()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithSessionID(r.Context(), id)
			ctx = session.NewContext(ctx, widget)
			r = r.WithContext(ctx)
			annotate(w, r)
			next.ServeHTTP(w, r)
		})
	}
}
