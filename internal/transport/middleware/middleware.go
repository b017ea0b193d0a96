// Package middleware holds the HTTP middleware shared by the page, the JSON
// endpoints and the health probes.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It matches chi's
// r.Use signature.
type Middleware func(http.Handler) http.Handler
