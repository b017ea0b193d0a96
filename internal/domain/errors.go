package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrEmptyQuery is returned when a search is requested with a blank query.
	// No network call is made.
	ErrEmptyQuery = errors.New("empty query")

	// ErrLookupFailed covers both "no usable definition" and transport/parse
	// failures. Callers that need the cause unwrap further.
	ErrLookupFailed = errors.New("lookup failed")
)

// User-facing messages. Both failure causes of a lookup share MsgNoDataFound.
const (
	MsgEmptyQuery  = "Please enter a word in the search box."
	MsgNoDataFound = "Sorry, No Data Found"
)

// MessageFor maps an error kind to the fixed message shown to the user.
// Unknown errors are treated as a failed lookup.
func MessageFor(err error) string {
	if errors.Is(err, ErrEmptyQuery) {
		return MsgEmptyQuery
	}
	return MsgNoDataFound
}
