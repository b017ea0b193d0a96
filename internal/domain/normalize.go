package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares user input for a dictionary lookup:
//   - trims leading/trailing whitespace
//   - converts to Unicode NFC so composed and decomposed forms hit the same URL
//
// Case is preserved; the upstream API is case-insensitive.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return norm.NFC.String(text)
}
