package domain

import "strings"

// DefaultScheme is prepended to inputs that carry no http(s) scheme.
const DefaultScheme = "https://"

// NormalizeURL canonicalizes raw user input into an absolute URL.
// It never fails and is idempotent.
//
// Examples:
//   - "example.com" -> "https://example.com"
//   - "  HTTP://a.b " -> "HTTP://a.b"
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if hasHTTPScheme(trimmed) {
		return trimmed
	}
	return DefaultScheme + trimmed
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
