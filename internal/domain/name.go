package domain

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// compoundTLDMaxLen is the longest second-level label still treated as part
// of a compound TLD (co.uk, com.au, gov.br).
const compoundTLDMaxLen = 3

// DeriveName builds a display name from a URL's hostname.
// Unparsable input degrades to the trimmed input itself.
//
// Examples:
//   - "https://news.google.com" -> "Google News"
//   - "https://microsoft.com"   -> "Microsoft"
//   - "https://bbc.co.uk"       -> "Bbc"
func DeriveName(normalizedURL string) string {
	host, ok := hostnameOf(normalizedURL)
	if !ok {
		return strings.TrimSpace(normalizedURL)
	}

	labels := strings.Split(strings.TrimPrefix(host, "www."), ".")
	parts := nameParts(labels)

	words := make([]string, len(parts))
	for i, part := range parts {
		// most specific label last in the hostname, first in the name
		words[len(parts)-1-i] = capitalize(part)
	}
	return strings.Join(words, " ")
}

// nameParts drops the TLD (or compound TLD) labels.
func nameParts(labels []string) []string {
	var parts []string
	if len(labels) > 2 && utf8.RuneCountInString(labels[len(labels)-2]) <= compoundTLDMaxLen {
		parts = labels[:len(labels)-2]
	} else if len(labels) > 0 {
		parts = labels[:len(labels)-1]
	}

	// localhost and other single-label hosts
	if len(parts) == 0 && len(labels) > 0 {
		parts = labels[:1]
	}
	return parts
}

func hostnameOf(raw string) (string, bool) {
	u, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	if display, err := idna.Display.ToUnicode(host); err == nil {
		host = display
	}
	return host, true
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	// Casers are stateful, so one per call.
	return cases.Upper(language.Und).String(string(first)) + s[size:]
}
