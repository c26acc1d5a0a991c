package client

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics removes diacritical marks from a string (e.g., "Créme" -> "Creme").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// normalizeAnswer normalizes a typed answer for comparison (lowercase,
// no diacritics, trimmed).
func normalizeAnswer(s string) string {
	s = removeDiacritics(s)
	s = strings.ToLower(s)
	return strings.TrimSpace(s)
}

// MatchOption resolves a typed answer against the listed options of a select
// question, ignoring case, surrounding whitespace and diacritics. It returns
// the canonical option so the server always receives the listed spelling.
func MatchOption(options []string, input string) (string, bool) {
	normalized := normalizeAnswer(input)
	if normalized == "" {
		return "", false
	}
	for _, option := range options {
		if normalizeAnswer(option) == normalized {
			return option, true
		}
	}
	return "", false
}
