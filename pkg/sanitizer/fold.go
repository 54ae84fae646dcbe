package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and removes diacritics so that "Sénégal", "senegal" and
// "SENEGAL" compare equal. Whitespace is collapsed and trimmed.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return Trim(CollapseSpaces(cases.Fold().String(folded)))
}

// Title capitalises each word using French casing rules: "jean-pierre dupont"
// becomes "Jean-Pierre Dupont".
func Title(s string) string {
	return cases.Title(language.French).String(s)
}

// Matches reports whether every word of query appears in at least one of
// fields, ignoring case and accents. An empty query matches everything.
func Matches(query string, fields ...string) bool {
	words := strings.Fields(Fold(query))
	if len(words) == 0 {
		return true
	}
	haystack := make([]string, 0, len(fields))
	for _, f := range fields {
		haystack = append(haystack, Fold(f))
	}
	for _, w := range words {
		found := false
		for _, h := range haystack {
			if strings.Contains(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter keeps the items whose fields match query.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if len(strings.Fields(query)) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(query, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}
