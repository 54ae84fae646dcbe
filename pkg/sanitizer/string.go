package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// phoneSeparators are the formatting characters users type in phone numbers.
const phoneSeparators = " \t-().\u00a0"

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseSpaces replaces every run of whitespace with a single space.
func CollapseSpaces(s string) string {
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// SingleLine replaces line breaks and tabs with spaces.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\v', '\f':
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// StripPhoneSeparators removes spaces, dashes, dots and parentheses.
func StripPhoneSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(phoneSeparators, r) {
			return -1
		}
		return r
	}, s)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StripHTML removes tags, used on free-text fields echoed in the admin UI.
func StripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// MaxLength truncates s to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}
