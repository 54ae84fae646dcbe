package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NameMinLength = 2
	NameMaxLength = 50
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, CodeEmpty, fmt.Sprintf("%s is required", field), nil),
	}
}

// MinLenString counts runes of the trimmed value, so "Éa" has length 2.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(strings.TrimSpace(value)) >= min
		},
		Error: newError(field, CodeTooShort,
			fmt.Sprintf("%s must be at least %d characters long", field, min),
			map[string]any{"min": min}),
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(strings.TrimSpace(value)) <= max
		},
		Error: newError(field, CodeTooLong,
			fmt.Sprintf("%s must be at most %d characters long", field, max),
			map[string]any{"max": max}),
	}
}

// NameChars accepts letters of any script, spaces, hyphens and apostrophes.
func NameChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range strings.TrimSpace(value) {
				if !isNameRune(r) {
					return false
				}
			}
			return true
		},
		Error: newError(field, CodeInvalidChars,
			fmt.Sprintf("%s may only contain letters, spaces, hyphens and apostrophes", field), nil),
	}
}

func isNameRune(r rune) bool {
	switch r {
	case ' ', '-', '\'', '’':
		return true
	}
	// Mn covers decomposed accents (e + U+0301).
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

// NameRules returns the ordered rules of a person name field.
func NameRules(label, value string) []Rule {
	return []Rule{
		RequiredString(label, value),
		MinLenString(label, value, NameMinLength),
		MaxLenString(label, value, NameMaxLength),
		NameChars(label, value),
	}
}

// ValidateName checks a first or last name. The label names the field in the
// returned message, for instance "Nom" or "Prénom".
func ValidateName(value, label string) Result {
	return First(NameRules(label, value)...)
}
