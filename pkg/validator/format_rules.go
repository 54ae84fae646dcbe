package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
// Staff contact addresses are optional, so callers guard it with RequiredString
// only when the address is mandatory.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			localPart, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: newError(field, CodeFormatInvalid, "must be a valid email address", nil),
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: newError(field, CodeOutOfRange, fmt.Sprintf("must be at least %v", min),
			map[string]any{"min": min}),
	}
}

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Error: newError(field, CodeOutOfRange, "must be greater than zero", nil),
	}
}

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: newError(field, CodeNotAllowed, fmt.Sprintf("must be one of: %v", allowedValues),
			map[string]any{"allowed_values": allowedValues}),
	}
}
