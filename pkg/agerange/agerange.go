package agerange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Range is a normalized age bracket. A nil Min means no lower bound; a nil Max
// means the bracket is open-ended ("11 et plus"). Both nil is an unresolved
// descriptor: no age restriction is enforced.
type Range struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

var (
	// "11 et plus", "11 ans et plus", "18 and above", "18 and over", "16+"
	orMorePattern = regexp.MustCompile(`(?i)^\s*(\d+)\s*(?:ans?|years?)?\s*(?:et\s+plus|and\s+(?:above|over|up|older)|\+)\s*$`)
	unitSuffix    = regexp.MustCompile(`(?i)\s*(?:ans?|years?)\s*$`)
)

// Parse normalizes a camp age descriptor. Shapes are checked in a fixed order:
// "N et plus", then "min-max", then a single integer. Anything else yields an
// unresolved Range and no error. A hyphenated descriptor that does not hold two
// integers, or holds an inverted pair, returns ErrAmbiguousRange.
func Parse(descriptor string) (Range, error) {
	s := strings.TrimSpace(descriptor)

	if m := orMorePattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Range{}, errors.Join(ErrAmbiguousRange, err)
		}
		return Range{Min: &n}, nil
	}

	if strings.Contains(s, "-") {
		return parseBounded(s)
	}

	if n, err := strconv.Atoi(unitSuffix.ReplaceAllString(s, "")); err == nil && n >= 0 {
		return Range{Min: &n, Max: &n}, nil
	}

	return Range{}, nil
}

func parseBounded(s string) (Range, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrAmbiguousRange, s)
	}

	lo, errLo := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, errHi := strconv.Atoi(strings.TrimSpace(unitSuffix.ReplaceAllString(parts[1], "")))
	if errLo != nil || errHi != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrAmbiguousRange, s)
	}
	if lo < 0 || hi < lo {
		return Range{}, fmt.Errorf("%w: %q is inverted", ErrAmbiguousRange, s)
	}
	return Range{Min: &lo, Max: &hi}, nil
}

// MustParse is Parse for descriptors known at compile time. It panics on error.
func MustParse(descriptor string) Range {
	r, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return r
}

// Bounds returns the limits in the shape expected by validator.ValidateBirthDate.
func (r Range) Bounds() (min, max *int) {
	return r.Min, r.Max
}

// Resolved reports whether the range restricts ages at all.
func (r Range) Resolved() bool {
	return r.Min != nil || r.Max != nil
}

// Unbounded reports whether the range has no upper limit.
func (r Range) Unbounded() bool {
	return r.Min != nil && r.Max == nil
}

// Contains reports whether age falls inside the range.
func (r Range) Contains(age int) bool {
	if r.Min != nil && age < *r.Min {
		return false
	}
	if r.Max != nil && age > *r.Max {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.Min == nil && r.Max == nil:
		return "any"
	case r.Max == nil:
		return fmt.Sprintf("%d+", *r.Min)
	case r.Min == nil:
		return fmt.Sprintf("0-%d", *r.Max)
	case *r.Min == *r.Max:
		return strconv.Itoa(*r.Min)
	default:
		return fmt.Sprintf("%d-%d", *r.Min, *r.Max)
	}
}

// Resolver turns descriptors into ranges without ever failing: ambiguous
// descriptors are logged as data-quality warnings and treated as unresolved.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger falls back to slog.Default.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, descriptor string) Range {
	rng, err := Parse(descriptor)
	if err != nil {
		r.logger.WarnContext(ctx, "camp age range could not be parsed, age is not restricted",
			slog.String("descriptor", descriptor),
			slog.String("error", err.Error()),
		)
		return Range{}
	}
	return rng
}
