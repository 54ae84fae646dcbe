package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock returns the current time. Services hold one so tests can pin "today".
type Clock func() time.Time

// Accepted birth date layouts, ISO first.
var birthDateLayouts = []string{"2006-01-02", "02/01/2006"}

var ErrUnparseableDate = errors.New("not a valid calendar date")

// ParseBirthDate parses an ISO (2006-01-02) or day-first (02/01/2006) date.
// Impossible calendar dates such as 2023-02-30 are rejected.
func ParseBirthDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
}

// CalculateAge returns the age in full years as of now.
func CalculateAge(birth time.Time) int {
	return CalculateAgeAt(birth, time.Now())
}

// CalculateAgeAt returns the age in full years on the given day. The age only
// increments once the birthday has occurred in today's year.
func CalculateAgeAt(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// MinAge validates minimum age by calculating years elapsed, accounting for leap years and exact dates.
func MinAge(field string, birthdate, today time.Time, minAge int) Rule {
	return Rule{
		Check: func() bool {
			return CalculateAgeAt(birthdate, today) >= minAge
		},
		Error: newError(field, CodeBelowMinAge,
			fmt.Sprintf("minimum age of %d years required", minAge),
			map[string]any{"min_age": minAge}),
	}
}

func MaxAge(field string, birthdate, today time.Time, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			return CalculateAgeAt(birthdate, today) <= maxAge
		},
		Error: newError(field, CodeAboveMaxAge,
			fmt.Sprintf("maximum age of %d years exceeded", maxAge),
			map[string]any{"max_age": maxAge}),
	}
}

// ValidateBirthDate checks a birth date against optional age bounds as of today.
// A nil maxAge means the range is open-ended and never fails on the upper side.
func ValidateBirthDate(value string, minAge, maxAge *int) Result {
	return ValidateBirthDateAt(value, minAge, maxAge, time.Now())
}

// ValidateBirthDateAt is ValidateBirthDate evaluated on a fixed day.
func ValidateBirthDateAt(value string, minAge, maxAge *int, today time.Time) Result {
	const field = "birth_date"

	if strings.TrimSpace(value) == "" {
		return failed(newError(field, CodeEmpty, "birth date is required", nil))
	}

	birth, err := ParseBirthDate(value)
	if err != nil {
		return failed(newError(field, CodeUnparseable, "birth date is not a valid date", nil))
	}
	if birth.After(today) {
		return failed(newError(field, CodeUnparseable, "birth date cannot be in the future", nil))
	}

	rules := make([]Rule, 0, 2)
	if minAge != nil {
		rules = append(rules, MinAge(field, birth, today, *minAge))
	}
	if maxAge != nil {
		rules = append(rules, MaxAge(field, birth, today, *maxAge))
	}
	return First(rules...)
}
