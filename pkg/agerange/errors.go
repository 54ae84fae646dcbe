package agerange

import "errors"

// ErrAmbiguousRange is returned when a hyphenated descriptor does not hold two
// non-negative integers in ascending order, e.g. "abc-25" or "25-18".
var ErrAmbiguousRange = errors.New("agerange: ambiguous age range")
