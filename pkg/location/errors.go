package location

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionStale is returned when a selected name no longer exists in
	// the current tree. The user should re-select their location.
	ErrSelectionStale = errors.New("location: selection is stale, please re-select your location")

	// ErrMalformedTree is returned by Tree.Validate for trees with missing ids or names.
	ErrMalformedTree = errors.New("location: malformed location tree")

	// ErrUnknownAction is returned by ParseAction for unsupported action names.
	ErrUnknownAction = errors.New("location: unknown selection action")
)

// Level names a depth of the location tree.
type Level string

const (
	LevelCountry    Level = "country"
	LevelCity       Level = "city"
	LevelDelegation Level = "delegation"
)

// StaleError tells which level of a selection failed to resolve.
type StaleError struct {
	Level Level
	Name  string
}

func (e *StaleError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("location: no %s selected", e.Level)
	}
	return fmt.Sprintf("location: %s %q not found", e.Level, e.Name)
}

func (e *StaleError) Unwrap() error {
	return ErrSelectionStale
}
