package validator

import (
	"fmt"
	"strings"
)

// LocationKind is the level of a location in the country/city/delegation tree.
type LocationKind string

const (
	LocationCountry    LocationKind = "country"
	LocationCity       LocationKind = "city"
	LocationDelegation LocationKind = "delegation"
)

const (
	LocationNameMinLength = 2
	LocationNameMaxLength = 100

	locationForbiddenChars = `<>'"&;`
)

// Valid reports whether k is one of the three known levels.
func (k LocationKind) Valid() bool {
	switch k {
	case LocationCountry, LocationCity, LocationDelegation:
		return true
	}
	return false
}

func (k LocationKind) label() string {
	switch k {
	case LocationCountry:
		return "country name"
	case LocationCity:
		return "city name"
	case LocationDelegation:
		return "delegation name"
	}
	return "name"
}

// ValidateLocationName checks the name of a country, city or delegation
// entered by an administrator.
func ValidateLocationName(value string, kind LocationKind) Result {
	label := kind.label()
	values := func() map[string]any { return map[string]any{"kind": string(kind)} }

	return First(
		Rule{
			Check: func() bool { return strings.TrimSpace(value) != "" },
			Error: newError(label, CodeEmpty, fmt.Sprintf("%s is required", label), values()),
		},
		MinLenString(label, value, LocationNameMinLength),
		MaxLenString(label, value, LocationNameMaxLength),
		Rule{
			Check: func() bool { return !strings.ContainsAny(value, locationForbiddenChars) },
			Error: newError(label, CodeForbiddenChars,
				fmt.Sprintf("%s must not contain any of < > ' \" & ;", label), values()),
		},
	)
}
