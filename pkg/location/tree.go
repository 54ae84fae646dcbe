package location

import (
	"errors"
	"fmt"
	"strings"
)

// Delegation is the finest-grained location unit.
type Delegation struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// City owns an ordered list of delegations.
type City struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Delegations []Delegation `json:"delegations"`
}

// Country owns an ordered list of cities.
type Country struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Cities []City `json:"cities"`
}

// Tree is the read-only location hierarchy fetched from the backend, in
// server order. Nothing in this package mutates it.
type Tree []Country

// IDs identifies a resolved selection.
type IDs struct {
	CountryID    int `json:"country_id"`
	CityID       int `json:"city_id"`
	DelegationID int `json:"delegation_id"`
}

// Country looks up a country by its display name.
func (t Tree) Country(name string) (Country, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

// City looks up a city by display name within the named country.
func (t Tree) City(country, city string) (City, bool) {
	c, ok := t.Country(country)
	if !ok {
		return City{}, false
	}
	return c.City(city)
}

func (c Country) City(name string) (City, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return City{}, false
}

func (c City) Delegation(name string) (Delegation, bool) {
	for _, d := range c.Delegations {
		if d.Name == name {
			return d, true
		}
	}
	return Delegation{}, false
}

// CountryNames lists country names in server order.
func (t Tree) CountryNames() []string {
	names := make([]string, 0, len(t))
	for _, c := range t {
		names = append(names, c.Name)
	}
	return names
}

// Resolve maps a name selection to ids. It returns a *StaleError wrapping
// ErrSelectionStale naming the first level that no longer exists in the tree,
// which happens when the tree was reloaded between selection and submission.
func (t Tree) Resolve(sel Selection) (IDs, error) {
	country, ok := t.Country(sel.Country)
	if !ok {
		return IDs{}, &StaleError{Level: LevelCountry, Name: sel.Country}
	}
	city, ok := country.City(sel.City)
	if !ok {
		return IDs{}, &StaleError{Level: LevelCity, Name: sel.City}
	}
	delegation, ok := city.Delegation(sel.Delegation)
	if !ok {
		return IDs{}, &StaleError{Level: LevelDelegation, Name: sel.Delegation}
	}
	return IDs{CountryID: country.ID, CityID: city.ID, DelegationID: delegation.ID}, nil
}

// Validate reports structural problems such as blank names or missing ids.
// A tree failing validation should surface as a data loading error.
func (t Tree) Validate() error {
	var errs []error
	for i, c := range t {
		if c.ID <= 0 || strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("country #%d: missing id or name", i))
		}
		for j, city := range c.Cities {
			if city.ID <= 0 || strings.TrimSpace(city.Name) == "" {
				errs = append(errs, fmt.Errorf("country %q city #%d: missing id or name", c.Name, j))
			}
			for k, d := range city.Delegations {
				if d.ID <= 0 || strings.TrimSpace(d.Name) == "" {
					errs = append(errs, fmt.Errorf("city %q delegation #%d: missing id or name", city.Name, k))
				}
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrMalformedTree}, errs...)...)
}

// Counts returns the number of countries, cities and delegations in the tree.
func (t Tree) Counts() (countries, cities, delegations int) {
	countries = len(t)
	for _, c := range t {
		cities += len(c.Cities)
		for _, city := range c.Cities {
			delegations += len(city.Delegations)
		}
	}
	return countries, cities, delegations
}
