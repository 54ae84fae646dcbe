package campapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/campkit/pkg/location"
)

// LocationKind names one level of the location tree in admin endpoints.
type LocationKind string

const (
	KindCountry    LocationKind = "countries"
	KindCity       LocationKind = "cities"
	KindDelegation LocationKind = "delegations"
)

// ParseLocationKind accepts singular and plural forms.
func ParseLocationKind(s string) (LocationKind, error) {
	switch s {
	case "country", "countries":
		return KindCountry, nil
	case "city", "cities":
		return KindCity, nil
	case "delegation", "delegations":
		return KindDelegation, nil
	}
	return "", fmt.Errorf("%w: unknown location kind %q", ErrInvalidData, s)
}

// LocationItem is a created country, city or delegation.
type LocationItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parentId,omitempty"`
}

// LocationTree fetches the whole country/city/delegation hierarchy.
// A tree that fails location.Tree.Validate is reported as ErrDecode.
func (c *Client) LocationTree(ctx context.Context) (location.Tree, error) {
	var tree location.Tree
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "locations"), nil, &tree); err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return tree, nil
}

// CreateCountry adds a country.
func (c *Client) CreateCountry(ctx context.Context, name string) (LocationItem, error) {
	var item LocationItem
	err := c.do(ctx, http.MethodPost, c.endpoint(nil, "locations", "countries"), map[string]string{"name": name}, &item)
	return item, err
}

// CreateCity adds a city to a country.
func (c *Client) CreateCity(ctx context.Context, countryID int, name string) (LocationItem, error) {
	var item LocationItem
	target := c.endpoint(nil, "locations", "countries", strconv.Itoa(countryID), "cities")
	err := c.do(ctx, http.MethodPost, target, map[string]string{"name": name}, &item)
	return item, err
}

// CreateDelegation adds a delegation to a city.
func (c *Client) CreateDelegation(ctx context.Context, cityID int, name string) (LocationItem, error) {
	var item LocationItem
	target := c.endpoint(nil, "locations", "cities", strconv.Itoa(cityID), "delegations")
	err := c.do(ctx, http.MethodPost, target, map[string]string{"name": name}, &item)
	return item, err
}

// DeleteLocation removes a node. The backend refuses (409) to delete a node
// that still has children or participants.
func (c *Client) DeleteLocation(ctx context.Context, kind LocationKind, id int) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "locations", string(kind), strconv.Itoa(id)), nil, nil)
}

// DeleteCountry removes a country.
func (c *Client) DeleteCountry(ctx context.Context, id int) error {
	return c.DeleteLocation(ctx, KindCountry, id)
}

// DeleteCity removes a city.
func (c *Client) DeleteCity(ctx context.Context, id int) error {
	return c.DeleteLocation(ctx, KindCity, id)
}

// DeleteDelegation removes a delegation.
func (c *Client) DeleteDelegation(ctx context.Context, id int) error {
	return c.DeleteLocation(ctx, KindDelegation, id)
}
