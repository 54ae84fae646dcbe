package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/pkg/sanitizer"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// FieldName is the form field holding a location name.
const FieldName = "name"

// LocationInput creates a country, city or delegation. ParentID is the
// country of a city or the city of a delegation.
type LocationInput struct {
	Name     string `json:"name" form:"name"`
	ParentID int    `json:"parent_id" form:"parent_id"`
}

// LocationsOverview is the location tree with its size.
type LocationsOverview struct {
	Tree        location.Tree `json:"tree"`
	Countries   int           `json:"countries"`
	Cities      int           `json:"cities"`
	Delegations int           `json:"delegations"`
}

// Locations returns the current location tree.
func (s *Service) Locations(ctx context.Context) (LocationsOverview, error) {
	tree, err := s.catalog.LocationTree(ctx)
	if err != nil {
		return LocationsOverview{}, mapBackendError(err)
	}
	countries, cities, delegations := tree.Counts()
	return LocationsOverview{
		Tree:        tree,
		Countries:   countries,
		Cities:      cities,
		Delegations: delegations,
	}, nil
}

func validatorKind(kind campapi.LocationKind) (validator.LocationKind, error) {
	switch kind {
	case campapi.KindCountry:
		return validator.LocationCountry, nil
	case campapi.KindCity:
		return validator.LocationCity, nil
	case campapi.KindDelegation:
		return validator.LocationDelegation, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// CreateLocation validates the name, checks the parent exists and that no
// sibling already uses the name (ignoring case and accents), then creates the
// location and drops the cached tree.
func (s *Service) CreateLocation(ctx context.Context, kind campapi.LocationKind, in LocationInput) (campapi.LocationItem, error) {
	vk, err := validatorKind(kind)
	if err != nil {
		return campapi.LocationItem{}, err
	}
	name := sanitizer.Name(in.Name)
	if err := validator.Collect(validator.ValidateLocationName(name, vk).For(FieldName)); err != nil {
		return campapi.LocationItem{}, err
	}

	tree, err := s.catalog.LocationTree(ctx)
	if err != nil {
		return campapi.LocationItem{}, mapBackendError(err)
	}
	siblings, err := siblingNames(tree, kind, in.ParentID)
	if err != nil {
		return campapi.LocationItem{}, err
	}
	for _, sibling := range siblings {
		if sanitizer.Fold(sibling) == sanitizer.Fold(name) {
			return campapi.LocationItem{}, fmt.Errorf("%w: %s %q", ErrDuplicate, vk, name)
		}
	}

	var item campapi.LocationItem
	switch kind {
	case campapi.KindCountry:
		item, err = s.backend.CreateCountry(ctx, name)
	case campapi.KindCity:
		item, err = s.backend.CreateCity(ctx, in.ParentID, name)
	case campapi.KindDelegation:
		item, err = s.backend.CreateDelegation(ctx, in.ParentID, name)
	}
	if err != nil {
		return campapi.LocationItem{}, mapBackendError(err)
	}

	s.catalog.InvalidateLocations(ctx)
	s.logger.InfoContext(ctx, "location created",
		slog.String("kind", string(kind)),
		slog.Int("id", item.ID),
		slog.String("name", name),
	)
	return item, nil
}

// DeleteLocation removes a location and drops the cached tree.
func (s *Service) DeleteLocation(ctx context.Context, kind campapi.LocationKind, id int) error {
	if _, err := validatorKind(kind); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err := s.backend.DeleteLocation(ctx, kind, id); err != nil {
		if errors.Is(err, campapi.ErrNotFound) {
			// Already gone: the cached tree is stale either way.
			s.catalog.InvalidateLocations(ctx)
		}
		return mapBackendError(err)
	}

	s.catalog.InvalidateLocations(ctx)
	s.logger.InfoContext(ctx, "location deleted",
		slog.String("kind", string(kind)),
		slog.Int("id", id),
	)
	return nil
}

func siblingNames(tree location.Tree, kind campapi.LocationKind, parentID int) ([]string, error) {
	switch kind {
	case campapi.KindCountry:
		return tree.CountryNames(), nil
	case campapi.KindCity:
		for _, c := range tree {
			if c.ID == parentID {
				names := make([]string, 0, len(c.Cities))
				for _, city := range c.Cities {
					names = append(names, city.Name)
				}
				return names, nil
			}
		}
	case campapi.KindDelegation:
		for _, c := range tree {
			for _, city := range c.Cities {
				if city.ID == parentID {
					names := make([]string, 0, len(city.Delegations))
					for _, d := range city.Delegations {
						names = append(names, d.Name)
					}
					return names, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: %s parent %d", ErrParentNotFound, kind, parentID)
}
