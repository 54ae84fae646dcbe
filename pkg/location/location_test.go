package location_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/location"
)

func fixtureTree() location.Tree {
	return location.Tree{
		{ID: 1, Name: "France", Cities: []location.City{
			{ID: 10, Name: "Paris", Delegations: []location.Delegation{
				{ID: 100, Name: "Paris Nord"},
				{ID: 101, Name: "Paris Sud"},
			}},
			{ID: 11, Name: "Lyon", Delegations: []location.Delegation{
				{ID: 110, Name: "Lyon Centre"},
			}},
		}},
		{ID: 2, Name: "Germany", Cities: []location.City{
			{ID: 20, Name: "Berlin", Delegations: []location.Delegation{
				{ID: 200, Name: "Mitte"},
			}},
		}},
	}
}

func TestReduce(t *testing.T) {
	t.Parallel()

	t.Run("country change clears city and delegation", func(t *testing.T) {
		sel := location.Selection{Country: "France", City: "Paris", Delegation: "Paris Nord"}
		got := location.Reduce(sel, location.SetCountry{Value: "Germany"})
		assert.Equal(t, location.Selection{Country: "Germany"}, got)
	})

	t.Run("selecting the same country still clears descendants", func(t *testing.T) {
		sel := location.Selection{Country: "France", City: "Paris", Delegation: "Paris Nord"}
		got := location.Reduce(sel, location.SetCountry{Value: "France"})
		assert.Equal(t, location.Selection{Country: "France"}, got)
	})

	t.Run("city change clears delegation only", func(t *testing.T) {
		sel := location.Selection{Country: "France", City: "Paris", Delegation: "Paris Nord"}
		got := location.Reduce(sel, location.SetCity{Value: "Lyon"})
		assert.Equal(t, location.Selection{Country: "France", City: "Lyon"}, got)
	})

	t.Run("delegation change has no cascade", func(t *testing.T) {
		sel := location.Selection{Country: "France", City: "Paris", Delegation: "Paris Nord"}
		got := location.Reduce(sel, location.SetDelegation{Value: "Paris Sud"})
		assert.Equal(t, location.Selection{Country: "France", City: "Paris", Delegation: "Paris Sud"}, got)
	})

	t.Run("nil action is a no-op", func(t *testing.T) {
		sel := location.Selection{Country: "France"}
		assert.Equal(t, sel, location.Reduce(sel, nil))
	})
}

func TestParseAction(t *testing.T) {
	a, err := location.ParseAction("set_city", "Paris")
	require.NoError(t, err)
	assert.Equal(t, location.SetCity{Value: "Paris"}, a)

	a, err = location.ParseAction("country", "France")
	require.NoError(t, err)
	assert.Equal(t, location.SetCountry{Value: "France"}, a)

	_, err = location.ParseAction("set_region", "x")
	assert.True(t, errors.Is(err, location.ErrUnknownAction))
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("cascading reset", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("France")
		s.SetCity("Paris")
		s.SetDelegation("Paris Nord")
		s.SetCountry("Germany")

		sel := s.Selection()
		assert.Equal(t, "Germany", sel.Country)
		assert.Equal(t, "", sel.City)
		assert.Equal(t, "", sel.Delegation)
	})

	t.Run("available lists follow the selection", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		assert.Empty(t, s.Cities())
		assert.Empty(t, s.Delegations())

		s.SetCountry("France")
		require.Len(t, s.Cities(), 2)
		assert.Equal(t, "Paris", s.Cities()[0].Name)
		assert.Empty(t, s.Delegations())

		s.SetCity("Paris")
		require.Len(t, s.Delegations(), 2)
		assert.Equal(t, "Paris Sud", s.Delegations()[1].Name)

		opts := s.Options()
		assert.Equal(t, []string{"France", "Germany"}, opts.Countries)
		assert.Equal(t, []string{"Paris", "Lyon"}, opts.Cities)
		assert.Equal(t, []string{"Paris Nord", "Paris Sud"}, opts.Delegations)
	})

	t.Run("unknown country gives empty availability", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("Atlantis")
		assert.NotNil(t, s.Cities())
		assert.Empty(t, s.Cities())

		s.SetCity("Paris")
		assert.Empty(t, s.Delegations())
	})

	t.Run("city lookup is scoped to the selected country", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("Germany")
		s.SetCity("Paris")
		assert.Empty(t, s.Delegations())
	})

	t.Run("resolve ids", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("France")
		s.SetCity("Lyon")
		s.SetDelegation("Lyon Centre")

		ids, err := s.ResolveIDs()
		require.NoError(t, err)
		assert.Equal(t, location.IDs{CountryID: 1, CityID: 11, DelegationID: 110}, ids)
	})

	t.Run("reloaded tree makes selection stale", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("France")
		s.SetCity("Paris")
		s.SetDelegation("Paris Sud")

		reloaded := fixtureTree()
		reloaded[0].Cities[0].Delegations = reloaded[0].Cities[0].Delegations[:1]
		s.ReplaceTree(reloaded)

		_, err := s.ResolveIDs()
		require.Error(t, err)
		assert.True(t, errors.Is(err, location.ErrSelectionStale))

		var stale *location.StaleError
		require.True(t, errors.As(err, &stale))
		assert.Equal(t, location.LevelDelegation, stale.Level)
		assert.Equal(t, "Paris Sud", stale.Name)
	})

	t.Run("incomplete selection is stale at the first empty level", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("France")

		_, err := s.ResolveIDs()
		var stale *location.StaleError
		require.True(t, errors.As(err, &stale))
		assert.Equal(t, location.LevelCity, stale.Level)
		assert.Contains(t, stale.Error(), "no city selected")
	})

	t.Run("reset", func(t *testing.T) {
		s := location.NewStore(fixtureTree())
		s.SetCountry("France")
		s.Reset()
		assert.Equal(t, location.Selection{}, s.Selection())
	})
}

func TestTree_Validate(t *testing.T) {
	assert.NoError(t, fixtureTree().Validate())

	broken := fixtureTree()
	broken[1].Cities[0].Name = " "
	err := broken.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, location.ErrMalformedTree))
	assert.Contains(t, err.Error(), "Germany")
}

func TestTree_Counts(t *testing.T) {
	countries, cities, delegations := fixtureTree().Counts()
	assert.Equal(t, 2, countries)
	assert.Equal(t, 3, cities)
	assert.Equal(t, 4, delegations)
}

func TestSelection_Complete(t *testing.T) {
	assert.False(t, location.Selection{Country: "France", City: "Paris"}.Complete())
	assert.True(t, location.Selection{Country: "France", City: "Paris", Delegation: "Paris Nord"}.Complete())
}
