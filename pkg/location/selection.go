package location

import "fmt"

// Selection is the country/city/delegation chosen in a form, by display name.
// City always belongs to Country and Delegation to City: changing an ancestor
// clears every descendant.
type Selection struct {
	Country    string `json:"country"`
	City       string `json:"city"`
	Delegation string `json:"delegation"`
}

// Complete reports whether all three levels are selected.
func (s Selection) Complete() bool {
	return s.Country != "" && s.City != "" && s.Delegation != ""
}

// Action is a user selection event.
type Action interface {
	Name() string
	apply(Selection) Selection
}

type SetCountry struct{ Value string }

func (SetCountry) Name() string { return "set_country" }

func (a SetCountry) apply(Selection) Selection {
	return Selection{Country: a.Value}
}

type SetCity struct{ Value string }

func (SetCity) Name() string { return "set_city" }

func (a SetCity) apply(s Selection) Selection {
	return Selection{Country: s.Country, City: a.Value}
}

type SetDelegation struct{ Value string }

func (SetDelegation) Name() string { return "set_delegation" }

func (a SetDelegation) apply(s Selection) Selection {
	s.Delegation = a.Value
	return s
}

// Reduce applies an action to a selection and returns the new selection.
// It is the single place enforcing the reset rules. A nil action is a no-op.
func Reduce(s Selection, action Action) Selection {
	if action == nil {
		return s
	}
	return action.apply(s)
}

// ParseAction builds an action from its wire name, as posted by the
// registration form ("set_country", "set_city", "set_delegation").
func ParseAction(name, value string) (Action, error) {
	switch name {
	case SetCountry{}.Name(), string(LevelCountry):
		return SetCountry{Value: value}, nil
	case SetCity{}.Name(), string(LevelCity):
		return SetCity{Value: value}, nil
	case SetDelegation{}.Name(), string(LevelDelegation):
		return SetDelegation{Value: value}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Options lists what can be chosen next given a selection: cities of the
// selected country and delegations of the selected city. Unknown names give
// empty lists, never an error.
type Options struct {
	Countries   []string `json:"countries"`
	Cities      []string `json:"cities"`
	Delegations []string `json:"delegations"`
}

// OptionsFor computes the available choices for a selection.
func (t Tree) OptionsFor(s Selection) Options {
	opts := Options{
		Countries:   t.CountryNames(),
		Cities:      []string{},
		Delegations: []string{},
	}
	country, ok := t.Country(s.Country)
	if !ok {
		return opts
	}
	for _, c := range country.Cities {
		opts.Cities = append(opts.Cities, c.Name)
	}
	city, ok := country.City(s.City)
	if !ok {
		return opts
	}
	for _, d := range city.Delegations {
		opts.Delegations = append(opts.Delegations, d.Name)
	}
	return opts
}
