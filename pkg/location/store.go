package location

import "sync"

// Store holds the selection of one form together with the tree it selects in.
// It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	tree Tree
	sel  Selection
}

// NewStore creates a store with an empty selection.
func NewStore(tree Tree) *Store {
	return &Store{tree: tree}
}

// Dispatch applies an action and returns the resulting selection.
func (s *Store) Dispatch(action Action) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = Reduce(s.sel, action)
	return s.sel
}

// SetCountry selects a country and clears the city and delegation.
func (s *Store) SetCountry(name string) Selection {
	return s.Dispatch(SetCountry{Value: name})
}

// SetCity selects a city and clears the delegation.
func (s *Store) SetCity(name string) Selection {
	return s.Dispatch(SetCity{Value: name})
}

// SetDelegation selects a delegation.
func (s *Store) SetDelegation(name string) Selection {
	return s.Dispatch(SetDelegation{Value: name})
}

func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel
}

// Cities returns the cities available under the selected country.
func (s *Store) Cities() []City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	country, ok := s.tree.Country(s.sel.Country)
	if !ok {
		return []City{}
	}
	return country.Cities
}

// Delegations returns the delegations available under the selected city.
func (s *Store) Delegations() []Delegation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	city, ok := s.tree.City(s.sel.Country, s.sel.City)
	if !ok {
		return []Delegation{}
	}
	return city.Delegations
}

// Options returns the names available at each level.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.OptionsFor(s.sel)
}

// ReplaceTree swaps in a freshly loaded tree. The selection is kept as is;
// ResolveIDs reports it as stale if it no longer matches.
func (s *Store) ReplaceTree(tree Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree
}

// Reset clears the selection.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = Selection{}
}

// ResolveIDs resolves the current selection against the current tree.
// Call it at submission time; UI state alone does not prove the names exist.
func (s *Store) ResolveIDs() (IDs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Resolve(s.sel)
}
