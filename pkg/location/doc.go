// Package location models the country → city → delegation hierarchy and the
// cascading selection made in registration forms.
//
// Selection changes go through Reduce, a pure reducer over three actions:
//
//	sel = location.Reduce(sel, location.SetCountry{Value: "Sénégal"}) // city, delegation cleared
//	sel = location.Reduce(sel, location.SetCity{Value: "Dakar"})      // delegation cleared
//	sel = location.Reduce(sel, location.SetDelegation{Value: "Plateau"})
//
// Store wraps the reducer for long-lived forms and exposes the options
// available at each level. Names are only proven valid by Tree.Resolve (or
// Store.ResolveIDs) at submission time, because the tree may have been
// reloaded since the user picked them; a failure wraps ErrSelectionStale.
package location
