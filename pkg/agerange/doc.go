// Package agerange parses the free-form age bracket attached to a camp
// ("11-17", "18 et plus", "15") into a Range used to bound birth date
// validation.
//
//	rng := agerange.NewResolver(logger).Resolve(ctx, camp.TrancheAge)
//	minAge, maxAge := rng.Bounds()
//	res := validator.ValidateBirthDate(form.BirthDate, minAge, maxAge)
//
// The "et plus" form is recognised before the hyphen split so that a
// descriptor is never read as a bounded range by accident.
package agerange
