// Package validator implements the field validation rules used by the
// registration and administration forms: person names, international phone
// numbers, birth dates bounded by a camp's age range, and location names.
//
// Every validator is a pure function. Nothing is read from global state except
// the wall clock, and even that can be pinned with the *At variants. Failures are
// returned as values, never as panics, so the caller decides whether a failed
// field blocks submission.
//
// # Building blocks
//
//   - Rule              – a lazy Check func paired with the ValidationError it reports
//   - ValidationError   – field, failure Code, human-readable message and i18n key
//   - ValidationErrors  – slice type implementing error, used to aggregate a form
//   - Result            – outcome of validating a single field
//
// A field validator is an ordered list of rules. The first failing rule wins,
// which keeps messages specific: an empty name reports "empty", not "too short".
//
// # Usage
//
//	res := validator.ValidateName(form.FirstName, "Prénom")
//	if !res.Valid {
//	    // render res.Message next to the field
//	}
//
// Whole forms are checked by collecting per-field results:
//
//	err := validator.Collect(
//	    validator.ValidateName(form.FirstName, "Prénom").For("first_name"),
//	    validator.ValidateInternationalPhone(form.Phone).For("phone"),
//	    validator.ValidateBirthDate(form.BirthDate, minAge, maxAge).For("birth_date"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("phone"), verrs.Fields(), ...
//	}
//
// Translation keys follow the "validation.<code>" scheme and carry the values
// needed to render a localized message (label, min, max, kind).
package validator
