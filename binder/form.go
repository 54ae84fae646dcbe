package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies using `form:"name"` tags. File parts are ignored.
// A JSON request yields ErrBinderNotApplicable.
//
//	type RegistrationForm struct {
//		FirstName string `form:"first_name"`
//		CampID    int    `form:"camp_id"`
//	}
func Form() Func {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		switch {
		case mt == "":
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		case mt == mediaJSON:
			return ErrBinderNotApplicable
		case !isFormMedia(mt):
			return fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, mt)
		}

		if mt == mediaMultipart {
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
			}
		} else if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}

		// PostForm only: query parameters are bound separately by Query.
		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
