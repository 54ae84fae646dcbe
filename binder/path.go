package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path creates a binder for chi route parameters using `path:"name"` tags.
//
//	type BadgeRequest struct {
//		Code string `path:"code"`
//	}
//
//	r.Get("/badges/{code}", handler.Wrap(preview, handler.WithBinders[BadgeRequest](binder.Path())))
func Path() Func {
	return PathWith(chi.URLParam)
}

// PathWith creates a path binder using a custom parameter extractor.
func PathWith(extractor func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		return walkFields(v, "path", ErrFailedToParsePath, func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		})
	}
}
