package binder

import "net/http"

// Query creates a query parameter binder.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//
// Slices accept repeated (?tags=a&tags=b) and comma separated (?tags=a,b)
// values. Pointers stay nil when the parameter is absent.
//
//	type ListRequest struct {
//		Query    string `query:"q"`
//		Page     int    `query:"page"`
//		PageSize int    `query:"size"`
//	}
func Query() Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
