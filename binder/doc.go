// Package binder fills request structs from the parts of an HTTP request.
//
// Each binder reads one source, selected by struct tag:
//
//	type RecordPaymentRequest struct {
//		Code   string `path:"code"`
//		Amount int64  `json:"amount" form:"amount"`
//		Method string `json:"method" form:"method"`
//		Lang   string `query:"lang"`
//	}
//
// JSON and Form are body binders and return ErrBinderNotApplicable for the
// other body format, so both can be registered on the same route. Query and
// Path use chi route parameters and the URL query. String values are trimmed.
package binder
