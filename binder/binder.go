package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Func parses part of an HTTP request into the struct pointed to by v.
type Func = func(r *http.Request, v any) error

const (
	mediaJSON      = "application/json"
	mediaForm      = "application/x-www-form-urlencoded"
	mediaMultipart = "multipart/form-data"
)

// mediaType returns the lower-cased media type of the request body without
// parameters, or "" when the header is missing.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

func isFormMedia(mt string) bool {
	return mt == mediaForm || mt == mediaMultipart
}
