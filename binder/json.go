package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON creates a strict JSON body binder: unknown fields and trailing data are
// rejected and every decoded string is trimmed.
//
// A form-encoded request yields ErrBinderNotApplicable so that JSON and Form
// can be chained for endpoints shared by the API and HTML forms.
func JSON() Func {
	return func(r *http.Request, v any) error {
		select {
		case <-r.Context().Done():
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, r.Context().Err())
		default:
		}

		switch mt := mediaType(r); {
		case mt == "":
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		case isFormMedia(mt):
			return ErrBinderNotApplicable
		case mt != mediaJSON:
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		trimStrings(v)
		return nil
	}
}
