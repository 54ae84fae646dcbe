package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/campkit/pkg/i18n"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/requestid"
	"github.com/dmitrymomot/campkit/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Key        string
	Fields     validator.ValidationErrors
	LogLevel   slog.Level
}

// Classify maps an error to the status code and translation key sent to the
// client. Validation errors win over HTTP errors joined with them.
func Classify(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternal.Code,
		Key:        ErrInternal.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Key = ErrBadRequest.Key
		info.Fields = fields
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the error handler shared by all modules. Messages
// are translated into the request language; DataStar requests receive the
// error as "error" and "fieldErrors" signals instead of a JSON body.
func NewErrorHandler(log *slog.Logger, tr *i18n.Translator) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	translate := func(lang, key string, values map[string]any, fallback string) string {
		if tr == nil || key == "" {
			if fallback != "" {
				return fallback
			}
			return key
		}
		return tr.T(lang, key, values)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		lang := i18n.GetLocale(r.Context())
		detail := &ErrorDetail{
			Code:    info.Key,
			Message: translate(lang, info.Key, nil, ""),
		}
		if len(info.Fields) > 0 {
			detail.Details = make(map[string][]string, len(info.Fields))
			for _, fe := range info.Fields {
				msg := translate(lang, fe.TranslationKey, fe.TranslationValues, fe.Message)
				detail.Details[fe.Field] = append(detail.Details[fe.Field], msg)
			}
		}

		var resp Response
		if IsDataStar(r) {
			resp = Signals(map[string]any{
				"error":       detail.Message,
				"fieldErrors": detail.Details,
			})
		} else {
			resp = JSONError(detail, WithJSONStatus(info.StatusCode))
		}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// DefaultErrorHandler renders errors as untranslated JSON using the default logger.
var DefaultErrorHandler = NewErrorHandler(nil, nil)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a response that hands err to the error handler configured
// on Wrap.
func Error(err error) Response {
	if err == nil {
		err = ErrInternal
	}
	return errorResponse{err: err}
}
