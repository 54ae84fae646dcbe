package validator

// Code identifies why a field failed validation.
type Code string

const (
	CodeEmpty          Code = "empty"
	CodeTooShort       Code = "too_short"
	CodeTooLong        Code = "too_long"
	CodeInvalidChars   Code = "invalid_chars"
	CodeFormatInvalid  Code = "format_invalid"
	CodeUnparseable    Code = "unparseable"
	CodeBelowMinAge    Code = "below_min_age"
	CodeAboveMaxAge    Code = "above_max_age"
	CodeForbiddenChars Code = "forbidden_chars"
	CodeOutOfRange     Code = "out_of_range"
	CodeNotAllowed     Code = "not_allowed"
)

// TranslationKey returns the i18n key for the code.
func (c Code) TranslationKey() string {
	return "validation." + string(c)
}

// Result is the outcome of validating one field value.
// It is a plain value: a fresh Result is produced by every call.
type Result struct {
	Valid             bool
	Field             string
	Code              Code
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Valid returns a successful result.
func Valid() Result {
	return Result{Valid: true}
}

func failed(e ValidationError) Result {
	return Result{
		Field:             e.Field,
		Code:              e.Code,
		Message:           e.Message,
		TranslationKey:    e.TranslationKey,
		TranslationValues: e.TranslationValues,
	}
}

// For returns a copy of the result attributed to the given form field.
func (r Result) For(field string) Result {
	r.Field = field
	return r
}

// ValidationError converts a failed result to a ValidationError.
func (r Result) ValidationError() ValidationError {
	return ValidationError{
		Field:             r.Field,
		Code:              r.Code,
		Message:           r.Message,
		TranslationKey:    r.TranslationKey,
		TranslationValues: r.TranslationValues,
	}
}

// newError builds a ValidationError whose translation key derives from code.
func newError(field string, code Code, message string, values map[string]any) ValidationError {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Code:              code,
		Message:           message,
		TranslationKey:    code.TranslationKey(),
		TranslationValues: values,
	}
}
