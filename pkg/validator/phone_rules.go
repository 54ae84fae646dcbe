package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/campkit/pkg/sanitizer"
)

var (
	// "+" then a 1-4 digit country code followed by 4-15 subscriber digits.
	internationalPhoneRegex = regexp.MustCompile(`^\+\d{5,19}$`)
	localPhoneRegex         = regexp.MustCompile(`^\d{6,15}$`)
)

// NormalizePhone strips the separators people type in phone numbers.
func NormalizePhone(value string) string {
	return sanitizer.Phone(value)
}

func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			phone := NormalizePhone(value)
			return internationalPhoneRegex.MatchString(phone) || localPhoneRegex.MatchString(phone)
		},
		Error: newError(field, CodeFormatInvalid,
			"phone number must be in international (+XXX...) or local format", nil),
	}
}

// ValidateInternationalPhone accepts "+33 6 12 34 56 78" style numbers and
// plain local numbers of 6 to 15 digits.
func ValidateInternationalPhone(value string) Result {
	return ValidatePhoneField("phone", value)
}

// ValidatePhoneField is ValidateInternationalPhone with a custom field label,
// used for secondary numbers such as a guardian's phone.
func ValidatePhoneField(field, value string) Result {
	return First(
		Rule{
			Check: func() bool { return strings.TrimSpace(value) != "" },
			Error: newError(field, CodeEmpty, "phone number is required", nil),
		},
		ValidPhone(field, value),
	)
}
