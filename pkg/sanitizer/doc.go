// Package sanitizer cleans user input before validation and implements the
// accent-insensitive search used by admin lists.
//
// Transforms are plain func(string) string values composed with Apply and
// Compose; Name, Phone and Email are the pipelines used by the forms.
//
//	first := sanitizer.Name(form.FirstName)
//	phone := sanitizer.Phone(form.Phone) // "+221 77-123.45.67" -> "+221771234567"
//
// Fold, Title and Matches rely on golang.org/x/text for Unicode
// normalisation and casing:
//
//	sanitizer.Matches("senegal dakar", "Sénégal", "Dakar") // true
package sanitizer
