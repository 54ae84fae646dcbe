package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Field cleaning pipelines applied to form input before validation.
var (
	// Name trims and collapses inner whitespace: "  Jean   Pierre " -> "Jean Pierre".
	Name = Compose(SingleLine, CollapseSpaces, Trim)

	// Phone removes formatting characters but keeps a leading '+'.
	Phone = Compose(Trim, StripPhoneSeparators)

	// Email trims and lowercases.
	Email = Compose(Trim, NormalizeEmail)
)
