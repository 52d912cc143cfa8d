package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		if transform != nil {
			result = transform(result)
		}
	}
	return result
}

// Compose bundles transforms into one reusable transform, for example a
// field filter shared by several forms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
