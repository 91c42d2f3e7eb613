package types

// ToPtr returns a pointer to a copy of value. The Azure DevOps SDK models every
// optional field as a pointer.
func ToPtr[T any](value T) *T {
	return &value
}

func GetValue[T any](ptr *T, defaultVal T) T {
	if ptr == nil {
		return defaultVal
	}
	return *ptr
}

// GetMapValue dereferences a map pointer as returned by the SDK, yielding an empty
// map for nil.
func GetMapValue[K comparable, V any](ptr *map[K]V) map[K]V {
	if ptr == nil || *ptr == nil {
		return map[K]V{}
	}
	return *ptr
}
