package fn

// T is short for ternary
func T[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}

// Or returns v unless it is the zero value, in which case it returns
// fallback. Mirrors the truthy-fallback resolution used for salt and
// rounds overrides.
func Or[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
