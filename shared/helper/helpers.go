package helper

// LookupAs reads key from m as a T.
// ok is false for a nil map, a missing key or a value of another type.
func LookupAs[T any](m map[string]any, key string) (v T, ok bool) {
	raw, found := m[key]
	if !found {
		return v, false
	}
	v, ok = raw.(T)
	return v, ok
}
