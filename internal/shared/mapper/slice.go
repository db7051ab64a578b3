// Package mapper holds generic helpers for converting between layers.
package mapper

// MapSlice applies fn to every element. The result is never nil, so empty
// collections encode as [] rather than null.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

// MapSliceErr is MapSlice for conversions that can fail; it stops at the first error.
func MapSliceErr[T any, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		r, err := fn(item)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
