package stack

import "slices"

// Equal reports whether a and b hold the same elements in the same order.
// A nil stack is equal to an empty one.
func Equal[T comparable](a, b *Stack[T]) bool {
	return slices.Equal(items(a), items(b))
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Stack[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(items(a), items(b), eq)
}

func items[T any](s *Stack[T]) []T {
	if s == nil {
		return nil
	}
	return s.data
}
