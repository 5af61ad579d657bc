package stack

import (
	"slices"

	"github.com/samber/lo"
)

// Cloner is implemented by element types that know how to duplicate themselves.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns an independent copy of the stack with the same order.
// Elements are copied by assignment; use CloneDeep for elements that carry references.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{data: slices.Clone(items(s))}
}

// CloneDeep returns an independent copy of s in which every element
// has been duplicated through its own Clone method.
func CloneDeep[T Cloner[T]](s *Stack[T]) *Stack[T] {
	src := items(s)
	if len(src) == 0 {
		return New[T]()
	}

	return &Stack[T]{data: lo.Map(src, func(v T, _ int) T {
		return v.Clone()
	})}
}
