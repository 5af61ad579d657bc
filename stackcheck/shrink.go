package stackcheck

import (
	"iter"
	"slices"

	"github.com/lifo-cli/lifo/stack"
)

// Shrink yields strictly smaller variants of s: the empty stack, the bottom and top halves,
// then s with each single element removed. s is not modified.
func Shrink[T any](s *stack.Stack[T]) iter.Seq[*stack.Stack[T]] {
	return func(yield func(*stack.Stack[T]) bool) {
		elems := Elements(s)
		n := len(elems)
		if n == 0 {
			return
		}

		if !yield(stack.New[T]()) {
			return
		}

		if n > 2 {
			half := n / 2
			if !yield(stack.Of(elems[:half]...)) {
				return
			}
			if !yield(stack.Of(elems[half:]...)) {
				return
			}
		}

		if n == 1 {
			return
		}

		for i := range elems {
			if !yield(stack.Of(slices.Concat(elems[:i], elems[i+1:])...)) {
				return
			}
		}
	}
}

// Minimize repeatedly replaces s with its first shrink candidate that still fails,
// stopping when no candidate fails. fails receives a private copy of each candidate.
func Minimize[T any](s *stack.Stack[T], fails func(*stack.Stack[T]) bool) *stack.Stack[T] {
	current := s
	for {
		found := false
		for candidate := range Shrink(current) {
			if fails(candidate.Clone()) {
				current, found = candidate, true
				break
			}
		}

		if !found {
			return current
		}
	}
}

// Elements drains a copy of s and returns its elements bottom first. s is not modified.
func Elements[T any](s *stack.Stack[T]) []T {
	c := s.Clone()
	out := make([]T, c.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = c.Pop().MustGet()
	}
	return out
}
