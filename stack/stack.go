// Package stack implements a generic, growable last-in-first-out container.
//
// The zero value of Stack is an empty stack ready to use.
// A Stack is not safe for concurrent use.
package stack

import "github.com/samber/mo"

// Stack is a slice-backed LIFO of values of type T.
// The last element of data is the top.
type Stack[T any] struct {
	data []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Of returns a stack built by pushing values in argument order,
// so the last value ends up on top.
func Of[T any](values ...T) *Stack[T] {
	s := New[T]()
	for _, v := range values {
		s.Push(v)
	}
	return s
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.data = append(s.data, value)
}

// Pop removes and returns the top element.
// It returns an absent option and leaves the stack untouched when the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.data) == 0 {
		return mo.None[T]()
	}

	idx := len(s.data) - 1
	top := s.data[idx]

	var zero T
	s.data[idx] = zero
	s.data = s.data[:idx]

	return mo.Some(top)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.data) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.data[len(s.data)-1])
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.data = nil
}
