// Package stackcheck builds arbitrary stacks for property-based tests, shrinks failing ones,
// and carries the algebraic laws every stack.Stack must satisfy.
package stackcheck

import (
	"math/rand"
	"reflect"
	"testing/quick"

	"github.com/lifo-cli/lifo/stack"
)

// Values produces one element for a generated stack.
type Values[T any] func(r *rand.Rand) T

// Generate builds a stack of exactly size elements by pushing values drawn from next.
func Generate[T any](r *rand.Rand, size int, next Values[T]) *stack.Stack[T] {
	s := stack.New[T]()
	for range max(size, 0) {
		s.Push(next(r))
	}
	return s
}

// QuickValues draws elements the way testing/quick draws function arguments.
// Types quick cannot generate yield the zero value.
func QuickValues[T any]() Values[T] {
	typ := reflect.TypeFor[T]()
	return func(r *rand.Rand) T {
		v, ok := quick.Value(typ, r)
		if !ok {
			var zero T
			return zero
		}
		return v.Interface().(T)
	}
}

// Arbitrary is a stack that testing/quick can generate as a property argument.
type Arbitrary[T any] struct {
	*stack.Stack[T]
}

// Generate implements quick.Generator. The element count is uniform in [0, size].
func (Arbitrary[T]) Generate(r *rand.Rand, size int) reflect.Value {
	s := Generate(r, r.Intn(size+1), QuickValues[T]())
	return reflect.ValueOf(Arbitrary[T]{Stack: s})
}
