package stack

import (
	"fmt"
	"reflect"
)

// String renders the stack for diagnostics, bottom to top: Stack{data: [1 2 3]}.
func (s *Stack[T]) String() string {
	return fmt.Sprintf("Stack{data: %v}", items(s))
}

// GoString implements fmt.GoStringer for the %#v verb.
func (s *Stack[T]) GoString() string {
	data := items(s)
	if data == nil {
		data = []T{}
	}
	return fmt.Sprintf("stack.Stack[%s]{data: %#v}", reflect.TypeFor[T](), data)
}
