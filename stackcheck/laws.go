package stackcheck

import (
	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
)

// Law is a property every stack must satisfy. Holds must not modify s.
type Law struct {
	Name        string
	Description string
	Holds       func(s *stack.Stack[int], x int) bool
}

// Laws returns the stack laws in a stable order.
func Laws() []Law {
	return []Law{
		{
			Name:        "empty-pop",
			Description: "popping a fresh stack yields nothing and leaves it empty",
			Holds: func(_ *stack.Stack[int], _ int) bool {
				s := stack.New[int]()
				return s.Pop().IsAbsent() && s.IsEmpty()
			},
		},
		{
			Name:        "push-pop-identity",
			Description: "pushing x onto a copy then popping returns x and restores the copy",
			Holds: func(s *stack.Stack[int], x int) bool {
				c := s.Clone()
				c.Push(x)
				v, ok := c.Pop().Get()
				return ok && v == x && stack.Equal(c, s)
			},
		},
		{
			Name:        "double-reverse",
			Description: "reversing twice gives back the original stack",
			Holds: func(s *stack.Stack[int], _ int) bool {
				return stack.Equal(stack.Reverse(stack.Reverse(s)), s)
			},
		},
		{
			Name:        "literal-order",
			Description: "Of(1, 2, 3) pops 3, 2, 1",
			Holds: func(_ *stack.Stack[int], _ int) bool {
				return popsExactly(stack.Of(1, 2, 3), 3, 2, 1)
			},
		},
		{
			Name:        "reverse-order",
			Description: "reversing pushes of 1, 2, 3 pops 1, 2, 3",
			Holds: func(_ *stack.Stack[int], _ int) bool {
				s := stack.New[int]()
				s.Push(1)
				s.Push(2)
				s.Push(3)
				return popsExactly(stack.Reverse(s), 1, 2, 3)
			},
		},
		{
			Name:        "clone-independence",
			Description: "pushing onto a clone leaves the original unchanged",
			Holds: func(s *stack.Stack[int], x int) bool {
				before := Elements(s)
				c := s.Clone()
				c.Push(x)
				return c.Len() == len(before)+1 && popsExactly(s.Clone(), lo.Reverse(before)...)
			},
		},
		{
			Name:        "size-conservation",
			Description: "N pushes are followed by N pops in reverse order, then nothing",
			Holds: func(s *stack.Stack[int], _ int) bool {
				pushed := Elements(s)
				fresh := stack.New[int]()
				for _, v := range pushed {
					fresh.Push(v)
				}
				return popsExactly(fresh, lo.Reverse(pushed)...)
			},
		},
	}
}

// popsExactly drains s and reports whether it yielded want, in order, followed by nothing.
func popsExactly(s *stack.Stack[int], want ...int) bool {
	for _, w := range want {
		v, ok := s.Pop().Get()
		if !ok || v != w {
			return false
		}
	}
	return s.Pop().IsAbsent()
}
