package stack

// Reverse returns a new stack whose top-to-bottom order is the inverse of in.
// The top of in becomes the bottom of the result. in is not modified.
func Reverse[T any](in *Stack[T]) *Stack[T] {
	return drainInto(in.Clone())
}

// ReverseDeep is like Reverse but duplicates elements through their Clone method.
func ReverseDeep[T Cloner[T]](in *Stack[T]) *Stack[T] {
	return drainInto(CloneDeep(in))
}

func drainInto[T any](src *Stack[T]) *Stack[T] {
	rev := New[T]()
	for {
		v, ok := src.Pop().Get()
		if !ok {
			return rev
		}
		rev.Push(v)
	}
}
