package stack

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func drain[T any](s *Stack[T]) []T {
	var out []T
	for {
		v, ok := s.Pop().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

type box struct {
	n *int
}

func (b box) Clone() box {
	n := *b.n
	return box{n: &n}
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		Convey("Popping a new stack yields nothing and leaves it empty", func() {
			s := New[int]()
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("The zero value is usable", func() {
			var s Stack[string]
			s.Push("a")
			So(s.Pop().MustGet(), ShouldEqual, "a")
			So(s.Pop().IsPresent(), ShouldBeFalse)
		})

		Convey("Of puts the last value on top", func() {
			s := Of(1, 2, 3)
			So(s.Pop().MustGet(), ShouldEqual, 3)
			So(s.Pop().MustGet(), ShouldEqual, 2)
			So(s.Pop().MustGet(), ShouldEqual, 1)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})

		Convey("Of with no values is empty", func() {
			So(Of[int]().IsEmpty(), ShouldBeTrue)
		})

		Convey("Push then pop returns the pushed value and restores the stack", func() {
			s := Of(4, 5)
			c := s.Clone()
			c.Push(9)
			So(c.Len(), ShouldEqual, 3)
			So(c.Pop().MustGet(), ShouldEqual, 9)
			So(Equal(c, s), ShouldBeTrue)
		})

		Convey("Peek does not remove the top", func() {
			s := Of("x", "y")
			So(s.Peek().MustGet(), ShouldEqual, "y")
			So(s.Len(), ShouldEqual, 2)
			So(New[string]().Peek().IsAbsent(), ShouldBeTrue)
		})

		Convey("N pushes drain in reverse order followed by exactly one absence", func() {
			s := New[int]()
			for i := range 10 {
				s.Push(i)
			}
			So(drain(s), ShouldResemble, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})

		Convey("Clear empties the stack", func() {
			s := Of(1, 2)
			s.Clear()
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestEqual(t *testing.T) {
	Convey("Equal", t, func() {
		So(Equal(Of(1, 2, 3), Of(1, 2, 3)), ShouldBeTrue)
		So(Equal(Of(1, 2, 3), Of(3, 2, 1)), ShouldBeFalse)
		So(Equal(Of(1, 2), Of(1, 2, 3)), ShouldBeFalse)
		So(Equal(New[int](), nil), ShouldBeTrue)

		Convey("EqualFunc uses the given comparator", func() {
			a := Of(box{n: new(int)})
			b := Of(box{n: new(int)})
			So(EqualFunc(a, b, func(x, y box) bool { return *x.n == *y.n }), ShouldBeTrue)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Clone", t, func() {
		Convey("Pushing onto a clone leaves the original untouched", func() {
			s := Of(1, 2, 3)
			c := s.Clone()
			c.Push(4)
			So(s.Len(), ShouldEqual, 3)
			So(drain(s), ShouldResemble, []int{3, 2, 1})
			So(c.Len(), ShouldEqual, 4)
		})

		Convey("Popping a clone leaves the original untouched", func() {
			s := Of(1, 2)
			c := s.Clone()
			c.Pop()
			c.Push(7)
			So(drain(s), ShouldResemble, []int{2, 1})
		})

		Convey("CloneDeep duplicates elements", func() {
			n := 1
			s := Of(box{n: &n})
			c := CloneDeep(s)
			*c.Peek().MustGet().n = 2
			So(n, ShouldEqual, 1)
			So(CloneDeep(New[box]()).IsEmpty(), ShouldBeTrue)
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Debug formatting", t, func() {
		So(Of(1, 2, 3).String(), ShouldEqual, "Stack{data: [1 2 3]}")
		So(fmt.Sprint(New[int]()), ShouldEqual, "Stack{data: []}")
		So(fmt.Sprintf("%#v", Of(1, 2)), ShouldEqual, "stack.Stack[int]{data: []int{1, 2}}")
		So(fmt.Sprintf("%#v", New[string]()), ShouldEqual, `stack.Stack[string]{data: []string{}}`)
	})
}

func TestReverse(t *testing.T) {
	Convey("Reverse", t, func() {
		Convey("The former bottom becomes the top", func() {
			s := New[int]()
			s.Push(1)
			s.Push(2)
			s.Push(3)
			So(drain(Reverse(s)), ShouldResemble, []int{1, 2, 3})

			Convey("and the input is unmodified", func() {
				So(drain(s), ShouldResemble, []int{3, 2, 1})
			})
		})

		Convey("Reversing an empty stack gives an empty stack", func() {
			So(Reverse(New[int]()).IsEmpty(), ShouldBeTrue)
		})

		Convey("Reversing twice is the identity", func() {
			s := Of("a", "b", "c", "d")
			So(Equal(Reverse(Reverse(s)), s), ShouldBeTrue)
		})

		Convey("ReverseDeep does not share elements with the input", func() {
			a, b := 1, 2
			s := Of(box{n: &a}, box{n: &b})
			r := ReverseDeep(s)
			top := r.Pop().MustGet()
			So(*top.n, ShouldEqual, 1)
			*top.n = 10
			So(a, ShouldEqual, 1)
		})
	})
}
