package stackcheck

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		r := rand.New(rand.NewSource(1))

		Convey("builds a stack of exactly the requested size", func() {
			counter := 0
			s := Generate(r, 5, func(*rand.Rand) int {
				counter++
				return counter
			})
			So(s.Len(), ShouldEqual, 5)
			So(Elements(s), ShouldResemble, []int{1, 2, 3, 4, 5})
		})

		Convey("treats a negative size as empty", func() {
			So(Generate(r, -3, QuickValues[int]()).IsEmpty(), ShouldBeTrue)
		})

		Convey("Arbitrary stays within the requested bound", func() {
			for range 50 {
				v := Arbitrary[int]{}.Generate(r, 8).Interface().(Arbitrary[int])
				So(v.Len(), ShouldBeBetweenOrEqual, 0, 8)
			}
		})
	})
}

func TestElements(t *testing.T) {
	Convey("Elements lists bottom first and leaves the stack intact", t, func() {
		s := stack.Of("a", "b", "c")
		So(Elements(s), ShouldResemble, []string{"a", "b", "c"})
		So(s.Len(), ShouldEqual, 3)
		So(Elements(stack.New[string]()), ShouldBeEmpty)
	})
}

func TestShrink(t *testing.T) {
	Convey("Shrink", t, func() {
		Convey("yields nothing for an empty stack", func() {
			So(collect(Shrink(stack.New[int]())), ShouldBeEmpty)
		})

		Convey("yields only the empty stack for a single element", func() {
			got := collect(Shrink(stack.Of(7)))
			So(len(got), ShouldEqual, 1)
			So(got[0].IsEmpty(), ShouldBeTrue)
		})

		Convey("yields strictly smaller stacks and leaves the input alone", func() {
			s := stack.Of(1, 2, 3, 4)
			got := collect(Shrink(s))
			So(len(got), ShouldEqual, 1+2+4)
			for _, c := range got {
				So(c.Len(), ShouldBeLessThan, 4)
			}
			So(Elements(got[1]), ShouldResemble, []int{1, 2})
			So(Elements(got[2]), ShouldResemble, []int{3, 4})
			So(Elements(got[3]), ShouldResemble, []int{2, 3, 4})
			So(Elements(s), ShouldResemble, []int{1, 2, 3, 4})
		})
	})
}

func TestMinimize(t *testing.T) {
	Convey("Minimize", t, func() {
		Convey("reduces to the smallest failing size", func() {
			s := stack.Of(5, 4, 3, 2, 1, 0, 9, 8)
			got := Minimize(s, func(c *stack.Stack[int]) bool { return c.Len() >= 3 })
			So(got.Len(), ShouldEqual, 3)
		})

		Convey("keeps the element that causes the failure", func() {
			s := stack.Of(1, 2, 42, 3, 4)
			got := Minimize(s, func(c *stack.Stack[int]) bool {
				return lo.Contains(Elements(c), 42)
			})
			So(Elements(got), ShouldResemble, []int{42})
		})

		Convey("returns the input when nothing smaller fails", func() {
			s := stack.Of(1)
			got := Minimize(s, func(c *stack.Stack[int]) bool { return c.Len() == 1 })
			So(got, ShouldEqual, s)
		})
	})
}

func TestLaws(t *testing.T) {
	Convey("Every law holds for the stack implementation", t, func() {
		results := Run(Config{MaxCount: 200, MaxSize: 32, Seed: 42}, Laws()...)
		So(len(results), ShouldEqual, len(Laws()))
		for _, r := range results {
			So(r.Passed(), ShouldBeTrue)
			So(r.Runs, ShouldEqual, 200)
		}
	})

	Convey("A broken law is reported with a shrunk counterexample", t, func() {
		broken := Law{
			Name: "short",
			Holds: func(s *stack.Stack[int], _ int) bool {
				return s.Len() < 2
			},
		}
		results := Run(Config{MaxCount: 100, MaxSize: 16, Seed: 7}, broken)
		So(len(results), ShouldEqual, 1)
		So(results[0].Passed(), ShouldBeFalse)
		So(len(results[0].Counterexample.MustGet().Stack), ShouldEqual, 2)
	})
}

func collect[T any](seq iter.Seq[*stack.Stack[T]]) []*stack.Stack[T] {
	var out []*stack.Stack[T]
	for s := range seq {
		out = append(out, s)
	}
	return out
}
