package stackcheck

import (
	"math/rand"

	"github.com/lifo-cli/lifo/stack"
	"github.com/samber/mo"
)

// Config bounds a law run.
type Config struct {
	// MaxCount is the number of generated cases per law.
	MaxCount int
	// MaxSize is the largest generated stack.
	MaxSize int
	Seed    int64
}

// Counterexample is a minimized input on which a law does not hold.
type Counterexample struct {
	// Stack holds the elements bottom first.
	Stack []int `json:"stack"`
	Value int   `json:"value"`
}

// Result is the outcome of checking one law.
type Result struct {
	Law            string                     `json:"law"`
	Description    string                     `json:"description"`
	Runs           int                        `json:"runs"`
	Counterexample mo.Option[Counterexample] `json:"counterexample"`
}

// Passed reports whether the law held on every generated case.
func (r Result) Passed() bool {
	return r.Counterexample.IsAbsent()
}

// Run checks each law against cfg.MaxCount generated stacks, stopping a law at its first
// failure and shrinking the failing stack. Runs are reproducible for a given seed.
func Run(cfg Config, laws ...Law) []Result {
	r := rand.New(rand.NewSource(cfg.Seed))
	values := QuickValues[int]()

	results := make([]Result, 0, len(laws))
	for _, law := range laws {
		result := Result{Law: law.Name, Description: law.Description}

		for range max(cfg.MaxCount, 1) {
			s := Generate(r, r.Intn(max(cfg.MaxSize, 0)+1), values)
			x := values(r)
			result.Runs++

			if law.Holds(s.Clone(), x) {
				continue
			}

			minimal := Minimize(s, func(c *stack.Stack[int]) bool {
				return !law.Holds(c, x)
			})
			result.Counterexample = mo.Some(Counterexample{Stack: Elements(minimal), Value: x})
			break
		}

		results = append(results, result)
	}

	return results
}
