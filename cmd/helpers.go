package cmd

import (
	"errors"
	"fmt"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// errUnknown reports an unrecognised name together with the closest known one.
func errUnknown(kind, name string, known []string) error {
	if len(known) == 0 {
		return fmt.Errorf("unknown %s %s", kind, name)
	}

	closest := lo.MinBy(known, func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	msg := fmt.Sprintf(
		"unknown %s %s, did you mean %s?",
		kind,
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)

	return errors.New(msg)
}

// popAll drains s and returns its values top first.
func popAll[T any](s *stack.Stack[T]) []T {
	values := make([]T, 0, s.Len())
	for {
		v, ok := s.Pop().Get()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

// readStack builds a stack from the command's value sources, last value on top.
func readStack(cmd *cobra.Command, args []string) (*stack.Stack[string], error) {
	in := util.Input{
		Args: args,
		File: lo.Must(cmd.Flags().GetString("file")),
	}
	if util.StdinPiped() {
		in.Stdin = cmd.InOrStdin()
	}

	values, err := util.Values(in)
	if err != nil {
		return nil, err
	}

	return stack.Of(values...), nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read values from a file, one per line")
}
