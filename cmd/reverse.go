package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reverseCmd)
	addInputFlags(reverseCmd)
	reverseCmd.Flags().BoolP("json", "j", false, "Print both stacks as JSON arrays, top first")

	reverseCmd.SetOut(os.Stdout)
}

var reverseCmd = &cobra.Command{
	Use:     "reverse [values...]",
	Short:   "Show a stack next to its reversal",
	Example: "  lifo reverse a b c",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := readStack(cmd, args)
		handleErr(err)

		handleErr(showReverse(cmd.OutOrStdout(), s, lo.Must(cmd.Flags().GetBool("json"))))
	},
}

// showReverse prints s and stack.Reverse(s). s is left untouched.
func showReverse(w io.Writer, s *stack.Stack[string], asJSON bool) error {
	reversed := stack.Reverse(s)

	if asJSON {
		return json.NewEncoder(w).Encode(struct {
			Input    []string `json:"input"`
			Reversed []string `json:"reversed"`
		}{
			Input:    popAll(s.Clone()),
			Reversed: popAll(reversed),
		})
	}

	_, err := fmt.Fprintf(w, "%s %v\n%s %v\n",
		style.Faint("input   "), s,
		style.Faint("reversed"), reversed,
	)
	return err
}
