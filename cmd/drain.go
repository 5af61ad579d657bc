package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(drainCmd)
	addInputFlags(drainCmd)
	drainCmd.Flags().BoolP("reverse", "r", false, "Reverse the stack before draining it")
	drainCmd.Flags().BoolP("json", "j", false, "Print the popped values as a JSON array")
	drainCmd.Flags().StringP("separator", "s", "\n", "Separator printed between popped values")
	lo.Must0(viper.BindPFlag(key.DrainSeparator, drainCmd.Flags().Lookup("separator")))

	drainCmd.SetOut(os.Stdout)
}

var drainCmd = &cobra.Command{
	Use:     "drain [values...]",
	Aliases: []string{"pop"},
	Short:   "Push the given values and pop them until the stack is empty",
	Long: `Push the given values in order, so the last one is on top, then pop until nothing is left.
Values come from the arguments, from --file, or from stdin, one per line.`,
	Example: "  lifo drain 1 2 3\n  seq 10 | lifo drain --reverse",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := readStack(cmd, args)
		handleErr(err)

		reverse := lo.Must(cmd.Flags().GetBool("reverse"))
		if reverse {
			s = stack.Reverse(s)
		}
		log.WithFields(log.Fields{"size": s.Len(), "reverse": reverse}, "draining stack")

		handleErr(drain(cmd.OutOrStdout(), s, drainOptions{
			JSON:      lo.Must(cmd.Flags().GetBool("json")),
			Separator: viper.GetString(key.DrainSeparator),
			ShowEmpty: viper.GetBool(key.DrainShowEmpty),
		}))
	},
}

type drainOptions struct {
	JSON      bool
	Separator string
	ShowEmpty bool
}

// drain pops s until it is empty and writes the values top first.
func drain(w io.Writer, s *stack.Stack[string], opts drainOptions) error {
	popped := popAll(s)

	if opts.JSON {
		return json.NewEncoder(w).Encode(popped)
	}

	for i, v := range popped {
		if i == 0 {
			v = style.Top(v)
		} else {
			_, _ = io.WriteString(w, opts.Separator)
		}
		if _, err := io.WriteString(w, v); err != nil {
			return err
		}
	}
	if len(popped) > 0 {
		_, _ = io.WriteString(w, "\n")
	}

	if opts.ShowEmpty {
		_, err := fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Empty), style.Faint("empty"))
		return err
	}

	return nil
}
