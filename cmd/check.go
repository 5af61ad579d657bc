package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/stackcheck"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/indent"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func lawNames() []string {
	return lo.Map(stackcheck.Laws(), func(l stackcheck.Law, _ int) string {
		return l.Name
	})
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("count", "n", 100, "Number of generated stacks per law")
	lo.Must0(viper.BindPFlag(key.CheckMaxCount, checkCmd.Flags().Lookup("count")))

	checkCmd.Flags().Int("max-size", 64, "Largest generated stack")
	lo.Must0(viper.BindPFlag(key.CheckMaxSize, checkCmd.Flags().Lookup("max-size")))

	checkCmd.Flags().Int64("seed", 0, "Random seed; defaults to the current time")
	checkCmd.Flags().StringSliceP("law", "l", []string{}, "Only check the named laws")
	lo.Must0(checkCmd.RegisterFlagCompletionFunc("law", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lawNames(), cobra.ShellCompDirectiveNoFileComp
	}))
	checkCmd.Flags().BoolP("json", "j", false, "Print the results as JSON")

	checkCmd.SetOut(os.Stdout)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the stack laws against randomly generated stacks",
	Long: `Check the stack laws against randomly generated stacks of integers.
A failing law is reported with the smallest stack that still breaks it.`,
	Example: "  lifo check --count 1000 --law double-reverse",
	Run: func(cmd *cobra.Command, args []string) {
		seed := lo.Must(cmd.Flags().GetInt64("seed"))
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		laws, err := selectLaws(lo.Must(cmd.Flags().GetStringSlice("law")))
		handleErr(err)

		cfg := stackcheck.Config{
			MaxCount: viper.GetInt(key.CheckMaxCount),
			MaxSize:  viper.GetInt(key.CheckMaxSize),
			Seed:     seed,
		}
		log.Infof("checking %s with seed %d", util.Quantify(len(laws), "law", "laws"), seed)

		results := stackcheck.Run(cfg, laws...)
		handleErr(report(cmd.OutOrStdout(), results, seed, lo.Must(cmd.Flags().GetBool("json"))))

		failed := lo.CountBy(results, func(r stackcheck.Result) bool { return !r.Passed() })
		if failed > 0 {
			handleErr(fmt.Errorf("%s failed (seed %d)", util.Quantify(failed, "law", "laws"), seed))
		}
	},
}

// selectLaws returns the laws with the given names, or all of them when names is empty.
func selectLaws(names []string) ([]stackcheck.Law, error) {
	all := stackcheck.Laws()
	if len(names) == 0 {
		return all, nil
	}

	byName := lo.KeyBy(all, func(l stackcheck.Law) string { return l.Name })
	selected := make([]stackcheck.Law, 0, len(names))
	for _, name := range lo.Uniq(names) {
		law, ok := byName[name]
		if !ok {
			return nil, errUnknown("law", name, lawNames())
		}
		selected = append(selected, law)
	}

	return selected, nil
}

func report(w io.Writer, results []stackcheck.Result, seed int64, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(struct {
			Seed    int64               `json:"seed"`
			Results []stackcheck.Result `json:"results"`
		}{seed, results})
	}

	width := lo.Max(lo.Map(results, func(r stackcheck.Result, _ int) int { return len(r.Law) }))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", style.Faint(fmt.Sprintf("seed %d", seed)))
	for _, r := range results {
		name := r.Law + strings.Repeat(" ", width-len(r.Law))

		ce, failed := r.Counterexample.Get()
		if !failed {
			fmt.Fprintf(&b, "%s %s  %s\n", style.Pass("PASS"), name, style.Faint(util.Quantify(r.Runs, "run", "runs")))
			continue
		}

		fmt.Fprintf(&b, "%s %s  %s\n", style.Fail("FAIL"), name, r.Description)
		detail := fmt.Sprintf("stack: %v\nvalue: %d", stack.Of(ce.Stack...), ce.Value)
		fmt.Fprintln(&b, indent.String(detail, 7))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
