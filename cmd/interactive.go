package cmd

import (
	"github.com/lifo-cli/lifo/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive [values...]",
	Aliases: []string{"tui", "i"},
	Short:   "Push and pop values in an interactive terminal session",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(&tui.Options{Values: args}))
	},
}
