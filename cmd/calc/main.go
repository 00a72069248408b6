package main

import (
	"fmt"
	"io"
	"os"

	"keypad-calculator/internal/observability"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "calc",
		Short:        "Four-function keypad calculator",
		Long:         "calc replays keypad input through a left-to-right calculator, or runs it as an interactive terminal keypad.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			return observability.InitLogger(level, true)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.SyncLogger()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")

	root.AddCommand(
		newEvalCmd(),
		newCountCmd(),
		newTUICmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return root
}
