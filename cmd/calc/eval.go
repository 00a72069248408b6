package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"keypad-calculator/internal/calculator"
	"keypad-calculator/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type evalFlags struct {
	trace   bool
	jsonOut bool
}

func newEvalCmd() *cobra.Command {
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "eval [keys...]",
		Short: "Replay keypad presses and print the display",
		Long: `Replay keypad presses from a cleared calculator and print the final display.

Keys are read one per character: digits, '.', + - * / (or x), '=' and 'c' to clear.
Arguments are joined; with no arguments keys are read from stdin, where each
line break acts as '='. Quote '*' to keep the shell from expanding it.`,
		Example: `  calc eval '2+3*4='
  calc eval 7 + 8 =
  echo '5/0' | calc eval --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, "")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read keys: %w", err)
				}
				input = string(b)
			}
			return runEval(cmd.OutOrStdout(), input, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.trace, "trace", false, "Print the state after every key")
	f.BoolVar(&flags.jsonOut, "json", false, "Print the final state as JSON")

	return cmd
}

func runEval(out io.Writer, input string, flags evalFlags) error {
	keys, err := calculator.ParseSequence(input)
	if err != nil {
		return err
	}

	state, err := calculator.Replay(calculator.NewState(), keys, func(k calculator.Key, s calculator.State) {
		observability.Logger.Debug("key applied",
			zap.String("key", k.String()),
			zap.String("display", s.Display()),
		)
		if flags.trace {
			fmt.Fprintf(out, "%-2s %s\n", k.String(), describe(s))
		}
	})
	if err != nil {
		return err
	}

	if flags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Snapshot())
	}

	fmt.Fprintln(out, state.Display())
	return nil
}

// describe renders a state as "display [operand op]".
func describe(s calculator.State) string {
	if p, ok := s.Phase().(calculator.Pending); ok {
		return fmt.Sprintf("%s [%s %s]", s.Display(), calculator.FormatNumber(p.Operand), p.Operation)
	}
	return s.Display()
}
