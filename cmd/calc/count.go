package main

import (
	"errors"
	"fmt"
	"strings"

	"keypad-calculator/internal/counter"

	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "count [actions...]",
		Short: "Fold counter actions and print the count",
		Long: `Fold counter actions and print the count.

Actions are "increment"/"inc", "decrement"/"dec", or runs of the button
labels "+" and "-". Put "--" before the first action that starts with a
dash so it is not read as a flag.`,
		Example: "  calc count + + -\n  calc count --start 10 -- decrement ---",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := parseActions(args)
			if err != nil {
				return err
			}

			s, err := counter.Dispatch(counter.State{Count: start}, actions...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "Initial count")

	return cmd
}

var errEmptyAction = errors.New("empty action")

// parseActions accepts words ("increment") and runs of button labels ("++-").
func parseActions(args []string) ([]counter.Action, error) {
	var actions []counter.Action
	for i, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return nil, fmt.Errorf("action %d: %w", i, errEmptyAction)
		}
		if strings.Trim(arg, "+-") == "" {
			for _, r := range arg {
				a, err := counter.ParseAction(string(r))
				if err != nil {
					return nil, err
				}
				actions = append(actions, a)
			}
			continue
		}

		a, err := counter.ParseAction(arg)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
