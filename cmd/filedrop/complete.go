package main

import (
	"fmt"

	"filedrop/internal/completion"

	"github.com/spf13/cobra"
)

// newCompleteCmd exposes the completion engine for scripting and debugging.
func newCompleteCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "complete <input> [current]",
		Short: "Print the next completion for a path",
		Long: `Print what one Tab press would produce for input when the field
currently shows current (defaults to input). With --all, print every
candidate instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := completion.New(completion.Options{Exclude: opts.cfg.Completion.Exclude})
			if err != nil {
				return err
			}

			input := args[0]
			if all {
				candidates, err := engine.Candidates(input)
				if err != nil {
					return err
				}
				for _, c := range candidates {
					fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			}

			current := input
			if len(args) == 2 {
				current = args[1]
			}
			fmt.Fprintln(cmd.OutOrStdout(), engine.Next(input, current))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print all candidates in cycle order")

	return cmd
}
