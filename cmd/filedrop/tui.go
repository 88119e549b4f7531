package main

import (
	"os"

	"filedrop/internal/app"
	"filedrop/internal/completion"
	"filedrop/internal/content"
	"filedrop/internal/picker"
	"filedrop/internal/tui"

	"github.com/spf13/cobra"
)

// newTUICmd represents the TUI command
func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long: `Start the terminal version of the selector. Ctrl+O opens the native
file dialog; pasting a file path, as most terminals do for dropped
files, loads that file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := completion.New(completion.Options{Exclude: opts.cfg.Completion.Exclude})
			if err != nil {
				return err
			}
			controller := app.NewController(engine, content.NewLoader())

			start, _ := os.Getwd()
			m := tui.New(controller, engine, picker.Native{StartDir: start})
			return tui.Run(m)
		},
	}
}
