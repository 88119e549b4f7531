package main

import (
	"filedrop/internal/config"
	"filedrop/internal/gui"
	"filedrop/internal/log"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the config they resolve to.
type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it opens the
// desktop window.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "filedrop",
		Short: "Pick a file by typing, dialog or drag-and-drop and view it",
		Long: `filedrop opens a window with a path field and a text viewer.

Type a path and press Tab to cycle through completions, Enter to load
the file. "Open file…" shows the native file dialog, and files dropped
onto the window are loaded directly. Edits in the viewer stay in memory.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ui, err := gui.NewFactory(opts.cfg).Create()
			if err != nil {
				return err
			}
			ui.Run()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newCompleteCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load resolves the config and sets up logging. A broken config file is
// reported and replaced by the defaults.
func (o *rootOptions) load() {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		o.cfg = config.New()
	}

	logOpts := []log.Option{log.WithLevel(log.LevelFromEnv(o.cfg.Log.Level))}
	if o.cfg.Log.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(o.debug)

	if err != nil {
		log.LogWithError(err).Warn("could not load config, using default settings")
	}
}
