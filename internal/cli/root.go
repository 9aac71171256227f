// Package cli wires the command line: the popup itself plus the list and
// run subcommands.
package cli

import (
	"fmt"

	"github.com/atomicstack/script-popup/internal/app"
	"github.com/atomicstack/script-popup/internal/config"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/spf13/cobra"
)

var runApp = app.Run

// NewRootCommand builds the script-popup command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "script-popup",
		Short: "Browse and launch scripts from a terminal popup",
		Long: `script-popup browses a directory of scripts grouped by category and
launches them after a confirmation.

Every sub-directory of the scripts directory is a category and every *.sh
file inside it is a script. Descriptions come from a desc.toml file in the
category directory, or from the leading comment of the script.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args)
			if err != nil {
				return err
			}
			err = runApp(cfg.App)
			events.App.Exit(err)
			if err != nil {
				logging.Error(err)
			}
			return err
		},
	}
	config.Register(root)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError(err)
	})
	root.AddCommand(newListCommand(), newRunCommand())
	return root
}

// setup resolves configuration and points logging at it.
func setup(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.Load(cmd, args)
	if err != nil {
		return cfg, configError(err)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, configError(err)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	logging.SetInfoEnabled(cfg.Logging.Info)
	traceStartup(cfg)
	return cfg, nil
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitSuccess
}
