package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/script-popup/internal/app"
	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/spf13/cobra"
)

const suggestionLimit = 3

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <category/name>",
		Short: "Run one script without opening the popup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.App.ScriptsDir)
			if err != nil {
				return err
			}
			script, err := resolve(cat, args[0])
			if err != nil {
				return err
			}
			runner, err := app.Runner(cfg.App)
			if err != nil {
				return err
			}

			req := launch.NewRequest(script.Path, script.Display(), logging.InfoEnabled())
			logging.Info("Running script from the command line: %s", script.Display())
			done := launch.RunAttached(runner, req, launch.Stdio{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			})
			switch {
			case done.Err != nil:
				return fmt.Errorf("run %s: %w", script.Display(), done.Err)
			case done.ExitCode != 0:
				return &ExitError{
					Code:    done.ExitCode,
					Message: fmt.Sprintf("%s exited with status %d", script.Display(), done.ExitCode),
				}
			case done.Detached:
				fmt.Fprintf(cmd.OutOrStdout(), "Started %s in a new tmux window\n", script.Display())
			}
			return nil
		},
	}
}

// resolve finds the script named by display and suggests close names when
// there is none.
func resolve(cat *catalog.Catalog, display string) (catalog.Script, error) {
	script, err := cat.Resolve(display)
	if err == nil {
		return script, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return script, err
	}
	if suggestions := cat.Suggest(display, suggestionLimit); len(suggestions) > 0 {
		return script, fmt.Errorf("%w: %s (did you mean %s?)", err, display, strings.Join(suggestions, ", "))
	}
	return script, fmt.Errorf("%w: %s", err, display)
}
