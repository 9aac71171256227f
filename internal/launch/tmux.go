package launch

import (
	"path/filepath"
	"strings"

	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/atomicstack/script-popup/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// TmuxRunner opens each script in a new tmux window. The popup does not
// wait for the script, so results are always Detached.
type TmuxRunner struct {
	Socket string
	Shell  string
}

var newWindowFn = tmux.NewWindow

func (r TmuxRunner) Name() string { return string(KindTmux) }

// Launch implements Runner.
func (r TmuxRunner) Launch(req Request) tea.Cmd {
	events.Launch.Start(req.ID, req.Path, r.Name())
	window := tmux.Window{
		Name:    strings.TrimSuffix(filepath.Base(req.Path), filepath.Ext(req.Path)),
		Dir:     filepath.Dir(req.Path),
		Command: CommandLine(r.Shell, req),
	}
	socket := r.Socket
	return func() tea.Msg {
		err := newWindowFn(socket, window)
		msg := FinishedMsg{Request: req, Detached: err == nil}
		if err != nil {
			msg.Err = err
			msg.ExitCode = -1
		}
		events.Launch.Finish(req.ID, req.Path, msg.ExitCode, msg.Err)
		return msg
	}
}

// Select picks a runner for kind. Auto prefers tmux when running inside a
// tmux client.
func Select(kind Kind, shell, socket string) Runner {
	if kind == KindAuto {
		if tmux.InsideTmux() {
			kind = KindTmux
		} else {
			kind = KindExec
		}
	}
	if kind == KindTmux {
		return TmuxRunner{Socket: socket, Shell: shell}
	}
	return ExecRunner{Shell: shell}
}
