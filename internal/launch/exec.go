package launch

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/script-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// ExecRunner hands the terminal to the script and takes it back once the
// script exits.
type ExecRunner struct {
	Shell string
}

var execProcessFn = tea.ExecProcess

func (r ExecRunner) Name() string { return string(KindExec) }

// Command builds the process for req. The script runs from its own
// directory.
func (r ExecRunner) Command(req Request) *exec.Cmd {
	shell := r.Shell
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	cmd := exec.Command(shell, req.Path) //nolint:gosec
	cmd.Dir = filepath.Dir(req.Path)
	return cmd
}

// Launch implements Runner.
func (r ExecRunner) Launch(req Request) tea.Cmd {
	events.Launch.Start(req.ID, req.Path, r.Name())
	return execProcessFn(r.Command(req), func(err error) tea.Msg {
		msg := finished(req, err)
		events.Launch.Finish(req.ID, req.Path, msg.ExitCode, msg.Err)
		return msg
	})
}
