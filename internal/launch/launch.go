// Package launch turns a confirmed script path into a running process and
// reports back to the UI when it is done.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// Kind selects a Runner implementation.
type Kind string

const (
	KindExec Kind = "exec"
	KindTmux Kind = "tmux"
	KindAuto Kind = "auto"
)

// DefaultShell runs scripts when no shell is configured.
const DefaultShell = "/bin/sh"

// ParseKind validates a launcher name.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindExec, "":
		return KindExec, nil
	case KindTmux:
		return KindTmux, nil
	case KindAuto:
		return KindAuto, nil
	default:
		return "", fmt.Errorf("unknown launcher %q (want exec, tmux or auto)", value)
	}
}

// Request is one script launch. A fresh ID is minted for every launch so
// trace lines from queued runs can be told apart.
type Request struct {
	ID      string
	Path    string
	Display string
	Log     bool
}

// NewRequest builds a request for the script at path.
func NewRequest(path, display string, log bool) Request {
	if display == "" {
		display = filepath.Base(path)
	}
	return Request{
		ID:      uuid.NewString(),
		Path:    path,
		Display: display,
		Log:     log,
	}
}

// FinishedMsg reports the end of a launch. Detached is set when the script
// keeps running outside the popup and no exit status is known.
type FinishedMsg struct {
	Request  Request
	Err      error
	ExitCode int
	Detached bool
}

// Failed reports whether the launch or the script failed.
func (m FinishedMsg) Failed() bool {
	return m.Err != nil || m.ExitCode != 0
}

// Runner starts a script. The returned command delivers a FinishedMsg.
type Runner interface {
	Name() string
	Launch(req Request) tea.Cmd
}

// CommandLine renders the shell invocation for req, quoted for display
// and for tmux.
func CommandLine(shell string, req Request) string {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	return shellquote.Join(shell, req.Path)
}

func finished(req Request, err error) FinishedMsg {
	msg := FinishedMsg{Request: req}
	if err == nil {
		return msg
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg.ExitCode = exitErr.ExitCode()
		return msg
	}
	msg.Err = err
	msg.ExitCode = -1
	return msg
}
