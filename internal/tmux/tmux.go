// Package tmux opens scripts in new tmux windows over a control-mode
// connection to the server.
package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Window describes a new-window invocation.
type Window struct {
	Name    string
	Dir     string
	Command string
}

var newWindowFn = func(socketPath string, w Window) error {
	client, err := gotmux.NewTmux(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	_, err = client.Command("new-window", "-n", w.Name, "-c", w.Dir, w.Command)
	return err
}

// NewWindow opens a tmux window running w.Command.
func NewWindow(socketPath string, w Window) error {
	if strings.TrimSpace(w.Command) == "" {
		return errors.New("tmux: window command required")
	}
	if strings.TrimSpace(w.Name) == "" {
		w.Name = "script"
	}
	if strings.TrimSpace(w.Dir) == "" {
		w.Dir = "."
	}
	if err := newWindowFn(socketPath, w); err != nil {
		return fmt.Errorf("tmux new-window %s: %w", w.Name, err)
	}
	return nil
}

// InsideTmux reports whether the process runs inside a tmux client.
func InsideTmux() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

// ResolveSocketPath picks the tmux server socket: the flag value, then
// SCRIPT_POPUP_SOCKET, then $TMUX, then the default per-user socket.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("SCRIPT_POPUP_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
