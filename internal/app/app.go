package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/atomicstack/script-popup/internal/tmux"
	"github.com/atomicstack/script-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"
)

// Config describes user-provided application options.
type Config struct {
	ScriptsDir  string
	SocketPath  string
	Width       int
	Height      int
	ShowFooter  bool
	Theme       string
	ThemeLocked bool
	Drain       string
	Launcher    string
	Shell       string
	AllowRoot   bool
	LockPath    string
}

// ErrLocked is returned when another instance holds the lock.
var ErrLocked = errors.New("another script-popup instance is already running")

var (
	geteuid    = os.Geteuid
	runProgram = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := program.Run()
		return err
	}
)

// DefaultLockPath is the lock file used when Config.LockPath is empty.
func DefaultLockPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("script-popup-%d.lock", os.Getuid()))
}

// Lock takes the single-instance lock. The returned function releases it.
func Lock(path string) (func(), error) {
	if path == "" {
		path = DefaultLockPath()
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return func() { _ = lock.Unlock() }, nil
}

// Runner resolves the configured launcher.
func Runner(cfg Config) (launch.Runner, error) {
	kind, err := launch.ParseKind(cfg.Launcher)
	if err != nil {
		return nil, err
	}
	socket := ""
	if kind == launch.KindTmux || (kind == launch.KindAuto && tmux.InsideTmux()) {
		socket, err = tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
	}
	return launch.Select(kind, cfg.Shell, socket), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	unlock, err := Lock(cfg.LockPath)
	if err != nil {
		return err
	}
	defer unlock()

	cat, err := catalog.Load(cfg.ScriptsDir)
	if err != nil {
		return fmt.Errorf("load scripts from %s: %w", cfg.ScriptsDir, err)
	}
	events.App.Catalog(cat.Root(), len(cat.Categories()), cat.Len())

	drain, err := ui.ParseDrainPolicy(cfg.Drain)
	if err != nil {
		return err
	}
	runner, err := Runner(cfg)
	if err != nil {
		return err
	}

	model := ui.NewModel(cat, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Theme:       cfg.Theme,
		ThemeLocked: cfg.ThemeLocked,
		Drain:       drain,
		RootWarning: geteuid() == 0 && !cfg.AllowRoot,
		Runner:      runner,
	})
	err = runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
