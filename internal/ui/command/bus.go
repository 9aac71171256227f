package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrNoRunner  = errors.New("no launcher configured")
	ErrNoCommand = errors.New("launcher produced no command")
)

// Bus coordinates script launches.
type Bus struct {
	runner launch.Runner
}

// New initialises a command bus around runner.
func New(runner launch.Runner) *Bus {
	return &Bus{runner: runner}
}

// Runner returns the launcher in use.
func (b *Bus) Runner() launch.Runner {
	return b.runner
}

// Execute wraps a launch into a Bubble Tea command while emitting trace
// logs. The command always ends in a launch.FinishedMsg, or in the
// runner's own message when it hands the terminal over.
func (b *Bus) Execute(req launch.Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Display)
	if b == nil || b.runner == nil {
		events.Command.Skip(req.ID, req.Display)
		return failed(req, ErrNoRunner)
	}
	cmd := b.runner.Launch(req)
	if cmd == nil {
		events.Command.NoOp(req.ID, req.Display)
		return failed(req, ErrNoCommand)
	}
	return func() tea.Msg {
		msg := cmd()
		events.Command.Result(req.ID, req.Display, fmt.Sprintf("%T", msg))
		return msg
	}
}

func failed(req launch.Request, err error) tea.Cmd {
	return func() tea.Msg {
		return launch.FinishedMsg{Request: req, Err: err, ExitCode: -1}
	}
}
