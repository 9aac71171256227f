package launch

import (
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/script-popup/internal/logging/events"
)

// Stdio connects a script run outside the popup to the caller's streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunAttached runs req to completion without a Bubble Tea program. Runners
// that detach report as soon as the script has started.
func RunAttached(runner Runner, req Request, stdio Stdio) FinishedMsg {
	if r, ok := runner.(ExecRunner); ok {
		events.Launch.Start(req.ID, req.Path, r.Name())
		cmd := r.Command(req)
		cmd.Stdin, cmd.Stdout, cmd.Stderr = stdio.In, stdio.Out, stdio.Err
		msg := finished(req, cmd.Run())
		events.Launch.Finish(req.ID, req.Path, msg.ExitCode, msg.Err)
		return msg
	}
	if runner == nil {
		return FinishedMsg{Request: req, Err: errors.New("no launcher configured"), ExitCode: -1}
	}
	cmd := runner.Launch(req)
	if cmd == nil {
		return FinishedMsg{Request: req, Err: fmt.Errorf("%s launcher produced no command", runner.Name()), ExitCode: -1}
	}
	msg := cmd()
	if done, ok := msg.(FinishedMsg); ok {
		return done
	}
	return FinishedMsg{Request: req, Err: fmt.Errorf("unexpected launcher result %T", msg), ExitCode: -1}
}
