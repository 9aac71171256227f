package cli

import (
	"errors"
	"fmt"

	"github.com/atomicstack/script-popup/internal/app"
)

// Exit codes reported by the binary.
const (
	ExitSuccess = 0
	ExitRuntime = 1
	ExitConfig  = 2
	ExitLocked  = 3
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func configError(err error) error {
	return &ExitError{Code: ExitConfig, Message: "configuration error", Err: err}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, app.ErrLocked) {
		return ExitLocked
	}
	return ExitRuntime
}
