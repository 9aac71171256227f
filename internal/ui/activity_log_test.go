package ui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging"
)

// driveActivity searches for and cancels, then confirms, db/backup.sh
// before confirming a two-script multi-selection.
func driveActivity(t *testing.T, h *Harness, runner *manualRunner) {
	t.Helper()
	h.Keys("/", "b", "a", "k", "enter")
	expectMode(t, h.Model(), ModeNormal)
	h.Keys("enter", "n")
	expectMode(t, h.Model(), ModeNormal)
	h.Keys("enter", "y")
	expectMode(t, h.Model(), ModeRunScript)
	h.Send(launch.FinishedMsg{Request: runner.last(t)})
	h.Keys("enter")
	expectMode(t, h.Model(), ModeNormal)

	h.Keys("m", "space", "j", "space", "enter", "y")
	expectMode(t, h.Model(), ModeRunScript)
}

// activityLines returns the messages of the INFO lines in path with the
// prefix and timestamp removed.
func activityLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if !strings.HasPrefix(line, "INFO ") {
			continue
		}
		// INFO yyyy/mm/dd hh:mm:ss message
		fields := strings.SplitN(line, " ", 4)
		if len(fields) != 4 {
			t.Fatalf("malformed log line %q", line)
		}
		out = append(out, fields[3])
	}
	return out
}

func TestActivityLogRecordsSelectionsAndConfirmations(t *testing.T) {
	h, runner := newTestHarness(t, Options{})
	logPath := filepath.Join(t.TempDir(), "activity.log")
	logging.Configure(logPath)
	logging.SetInfoEnabled(true)
	t.Cleanup(func() { logging.SetInfoEnabled(false) })

	driveActivity(t, h, runner)

	want := []string{
		"Selected script from search: db/backup.sh",
		"Cancelled script execution.",
		"Confirmed execution of script: " + scriptPath(t, h.Model(), "db/backup.sh"),
		"Confirmed execution of 2 scripts.",
	}
	if got := activityLines(t, logPath); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected activity log\nwant %q\ngot  %q", want, got)
	}
	if !runner.last(t).Log {
		t.Fatalf("expected launches to carry the log flag")
	}
}

func TestActivityLogSilentWhenDisabled(t *testing.T) {
	h, runner := newTestHarness(t, Options{})
	logPath := filepath.Join(t.TempDir(), "activity.log")
	logging.Configure(logPath)
	logging.SetInfoEnabled(false)

	driveActivity(t, h, runner)

	if _, err := os.Stat(logPath); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
	if runner.last(t).Log {
		t.Fatalf("expected launches without the log flag")
	}
}
