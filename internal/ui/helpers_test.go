package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

// manualRunner records launches and leaves finishing them to the test.
type manualRunner struct {
	requests []launch.Request
}

func (r *manualRunner) Name() string { return "manual" }

func (r *manualRunner) Launch(req launch.Request) tea.Cmd {
	r.requests = append(r.requests, req)
	return func() tea.Msg { return nil }
}

func (r *manualRunner) paths() []string {
	out := make([]string, len(r.requests))
	for i, req := range r.requests {
		out[i] = req.Path
	}
	return out
}

func (r *manualRunner) last(t *testing.T) launch.Request {
	t.Helper()
	if len(r.requests) == 0 {
		t.Fatalf("expected a launch request")
	}
	return r.requests[len(r.requests)-1]
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	root := testutil.WriteCatalog(t, map[string]string{
		"db/backup.sh":       "#!/bin/sh\n# dump the database\npg_dumpall > /tmp/all.sql\n",
		"db/restore.sh":      testutil.Script("restore a dump"),
		"net/ping.sh":        testutil.Script("ping hosts"),
		"net/trace-route.sh": testutil.Script(""),
	})
	cat, err := catalog.Load(root)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func newTestHarness(t *testing.T, opts Options) (*Harness, *manualRunner) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	runner := &manualRunner{}
	if opts.Runner == nil {
		opts.Runner = runner
	}
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	h := NewHarness(NewModel(newTestCatalog(t), opts))
	h.Init()
	return h, runner
}

func scriptPath(t *testing.T, m *Model, display string) string {
	t.Helper()
	script, err := m.catalog.Resolve(display)
	if err != nil {
		t.Fatalf("resolve %s: %v", display, err)
	}
	return script.Path
}

func expectMode(t *testing.T, m *Model, want Mode) {
	t.Helper()
	if m.Mode() != want {
		t.Fatalf("expected mode %s, got %s", want, m.Mode())
	}
}
