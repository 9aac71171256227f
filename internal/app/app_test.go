package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/testutil"
	"github.com/atomicstack/script-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubProgram(t *testing.T, uid int, result error) **ui.Model {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "app.log"))
	t.Cleanup(func() { logging.Configure("") })

	var captured *ui.Model
	origRun, origUID := runProgram, geteuid
	runProgram = func(model tea.Model) error {
		captured = model.(*ui.Model)
		return result
	}
	geteuid = func() int { return uid }
	t.Cleanup(func() {
		runProgram = origRun
		geteuid = origUID
	})
	return &captured
}

func testConfig(t *testing.T) Config {
	t.Helper()
	root := testutil.WriteCatalog(t, map[string]string{
		"db/backup.sh": testutil.Script("dump"),
	})
	return Config{
		ScriptsDir: root,
		Launcher:   "exec",
		LockPath:   filepath.Join(t.TempDir(), "popup.lock"),
	}
}

func TestLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popup.lock")
	unlock, err := Lock(path)
	require.NoError(t, err)

	_, err = Lock(path)
	assert.ErrorIs(t, err, ErrLocked)

	unlock()
	again, err := Lock(path)
	require.NoError(t, err)
	again()
}

func TestRunStartsProgram(t *testing.T) {
	model := stubProgram(t, 1000, nil)
	cfg := testConfig(t)
	cfg.Drain = "confirm"

	require.NoError(t, Run(cfg))
	require.NotNil(t, *model)
	assert.Equal(t, ui.ModeNormal, (*model).Mode())
}

func TestRunShowsRootWarning(t *testing.T) {
	model := stubProgram(t, 0, nil)
	require.NoError(t, Run(testConfig(t)))
	assert.Equal(t, ui.ModeRootWarning, (*model).Mode())

	model = stubProgram(t, 0, nil)
	cfg := testConfig(t)
	cfg.AllowRoot = true
	require.NoError(t, Run(cfg))
	assert.Equal(t, ui.ModeNormal, (*model).Mode())
}

func TestRunTreatsKilledProgramAsExit(t *testing.T) {
	stubProgram(t, 1000, tea.ErrProgramKilled)
	assert.NoError(t, Run(testConfig(t)))

	boom := errors.New("boom")
	stubProgram(t, 1000, boom)
	assert.ErrorIs(t, Run(testConfig(t)), boom)
}

func TestRunFailsWhileLocked(t *testing.T) {
	model := stubProgram(t, 1000, nil)
	cfg := testConfig(t)
	unlock, err := Lock(cfg.LockPath)
	require.NoError(t, err)
	defer unlock()

	assert.ErrorIs(t, Run(cfg), ErrLocked)
	assert.Nil(t, *model)
}

func TestRunRejectsMissingScriptsDir(t *testing.T) {
	stubProgram(t, 1000, nil)
	cfg := testConfig(t)
	cfg.ScriptsDir = filepath.Join(t.TempDir(), "missing")
	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load scripts")
}

func TestRunner(t *testing.T) {
	r, err := Runner(Config{Launcher: "exec", Shell: "/bin/bash"})
	require.NoError(t, err)
	assert.Equal(t, launch.ExecRunner{Shell: "/bin/bash"}, r)

	r, err = Runner(Config{Launcher: "tmux", SocketPath: "/tmp/tmux-test/default"})
	require.NoError(t, err)
	assert.Equal(t, launch.TmuxRunner{Socket: "/tmp/tmux-test/default"}, r)

	_, err = Runner(Config{Launcher: "screen"})
	assert.Error(t, err)
}
