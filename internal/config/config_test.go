package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	Register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return Load(cmd, cmd.Flags().Args())
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(envConfig, "")
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "script-popup", "scripts"), cfg.App.ScriptsDir)
	assert.Equal(t, "default", cfg.App.Theme)
	assert.Equal(t, "auto", cfg.App.Drain)
	assert.Equal(t, "auto", cfg.App.Launcher)
	assert.Equal(t, "/bin/sh", cfg.App.Shell)
	assert.Zero(t, cfg.App.Width)
	assert.False(t, cfg.Logging.Trace)
	assert.Empty(t, cfg.File)
	assert.NoError(t, Validate(cfg))
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "script-popup", "config.toml"), `
scripts_dir = "/srv/scripts"
width = 70
theme = "gruvbox"
drain = "confirm"
footer = true
`)
	t.Setenv("SCRIPT_POPUP_WIDTH", "80")
	t.Setenv("SCRIPT_POPUP_THEME_LOCKED", "true")

	cfg, err := load(t, "--theme", "nord", "extra")
	require.NoError(t, err)
	assert.Equal(t, "/srv/scripts", cfg.App.ScriptsDir)
	assert.Equal(t, 80, cfg.App.Width, "env beats file")
	assert.Equal(t, "nord", cfg.App.Theme, "flag beats file")
	assert.Equal(t, "confirm", cfg.App.Drain)
	assert.True(t, cfg.App.ShowFooter)
	assert.True(t, cfg.App.ThemeLocked)
	assert.Equal(t, filepath.Join(dir, "script-popup", "config.toml"), cfg.File)
	assert.Equal(t, []string{"extra"}, cfg.Args)
	assert.Equal(t, "nord", cfg.Flags[KeyTheme])
}

func TestLoadExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "popup.toml")
	writeConfig(t, path, "log = true\nlog_file = \"/tmp/popup.log\"\nallow_root = true\n")

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Info)
	assert.Equal(t, "/tmp/popup.log", cfg.Logging.FilePath)
	assert.True(t, cfg.App.AllowRoot)

	t.Setenv(envConfig, path)
	cfg, err = load(t)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "script-popup", "config.toml"), "width = [\n")
	_, err := load(t)
	assert.Error(t, err)
}

func TestLoadExpandsHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg, err := load(t, "--scripts-dir", "~/scripts")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scripts"), cfg.App.ScriptsDir)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := load(t)
	require.NoError(t, err)

	cases := map[string]func(*Config){
		"width":       func(c *Config) { c.App.Width = -1 },
		"height":      func(c *Config) { c.App.Height = -2 },
		"scripts dir": func(c *Config) { c.App.ScriptsDir = " " },
		"drain":       func(c *Config) { c.App.Drain = "later" },
		"launcher":    func(c *Config) { c.App.Launcher = "ssh" },
		"theme":       func(c *Config) { c.App.Theme = "neon" },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		assert.Error(t, Validate(cfg), name)
	}
}
