package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/script-popup/internal/app"
	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/theme"
	"github.com/atomicstack/script-popup/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
	Info     bool
}

const (
	envPrefix  = "SCRIPT_POPUP"
	envConfig  = "SCRIPT_POPUP_CONFIG"
	configName = "config"
	appDirName = "script-popup"
)

// Configuration keys. Flags use the same names with dashes.
const (
	KeyScriptsDir  = "scripts_dir"
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyFooter      = "footer"
	KeyTrace       = "trace"
	KeyLog         = "log"
	KeyLogFile     = "log_file"
	KeyTheme       = "theme"
	KeyThemeLocked = "theme_locked"
	KeyDrain       = "drain"
	KeyLauncher    = "launcher"
	KeySocket      = "socket"
	KeyShell       = "shell"
	KeyAllowRoot   = "allow_root"
)

var keys = []string{
	KeyScriptsDir, KeyWidth, KeyHeight, KeyFooter, KeyTrace, KeyLog, KeyLogFile,
	KeyTheme, KeyThemeLocked, KeyDrain, KeyLauncher, KeySocket, KeyShell, KeyAllowRoot,
}

// FlagName returns the command-line spelling of key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Register declares the persistent flags every command understands.
func Register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a TOML config file")
	flags.String(FlagName(KeyScriptsDir), "", "directory holding one sub-directory per category")
	flags.Int(KeyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	flags.Int(KeyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	flags.Bool(KeyFooter, false, "enable footer hint row")
	flags.Bool(KeyTrace, false, "enable verbose JSON trace logging")
	flags.Bool(KeyLog, false, "log selections and launches")
	flags.String(FlagName(KeyLogFile), "", "path to the log file")
	flags.String(KeyTheme, theme.DefaultName, "colour theme ("+strings.Join(theme.Names(), ", ")+")")
	flags.Bool(FlagName(KeyThemeLocked), false, "disable theme cycling")
	flags.String(KeyDrain, string(ui.DrainAuto), "queue draining: auto or confirm")
	flags.String(KeyLauncher, string(launch.KindAuto), "how scripts run: exec, tmux or auto")
	flags.String(KeySocket, "", "path to the tmux socket (overrides environment detection)")
	flags.String(KeyShell, launch.DefaultShell, "shell used to run scripts")
	flags.Bool(FlagName(KeyAllowRoot), false, "skip the warning shown when running as root")
}

// DefaultScriptsDir is used when scripts_dir is not configured.
func DefaultScriptsDir() string {
	return filepath.Join(configDir(), "scripts")
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return filepath.Join(os.Getenv("HOME"), ".config", appDirName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyScriptsDir, DefaultScriptsDir())
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyHeight, 0)
	v.SetDefault(KeyFooter, false)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyLog, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTheme, theme.DefaultName)
	v.SetDefault(KeyThemeLocked, false)
	v.SetDefault(KeyDrain, string(ui.DrainAuto))
	v.SetDefault(KeyLauncher, string(launch.KindAuto))
	v.SetDefault(KeySocket, "")
	v.SetDefault(KeyShell, launch.DefaultShell)
	v.SetDefault(KeyAllowRoot, false)
}

// Load merges, from lowest to highest precedence, defaults, the config
// file, SCRIPT_POPUP_* environment variables and the flags set on cmd.
func Load(cmd *cobra.Command, args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	cfgPath := os.Getenv(envConfig)
	if f := cmd.Flags().Lookup("config"); f != nil && f.Changed {
		cfgPath = f.Value.String()
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		if f := cmd.Flags().Lookup(FlagName(key)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		App: app.Config{
			ScriptsDir:  expandHome(v.GetString(KeyScriptsDir)),
			SocketPath:  v.GetString(KeySocket),
			Width:       v.GetInt(KeyWidth),
			Height:      v.GetInt(KeyHeight),
			ShowFooter:  v.GetBool(KeyFooter),
			Theme:       v.GetString(KeyTheme),
			ThemeLocked: v.GetBool(KeyThemeLocked),
			Drain:       v.GetString(KeyDrain),
			Launcher:    v.GetString(KeyLauncher),
			Shell:       v.GetString(KeyShell),
			AllowRoot:   v.GetBool(KeyAllowRoot),
		},
		Logging: Logging{
			FilePath: v.GetString(KeyLogFile),
			Trace:    v.GetBool(KeyTrace),
			Info:     v.GetBool(KeyLog),
		},
		File:  v.ConfigFileUsed(),
		Flags: make(map[string]string, len(keys)),
		Args:  append([]string(nil), args...),
	}
	for _, key := range keys {
		cfg.Flags[key] = v.GetString(key)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Validate rejects values the application cannot start with.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	if strings.TrimSpace(a.ScriptsDir) == "" {
		return errors.New("scripts_dir must not be empty")
	}
	if _, err := ui.ParseDrainPolicy(a.Drain); err != nil {
		return err
	}
	if _, err := launch.ParseKind(a.Launcher); err != nil {
		return err
	}
	if _, ok := theme.Get(a.Theme); !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", a.Theme, strings.Join(theme.Names(), ", "))
	}
	return nil
}

// Summary renders the resolved flag values for trace payloads.
func (c Config) Summary() map[string]interface{} {
	out := make(map[string]interface{}, len(c.Flags)+1)
	for k, v := range c.Flags {
		out[k] = v
	}
	out["config"] = c.File
	return out
}
