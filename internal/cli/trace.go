package cli

import (
	"os"

	"github.com/atomicstack/script-popup/internal/config"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/atomicstack/script-popup/internal/tmux"
	"golang.org/x/term"
)

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the process and its terminal for the
// app.start trace event.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	env := map[string]interface{}{
		"euid":       os.Geteuid(),
		"insideTmux": tmux.InsideTmux(),
		"logFile":    logging.Path(),
	}
	if exe, err := os.Executable(); err == nil {
		env["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		env["cwd"] = cwd
	}
	return map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   cfg.Summary(),
		"config":  cfg,
		"process": env,
		"tty":     probeTerminals(),
	}
}

type terminalReport struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// probeTerminals reports which standard streams are terminals. Size comes
// from the first one that answers.
func probeTerminals() terminalReport {
	var report terminalReport
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		probe := probeFile(f)
		if report.Size == nil && probe.Width > 0 {
			report.Size = &terminalSize{From: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}

func probeFile(f *os.File) terminalProbe {
	probe := terminalProbe{Name: streamName(f)}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}

func streamName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	return f.Name()
}
