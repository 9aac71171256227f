package ui

import (
	"fmt"

	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openConfirm() {
	if !m.targetable() {
		return
	}
	m.resume = false
	m.setMode(ModeConfirm)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ConfirmYes):
		return m.confirm()
	case key.Matches(msg, m.keys.ConfirmNo):
		m.cancelConfirm()
	}
	return nil
}

// confirm fills the queue from the multi-selection, or from the script
// under the cursor, then starts the head of the queue. A resumed drain
// only pops.
func (m *Model) confirm() tea.Cmd {
	if !m.resume {
		if m.multi.Active() {
			m.queue.Replace(m.multi.Paths())
			logging.Info("Confirmed execution of %d scripts.", m.multi.Len())
		} else if script, ok := m.view.SelectedScript(); ok {
			m.queue.Push(script.Path)
			logging.Info("Confirmed execution of script: %s", script.Path)
		}
	}
	m.resume = false
	return m.launchNext()
}

func (m *Model) cancelConfirm() {
	logging.Info("Cancelled script execution.")
	if n := m.queue.Len(); n > 0 {
		events.Launch.Discard(n)
		m.queue.Clear()
	}
	m.resume = false
	m.run = nil
	m.setMode(ModeNormal)
}

func (m *Model) launchNext() tea.Cmd {
	path, ok := m.queue.Pop()
	if !ok {
		m.setMode(ModeNormal)
		return nil
	}
	display := ""
	if script, found := m.catalog.Lookup(path); found {
		display = script.Display()
	}
	req := launch.NewRequest(path, display, logging.InfoEnabled())
	m.run = &runState{req: req, running: true}
	m.setMode(ModeRunScript)
	events.Launch.Queue(m.queue.Items())

	cmds := []tea.Cmd{m.bus.Execute(req)}
	if m.animate {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleFinishedMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(launch.FinishedMsg)
	if !ok {
		return nil
	}
	if m.run == nil || m.run.req.ID != done.Request.ID {
		return nil
	}
	m.run.running = false
	m.run.exitCode = done.ExitCode
	m.run.detached = done.Detached
	if done.Err != nil {
		m.run.err = done.Err.Error()
		logging.Error(fmt.Errorf("launch %s: %w", done.Request.Path, done.Err))
	}
	if m.queue.Len() == 0 {
		return nil
	}
	if done.Failed() {
		m.setInfo(fmt.Sprintf("%s failed (exit %d)", done.Request.Display, done.ExitCode))
	}
	if m.drain == DrainConfirm {
		m.resume = true
		m.setMode(ModeConfirm)
		return nil
	}
	return m.launchNext()
}

func (m *Model) handleRunScriptKey(msg tea.KeyMsg) tea.Cmd {
	if m.run != nil && m.run.running {
		return nil
	}
	if key.Matches(msg, m.keys.CloseRun) {
		m.run = nil
		m.setMode(ModeNormal)
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeRunScript || m.run == nil || !m.run.running {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}

func (m *Model) handleRootWarningKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.RootAccept):
		m.setMode(ModeNormal)
	case key.Matches(msg, m.keys.RootReject):
		return m.quit()
	}
	return nil
}
