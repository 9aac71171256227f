package ui

import (
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return m.quit()
	}
	m.errMsg = ""
	switch m.mode {
	case ModeNormal:
		return m.handleNormalKey(keyMsg)
	case ModeSearch:
		return m.handleSearchKey(keyMsg)
	case ModePreview:
		return m.handlePreviewKey(keyMsg)
	case ModeConfirm:
		return m.handleConfirmKey(keyMsg)
	case ModeHelp:
		return m.handleHelpKey(keyMsg)
	case ModeDescription:
		return m.handleDescriptionKey(keyMsg)
	case ModeRunScript:
		return m.handleRunScriptKey(keyMsg)
	case ModeRootWarning:
		return m.handleRootWarningKey(keyMsg)
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Normal
	switch {
	case key.Matches(msg, k.Quit):
		if m.multi.Enabled() {
			m.setMultiSelect(false)
			return nil
		}
		return m.quit()
	case key.Matches(msg, k.Back):
		if m.multi.Enabled() {
			m.setMultiSelect(false)
		}
	case key.Matches(msg, k.Down):
		return m.moveNext()
	case key.Matches(msg, k.Up):
		return m.movePrev()
	case key.Matches(msg, k.Top):
		return m.moveTop()
	case key.Matches(msg, k.Bottom):
		return m.moveBottom()
	case key.Matches(msg, k.Left):
		m.setFocus(FocusCategories)
	case key.Matches(msg, k.Right):
		if m.focus == FocusScripts {
			m.openConfirm()
			return nil
		}
		m.view.ResetScriptCursor()
		m.setFocus(FocusScripts)
		return m.ensurePreview()
	case key.Matches(msg, k.Run):
		m.openConfirm()
	case key.Matches(msg, k.Search):
		return m.openSearch()
	case key.Matches(msg, k.Preview):
		return m.openPreview()
	case key.Matches(msg, k.Help):
		m.openHelp()
	case key.Matches(msg, k.Describe):
		return m.openDescription()
	case key.Matches(msg, k.Multi):
		events.Selection.MultiSelect(m.multi.ToggleEnabled())
	case key.Matches(msg, k.Toggle):
		m.toggleSelection()
	case key.Matches(msg, k.Theme):
		m.cycleTheme()
	}
	return nil
}

func (m *Model) setFocus(panel FocusedPanel) {
	if m.focus == panel {
		return
	}
	m.focus = panel
	events.Selection.Cursor(panel.String(), m.focusedCursor())
}

func (m *Model) focusedCursor() int {
	if m.focus == FocusCategories {
		return m.view.CategoryCursor.Index
	}
	return m.view.ScriptCursor.Index
}

func (m *Model) moveNext() tea.Cmd {
	if m.focus == FocusCategories {
		return m.afterMove(m.view.NextCategory())
	}
	return m.afterMove(m.view.NextScript())
}

func (m *Model) movePrev() tea.Cmd {
	if m.focus == FocusCategories {
		return m.afterMove(m.view.PrevCategory())
	}
	return m.afterMove(m.view.PrevScript())
}

func (m *Model) moveTop() tea.Cmd {
	if m.focus == FocusCategories {
		return m.afterMove(m.view.TopCategory())
	}
	return m.afterMove(m.view.TopScript())
}

func (m *Model) moveBottom() tea.Cmd {
	if m.focus == FocusCategories {
		return m.afterMove(m.view.BottomCategory())
	}
	return m.afterMove(m.view.BottomScript())
}

func (m *Model) afterMove(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	events.Selection.Cursor(m.focus.String(), m.focusedCursor())
	return m.ensurePreview()
}

func (m *Model) setMultiSelect(enabled bool) {
	if m.multi.Enabled() == enabled {
		return
	}
	m.multi.SetEnabled(enabled)
	events.Selection.MultiSelect(enabled)
}

func (m *Model) toggleSelection() {
	if !m.multi.Enabled() {
		return
	}
	script, ok := m.view.SelectedScript()
	if !ok {
		return
	}
	selected := m.multi.Toggle(script.Path)
	events.Selection.Toggle(script.Path, selected, m.multi.Len())
}

// targetable reports whether Confirm may open: the scripts panel has focus
// and a script under the cursor, and multi-select, when on, has picks.
func (m *Model) targetable() bool {
	if m.focus != FocusScripts {
		return false
	}
	if _, ok := m.view.SelectedScript(); !ok {
		return false
	}
	return !m.multi.Enabled() || m.multi.Len() > 0
}
