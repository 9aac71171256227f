package ui

import (
	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openSearch() tea.Cmd {
	m.search.Reset()
	m.setMode(ModeSearch)
	m.traceQuery()
	if !m.animate {
		return nil
	}
	return m.searchCursor.Focus()
}

func (m *Model) closeSearch() {
	m.search.Reset()
	m.searchCursor.Blur()
	m.setMode(ModeNormal)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Search
	s := m.search
	before := s.Query.Cursor()
	defer func() {
		if s.Query.Cursor() != before {
			m.searchCursorDirty = true
		}
	}()

	switch {
	case key.Matches(msg, k.Cancel):
		m.closeSearch()
	case key.Matches(msg, k.Select):
		return m.selectSearchResult()
	case key.Matches(msg, k.Next):
		s.Next()
	case key.Matches(msg, k.Prev):
		s.Prev()
	case key.Matches(msg, k.Complete):
		m.acceptSuggestion(s.Accept())
	case key.Matches(msg, k.Backspace):
		if s.Backspace() {
			m.traceQuery()
		}
	case key.Matches(msg, k.DeleteWord):
		if s.DeleteWordBackward() {
			m.traceQuery()
		}
	case key.Matches(msg, k.Left):
		s.CursorLeft()
	case key.Matches(msg, k.Right):
		m.acceptSuggestion(s.CursorRight())
	case key.Matches(msg, k.Start):
		s.Query.Start()
	case key.Matches(msg, k.End):
		s.Query.End()
	default:
		var text string
		switch msg.Type {
		case tea.KeyRunes:
			if msg.Alt {
				return nil
			}
			text = string(msg.Runes)
		case tea.KeySpace:
			text = " "
		}
		if s.Insert(text) {
			m.traceQuery()
		}
	}
	return nil
}

func (m *Model) acceptSuggestion(accepted bool) {
	if !accepted {
		return
	}
	events.Search.Accept(m.search.Query.Text())
	m.traceQuery()
}

func (m *Model) traceQuery() {
	events.Search.Query(m.search.Query.Text(), len(m.search.Results), m.search.Autocomplete)
}

// selectSearchResult jumps the browser to the chosen hit and returns to
// Normal mode with the scripts panel focused. Nothing happens without a hit.
func (m *Model) selectSearchResult() tea.Cmd {
	result, ok := m.search.Current()
	if !ok {
		return nil
	}
	script := result.Script
	logging.Info("Selected script from search: %s/%s", script.Category, script.Name)
	events.Search.Select(script.Display())
	m.view.Select(script.Category, script.Name)
	m.focus = FocusScripts
	m.closeSearch()
	return m.ensurePreview()
}
