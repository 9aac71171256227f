package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/script-popup/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpPageDownClampsAtMax(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("?")
	m := h.Model()
	expectMode(t, m, ModeHelp)
	if len(m.helpLines) == 0 {
		t.Fatalf("expected rendered help")
	}

	m.help.SetMax(20)
	m.help.Scroll = 19
	h.Keys("pgdown")
	if m.help.Scroll != 20 {
		t.Fatalf("expected scroll clamped to 20, got %d", m.help.Scroll)
	}
	h.Keys("pgup")
	if m.help.Scroll != 10 {
		t.Fatalf("expected page up to 10, got %d", m.help.Scroll)
	}
	h.Keys("esc")
	expectMode(t, m, ModeNormal)
	if m.help.Scroll != 0 {
		t.Fatalf("expected help scroll reset on close, got %d", m.help.Scroll)
	}
}

func TestHelpCloseKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "?"} {
		h, _ := newTestHarness(t, Options{})
		h.Keys("?")
		if view := h.View(); !strings.Contains(view, " Help ") {
			t.Fatalf("expected help popup:\n%s", view)
		}
		h.Keys(k)
		expectMode(t, h.Model(), ModeNormal)
	}
}

func TestHelpRenderFallsBackToMarkdown(t *testing.T) {
	orig := renderMarkdownFn
	renderMarkdownFn = func(string, int, string) (string, error) { return "", errors.New("no renderer") }
	t.Cleanup(func() { renderMarkdownFn = orig })

	h, _ := newTestHarness(t, Options{})
	h.Keys("?")
	if view := h.View(); !strings.Contains(view, "## Browsing") {
		t.Fatalf("expected raw markdown help:\n%s", view)
	}
}

func TestPreviewShowsScriptAndCloses(t *testing.T) {
	for _, k := range []string{"q", "esc", "p", "h"} {
		h, _ := newTestHarness(t, Options{})
		h.Keys("p")
		m := h.Model()
		expectMode(t, m, ModePreview)
		view := h.View()
		if !strings.Contains(view, "Preview: db/backup.sh") || !strings.Contains(view, "pg_dumpall") {
			t.Fatalf("expected preview popup:\n%s", view)
		}
		h.Keys(k)
		expectMode(t, m, ModeNormal)
	}
}

func TestPreviewScrollKeysAndWheel(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("p")
	m := h.Model()
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	m.preview.lines = lines
	m.syncScrollBounds()
	_, viewport := m.popupInner()
	if m.preview.scroll.Max != 100-viewport {
		t.Fatalf("expected max %d, got %d", 100-viewport, m.preview.scroll.Max)
	}

	h.Keys("j", "j", "k")
	if m.preview.scroll.Scroll != 1 {
		t.Fatalf("expected scroll 1, got %d", m.preview.scroll.Scroll)
	}
	h.Keys("pgdown")
	if m.preview.scroll.Scroll != 11 {
		t.Fatalf("expected scroll 11, got %d", m.preview.scroll.Scroll)
	}
	h.Keys("end")
	if m.preview.scroll.Scroll != m.preview.scroll.Max {
		t.Fatalf("expected scroll at max, got %d", m.preview.scroll.Scroll)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.preview.scroll.Scroll != m.preview.scroll.Max-wheelStep {
		t.Fatalf("expected wheel to scroll up by %d, got %d", wheelStep, m.preview.scroll.Scroll)
	}
	if view := h.View(); !strings.Contains(view, "line 97") || !strings.Contains(view, " 98/100 ") {
		t.Fatalf("expected the window ending at line 97:\n%s", view)
	}
	h.Keys("home")
	if m.preview.scroll.Scroll != 0 {
		t.Fatalf("expected scroll 0, got %d", m.preview.scroll.Scroll)
	}
}

func TestPreviewErrorShown(t *testing.T) {
	orig := readPreviewFn
	readPreviewFn = func(string) ([]string, error) { return nil, errors.New("permission denied") }
	t.Cleanup(func() { readPreviewFn = orig })

	h, _ := newTestHarness(t, Options{})
	if view := h.View(); !strings.Contains(view, "permission denied") {
		t.Fatalf("expected preview error in side panel:\n%s", view)
	}
}

func TestStalePreviewIgnored(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	m := h.Model()
	current := m.preview
	h.Send(previewLoadedMsg{path: current.path, seq: current.seq - 1, lines: []string{"stale"}})
	if len(m.preview.lines) > 0 && m.preview.lines[0] == "stale" {
		t.Fatalf("expected stale preview to be dropped")
	}
	h.Send(previewLoadedMsg{path: "/other.sh", seq: current.seq, lines: []string{"stale"}})
	if len(m.preview.lines) > 0 && m.preview.lines[0] == "stale" {
		t.Fatalf("expected preview for another path to be dropped")
	}
}

func TestDescriptionLoadsScrollsAndCloses(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("d")
	m := h.Model()
	expectMode(t, m, ModeDescription)
	view := h.View()
	if !strings.Contains(view, "Description: db/backup.sh") || !strings.Contains(view, "dump the database") {
		t.Fatalf("expected description popup:\n%s", view)
	}

	m.description.text = strings.Repeat("word ", 2000)
	m.syncScrollBounds()
	if m.description.scroll.Max == 0 {
		t.Fatalf("expected long description to scroll")
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.description.scroll.Scroll != wheelStep {
		t.Fatalf("expected wheel scroll %d, got %d", wheelStep, m.description.scroll.Scroll)
	}
	h.Keys("j")
	if m.description.scroll.Scroll != wheelStep+1 {
		t.Fatalf("expected key scroll, got %d", m.description.scroll.Scroll)
	}

	h.Keys("d")
	expectMode(t, m, ModeNormal)
	if m.description != nil {
		t.Fatalf("expected description cleared on close")
	}
}

func TestDescriptionErrorShown(t *testing.T) {
	orig := describeFn
	describeFn = func(*catalog.Catalog, string) (string, error) { return "", errors.New("gone") }
	t.Cleanup(func() { describeFn = orig })

	h, _ := newTestHarness(t, Options{})
	h.Keys("d")
	if view := h.View(); !strings.Contains(view, "gone") {
		t.Fatalf("expected description error:\n%s", view)
	}
}

func TestWheelIgnoredInDialogs(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("enter")
	m := h.Model()
	before, _ := m.view.SelectedScript()
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	after, _ := m.view.SelectedScript()
	expectMode(t, m, ModeConfirm)
	if before.Path != after.Path {
		t.Fatalf("expected wheel to be ignored in confirm")
	}
}
