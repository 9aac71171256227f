package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestSearchBakSelectsBackupScript(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("h", "j") // categories panel, move to net
	if cat, _ := h.Model().view.SelectedCategory(); cat != "net" {
		t.Fatalf("expected net category before searching, got %q", cat)
	}

	h.Keys("/", "b", "a", "k")
	m := h.Model()
	expectMode(t, m, ModeSearch)
	if len(m.search.Results) != 1 {
		t.Fatalf("expected one result for bak, got %d", len(m.search.Results))
	}
	result := m.search.Results[0]
	if got := result.Script.Display(); got != "db/backup.sh" {
		t.Fatalf("expected db/backup.sh, got %s", got)
	}
	if want := []int{3, 4, 6}; !reflect.DeepEqual(result.Indices, want) {
		t.Fatalf("expected indices %v, got %v", want, result.Indices)
	}

	h.Keys("enter")
	m = h.Model()
	expectMode(t, m, ModeNormal)
	if m.Focus() != FocusScripts {
		t.Fatalf("expected scripts panel focused, got %s", m.Focus())
	}
	if cat, _ := m.view.SelectedCategory(); cat != "db" {
		t.Fatalf("expected db category, got %q", cat)
	}
	script, ok := m.view.SelectedScript()
	if !ok || script.Name != "backup.sh" {
		t.Fatalf("expected backup.sh selected, got %#v", script)
	}
	if m.preview == nil || m.preview.path != script.Path {
		t.Fatalf("expected preview for %s, got %#v", script.Path, m.preview)
	}
	if m.search.Query.Text() != "" {
		t.Fatalf("expected query cleared after selection, got %q", m.search.Query.Text())
	}
}

func TestSearchEscapeDiscardsQuery(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("j") // restore.sh
	h.Keys("/", "p", "i", "n", "g", "esc")
	m := h.Model()
	expectMode(t, m, ModeNormal)
	if m.search.Query.Text() != "" {
		t.Fatalf("expected query discarded, got %q", m.search.Query.Text())
	}
	if script, _ := m.view.SelectedScript(); script.Name != "restore.sh" {
		t.Fatalf("expected selection untouched, got %s", script.Name)
	}
}

func TestSearchEnterWithoutResultsStays(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "z", "z", "z", "enter")
	m := h.Model()
	expectMode(t, m, ModeSearch)
	if len(m.search.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(m.search.Results))
	}
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message in view:\n%s", view)
	}
}

func TestSearchTabAcceptsSuggestion(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "n", "e", "t", "/", "t")
	m := h.Model()
	if m.search.Autocomplete != "net/trace-route.sh" {
		t.Fatalf("expected suggestion net/trace-route.sh, got %q", m.search.Autocomplete)
	}
	if view := h.View(); !strings.Contains(view, "ace-route.sh") {
		t.Fatalf("expected completion suffix in view:\n%s", view)
	}

	h.Keys("tab")
	m = h.Model()
	if got := m.search.Query.Text(); got != "net/trace-route.sh" {
		t.Fatalf("expected query replaced by suggestion, got %q", got)
	}
	if !m.search.Query.AtEnd() {
		t.Fatalf("expected caret at end after accept")
	}
	if m.search.Autocomplete != "" {
		t.Fatalf("expected suggestion cleared, got %q", m.search.Autocomplete)
	}
}

func TestSearchLeftClearsSuggestionAndRightAcceptsAtEnd(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "d", "b", "/", "r", "e")
	m := h.Model()
	if m.search.Autocomplete != "db/restore.sh" {
		t.Fatalf("expected suggestion db/restore.sh, got %q", m.search.Autocomplete)
	}

	h.Keys("left")
	if m.search.Autocomplete != "" {
		t.Fatalf("expected left to clear suggestion, got %q", m.search.Autocomplete)
	}
	if m.search.Query.Cursor() != 4 {
		t.Fatalf("expected caret at 4, got %d", m.search.Query.Cursor())
	}

	h.Keys("right")
	if got := m.search.Query.Text(); got != "db/re" {
		t.Fatalf("expected no accept without a pending suggestion, got %q", got)
	}

	h.Keys("backspace", "e")
	if m.search.Autocomplete == "" {
		t.Fatalf("expected suggestion after retyping")
	}
	h.Keys("right")
	if got := m.search.Query.Text(); got != "db/restore.sh" {
		t.Fatalf("expected right at end to accept, got %q", got)
	}
}

func TestSearchNavigationWrapsAndResetsOnEdit(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/")
	m := h.Model()
	if len(m.search.Results) != 4 {
		t.Fatalf("expected every script for an empty query, got %d", len(m.search.Results))
	}
	h.Keys("up")
	if m.search.Selected != 3 {
		t.Fatalf("expected up from first to wrap to 3, got %d", m.search.Selected)
	}
	h.Keys("down")
	if m.search.Selected != 0 {
		t.Fatalf("expected down from last to wrap to 0, got %d", m.search.Selected)
	}
	h.Keys("down", "down", "s")
	if m.search.Selected != 0 {
		t.Fatalf("expected selection reset after typing, got %d", m.search.Selected)
	}
}

func TestSearchSpaceAndWordDelete(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "d", "b", "space", "p")
	m := h.Model()
	if got := m.search.Query.Text(); got != "db p" {
		t.Fatalf("expected space inserted, got %q", got)
	}
	h.Keys("ctrl+w")
	if got := m.search.Query.Text(); got != "db " {
		t.Fatalf("expected last word removed, got %q", got)
	}
	h.Keys("ctrl+a", "x")
	if got := m.search.Query.Text(); got != "xdb " {
		t.Fatalf("expected insert at caret, got %q", got)
	}
}

func TestSearchViewShowsCountAndHelp(t *testing.T) {
	h, _ := newTestHarness(t, Options{})
	h.Keys("/", "s", "h")
	view := h.View()
	if !strings.Contains(view, "Found 4 scripts") {
		t.Fatalf("expected result count title:\n%s", view)
	}
	if !strings.Contains(view, searchHelp) {
		t.Fatalf("expected search help line:\n%s", view)
	}
}
