package ui

import (
	"strings"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

type previewData struct {
	path    string
	label   string
	lines   []string
	err     string
	loading bool
	seq     int
	scroll  state.ScrollRegion
}

type previewLoadedMsg struct {
	path  string
	seq   int
	lines []string
	err   error
}

type descriptionData struct {
	path    string
	label   string
	text    string
	err     string
	loading bool
	seq     int
	scroll  state.ScrollRegion
}

type descriptionLoadedMsg struct {
	path string
	seq  int
	text string
	err  error
}

var (
	readPreviewFn = catalog.ReadPreview
	describeFn    = (*catalog.Catalog).Description
)

// ensurePreview starts loading the script under the cursor unless its
// preview is already shown or in flight.
func (m *Model) ensurePreview() tea.Cmd {
	script, ok := m.view.SelectedScript()
	if !ok {
		m.preview = nil
		return nil
	}
	if m.preview != nil && m.preview.path == script.Path {
		return nil
	}
	m.loadSeq++
	seq := m.loadSeq
	m.preview = &previewData{
		path:    script.Path,
		label:   script.Display(),
		loading: true,
		seq:     seq,
	}
	path := script.Path
	return func() tea.Msg {
		lines, err := readPreviewFn(path)
		return previewLoadedMsg{path: path, seq: seq, lines: lines, err: err}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	if m.preview == nil || m.preview.seq != loaded.seq || m.preview.path != loaded.path {
		return nil
	}
	m.preview.loading = false
	if loaded.err != nil {
		m.preview.err = loaded.err.Error()
		m.preview.lines = nil
	} else {
		m.preview.err = ""
		m.preview.lines = loaded.lines
	}
	m.syncScrollBounds()
	return nil
}

func (m *Model) openPreview() tea.Cmd {
	if _, ok := m.view.SelectedScript(); !ok {
		m.setInfo("No script selected")
		return nil
	}
	cmd := m.ensurePreview()
	m.preview.scroll.Home()
	m.syncScrollBounds()
	m.setMode(ModePreview)
	return cmd
}

func (m *Model) openDescription() tea.Cmd {
	script, ok := m.view.SelectedScript()
	if !ok {
		m.setInfo("No script selected")
		return nil
	}
	m.loadSeq++
	seq := m.loadSeq
	m.description = &descriptionData{
		path:    script.Path,
		label:   script.Display(),
		loading: true,
		seq:     seq,
	}
	m.setMode(ModeDescription)
	cat := m.catalog
	path := script.Path
	return func() tea.Msg {
		text, err := describeFn(cat, path)
		return descriptionLoadedMsg{path: path, seq: seq, text: text, err: err}
	}
}

func (m *Model) handleDescriptionLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(descriptionLoadedMsg)
	if !ok {
		return nil
	}
	d := m.description
	if d == nil || d.seq != loaded.seq || d.path != loaded.path {
		return nil
	}
	d.loading = false
	if loaded.err != nil {
		d.err = loaded.err.Error()
	} else {
		d.text = loaded.text
	}
	m.syncScrollBounds()
	return nil
}

func (m *Model) closeDescription() {
	m.description = nil
	m.setMode(ModeNormal)
}

func (m *Model) descriptionLines() []string {
	d := m.description
	if d == nil {
		return nil
	}
	if d.loading {
		return []string{"Loading…"}
	}
	if d.err != "" {
		return []string{d.err}
	}
	width, _ := m.popupInner()
	return wrapText(d.text, width)
}

func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(strings.TrimRight(wrapped, "\n"), "\n")
}

// syncScrollBounds recomputes every scroll bound from the current content
// and popup size.
func (m *Model) syncScrollBounds() {
	_, viewport := m.popupInner()
	if m.preview != nil {
		m.preview.scroll.SetContent(len(m.preview.lines), viewport)
	}
	if m.description != nil {
		m.description.scroll.SetContent(len(m.descriptionLines()), viewport)
	}
	if m.helpLines != nil {
		m.help.SetContent(len(m.helpLines), viewport)
	}
}
