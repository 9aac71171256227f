package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/script-popup/internal/logging"
	"github.com/atomicstack/script-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// wheelStep is the number of lines one mouse wheel notch scrolls.
const wheelStep = 2

var renderMarkdownFn = renderMarkdown

func renderMarkdown(markdown string, width int, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

func glamourStyle(themeName string) string {
	if themeName == "mono" {
		return "ascii"
	}
	return "dark"
}

func scrollWith(region *state.ScrollRegion, keys scrollKeys, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.Down):
		region.Down(1)
	case key.Matches(msg, keys.Up):
		region.Up(1)
	case key.Matches(msg, keys.PageDown):
		region.PageDown()
	case key.Matches(msg, keys.PageUp):
		region.PageUp()
	case key.Matches(msg, keys.Top):
		region.Home()
	case key.Matches(msg, keys.Bottom):
		region.End()
	default:
		return false
	}
	return true
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ClosePreview) {
		m.setMode(ModeNormal)
		return nil
	}
	if m.preview != nil {
		scrollWith(&m.preview.scroll, m.keys.Scroll, msg)
	}
	return nil
}

func (m *Model) handleDescriptionKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.CloseDescription) {
		m.closeDescription()
		return nil
	}
	if m.description != nil {
		scrollWith(&m.description.scroll, m.keys.Scroll, msg)
	}
	return nil
}

func (m *Model) openHelp() {
	m.help.Reset()
	m.renderHelp()
	m.syncScrollBounds()
	m.setMode(ModeHelp)
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.CloseHelp) {
		m.help.Home()
		m.setMode(ModeNormal)
		return nil
	}
	scrollWith(&m.help, m.keys.Scroll, msg)
	return nil
}

// renderHelp renders the help markdown for the current popup width. The
// result is cached until the width or the theme changes.
func (m *Model) renderHelp() {
	width, _ := m.popupInner()
	if m.helpLines != nil && m.helpWidth == width {
		return
	}
	markdown := m.helpMarkdown()
	out, err := renderMarkdownFn(markdown, width, glamourStyle(m.themeName))
	if err != nil {
		logging.Error(fmt.Errorf("render help: %w", err))
		out = markdown
	}
	m.helpLines = strings.Split(strings.Trim(out, "\n"), "\n")
	m.helpWidth = width
}

func (m *Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Script Popup\n\n")
	b.WriteString("Pick a category on the left, then a script on the right. ")
	b.WriteString("Scripts run after a confirmation; with multi-select on, every marked script runs in the order it was marked.\n\n")
	section := func(title string, bindings ...key.Binding) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, binding := range bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	n := m.keys.Normal
	section("Browsing",
		n.Down, n.Up, n.Top, n.Bottom, n.Left, n.Right, n.Run,
		n.Search, n.Preview, n.Describe, n.Multi, n.Toggle, n.Back, n.Theme, n.Help, n.Quit,
	)
	s := m.keys.Search
	section("Search",
		s.Next, s.Prev, s.Complete, s.Right, s.Left, s.Backspace, s.DeleteWord, s.Start, s.End, s.Select, s.Cancel,
	)
	sc := m.keys.Scroll
	section("Preview, help and description",
		sc.Down, sc.Up, sc.PageDown, sc.PageUp, sc.Top, sc.Bottom, m.keys.ClosePreview,
	)
	section("Confirmation", m.keys.ConfirmYes, m.keys.ConfirmNo)
	section("Anywhere", m.keys.ForceQuit)
	return b.String()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	var down bool
	switch ev.Button {
	case tea.MouseButtonWheelDown:
		down = true
	case tea.MouseButtonWheelUp:
	default:
		return nil
	}
	switch m.mode {
	case ModeNormal:
		if down {
			return m.moveNext()
		}
		return m.movePrev()
	case ModeSearch:
		if down {
			m.search.Next()
		} else {
			m.search.Prev()
		}
	case ModePreview:
		if m.preview != nil {
			wheel(&m.preview.scroll, down)
		}
	case ModeHelp:
		wheel(&m.help, down)
	case ModeDescription:
		if m.description != nil {
			wheel(&m.description.scroll, down)
		}
	}
	return nil
}

func wheel(region *state.ScrollRegion, down bool) {
	if down {
		region.Down(wheelStep)
		return
	}
	region.Up(wheelStep)
}
