package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	searchPopupMaxWidth  = 80
	searchPopupMaxHeight = 20
	dialogMaxWidth       = 64
	searchHelp           = "↑/↓: Navigate  Tab: Complete  Enter: Select  Esc: Cancel"
)

// popupSize is the outer size of the full-screen popups (preview, help,
// description).
func (m *Model) popupSize() (int, int) {
	return max(m.viewWidth()-4, 20), max(m.viewHeight()-2, 6)
}

// popupInner is the content area of popupSize.
func (m *Model) popupInner() (int, int) {
	w, h := m.popupSize()
	return w - 2, h - 2
}

func (m *Model) dialogWidth() int {
	return max(min(m.viewWidth()-4, dialogMaxWidth), 20)
}

func (m *Model) viewPreview() string {
	w, h := m.popupSize()
	b := box{title: "Preview", width: w, height: h, focused: true}
	p := m.preview
	switch {
	case p == nil:
		b.lines = []styledLine{{text: "(nothing selected)", style: m.styles.Info}}
	case p.err != "":
		b.title = "Preview: " + p.label
		b.lines = []styledLine{{text: p.err, style: m.styles.PreviewError}}
	case p.loading:
		b.title = "Preview: " + p.label
		b.lines = []styledLine{{text: "Loading…", style: m.styles.Info}}
	default:
		b.title = "Preview: " + p.label
		b.lines, b.info = scrolledLines(bodyLines(p.lines, m.styles.PreviewBody), p.scroll.Scroll, h-2)
	}
	return m.renderBox(b)
}

func (m *Model) viewHelp() string {
	w, h := m.popupSize()
	lines := make([]styledLine, len(m.helpLines))
	for i, line := range m.helpLines {
		lines[i] = styledLine{text: line, raw: true}
	}
	b := box{title: "Help", width: w, height: h, focused: true}
	b.lines, b.info = scrolledLines(lines, m.help.Scroll, h-2)
	return m.renderBox(b)
}

func (m *Model) viewDescription() string {
	w, h := m.popupSize()
	d := m.description
	if d == nil {
		return ""
	}
	style := m.styles.PreviewBody
	if d.err != "" {
		style = m.styles.PreviewError
	}
	b := box{title: "Description: " + d.label, width: w, height: h, focused: true}
	b.lines, b.info = scrolledLines(bodyLines(m.descriptionLines(), style), d.scroll.Scroll, h-2)
	return m.renderBox(b)
}

// scrolledLines returns the window of lines starting at offset and the
// " last/total " scroll label.
func scrolledLines(lines []styledLine, offset, height int) ([]styledLine, string) {
	if len(lines) == 0 {
		return nil, ""
	}
	offset = max(min(offset, len(lines)-1), 0)
	end := min(offset+max(height, 1), len(lines))
	return lines[offset:end], fmt.Sprintf(" %d/%d ", end, len(lines))
}

func (m *Model) viewSearch() string {
	w := max(min(m.viewWidth()-4, searchPopupMaxWidth), 20)
	h := max(min(m.viewHeight()-2, searchPopupMaxHeight), 7)
	innerW := w - 2
	resultRows := max(h-2-4, 1)

	s := m.search
	lines := []styledLine{{text: m.searchPrompt(), raw: true}, {}}
	if len(s.Results) == 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", s.Query.Text()), style: m.styles.Info})
	} else {
		start := max(s.Selected-resultRows/2, 0)
		start = max(min(start, len(s.Results)-resultRows), 0)
		end := min(start+resultRows, len(s.Results))
		for i := start; i < end; i++ {
			lines = append(lines, styledLine{text: m.searchResultRow(i, innerW), raw: true})
		}
	}
	for len(lines) < 2+resultRows {
		lines = append(lines, styledLine{})
	}
	lines = append(lines, styledLine{}, styledLine{text: searchHelp, style: m.styles.Footer})

	return m.renderBox(box{
		title:   fmt.Sprintf("Found %d scripts", len(s.Results)),
		lines:   lines,
		width:   w,
		height:  h,
		focused: true,
	})
}

func (m *Model) searchResultRow(idx, width int) string {
	result := m.search.Results[idx]
	selected := idx == m.search.Selected
	indicatorStyle, base, match := m.styles.ItemIndicator, m.styles.Item, m.styles.Match
	if selected {
		indicatorStyle, base, match = m.styles.SelectedItemIndicator, m.styles.SelectedItem, m.styles.SelectedMatch
	}
	display := result.Script.Display()
	if pad := width - 2 - lipgloss.Width(display); pad > 0 {
		display += strings.Repeat(" ", pad)
	}
	return render(indicatorStyle, "▌") + render(base, " ") + highlightMatches(display, result.Indices, base, match)
}

// highlightMatches styles the bytes at indices with match and everything
// else with base. Indices are byte offsets of rune starts.
func highlightMatches(text string, indices []int, base, match *lipgloss.Style) string {
	if len(indices) == 0 {
		return render(base, text)
	}
	hits := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		hits[i] = struct{}{}
	}
	var out, run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := base
		if runHit {
			style = match
		}
		out.WriteString(render(style, run.String()))
		run.Reset()
	}
	for i, r := range text {
		_, hit := hits[i]
		if hit != runHit {
			flush()
			runHit = hit
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}

// searchPrompt renders the query with the caret and, when the caret is at
// the end, the rest of the pending completion.
func (m *Model) searchPrompt() string {
	if m.styles.Cursor != nil {
		m.searchCursor.Style = m.styles.Cursor.Copy()
	}
	m.searchCursor.TextStyle = lipgloss.Style{}
	if m.styles.Filter != nil {
		m.searchCursor.TextStyle = m.styles.Filter.Copy()
	}
	prompt := render(m.styles.FilterPrompt, "» ")

	q := &m.search.Query
	runes := []rune(q.Text())
	pos := q.Cursor()
	if len(runes) == 0 {
		return prompt + m.renderSearchCursor(" ") + render(m.styles.FilterPlaceholder, "type to search")
	}

	var completion []rune
	if s := []rune(m.search.Autocomplete); len(s) > len(runes) && pos == len(runes) {
		completion = s[len(runes):]
	}
	before := render(m.styles.Filter, string(runes[:pos]))
	switch {
	case pos < len(runes):
		return prompt + before + m.renderSearchCursor(string(runes[pos])) + render(m.styles.Filter, string(runes[pos+1:]))
	case len(completion) > 0:
		if m.styles.Suggestion != nil {
			m.searchCursor.TextStyle = m.styles.Suggestion.Copy()
		}
		return prompt + before + m.renderSearchCursor(string(completion[0])) + render(m.styles.Suggestion, string(completion[1:]))
	default:
		return prompt + before + m.renderSearchCursor(" ")
	}
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)
	base := m.searchCursor.TextStyle.Copy().Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if m.styles.Cursor != nil {
		return base.Inherit(m.styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func (m *Model) viewConfirm() string {
	w := m.dialogWidth()
	lines := []styledLine{{}}
	switch {
	case m.resume:
		next := ""
		if items := m.queue.Items(); len(items) > 0 {
			next = m.displayFor(items[0])
		}
		lines = append(lines,
			styledLine{text: "Run the next queued script?", style: m.styles.Info},
			styledLine{text: "  " + next, style: m.styles.Marker},
			styledLine{text: fmt.Sprintf("%d left in the queue", m.queue.Len()), style: m.styles.Footer},
		)
	case m.multi.Active():
		lines = append(lines, styledLine{text: fmt.Sprintf("Run %d selected scripts?", m.multi.Len()), style: m.styles.Info})
		paths := m.multi.Paths()
		limit := max(m.viewHeight()-10, 1)
		for i, path := range paths {
			if i == limit {
				lines = append(lines, styledLine{text: fmt.Sprintf("  … and %d more", len(paths)-limit), style: m.styles.Footer})
				break
			}
			lines = append(lines, styledLine{text: fmt.Sprintf("  %d. %s", i+1, m.displayFor(path)), style: m.styles.Marker})
		}
	default:
		label := ""
		if script, ok := m.view.SelectedScript(); ok {
			label = script.Display()
		}
		lines = append(lines,
			styledLine{text: "Run this script?", style: m.styles.Info},
			styledLine{text: "  " + label, style: m.styles.Marker},
		)
	}
	lines = append(lines, styledLine{}, styledLine{text: "[y] Yes   [n] No", style: m.styles.Footer})
	return m.renderBox(box{title: "Confirm", lines: lines, width: w, height: len(lines) + 2, focused: true})
}

func (m *Model) displayFor(path string) string {
	if script, ok := m.catalog.Lookup(path); ok {
		return script.Display()
	}
	return path
}

func (m *Model) viewRunScript() string {
	run := m.run
	if run == nil {
		return ""
	}
	w := m.dialogWidth()
	title := "Finished"
	lines := []styledLine{{}}
	switch {
	case run.running:
		title = "Running"
		lines = append(lines, styledLine{text: m.spinner.View() + " " + run.req.Display, raw: true})
	case run.err != "":
		lines = append(lines,
			styledLine{text: run.req.Display, style: m.styles.Info},
			styledLine{text: "Error: " + run.err, style: m.styles.Error},
		)
	case run.detached:
		lines = append(lines,
			styledLine{text: run.req.Display, style: m.styles.Info},
			styledLine{text: "Started in a new tmux window", style: m.styles.Success},
		)
	case run.exitCode != 0:
		lines = append(lines,
			styledLine{text: run.req.Display, style: m.styles.Info},
			styledLine{text: fmt.Sprintf("Exited with status %d", run.exitCode), style: m.styles.Error},
		)
	default:
		lines = append(lines,
			styledLine{text: run.req.Display, style: m.styles.Info},
			styledLine{text: "Completed successfully", style: m.styles.Success},
		)
	}
	if n := m.queue.Len(); n > 0 {
		lines = append(lines, styledLine{text: fmt.Sprintf("%d remaining", n), style: m.styles.Footer})
	}
	if !run.running {
		lines = append(lines, styledLine{}, styledLine{text: "Press Enter to close", style: m.styles.Footer})
	}
	return m.renderBox(box{title: title, lines: lines, width: w, height: len(lines) + 2, focused: true})
}

func (m *Model) viewRootWarning() string {
	lines := []styledLine{
		{},
		{text: "You are running script-popup as root.", style: m.styles.Warning},
		{text: "Every script you launch will run with root privileges.", style: m.styles.Info},
		{},
		{text: "[y] Continue   [n] Quit", style: m.styles.Footer},
	}
	return m.renderBox(box{title: "Warning", lines: lines, width: m.dialogWidth(), height: len(lines) + 2, focused: true})
}
