package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	categoryPanelFraction = 0.25
	scriptPanelFraction   = 0.35
	categoryPanelMinWidth = 14
	scriptPanelMinWidth   = 20
	previewPanelMinWidth  = 24 // below this the preview panel is dropped
)

const ansiReset = "\x1b[0m"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// box is a bordered panel with a title and optional scroll label in the
// top border.
type box struct {
	title   string
	info    string
	lines   []styledLine
	width   int
	height  int
	focused bool
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	base := m.viewNormal()
	var popup string
	switch m.mode {
	case ModeSearch:
		popup = m.viewSearch()
	case ModePreview:
		popup = m.viewPreview()
	case ModeConfirm:
		popup = m.viewConfirm()
	case ModeHelp:
		popup = m.viewHelp()
	case ModeDescription:
		popup = m.viewDescription()
	case ModeRunScript:
		popup = m.viewRunScript()
	case ModeRootWarning:
		popup = m.viewRootWarning()
	}
	if popup == "" {
		return base
	}
	return overlayCenter(base, popup, m.viewWidth(), m.viewHeight())
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

// panelWidths splits the screen into the categories, scripts and preview
// columns. The preview width is 0 when the screen is too narrow.
func (m *Model) panelWidths() (categories, scripts, preview int) {
	total := m.viewWidth()
	categories = max(int(float64(total)*categoryPanelFraction), categoryPanelMinWidth)
	scripts = max(int(float64(total)*scriptPanelFraction), scriptPanelMinWidth)
	preview = total - categories - scripts
	if preview < previewPanelMinWidth {
		preview = 0
		scripts = max(total-categories, 1)
	}
	return categories, scripts, preview
}

func (m *Model) viewNormal() string {
	width := m.viewWidth()
	height := m.viewHeight()

	header := styledLine{text: m.headerText(), style: m.styles.Header}
	used := 2 // header + status
	if m.showFooter {
		used++
	}
	panelH := max(height-used, 3)

	catW, scrW, prevW := m.panelWidths()
	columns := []string{
		m.renderBox(box{
			title:   "Categories",
			lines:   m.categoryLines(catW-2, panelH-2),
			width:   catW,
			height:  panelH,
			focused: m.focus == FocusCategories,
		}),
		m.renderBox(box{
			title:   m.scriptsTitle(),
			lines:   m.scriptLines(scrW-2, panelH-2),
			width:   scrW,
			height:  panelH,
			focused: m.focus == FocusScripts,
		}),
	}
	if prevW > 0 {
		columns = append(columns, m.renderSidePreview(prevW, panelH))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	top := renderLines(applyWidth([]styledLine{header}, width))
	rows := []string{top, body, renderLines(applyWidth([]styledLine{m.statusLine()}, width))}
	if m.showFooter {
		m.footer.Width = width
		rows = append(rows, m.footer.ShortHelpView(m.keys.normalHints(m.multi.Enabled())))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) headerText() string {
	header := "Script Popup"
	if root := m.catalog.Root(); root != "" {
		header += "  " + root
	}
	if m.multi.Enabled() {
		header += fmt.Sprintf("  [multi-select: %d marked]", m.multi.Len())
	}
	return header
}

func (m *Model) scriptsTitle() string {
	if category, ok := m.view.SelectedCategory(); ok {
		return "Scripts: " + category
	}
	return "Scripts"
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: "Error: " + m.errMsg, style: m.styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: m.styles.Info}
	}
	return styledLine{}
}

func (m *Model) categoryLines(width, height int) []styledLine {
	categories := m.view.Categories
	if len(categories) == 0 {
		return []styledLine{{text: "(no categories)", style: m.styles.Info}}
	}
	cursor := &m.view.CategoryCursor
	cursor.EnsureVisible(len(categories), height)
	end := min(cursor.Offset+height, len(categories))
	lines := make([]styledLine, 0, end-cursor.Offset)
	for idx := cursor.Offset; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(categories[idx], "", idx == cursor.Index, m.focus == FocusCategories, width))
	}
	return lines
}

func (m *Model) scriptLines(width, height int) []styledLine {
	scripts := m.view.Scripts
	if len(scripts) == 0 {
		return []styledLine{{text: "(no scripts)", style: m.styles.Info}}
	}
	cursor := &m.view.ScriptCursor
	cursor.EnsureVisible(len(scripts), height)
	end := min(cursor.Offset+height, len(scripts))
	lines := make([]styledLine, 0, end-cursor.Offset)
	for idx := cursor.Offset; idx < end; idx++ {
		script := scripts[idx]
		marker := ""
		if m.multi.Enabled() {
			marker = "[ ] "
			if pos := m.multi.Position(script.Path); pos > 0 {
				marker = fmt.Sprintf("[%d] ", pos)
			}
		}
		lines = append(lines, m.buildItemLine(script.Name, marker, idx == cursor.Index, m.focus == FocusScripts, width))
	}
	return lines
}

// buildItemLine constructs a single list row. The selected row of an
// unfocused panel is drawn with the inactive style.
func (m *Model) buildItemLine(label, marker string, selected, focused bool, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if selected {
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
		if !focused {
			lineStyle = m.styles.InactiveItem
		}
	}
	fullText := indicator + " " + marker + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) renderSidePreview(width, height int) string {
	b := box{title: "Preview", width: width, height: height}
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
		b.lines = bodyLines(p.lines, m.styles.PreviewBody)
		if len(p.lines) > 0 {
			b.info = fmt.Sprintf(" %d/%d ", min(height-2, len(p.lines)), len(p.lines))
		}
	}
	return m.renderBox(b)
}

func bodyLines(lines []string, style *lipgloss.Style) []styledLine {
	out := make([]styledLine, len(lines))
	for i, line := range lines {
		out[i] = styledLine{text: line, style: style}
	}
	return out
}

// renderBox draws b as exactly b.height rows of b.width columns.
func (m *Model) renderBox(b box) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := max(b.width-2, 1)
	innerH := max(b.height-2, 1)
	borderStyle := m.styles.Border
	if b.focused {
		borderStyle = m.styles.FocusedBorder
	}

	titleSeg := ""
	if b.title != "" {
		titleSeg = " " + b.title + " "
	}
	scrollSeg := b.info
	dashes := b.width - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = b.width - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(b.width-4, 1)), "…")
		dashes = b.width - 4 - lipgloss.Width(titleSeg)
	}
	dashes = max(dashes, 0)
	topLine := render(borderStyle, tlc+hz) +
		render(m.styles.PreviewTitle, titleSeg) +
		render(borderStyle, strings.Repeat(hz, dashes)) +
		render(m.styles.ScrollInfo, scrollSeg) +
		render(borderStyle, hz+trc)
	bottomLine := render(borderStyle, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, innerH+2)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line styledLine
		if i < len(b.lines) {
			line = b.lines[i]
		}
		rows = append(rows, render(borderStyle, vt)+fitLine(line, innerW)+render(borderStyle, vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// fitLine renders line padded or truncated to exactly width columns.
func fitLine(line styledLine, width int) string {
	if line.raw {
		text := line.text
		w := lipgloss.Width(text)
		if w > width {
			text = truncate.StringWithTail(text, uint(max(width-1, 0)), "…")
			w = lipgloss.Width(text)
		}
		if w < width {
			text += ansiReset + strings.Repeat(" ", width-w)
		}
		return text
	}
	text := truncateText(line.text, width)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	line.text = text
	return renderLine(line)
}

// overlayCenter draws fg over the middle of bg.
func overlayCenter(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, line := range fgLines {
		fgW = max(fgW, ansi.StringWidth(line))
	}
	x := max((width-fgW)/2, 0)
	y := max((height-len(fgLines))/2, 0)
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for i, line := range fgLines {
		bgLines[y+i] = overlayLine(bgLines[y+i], line, x, fgW)
	}
	return strings.Join(bgLines, "\n")
}

func overlayLine(bg, fg string, x, fgW int) string {
	prefix := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(prefix); w < x {
		prefix += strings.Repeat(" ", x-w)
	}
	if w := ansi.StringWidth(fg); w < fgW {
		fg += strings.Repeat(" ", fgW-w)
	}
	var suffix string
	if bgW := ansi.StringWidth(bg); bgW > x+fgW {
		suffix = ansi.Cut(bg, x+fgW, bgW)
	}
	return prefix + ansiReset + fg + ansiReset + suffix
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderLine(line)
	}
	return strings.Join(out, "\n")
}

func renderLine(line styledLine) string {
	text := line.text
	if line.raw {
		return text
	}
	runes := []rune(text)
	if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
		head := string(runes[:line.highlightFrom])
		tail := string(runes[line.highlightFrom:])
		return render(line.prefixStyle, head) + render(line.style, tail)
	}
	return render(line.style, text)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "") + "…"
}
