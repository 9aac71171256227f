package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Name string

	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	InactiveItem          *lipgloss.Style
	Marker                *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Suggestion            *lipgloss.Style
	Match                 *lipgloss.Style
	SelectedMatch         *lipgloss.Style
	Cursor                *lipgloss.Style
	Border                *lipgloss.Style
	FocusedBorder         *lipgloss.Style
	ScrollInfo            *lipgloss.Style
	PreviewTitle          *lipgloss.Style
	PreviewBody           *lipgloss.Style
	PreviewError          *lipgloss.Style
	Warning               *lipgloss.Style
	Success               *lipgloss.Style
	Spinner               *lipgloss.Style
}

// palette is the small set of colours a theme is derived from.
type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	faint     lipgloss.Color
	accent    lipgloss.Color
	highlight lipgloss.Color
	selection lipgloss.Color
	border    lipgloss.Color
	err       lipgloss.Color
	warn      lipgloss.Color
	ok        lipgloss.Color
	ink       lipgloss.Color
}

var palettes = map[string]palette{
	DefaultName: {
		text: "249", muted: "245", faint: "241", accent: "33", highlight: "214",
		selection: "238", border: "240", err: "196", warn: "208", ok: "34", ink: "0",
	},
	"nord": {
		text: "#D8DEE9", muted: "#A3ABB9", faint: "#616E88", accent: "#88C0D0", highlight: "#EBCB8B",
		selection: "#3B4252", border: "#4C566A", err: "#BF616A", warn: "#D08770", ok: "#A3BE8C", ink: "#2E3440",
	},
	"gruvbox": {
		text: "#EBDBB2", muted: "#A89984", faint: "#7C6F64", accent: "#83A598", highlight: "#FABD2F",
		selection: "#3C3836", border: "#665C54", err: "#FB4934", warn: "#FE8019", ok: "#B8BB26", ink: "#282828",
	},
	"mono": {
		text: "252", muted: "246", faint: "242", accent: "255", highlight: "255",
		selection: "237", border: "244", err: "255", warn: "255", ok: "255", ink: "0",
	},
}

var defaultStyles = build(DefaultName, palettes[DefaultName])

func build(name string, p palette) Styles {
	return Styles{
		Name: name,
		Item: ptr(
			lipgloss.NewStyle().Foreground(p.text),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(p.selection),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Background(p.selection),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(p.selection).Bold(true),
		),
		InactiveItem: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Background(p.selection),
		),
		Marker: ptr(
			lipgloss.NewStyle().Foreground(p.ok).Bold(true),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(p.err).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(p.text),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(p.text),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(p.ok).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		Suggestion: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		Match: ptr(
			lipgloss.NewStyle().Foreground(p.highlight).Bold(true),
		),
		SelectedMatch: ptr(
			lipgloss.NewStyle().Foreground(p.highlight).Background(p.selection).Bold(true),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(p.ink).Background(p.accent).Blink(true),
		),
		Border: ptr(
			lipgloss.NewStyle().Foreground(p.border),
		),
		FocusedBorder: ptr(
			lipgloss.NewStyle().Foreground(p.accent),
		),
		ScrollInfo: ptr(
			lipgloss.NewStyle().Foreground(p.faint),
		),
		PreviewTitle: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Bold(true),
		),
		PreviewBody: ptr(
			lipgloss.NewStyle().Foreground(p.text),
		),
		PreviewError: ptr(
			lipgloss.NewStyle().Foreground(p.err).Bold(true),
		),
		Warning: ptr(
			lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		),
		Success: ptr(
			lipgloss.NewStyle().Foreground(p.ok).Bold(true),
		),
		Spinner: ptr(
			lipgloss.NewStyle().Foreground(p.accent),
		),
	}
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Get returns the style set for a named theme.
func Get(name string) (*Styles, bool) {
	if name == "" || name == DefaultName {
		return Default(), true
	}
	p, ok := palettes[name]
	if !ok {
		return nil, false
	}
	s := build(name, p)
	return &s, true
}

// Names lists the available themes, default first.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultName}, names...)
}

// Next returns the theme after name in Names order, wrapping around.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return DefaultName
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
