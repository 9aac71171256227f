package ui

import "github.com/charmbracelet/bubbles/key"

type normalKeys struct {
	Quit     key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Left     key.Binding
	Right    key.Binding
	Run      key.Binding
	Search   key.Binding
	Preview  key.Binding
	Help     key.Binding
	Describe key.Binding
	Multi    key.Binding
	Toggle   key.Binding
	Theme    key.Binding
}

type searchKeys struct {
	Cancel     key.Binding
	Select     key.Binding
	Next       key.Binding
	Prev       key.Binding
	Complete   key.Binding
	Backspace  key.Binding
	DeleteWord key.Binding
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	End        key.Binding
}

type scrollKeys struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

type keyMap struct {
	ForceQuit key.Binding

	Normal normalKeys
	Search searchKeys
	Scroll scrollKeys

	ClosePreview     key.Binding
	CloseHelp        key.Binding
	CloseDescription key.Binding

	ConfirmYes key.Binding
	ConfirmNo  key.Binding

	CloseRun key.Binding

	RootAccept key.Binding
	RootReject key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Normal: normalKeys{
			Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave multi-select")),
			Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
			Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
			Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
			Bottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
			Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "categories")),
			Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "scripts / run")),
			Run:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
			Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
			Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
			Describe: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "describe")),
			Multi:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "multi-select")),
			Toggle:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "mark")),
			Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		},
		Search: searchKeys{
			Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			Next:       key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
			Prev:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
			Complete:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
			Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
			DeleteWord: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
			Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "caret left")),
			Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "caret right / complete")),
			Start:      key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("ctrl+a", "start of line")),
			End:        key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "end of line")),
		},
		Scroll: scrollKeys{
			Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
			Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
			PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
			PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
			Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "top")),
			Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "bottom")),
		},
		ClosePreview:     key.NewBinding(key.WithKeys("q", "esc", "p", "h"), key.WithHelp("q/esc", "close")),
		CloseHelp:        key.NewBinding(key.WithKeys("q", "esc", "?"), key.WithHelp("q/esc", "close")),
		CloseDescription: key.NewBinding(key.WithKeys("q", "esc", "d"), key.WithHelp("q/esc", "close")),
		ConfirmYes:       key.NewBinding(key.WithKeys("y", "Y", "l", "right"), key.WithHelp("y", "run")),
		ConfirmNo:        key.NewBinding(key.WithKeys("n", "N", "esc", "h", "q", "left"), key.WithHelp("n", "cancel")),
		CloseRun:         key.NewBinding(key.WithKeys("enter", "esc", "q"), key.WithHelp("enter", "close")),
		RootAccept:       key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "continue")),
		RootReject:       key.NewBinding(key.WithKeys("n", "esc", "q"), key.WithHelp("n", "quit")),
	}
}

func (k keyMap) normalHints(multi bool) []key.Binding {
	hints := []key.Binding{k.Normal.Down, k.Normal.Left, k.Normal.Run, k.Normal.Search, k.Normal.Preview, k.Normal.Describe, k.Normal.Multi}
	if multi {
		hints = append(hints, k.Normal.Toggle)
	}
	return append(hints, k.Normal.Help, k.Normal.Quit)
}

func (k keyMap) scrollHints(dismiss key.Binding) []key.Binding {
	return []key.Binding{k.Scroll.Down, k.Scroll.Up, k.Scroll.PageDown, k.Scroll.PageUp, dismiss}
}
