package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/atomicstack/script-popup/internal/launch"
	"github.com/atomicstack/script-popup/internal/logging/events"
	"github.com/atomicstack/script-popup/internal/theme"
	"github.com/atomicstack/script-popup/internal/ui/command"
	"github.com/atomicstack/script-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the screen the popup is showing. Exactly one mode is active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModePreview
	ModeConfirm
	ModeHelp
	ModeDescription
	ModeRunScript
	ModeRootWarning
)

var modeNames = [...]string{
	ModeNormal:      "normal",
	ModeSearch:      "search",
	ModePreview:     "preview",
	ModeConfirm:     "confirm",
	ModeHelp:        "help",
	ModeDescription: "description",
	ModeRunScript:   "run-script",
	ModeRootWarning: "root-warning",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// FocusedPanel is the list that receives navigation keys in Normal mode.
type FocusedPanel int

const (
	FocusCategories FocusedPanel = iota
	FocusScripts
)

func (p FocusedPanel) String() string {
	if p == FocusScripts {
		return "scripts"
	}
	return "categories"
}

// DrainPolicy decides what happens when a queued launch finishes and more
// scripts are waiting.
type DrainPolicy string

const (
	// DrainAuto launches the next queued script straight away.
	DrainAuto DrainPolicy = "auto"
	// DrainConfirm asks again before every further script.
	DrainConfirm DrainPolicy = "confirm"
)

// ParseDrainPolicy validates a drain setting. The empty string means auto.
func ParseDrainPolicy(value string) (DrainPolicy, error) {
	switch DrainPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", DrainAuto:
		return DrainAuto, nil
	case DrainConfirm:
		return DrainConfirm, nil
	default:
		return "", fmt.Errorf("unknown drain policy %q (want auto or confirm)", value)
	}
}

// Options configures a Model.
type Options struct {
	Width       int
	Height      int
	ShowFooter  bool
	Theme       string
	ThemeLocked bool
	Drain       DrainPolicy
	RootWarning bool
	Runner      launch.Runner
}

type msgHandler func(tea.Msg) tea.Cmd

// runState is the RunScript popup.
type runState struct {
	req      launch.Request
	running  bool
	err      string
	exitCode int
	detached bool
}

// Model implements the Bubble Tea model for the script launcher.
type Model struct {
	styles  *theme.Styles
	catalog *catalog.Catalog
	view    *state.CatalogView
	search  *state.Search
	multi   state.MultiSelect
	queue   state.ExecutionQueue

	mode   Mode
	focus  FocusedPanel
	resume bool

	preview     *previewData
	description *descriptionData
	loadSeq     int
	help        state.ScrollRegion
	helpLines   []string
	helpWidth   int
	run         *runState

	spinner           spinner.Model
	searchCursor      cursor.Model
	searchCursorDirty bool
	footer            help.Model
	keys              keyMap
	bus               *command.Bus

	drain       DrainPolicy
	themeName   string
	themeLocked bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	handlers map[reflect.Type]msgHandler
	quitting bool
	animate  bool
}

// NewModel builds the launcher UI over cat. A nil catalog behaves like an
// empty one.
func NewModel(cat *catalog.Catalog, opts Options) *Model {
	if cat == nil {
		cat = catalog.New("")
	}
	m := &Model{
		catalog:     cat,
		view:        state.NewCatalogView(cat),
		search:      state.NewSearch(cat),
		mode:        ModeNormal,
		focus:       FocusScripts,
		keys:        defaultKeyMap(),
		bus:         command.New(opts.Runner),
		drain:       opts.Drain,
		themeLocked: opts.ThemeLocked,
		showFooter:  opts.ShowFooter,
		animate:     true,
	}
	if m.drain == "" {
		m.drain = DrainAuto
	}
	m.applyTheme(opts.Theme)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if opts.RootWarning {
		m.mode = ModeRootWarning
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp

	c := cursor.New()
	c.SetChar(" ")
	m.searchCursor = c
	m.footer = help.New()
	m.applyWidgetStyles()

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.ensurePreview()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.animate && m.mode == ModeSearch {
		var cmd tea.Cmd
		m.searchCursor, cmd = m.searchCursor.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):         m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(previewLoadedMsg{}):     m.handlePreviewLoadedMsg,
		reflect.TypeOf(descriptionLoadedMsg{}): m.handleDescriptionLoadedMsg,
		reflect.TypeOf(launch.FinishedMsg{}):   m.handleFinishedMsg,
		reflect.TypeOf(spinner.TickMsg{}):      m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		if m.animate && m.mode == ModeSearch {
			m.searchCursor.Blink = false
			if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setMode(to Mode) {
	if m.mode == to {
		return
	}
	events.Mode.Change(m.mode.String(), to.String())
	m.mode = to
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// Mode returns the active mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Focus returns the focused Normal-mode panel.
func (m *Model) Focus() FocusedPanel {
	return m.focus
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// ThemeName returns the active theme.
func (m *Model) ThemeName() string {
	return m.themeName
}

func (m *Model) applyTheme(name string) {
	if name == "" {
		name = theme.DefaultName
	}
	s, ok := theme.Get(name)
	if !ok {
		name = theme.DefaultName
		s = theme.Default()
	}
	m.styles = s
	m.themeName = name
	m.helpLines = nil
	m.applyWidgetStyles()
}

func (m *Model) applyWidgetStyles() {
	if m.styles.Spinner != nil {
		m.spinner.Style = m.styles.Spinner.Copy()
	}
	if m.styles.Cursor != nil {
		m.searchCursor.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		m.searchCursor.TextStyle = m.styles.Filter.Copy()
	}
	if m.styles.Footer != nil {
		m.footer.Styles.ShortKey = m.styles.Footer.Copy().Bold(true)
		m.footer.Styles.ShortDesc = m.styles.Footer.Copy()
		m.footer.Styles.ShortSeparator = m.styles.Footer.Copy()
	}
}

func (m *Model) cycleTheme() {
	if m.themeLocked {
		m.setInfo("Theme is locked")
		return
	}
	m.applyTheme(theme.Next(m.themeName))
	events.Mode.Theme(m.themeName)
	m.setInfo("Theme: " + m.themeName)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if m.mode == ModeHelp {
		m.renderHelp()
	}
	m.syncScrollBounds()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
