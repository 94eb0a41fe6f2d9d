package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/assistant"
	"github.com/zhubert/facade/internal/clipboard"
	"github.com/zhubert/facade/internal/config"
	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/notification"
	"github.com/zhubert/facade/internal/palette"
	"github.com/zhubert/facade/internal/seed"
	"github.com/zhubert/facade/internal/ui"
	"github.com/zhubert/facade/internal/workspace"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	seed    *seed.Data

	// Core state
	ws       *workspace.Controller
	palette  *palette.Palette
	queue    *notification.Queue
	session  *assistant.Session
	problems []workspace.Problem
	menus    []workspace.Menu

	// Components
	header     *ui.Header
	statusBar  *ui.StatusBar
	explorer   *ui.Explorer
	search     *ui.SearchView
	scm        *ui.SCMView
	debug      *ui.DebugView
	extensions *ui.ExtensionsView
	chat       *ui.Chat
	editor     *ui.Editor
	diff       *ui.DiffView
	settings   *ui.Settings
	panel      *ui.Panel
	modal      *ui.Modal

	width  int
	height int
	focus  Focus

	// Last layout applied, so toggles only resize when visibility changes
	sidebarVisible bool
	panelVisible   bool

	client    assistant.Client
	clipboard clipboard.Writer
	now       func() time.Time
}

// New creates a new app model over the seeded workspace
func New(cfg *config.Config, data *seed.Data, version string, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if data == nil {
		data = seed.Default()
	}

	ui.SetTheme(cfg.GetEditor().ColorTheme)

	tree := data.Tree()
	ws := workspace.NewController(tree)
	if layout, err := workspace.ParseDebugLayout(cfg.DebugLayout); err == nil {
		ws.SetDebugLayout(layout)
	}

	menus := data.MenuBar()
	titles := make([]string, len(menus))
	for i, menu := range menus {
		titles[i] = menu.Title
	}
	problems := data.ProblemList()

	m := &Model{
		config:     cfg,
		version:    version,
		seed:       data,
		ws:         ws,
		palette:    palette.New(palette.DefaultCatalog),
		session:    assistant.NewSession(),
		problems:   problems,
		menus:      menus,
		header:     ui.NewHeader(titles),
		statusBar:  ui.NewStatusBar(data.Branch),
		explorer:   ui.NewExplorer(tree),
		search:     ui.NewSearchView(),
		scm:        ui.NewSCMView(data.Branch),
		debug:      ui.NewDebugView(),
		extensions: ui.NewExtensionsView(data.ExtensionCatalog()),
		chat:       ui.NewChat(),
		editor:     ui.NewEditor(),
		diff:       ui.NewDiffView(),
		settings:   ui.NewSettings(cfg),
		panel: ui.NewPanel(ui.PanelContent{
			Terminal:     data.Terminal,
			Output:       data.Output,
			DebugConsole: data.DebugConsole,
			Problems:     problems,
		}),
		modal: ui.NewModal(),
		focus: FocusSidebar,
		client: assistant.Unconfigured{
			Err: errors.AssistantNotConfigured(cfg.AssistantAPIKeyEnv),
		},
		clipboard: clipboard.NewSystem(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.queue = notification.NewQueue(
		notification.WithDuration(cfg.NotificationDuration()),
		notification.WithClock(m.now),
	)

	m.header.SetBranch(data.Branch)
	m.statusBar.SetProblems(workspace.CountProblems(problems))
	m.sync()

	logger.WithComponent("app").Info("workspace ready",
		"files", len(tree.Files()),
		"extensions", len(data.Extensions),
		"version", version,
	)
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Workspace returns the workspace controller
func (m *Model) Workspace() *workspace.Controller {
	return m.ws
}

// Focus returns the focused area
func (m *Model) Focus() Focus {
	return m.focus
}

// Notifications returns the live toasts, oldest first
func (m *Model) Notifications() []notification.Notification {
	return m.queue.Live()
}

// Transcript returns the assistant chat transcript
func (m *Model) Transcript() []assistant.Message {
	return m.session.Transcript()
}

// setFocus moves key input to f, skipping hidden areas
func (m *Model) setFocus(f Focus) {
	switch {
	case f == FocusSidebar && !m.ws.Sidebar().Visible:
		f = FocusMain
	case f == FocusPanel && !m.ws.Panel().Visible:
		f = FocusMain
	}
	if f != m.focus {
		logger.WithComponent("app").Debug("focus changed", "from", m.focus.String(), "to", f.String())
	}
	m.focus = f
	m.syncInputs()
}

// cycleFocus moves focus to the next visible area
func (m *Model) cycleFocus() {
	order := []Focus{FocusSidebar, FocusMain, FocusPanel}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	for step := 1; step <= len(order); step++ {
		next := order[(idx+step)%len(order)]
		if m.isVisible(next) {
			m.setFocus(next)
			return
		}
	}
}

func (m *Model) isVisible(f Focus) bool {
	switch f {
	case FocusSidebar:
		return m.ws.Sidebar().Visible
	case FocusPanel:
		return m.ws.Panel().Visible
	default:
		return true
	}
}

// syncInputs focuses the text input that belongs to the focused sidebar
// tab and blurs the rest.
func (m *Model) syncInputs() {
	sidebar := m.ws.Sidebar()
	inSidebar := m.focus == FocusSidebar && sidebar.Visible
	m.search.SetFocused(inSidebar && sidebar.Tab == workspace.TabSearch)
	m.extensions.SetFocused(inSidebar && sidebar.Tab == workspace.TabExtensions)
	m.chat.SetFocused(inSidebar && sidebar.Tab == workspace.TabAssistant)
}

// sync pushes controller state into the components after a
// transition.
func (m *Model) sync() {
	sidebar, panel := m.ws.Sidebar(), m.ws.Panel()
	if sidebar.Visible != m.sidebarVisible || panel.Visible != m.panelVisible {
		m.sidebarVisible = sidebar.Visible
		m.panelVisible = panel.Visible
		if m.width > 0 && m.height > 0 {
			m.updateSizes()
		}
	}
	if !m.isVisible(m.focus) {
		m.focus = FocusMain
	}

	tree := m.ws.Tree()
	m.explorer.SetTree(tree)
	m.search.Refresh(tree)
	m.scm.Refresh(tree, m.ws.OpenFiles())
	m.panel.SetTab(panel.Tab)

	active := m.ws.Active()
	name := ""
	if active != nil {
		name = active.Name
	}
	m.header.SetActiveFile(name)
	m.chat.SetContextFile(name)

	switch v := m.ws.View().(type) {
	case workspace.EditorView:
		m.editor.SetFile(v.File)
	case workspace.DiffView:
		m.diff.SetFile(v.File)
	}

	m.chat.SetTranscript(m.session.Transcript(), m.session.Loading())
	m.syncInputs()
}

// activeLanguage is the language of the file in the editor
func (m *Model) activeLanguage() string {
	if m.ws.View().Kind() != workspace.ViewEditor {
		return ""
	}
	if f := m.ws.Active(); f != nil {
		return f.Language
	}
	return ""
}
