package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/keys"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/ui"
	"github.com/zhubert/facade/internal/workspace"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all global shortcuts.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+b", "f5")
	DisplayKey  string                              // Display name in hints; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts
const (
	CategoryNavigation = "Navigation"
	CategoryView       = "View"
	CategoryDebug      = "Run and Debug"
	CategoryFile       = "File"
	CategoryGeneral    = "General"
)

// ShortcutRegistry is the central registry of all global shortcuts.
// Keys that are handled here never reach the focused component.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Cycle focus",
		Category:    CategoryNavigation,
		Handler:     shortcutCycleFocus,
		Condition:   func(m *Model) bool { return !m.settingsFocused() },
	},
	{Key: keys.CtrlPageDown, Description: "Next editor", Category: CategoryNavigation, Handler: shortcutNextTab},
	{Key: keys.CtrlPageUp, Description: "Previous editor", Category: CategoryNavigation, Handler: shortcutPrevTab},
	{Key: keys.CtrlW, Description: "Close editor", Category: CategoryNavigation, Handler: shortcutCloseTab},
	{Key: keys.Alt1, Description: "Explorer", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabExplorer)},
	{Key: keys.Alt2, Description: "Search", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabSearch)},
	{Key: keys.Alt3, Description: "Source Control", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabGit)},
	{Key: keys.Alt4, Description: "Run and Debug", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabDebug)},
	{Key: keys.Alt5, Description: "Extensions", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabExtensions)},
	{Key: keys.Alt6, Description: "Assistant", Category: CategoryNavigation, Handler: sidebarTab(workspace.TabAssistant)},

	// View
	{Key: keys.CtrlShiftP, DisplayKey: "ctrl+shift+p", Description: "Command palette", Category: CategoryView, Handler: shortcutPalette},
	{Key: keys.CtrlP, Description: "Command palette", Category: CategoryView, Handler: shortcutPalette},
	{Key: keys.CtrlB, Description: "Toggle sidebar", Category: CategoryView, Handler: shortcutToggleSidebar},
	{Key: keys.CtrlBacktick, Description: "Toggle panel", Category: CategoryView, Handler: shortcutTogglePanel},
	{Key: keys.CtrlAt, DisplayKey: "ctrl+`", Description: "Toggle panel", Category: CategoryView, Handler: shortcutTogglePanel},
	{Key: keys.CtrlComma, Description: "Settings", Category: CategoryView, Handler: shortcutSettings},
	{Key: keys.F10, Description: "Menu bar", Category: CategoryView, Handler: shortcutMenu},

	// Run and Debug
	{Key: keys.F5, Description: "Start / continue", Category: CategoryDebug, Handler: shortcutStartDebugging},
	{Key: keys.ShiftF5, Description: "Stop debugging", Category: CategoryDebug, Handler: shortcutStopDebugging},

	// File
	{Key: keys.CtrlN, Description: "New file", Category: CategoryFile, Handler: command(workspace.CmdNewFile)},
	{Key: keys.CtrlO, Description: "Open file", Category: CategoryFile, Handler: command(workspace.CmdOpenFile)},
	{Key: keys.CtrlS, Description: "Save", Category: CategoryFile, Handler: command(workspace.CmdSaveFile)},

	// General
	{Key: keys.CtrlC, Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
	{Key: keys.CtrlQ, Description: "Quit", Category: CategoryGeneral, Handler: shortcutQuit},
}

// Display returns the key as shown to the user
func (s Shortcut) Display() string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// ExecuteShortcut runs the registered shortcut for key. It reports
// false when no shortcut matches or its condition fails, letting the key
// reach the focused component.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.Debug("Shortcut: Guard failed for %q, passing key through", key)
			return m, nil, false
		}
		logger.Debug("Shortcut: executing %q (%s)", key, s.Description)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// statusBindings returns the hints shown in the status bar for the
// focused area.
func (m *Model) statusBindings() []ui.KeyBinding {
	bindings := []ui.KeyBinding{{Key: "ctrl+shift+p", Desc: "commands"}}
	switch m.focus {
	case FocusSidebar:
		switch m.ws.Sidebar().Tab {
		case workspace.TabAssistant:
			bindings = append(bindings, ui.KeyBinding{Key: "enter", Desc: "send"})
		case workspace.TabGit:
			bindings = append(bindings, ui.KeyBinding{Key: "enter", Desc: "diff"})
		default:
			bindings = append(bindings, ui.KeyBinding{Key: "enter", Desc: "open"})
		}
	case FocusMain:
		switch m.ws.View().Kind() {
		case workspace.ViewSettings:
			bindings = append(bindings, ui.KeyBinding{Key: "ctrl+j", Desc: "json"})
		case workspace.ViewEditor:
			bindings = append(bindings, ui.KeyBinding{Key: "ctrl+w", Desc: "close"})
		}
	case FocusPanel:
		bindings = append(bindings, ui.KeyBinding{Key: "←/→", Desc: "tabs"})
	}
	return append(bindings, ui.KeyBinding{Key: "tab", Desc: "focus"})
}

func (m *Model) settingsFocused() bool {
	return m.focus == FocusMain && m.ws.View().Kind() == workspace.ViewSettings
}

func shortcutCycleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.cycleFocus()
	return m, nil
}

func shortcutNextTab(m *Model) (tea.Model, tea.Cmd) {
	m.ws.CycleTab(1)
	m.sync()
	return m, nil
}

func shortcutPrevTab(m *Model) (tea.Model, tea.Cmd) {
	m.ws.CycleTab(-1)
	m.sync()
	return m, nil
}

func shortcutCloseTab(m *Model) (tea.Model, tea.Cmd) {
	m.ws.CloseActive()
	m.sync()
	return m, nil
}

func sidebarTab(tab workspace.SidebarTab) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.ws.SwitchSidebarTab(tab)
		m.sync()
		m.setFocus(FocusSidebar)
		return m, nil
	}
}

func shortcutPalette(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewPaletteState(m.palette))
	return m, nil
}

func shortcutMenu(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewMenuState(m.menus))
	return m, nil
}

func shortcutToggleSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.ws.ToggleSidebar()
	m.sync()
	return m, nil
}

func shortcutTogglePanel(m *Model) (tea.Model, tea.Cmd) {
	m.ws.TogglePanel()
	m.sync()
	if m.ws.Panel().Visible {
		m.setFocus(FocusPanel)
	}
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	return m, m.dispatchCommand(workspace.CmdSettings)
}

func shortcutStartDebugging(m *Model) (tea.Model, tea.Cmd) {
	if m.ws.IsDebugging() {
		m.panel.AppendDebugConsole("Continuing")
		return m, nil
	}
	return m, m.dispatchCommand(workspace.CmdStartDebugging)
}

func shortcutStopDebugging(m *Model) (tea.Model, tea.Cmd) {
	return m, m.dispatchCommand(workspace.CmdStopDebugging)
}

func command(id string) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		return m, m.dispatchCommand(id)
	}
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
