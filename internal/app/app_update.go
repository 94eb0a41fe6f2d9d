package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/keys"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/ui"
	"github.com/zhubert/facade/internal/workspace"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case AssistantResponseMsg:
		return m.handleAssistantResponseMsg(msg)

	case NotificationExpiredMsg:
		return m.handleNotificationExpiredMsg(msg)
	}

	// Everything else (mouse wheel, cursor blink) goes to the focused area
	return m, m.updateFocused(msg)
}

// handleKeyPress handles all keyboard input: the modal first, then Esc,
// then the global shortcuts, then the focused area.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Debug("App: KeyPressMsg received: key=%q, focus=%v, modalVisible=%v", key, m.focus, m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if key == keys.Escape {
		if cmd, handled := m.handleEscapeKey(); handled {
			return m, cmd
		}
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	switch m.focus {
	case FocusSidebar:
		return m, m.handleSidebarKey(msg)
	case FocusPanel:
		return m, m.handlePanelKey(msg)
	default:
		return m, m.handleMainKey(msg)
	}
}

// handleModalKey routes keys to the visible modal. Enter confirms and
// Esc cancels; everything else edits the modal's own state.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		if state, ok := m.modal.State.(*ui.PaletteState); ok {
			state.Palette().Cancel()
		}
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		switch state := m.modal.State.(type) {
		case *ui.PaletteState:
			id, ok := state.Palette().Select()
			if !ok {
				return m, nil
			}
			m.modal.Hide()
			return m, m.dispatchCommand(id)
		case *ui.MenuState:
			item, ok := state.Selected()
			m.modal.Hide()
			if !ok {
				return m, nil
			}
			return m, m.menuAction(item)
		}

	case keys.CtrlC:
		return m, tea.Quit
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleEscapeKey leaves the detail screens and otherwise dismisses the
// newest toast.
func (m *Model) handleEscapeKey() (tea.Cmd, bool) {
	switch m.ws.View().Kind() {
	case workspace.ViewExtension:
		m.ws.ShowWelcome()
		m.sync()
		return nil, true
	case workspace.ViewSettings, workspace.ViewDiff:
		if m.focus == FocusMain {
			m.ws.ShowEditor()
			m.sync()
			return nil, true
		}
	}
	if live := m.queue.Live(); len(live) > 0 {
		m.queue.Dismiss(live[len(live)-1].ID)
		return nil, true
	}
	return nil, false
}

// handleSidebarKey routes a key to the active sidebar tab
func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch m.ws.Sidebar().Tab {
	case workspace.TabExplorer:
		switch key {
		case keys.Up, "k":
			m.explorer.MoveUp()
		case keys.Down, "j":
			m.explorer.MoveDown()
		case keys.Enter, keys.Space:
			if node := m.explorer.Selected(); node != nil {
				m.ws.Open(node)
				m.sync()
			}
		}

	case workspace.TabSearch:
		switch key {
		case keys.Up:
			m.search.MoveUp()
		case keys.Down:
			m.search.MoveDown()
		case keys.Enter:
			if id, ok := m.search.Selected(); ok {
				m.ws.OpenByID(id)
				m.sync()
			}
		default:
			before := m.search.Query()
			_, cmd := m.search.Update(msg)
			if m.search.Query() != before {
				m.search.Refresh(m.ws.Tree())
			}
			return cmd
		}

	case workspace.TabGit:
		switch key {
		case keys.Up, "k":
			m.scm.MoveUp()
		case keys.Down, "j":
			m.scm.MoveDown()
		case keys.Enter:
			if node := m.scm.Selected(); node != nil {
				if !m.ws.IsOpen(node.ID) {
					m.ws.Open(node)
				}
				m.ws.ShowDiff(node.ID)
				m.sync()
			}
		}

	case workspace.TabDebug:
		switch key {
		case keys.Up, "k":
			m.debug.MoveUp()
		case keys.Down, "j":
			m.debug.MoveDown()
		case keys.Enter, keys.Space:
			action := m.debug.Selected()
			if action.SetLayout {
				m.ws.SetDebugLayout(action.Layout)
				return nil
			}
			was := m.ws.IsDebugging()
			m.ws.ToggleDebugging()
			if m.ws.IsDebugging() != was {
				m.logDebugState()
			}
			m.sync()
		}

	case workspace.TabExtensions:
		switch key {
		case keys.Up:
			m.extensions.MoveUp()
		case keys.Down:
			m.extensions.MoveDown()
		case keys.Enter:
			if ext, ok := m.extensions.Selected(); ok {
				m.ws.ShowExtension(ext)
				m.sync()
			}
		default:
			_, cmd := m.extensions.Update(msg)
			return cmd
		}

	case workspace.TabAssistant:
		if key == keys.Enter {
			return m.submitChat()
		}
		_, cmd := m.chat.Update(msg)
		return cmd
	}
	return nil
}

// handleMainKey routes a key to whatever the main area shows
func (m *Model) handleMainKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.ws.View().Kind() {
	case workspace.ViewSettings:
		if msg.String() == keys.CtrlJ {
			m.settings.ToggleMode()
			return nil
		}
		_, cmd := m.settings.Update(msg)
		if m.settings.Apply() {
			ui.SetTheme(m.config.GetEditor().ColorTheme)
			m.sync()
		}
		return cmd
	case workspace.ViewEditor:
		_, cmd := m.editor.Update(msg)
		return cmd
	case workspace.ViewDiff:
		_, cmd := m.diff.Update(msg)
		return cmd
	}
	return nil
}

// handlePanelKey switches panel tabs with left/right and scrolls the body
func (m *Model) handlePanelKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Left:
		m.ws.SetPanelTab(stepPanelTab(m.ws.Panel().Tab, -1))
		m.sync()
		return nil
	case keys.Right:
		m.ws.SetPanelTab(stepPanelTab(m.ws.Panel().Tab, 1))
		m.sync()
		return nil
	}
	_, cmd := m.panel.Update(msg)
	return cmd
}

// updateFocused forwards a non-key message to the focused scrollable
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusPanel:
		_, cmd = m.panel.Update(msg)
	case FocusSidebar:
		if m.ws.Sidebar().Tab == workspace.TabAssistant {
			_, cmd = m.chat.Update(msg)
		}
	default:
		switch m.ws.View().Kind() {
		case workspace.ViewEditor:
			_, cmd = m.editor.Update(msg)
		case workspace.ViewDiff:
			_, cmd = m.diff.Update(msg)
		}
	}
	return cmd
}

// stepPanelTab returns the panel tab delta positions from t, wrapping
func stepPanelTab(t workspace.PanelTab, delta int) workspace.PanelTab {
	n := len(workspace.PanelTabs)
	for i, tab := range workspace.PanelTabs {
		if tab == t {
			return workspace.PanelTabs[((i+delta)%n+n)%n]
		}
	}
	return workspace.PanelTabs[0]
}
