package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/ui"
	"github.com/zhubert/facade/internal/workspace"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateLayout(m.width, m.height, m.ws.Sidebar().Visible, m.ws.Panel().Visible)
	m.sidebarVisible = m.ws.Sidebar().Visible
	m.panelVisible = m.ws.Panel().Visible

	m.header.SetWidth(ctx.TerminalWidth)
	m.statusBar.SetWidth(ctx.TerminalWidth)

	bodyHeight := max(ctx.EditorHeight-ui.TabBarHeight, 1)
	m.editor.SetSize(ctx.MainWidth, bodyHeight)
	m.diff.SetSize(ctx.MainWidth, bodyHeight)
	m.settings.SetWidth(ctx.MainWidth)
	if ctx.PanelHeight > 0 {
		m.panel.SetSize(ctx.MainWidth, ctx.PanelHeight)
	}
	if ctx.SidebarWidth > 0 {
		m.chat.SetSize(ctx.InnerWidth(ctx.SidebarWidth), max(ctx.InnerHeight(ctx.ContentHeight)-ui.TitleHeight, 1))
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	ctx := ui.GetViewContext()
	m.statusBar.SetContext(m.ws.IsDebugging(), m.activeLanguage(), m.queue.Len())
	m.statusBar.SetBindings(m.statusBindings())

	columns := []string{ui.RenderActivityBar(m.ws.Sidebar(), ctx.ContentHeight)}
	if ctx.SidebarWidth > 0 {
		columns = append(columns, m.renderSidebar(ctx.SidebarWidth, ctx.ContentHeight))
	}
	columns = append(columns, m.renderMain(ctx))

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.statusBar.View(),
	)
	return ui.OverlayBottomRight(view, ui.RenderToasts(m.queue.Live()), ctx.TerminalWidth, ctx.StatusBarHeight)
}

// renderSidebar draws the active sidebar tab in its box
func (m *Model) renderSidebar(width, height int) string {
	ctx := ui.GetViewContext()
	innerW := ctx.InnerWidth(width)
	innerH := max(ctx.InnerHeight(height)-ui.TitleHeight, 0)
	focused := m.focus == FocusSidebar
	tab := m.ws.Sidebar().Tab

	var content string
	switch tab {
	case workspace.TabExplorer:
		activeID := ""
		if f := m.ws.Active(); f != nil {
			activeID = f.ID
		}
		content = m.explorer.View(innerW, innerH, focused, activeID)
	case workspace.TabSearch:
		content = m.search.View(innerW, innerH)
	case workspace.TabGit:
		content = m.scm.View(innerW, innerH, focused)
	case workspace.TabDebug:
		content = m.debug.View(innerW, innerH, focused, m.ws)
	case workspace.TabExtensions:
		content = m.extensions.View(innerW, innerH)
	case workspace.TabAssistant:
		content = m.chat.View()
	}
	return ui.RenderBox(tab.Title(), content, width, height, focused)
}

// renderMain draws the tab strip, the active view and the panel
func (m *Model) renderMain(ctx *ui.ViewContext) string {
	width := ctx.MainWidth
	bodyHeight := max(ctx.EditorHeight-ui.TabBarHeight, 1)

	activeID := ""
	if f := m.ws.Active(); f != nil {
		activeID = f.ID
	}

	var body string
	switch v := m.ws.View().(type) {
	case workspace.WelcomeView:
		body = ui.RenderWelcome(width, bodyHeight)
	case workspace.EditorView:
		body = m.editor.View()
	case workspace.DiffView:
		body = m.diff.View()
	case workspace.SettingsView:
		body = m.settings.View(width, bodyHeight)
	case workspace.ExtensionView:
		body = ui.RenderExtensionDetail(v.Extension, width, bodyHeight)
	}
	body = lipgloss.NewStyle().
		Width(width).Height(bodyHeight).
		MaxWidth(width).MaxHeight(bodyHeight).
		Render(body)

	parts := []string{ui.RenderTabs(m.ws.OpenFiles(), activeID, width), body}
	if ctx.PanelHeight > 0 {
		parts = append(parts, m.panel.View(m.focus == FocusPanel))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
