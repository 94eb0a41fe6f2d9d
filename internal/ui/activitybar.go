package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// activityIcons are the glyphs of the sidebar tabs, in SidebarTabs order.
var activityIcons = map[workspace.SidebarTab]string{
	workspace.TabExplorer:   "❐",
	workspace.TabSearch:     "⌕",
	workspace.TabGit:        "⎇",
	workspace.TabDebug:      "▷",
	workspace.TabExtensions: "⊞",
	workspace.TabAssistant:  "✦",
}

// RenderActivityBar renders the icon strip left of the sidebar. The
// active tab is marked only while the sidebar is visible.
func RenderActivityBar(sidebar workspace.Sidebar, height int) string {
	rows := make([]string, 0, len(workspace.SidebarTabs)*2)
	for _, tab := range workspace.SidebarTabs {
		style := ActivityStyle
		if sidebar.Visible && tab == sidebar.Tab {
			style = ActivityActiveStyle
		}
		rows = append(rows, style.Render(activityIcons[tab]), "")
	}
	content := strings.Join(rows, "\n")
	return lipgloss.NewStyle().
		Width(ActivityBarWidth).
		Height(height).
		Background(ColorBgAlt).
		Render(content)
}
