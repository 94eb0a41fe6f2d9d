package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/workspace"
)

// RenderTabs renders the editor tab strip for the open files. Modified
// files carry a dot instead of the close mark.
func RenderTabs(files []*workspace.Node, activeID string, width int) string {
	if len(files) == 0 {
		return lipgloss.NewStyle().Width(width).Background(ColorBgAlt).Render("")
	}
	var parts []string
	for _, f := range files {
		mark := "×"
		if f.Modified() {
			mark = "●"
		}
		label := " " + f.Name + " " + mark + " "
		if f.ID == activeID {
			parts = append(parts, TabActiveStyle.Render(label))
		} else {
			parts = append(parts, TabStyle.Render(label))
		}
	}
	strip := strings.Join(parts, "")
	strip = ansi.Truncate(strip, width, "…")
	if pad := width - lipgloss.Width(strip); pad > 0 {
		strip += lipgloss.NewStyle().Background(ColorBgAlt).Render(strings.Repeat(" ", pad))
	}
	return strip
}
