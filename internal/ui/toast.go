package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/notification"
)

// RenderToasts stacks the newest notifications, oldest on top. At most
// MaxVisibleToasts are shown.
func RenderToasts(live []notification.Notification) string {
	if len(live) == 0 {
		return ""
	}
	if len(live) > MaxVisibleToasts {
		live = live[len(live)-MaxVisibleToasts:]
	}
	boxes := make([]string, len(live))
	for i, n := range live {
		style, icon := ToastInfoStyle, lipgloss.NewStyle().Foreground(ColorInfo).Render("ⓘ")
		if n.Kind == notification.Error {
			style, icon = ToastErrorStyle, lipgloss.NewStyle().Foreground(ColorError).Render("⊗")
		}
		boxes[i] = style.Render(icon + " " + wrapText(n.Message, ToastWidth-6))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

// OverlayBottomRight draws overlay over the bottom right corner of base,
// leaving offset lines free at the bottom.
func OverlayBottomRight(base, overlay string, width, offset int) string {
	if overlay == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	over := strings.Split(overlay, "\n")
	ow := lipgloss.Width(overlay)
	left := max(width-ow-1, 0)

	start := len(baseLines) - offset - len(over)
	for i, line := range over {
		row := start + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		bl := baseLines[row]
		prefix := ansi.Truncate(bl, left, "")
		if pad := left - lipgloss.Width(prefix); pad > 0 {
			prefix += strings.Repeat(" ", pad)
		}
		suffix := ansi.TruncateLeft(bl, left+lipgloss.Width(line), "")
		baseLines[row] = prefix + line + suffix
	}
	return strings.Join(baseLines, "\n")
}
