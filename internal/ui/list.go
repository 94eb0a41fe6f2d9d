package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// scrollWindow returns the [start, end) range of n rows to show in
// height lines so that cursor stays visible.
func scrollWindow(n, cursor, height int) (int, int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, min(start+height, n)
}

// fitLine truncates s to width cells and pads it to exactly width.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// renderRows renders list rows in a window of height lines. The row at
// cursor is highlighted when highlight is set.
func renderRows(rows []string, cursor, width, height int, highlight bool) string {
	start, end := scrollWindow(len(rows), cursor, height)
	out := make([]string, 0, height)
	for i := start; i < end; i++ {
		line := fitLine(rows[i], width)
		if highlight && i == cursor {
			line = SelectedStyle.Render(ansi.Strip(line))
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RenderBox draws a bordered area with a title row above content.
func RenderBox(title, content string, width, height int, focused bool) string {
	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}
	innerW := GetViewContext().InnerWidth(width)
	innerH := GetViewContext().InnerHeight(height)

	body := PanelTitleStyle.Render(fitLine(strings.ToUpper(title), innerW))
	if content != "" {
		body += "\n" + content
	}
	lines := strings.Split(body, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// joinLines joins the non-empty parts with newlines.
func joinLines(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// clipLines keeps at most height lines of s.
func clipLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:max(height, 0)]
	}
	return strings.Join(lines, "\n")
}
