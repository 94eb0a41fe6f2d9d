package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header is the title bar: the menu titles on the left and the window
// title on the right.
type Header struct {
	width  int
	menus  []string
	title  string
	branch string
}

// NewHeader creates a new header showing the given menu titles
func NewHeader(menus []string) *Header {
	return &Header{menus: menus}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetActiveFile sets the file name shown in the window title. Empty
// means no editor is active.
func (h *Header) SetActiveFile(name string) {
	h.title = name
}

// SetBranch sets the branch shown after the window title
func (h *Header) SetBranch(branch string) {
	h.branch = branch
}

// Title returns the window title text.
func (h *Header) Title() string {
	title := "facade"
	if h.title != "" {
		title = h.title + " - facade"
	}
	if h.branch != "" {
		title += " (" + h.branch + ")"
	}
	return title
}

// View renders the header
func (h *Header) View() string {
	menuText := " " + strings.Join(h.menus, "  ")
	rightText := h.Title() + " "

	// Drop the title before the menus when space runs out
	if runewidth.StringWidth(menuText)+runewidth.StringWidth(rightText) > h.width {
		rightText = ""
	}
	menuText = runewidth.Truncate(menuText, h.width, "…")

	paddingLen := h.width - runewidth.StringWidth(menuText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := menuText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(menuText)))
}

// parseHexColor parses a hex color string (e.g., "#0078D4") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content on a background fading from the
// title bar color into the accent color, so the window title sits on
// the accent. The first menuLen runes are the menu titles and use the
// muted text color.
func (h *Header) renderGradient(content string, menuLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.BgAlt)
	endR, endG, endB := parseHexColor(theme.Primary)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Hold the title bar color for the first half
		t := 0.0
		if half := width / 2; i > half {
			t = float64(i-half) / float64(width-half)
		}

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb)))
		if i < menuLen {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor).Bold(true)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
