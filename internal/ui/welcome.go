package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// welcomeShortcuts are listed on the welcome screen
var welcomeShortcuts = []KeyBinding{
	{Key: "ctrl+shift+p", Desc: "Show All Commands"},
	{Key: "ctrl+p", Desc: "Go to File"},
	{Key: "ctrl+b", Desc: "Toggle Sidebar"},
	{Key: "ctrl+`", Desc: "Toggle Panel"},
	{Key: "ctrl+,", Desc: "Open Settings"},
	{Key: "f5", Desc: "Start Debugging"},
	{Key: "f10", Desc: "Menu Bar"},
	{Key: "alt+1..6", Desc: "Switch Sidebar View"},
}

// RenderWelcome renders the welcome screen centred in width x height
func RenderWelcome(width, height int) string {
	title := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("facade")
	tagline := MutedStyle.Render("Editing evolved")

	link := lipgloss.NewStyle().Foreground(ColorSecondary)
	start := []string{
		SectionStyle.Render("Start"),
		link.Render("+ New File..."),
		link.Render("❐ Open File..."),
		link.Render("⎇ Clone Git Repository..."),
		"",
		SectionStyle.Render("Recent"),
		MutedStyle.Italic(true).Render("No recent folders"),
	}

	keyStyle := StatusKeyStyle.Foreground(ColorSecondary)
	shortcuts := []string{SectionStyle.Render("Shortcuts")}
	for _, kb := range welcomeShortcuts {
		shortcuts = append(shortcuts, keyStyle.Render(padRight(kb.Key, 14))+kb.Desc)
	}

	help := []string{
		"",
		SectionStyle.Render("Help"),
		link.Render("Tips and Tricks"),
		link.Render("Product documentation"),
	}

	left := strings.Join(start, "\n")
	right := strings.Join(append(shortcuts, help...), "\n")
	columns := left
	if width >= 70 {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(34).Render(left), right)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, title, tagline, "", columns)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
