package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// extensionDetails is the marketplace page body, in markdown. %s is the
// first word of the extension name.
const extensionDetails = `## Details

This extension provides comprehensive support for %s. It includes features like IntelliSense, linting, debugging, and more.

### Features

- High-performance code analysis
- Intelligent code completion
- Advanced debugging support
- Seamless integration with the editor
`

// ExtensionID returns the marketplace identifier publisher.id
func ExtensionID(ext workspace.Extension) string {
	return strings.ToLower(ext.Publisher) + "." + ext.ID
}

// RenderExtensionDetail renders the marketplace page of ext
func RenderExtensionDetail(ext workspace.Extension, width, height int) string {
	icon := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorPrimary).
		Width(9).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(ExtensionGlyph(ext.Icon))

	name := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(ext.Name)
	meta := fmt.Sprintf("%s  %s  ⤓ %s  %s",
		lipgloss.NewStyle().Foreground(ColorSecondary).Render(ext.Publisher),
		MutedStyle.Render("|"),
		ext.Installs,
		lipgloss.NewStyle().Foreground(ColorWarning).Render(fmt.Sprintf("★ %.1f", ext.Rating)),
	)
	button := lipgloss.NewStyle().Padding(0, 2).Foreground(ColorTextInverse).Background(ColorPrimary)
	var buttons string
	if ext.Installed {
		buttons = lipgloss.NewStyle().Padding(0, 2).Background(ColorBgSelected).Render("Uninstall") + " " + button.Render("Disable")
	} else {
		buttons = button.Render("Install")
	}

	textWidth := max(width-16, 20)
	summary := lipgloss.JoinVertical(lipgloss.Left,
		name,
		meta,
		"",
		buttons,
		"",
		wrapText(ext.Description, textWidth),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, icon, "  ", summary)

	firstWord, _, _ := strings.Cut(ext.Name, " ")
	details := renderMarkdown(fmt.Sprintf(extensionDetails, firstWord), max(width-4, 20))
	side := strings.Join([]string{
		SectionStyle.Render("EXTENSION ID"),
		MutedStyle.Render(ExtensionID(ext)),
		SectionStyle.Render("VERSION"),
		MutedStyle.Render(ext.Version),
	}, "\n")

	help := ModalHelpStyle.Render("esc: back")
	out := lipgloss.JoinVertical(lipgloss.Left, top, "", details, "", side, "", help)
	return lipgloss.NewStyle().Padding(1, 2).Render(clipLines(out, max(height-2, 0)))
}
