// Package ui provides theme management for the application.
// Themes are keyed by the workbench.colorTheme setting, so picking a
// theme on the settings screen restyles the whole workbench.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/logger"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the workbench.colorTheme value selecting this theme
	Name string

	// ChromaStyle names the chroma style used for syntax highlighting
	ChromaStyle string

	// Primary is the main accent color (focus, active tab, status bar)
	Primary string
	// Secondary is used for keys, links and assistant labels
	Secondary string

	// Background colors
	Bg         string // Editor background
	BgAlt      string // Sidebar, panel and title bar background
	BgSelected string // Selected row background (defaults to Primary if empty)

	// Text colors
	Text        string
	TextMuted   string
	TextInverse string // Text on Primary

	// Semantic colors
	User    string // User message labels
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string
	BorderFocus string // Focused panel borders (defaults to Primary if empty)

	// Diff colors
	DiffAdded    string
	DiffRemoved  string
	DiffConflict string

	// Markdown colors
	MarkdownHeading string
	MarkdownCode    string
	MarkdownLink    string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// Built-in theme names, matching the values offered by the settings screen.
const (
	ThemeDarkModern    = "Default Dark Modern"
	ThemeLightModern   = "Default Light Modern"
	ThemeMonokai       = "Monokai"
	ThemeSolarizedDark = "Solarized Dark"
)

// DefaultTheme is used when the configured theme is unknown.
const DefaultTheme = ThemeDarkModern

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[string]Theme{
	ThemeDarkModern: {
		Name:            ThemeDarkModern,
		ChromaStyle:     "github-dark",
		Primary:         "#0078D4",
		Secondary:       "#4FC1FF",
		Bg:              "#1F1F1F",
		BgAlt:           "#181818",
		BgSelected:      "#04395E",
		Text:            "#CCCCCC",
		TextMuted:       "#9D9D9D",
		TextInverse:     "#FFFFFF",
		User:            "#C586C0",
		Warning:         "#CCA700",
		Error:           "#F14C4C",
		Info:            "#3794FF",
		Success:         "#89D185",
		Border:          "#2B2B2B",
		DiffAdded:       "#81B88B",
		DiffRemoved:     "#C74E39",
		DiffConflict:    "#E2C08D",
		MarkdownHeading: "#569CD6",
		MarkdownCode:    "#CE9178",
		MarkdownLink:    "#4FC1FF",
	},
	ThemeLightModern: {
		Name:            ThemeLightModern,
		ChromaStyle:     "github",
		Primary:         "#005FB8",
		Secondary:       "#0451A5",
		Bg:              "#FFFFFF",
		BgAlt:           "#F8F8F8",
		BgSelected:      "#E8E8E8",
		Text:            "#3B3B3B",
		TextMuted:       "#6E7681",
		TextInverse:     "#FFFFFF",
		User:            "#AF00DB",
		Warning:         "#BF8803",
		Error:           "#E51400",
		Info:            "#1A85FF",
		Success:         "#388A34",
		Border:          "#E5E5E5",
		DiffAdded:       "#587C0C",
		DiffRemoved:     "#AD0707",
		DiffConflict:    "#895503",
		MarkdownHeading: "#0000FF",
		MarkdownCode:    "#A31515",
		MarkdownLink:    "#0451A5",
	},
	ThemeMonokai: {
		Name:            ThemeMonokai,
		ChromaStyle:     "monokai",
		Primary:         "#A6E22E",
		Secondary:       "#66D9EF",
		Bg:              "#272822",
		BgAlt:           "#1E1F1C",
		BgSelected:      "#414339",
		Text:            "#F8F8F2",
		TextMuted:       "#90908A",
		TextInverse:     "#272822",
		User:            "#AE81FF",
		Warning:         "#E6DB74",
		Error:           "#F92672",
		Info:            "#66D9EF",
		Success:         "#A6E22E",
		Border:          "#414339",
		DiffAdded:       "#A6E22E",
		DiffRemoved:     "#F92672",
		DiffConflict:    "#FD971F",
		MarkdownHeading: "#F92672",
		MarkdownCode:    "#E6DB74",
		MarkdownLink:    "#66D9EF",
	},
	ThemeSolarizedDark: {
		Name:            ThemeSolarizedDark,
		ChromaStyle:     "solarized-dark",
		Primary:         "#2AA198",
		Secondary:       "#268BD2",
		Bg:              "#002B36",
		BgAlt:           "#00212B",
		BgSelected:      "#073642",
		Text:            "#93A1A1",
		TextMuted:       "#586E75",
		TextInverse:     "#FDF6E3",
		User:            "#D33682",
		Warning:         "#B58900",
		Error:           "#DC322F",
		Info:            "#268BD2",
		Success:         "#859900",
		Border:          "#073642",
		DiffAdded:       "#859900",
		DiffRemoved:     "#DC322F",
		DiffConflict:    "#CB4B16",
		MarkdownHeading: "#268BD2",
		MarkdownCode:    "#2AA198",
		MarkdownLink:    "#6C71C4",
	},
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

func init() {
	regenerateStyles()
}

// ThemeNames returns all built-in theme names, default first.
func ThemeNames() []string {
	names := make([]string, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		if name != DefaultTheme {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultTheme}, names...)
}

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles. Unknown
// names select the default theme.
func SetTheme(name string) {
	if _, ok := BuiltinThemes[name]; !ok {
		logger.WithComponent("ui").Warn("unknown color theme, using default", "theme", name)
	}
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgAlt = lipgloss.Color(t.BgAlt)
	ColorBgSelected = lipgloss.Color(t.GetBgSelected())
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorInfo = lipgloss.Color(t.Info)
	ColorSuccess = lipgloss.Color(t.Success)

	// Title and status bars
	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBgAlt)

	HeaderMenuStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary)

	StatusBarDebugStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorWarning)

	StatusKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse)

	// Panels
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	// Lists
	ItemStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	SelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	// Activity bar and tabs
	ActivityStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(ActivityBarWidth).
		Align(lipgloss.Center)

	ActivityActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Width(ActivityBarWidth).
		Align(lipgloss.Center)

	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBg).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	// Editor
	GutterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(GutterWidth).
		Align(lipgloss.Right).
		PaddingRight(1)

	// Chat
	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Modals
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Toasts
	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorInfo).
		Foreground(ColorText).
		Padding(0, 1).
		Width(ToastWidth)

	ToastErrorStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Foreground(ColorText).
		Padding(0, 1).
		Width(ToastWidth)

	// Markdown
	MarkdownHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownHeading))

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode))

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)

	MarkdownRuleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	// Diff
	DiffAddedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.DiffAdded))

	DiffRemovedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.DiffRemoved))

	DiffConflictStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.DiffConflict)).
		Bold(true)
}
