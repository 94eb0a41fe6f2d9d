package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, set from the current theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBg          color.Color
	ColorBgAlt       color.Color
	ColorBgSelected  color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorInfo        color.Color
	ColorSuccess     color.Color
)

// Title and status bar styles
var (
	HeaderStyle         lipgloss.Style
	HeaderMenuStyle     lipgloss.Style
	StatusBarStyle      lipgloss.Style
	StatusBarDebugStyle lipgloss.Style
	StatusKeyStyle      lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// List styles, shared by the sidebar views, the panel and the modals
var (
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	MutedStyle    lipgloss.Style
	SectionStyle  lipgloss.Style
)

// Activity bar, tab and editor styles
var (
	ActivityStyle       lipgloss.Style
	ActivityActiveStyle lipgloss.Style
	TabStyle            lipgloss.Style
	TabActiveStyle      lipgloss.Style
	GutterStyle         lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	StatusLoadingStyle    lipgloss.Style
	StatusErrorStyle      lipgloss.Style
)

// Modal and toast styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
	ToastInfoStyle  lipgloss.Style
	ToastErrorStyle lipgloss.Style
)

// Markdown styles
var (
	MarkdownHeadingStyle    lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
	MarkdownRuleStyle       lipgloss.Style
)

// Diff styles
var (
	DiffAddedStyle    lipgloss.Style
	DiffRemovedStyle  lipgloss.Style
	DiffConflictStyle lipgloss.Style
)
