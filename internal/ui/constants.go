// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the title/menu bar in lines
	HeaderHeight = 1

	// StatusBarHeight is the height of the status bar in lines
	StatusBarHeight = 1

	// TabBarHeight is the height of the editor tab strip
	TabBarHeight = 1

	// ActivityBarWidth is the width of the icon strip left of the sidebar
	ActivityBarWidth = 4

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps tree rows readable on narrow terminals
	MinSidebarWidth = 24

	// PanelHeightRatio is the denominator for the bottom panel height (1/3 of the content)
	PanelHeightRatio = 3

	// MinPanelHeight includes the panel's tab row and border
	MinPanelHeight = 6

	// MinTerminalWidth and MinTerminalHeight clamp the layout
	MinTerminalWidth  = 60
	MinTerminalHeight = 16

	// TitleHeight is the height of section titles inside the sidebar
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// GutterWidth is the width of the editor line-number column
	GutterWidth = 5
)

// Input limits
const (
	// SearchCharLimit bounds the sidebar search and extension filter inputs
	SearchCharLimit = 100

	// ChatCharLimit bounds a single assistant prompt
	ChatCharLimit = 2000

	// PaletteCharLimit bounds the command palette query
	PaletteCharLimit = 80
)

// Modal and toast dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// PaletteVisibleRows is the number of commands shown at once
	PaletteVisibleRows = 10

	// ToastWidth is the width of a notification toast
	ToastWidth = 44

	// MaxVisibleToasts is how many toasts are stacked before older ones are hidden
	MaxVisibleToasts = 4
)
