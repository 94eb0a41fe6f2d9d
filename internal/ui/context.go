package ui

import (
	"sync"

	"github.com/zhubert/facade/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight    int
	StatusBarHeight int
	ContentHeight   int // between the title bar and the status bar
	SidebarWidth    int // 0 when the sidebar is hidden
	MainWidth       int // editor column, right of the activity bar and sidebar
	EditorHeight    int // tab strip plus editor body
	PanelHeight     int // 0 when the panel is hidden

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:    HeaderHeight,
			StatusBarHeight: StatusBarHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateLayout recalculates all dimensions for the given terminal size
// and auxiliary area visibility. It is called on resize and whenever
// the sidebar or panel is toggled.
func (v *ViewContext) UpdateLayout(width, height int, sidebarVisible, panelVisible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.StatusBarHeight = StatusBarHeight
	v.ContentHeight = height - v.HeaderHeight - v.StatusBarHeight

	v.SidebarWidth = 0
	if sidebarVisible {
		v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
	}
	v.MainWidth = width - ActivityBarWidth - v.SidebarWidth

	v.PanelHeight = 0
	if panelVisible {
		v.PanelHeight = max(v.ContentHeight/PanelHeightRatio, MinPanelHeight)
	}
	v.EditorHeight = v.ContentHeight - v.PanelHeight

	logger.WithComponent("ui").Debug("Layout updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"mainWidth", v.MainWidth,
		"editorHeight", v.EditorHeight,
		"panelHeight", v.PanelHeight,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
