package app

import "github.com/zhubert/facade/internal/assistant"

// Focus represents which area receives key input
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
	FocusPanel
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSidebar:
		return "sidebar"
	case FocusMain:
		return "main"
	case FocusPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// AssistantResponseMsg carries a finished assistant request back to
// the Update loop.
type AssistantResponseMsg struct {
	Response assistant.Response
}

// NotificationExpiredMsg is delivered when a toast's lifetime ends
type NotificationExpiredMsg struct {
	ID string
}
