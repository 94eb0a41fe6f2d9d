package workspace

import "fmt"

// Command identifiers understood by Dispatch.
const (
	CmdNewFile        = "new-file"
	CmdOpenFile       = "open-file"
	CmdSaveFile       = "save-file"
	CmdSettings       = "settings"
	CmdTheme          = "theme"
	CmdTerminal       = "terminal"
	CmdAssistant      = "ai"
	CmdToggleSidebar  = "toggle-sidebar"
	CmdStartDebugging = "start-debugging"
	CmdStopDebugging  = "stop-debugging"
	CmdWelcome        = "welcome"
	CmdCopyFile       = "copy-file"
)

// Outcome describes what a dispatched command needs from the caller
// beyond the state change the controller already made.
type Outcome struct {
	// Notice is an info notification to show, empty for none.
	Notice string
	// CopyFile is set when the caller should copy this file's content
	// to the clipboard.
	CopyFile *Node
}

// Dispatch runs the command with the given id. A handful of ids map to
// concrete actions; every other id is acknowledged with a generic
// "Executed command" notice.
func (c *Controller) Dispatch(id string) Outcome {
	c.log.Debug("dispatch", "command", id)

	switch id {
	case CmdSettings:
		c.ShowSettings()
	case CmdTerminal:
		c.TogglePanel()
	case CmdAssistant:
		c.SwitchSidebarTab(TabAssistant)
	case CmdNewFile:
		return Outcome{Notice: "New file created (mock)"}
	case CmdToggleSidebar:
		c.ToggleSidebar()
	case CmdStartDebugging:
		c.StartDebugging()
	case CmdStopDebugging:
		c.StopDebugging()
	case CmdWelcome:
		c.ShowWelcome()
	case CmdCopyFile:
		if c.active == nil {
			return Outcome{Notice: "No active file to copy"}
		}
		return Outcome{CopyFile: c.active}
	default:
		return Outcome{Notice: fmt.Sprintf("Executed command: %s", id)}
	}
	return Outcome{}
}
