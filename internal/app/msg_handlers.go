package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/assistant"
	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/workspace"
)

// handleAssistantResponseMsg applies a finished request to the chat.
// The response lands even if the user has moved elsewhere meanwhile.
func (m *Model) handleAssistantResponseMsg(msg AssistantResponseMsg) (tea.Model, tea.Cmd) {
	if !m.session.Complete(msg.Response) {
		return m, nil
	}
	m.chat.SetTranscript(m.session.Transcript(), m.session.Loading())
	return m, nil
}

// handleNotificationExpiredMsg removes an expired toast. The user may
// already have dismissed it.
func (m *Model) handleNotificationExpiredMsg(msg NotificationExpiredMsg) (tea.Model, tea.Cmd) {
	if m.queue.Dismiss(msg.ID) {
		logger.WithComponent("app").Debug("notification expired", "id", msg.ID)
	}
	return m, nil
}

// submitChat sends the chat input to the assistant with the active file
// as context.
func (m *Model) submitChat() tea.Cmd {
	var active *assistant.File
	if f := m.ws.Active(); f != nil {
		active = &assistant.File{Name: f.Name, Content: f.Content}
	}
	req, ok := m.session.Submit(m.chat.GetInput(), active)
	if !ok {
		return nil
	}
	m.chat.ClearInput()
	m.chat.SetTranscript(m.session.Transcript(), m.session.Loading())

	client := m.client
	timeout := m.config.AssistantTimeout()
	return func() tea.Msg {
		return AssistantResponseMsg{Response: assistant.Run(context.Background(), client, req, timeout)}
	}
}

// dispatchCommand runs a palette command and performs whatever the
// controller hands back.
func (m *Model) dispatchCommand(id string) tea.Cmd {
	logger.WithComponent("app").Info("command dispatched", "command", id)
	wasDebugging := m.ws.IsDebugging()
	out := m.ws.Dispatch(id)
	if m.ws.IsDebugging() != wasDebugging {
		m.logDebugState()
	}

	var cmds []tea.Cmd
	switch id {
	case workspace.CmdSettings:
		m.settings.Reset()
		m.setFocus(FocusMain)
	case workspace.CmdAssistant:
		m.setFocus(FocusSidebar)
	}
	if out.Notice != "" {
		cmds = append(cmds, m.ShowInfo(out.Notice))
	}
	if out.CopyFile != nil {
		cmds = append(cmds, m.copyFile(out.CopyFile))
	}
	m.sync()
	return tea.Batch(cmds...)
}

// copyFile puts a file's content on the clipboard
func (m *Model) copyFile(f *workspace.Node) tea.Cmd {
	if err := m.clipboard.WriteText(f.Content); err != nil {
		logger.WithComponent("app").Error("copy failed", "file", f.Name, "error", err)
		if errors.Is(err, errors.KindIO) {
			return m.ShowError("Clipboard unavailable")
		}
		return m.ShowError(fmt.Sprintf("Could not copy %s", f.Name))
	}
	return m.ShowInfo(fmt.Sprintf("Copied %s to clipboard", f.Name))
}

// logDebugState writes the debugger state to the debug console
func (m *Model) logDebugState() {
	if m.ws.IsDebugging() {
		m.panel.AppendDebugConsole(fmt.Sprintf("Debugger attached (%s layout)", m.ws.DebugLayout()))
		return
	}
	m.panel.AppendDebugConsole("Debugger detached")
}

// menuAction acknowledges a menu bar item
func (m *Model) menuAction(item string) tea.Cmd {
	logger.WithComponent("app").Info("menu action", "item", item)
	return m.ShowInfo("Action: " + item)
}
