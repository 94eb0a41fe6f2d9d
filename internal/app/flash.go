package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/notification"
)

// ShowNotification pushes a toast and returns the command that expires
// it. Error toasts are mirrored to the desktop when enabled.
func (m *Model) ShowNotification(text string, kind notification.Kind) tea.Cmd {
	n := m.queue.Push(text, kind)
	logger.WithComponent("app").Debug("notification shown", "id", n.ID, "kind", kind.String())

	cmds := []tea.Cmd{expireAfter(n.ID, m.queue.Duration())}
	if m.config.GetNotificationsDesktop() && kind == notification.Error {
		cmds = append(cmds, func() tea.Msg {
			_ = notification.Mirror(n)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// ShowInfo displays an info toast
func (m *Model) ShowInfo(text string) tea.Cmd {
	return m.ShowNotification(text, notification.Info)
}

// ShowError displays an error toast
func (m *Model) ShowError(text string) tea.Cmd {
	return m.ShowNotification(text, notification.Error)
}

// expireAfter schedules the expiry of one toast
func expireAfter(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{ID: id}
	})
}
