package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/facade/internal/logger"
)

// notifier is the function used to deliver desktop notifications.
var notifier = beeep.Notify

// SetNotifier replaces the desktop delivery function, for tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep delivery.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send delivers a desktop notification using the platform default icon.
// On macOS it uses terminal-notifier or AppleScript, on Linux D-Bus or
// notify-send, on Windows the Runtime COM API.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q message=%q", title, message)
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: desktop delivery failed: %v", err)
	}
	return err
}

// Mirror sends n to the desktop when it is an error. Info toasts stay
// in the terminal.
func Mirror(n Notification) error {
	if n.Kind != Error {
		return nil
	}
	return Send("facade", n.Message)
}
