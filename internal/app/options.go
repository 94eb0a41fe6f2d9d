package app

import (
	"time"

	"github.com/zhubert/facade/internal/assistant"
	"github.com/zhubert/facade/internal/clipboard"
)

// Option customizes a Model at construction
type Option func(*Model)

// WithAssistant sets the client that answers chat prompts. Without it
// the chat reports the assistant as unconfigured.
func WithAssistant(client assistant.Client) Option {
	return func(m *Model) {
		if client != nil {
			m.client = client
		}
	}
}

// WithClipboard sets where copy-file writes. Defaults to the system
// clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(m *Model) {
		if w != nil {
			m.clipboard = w
		}
	}
}

// WithClock replaces time.Now for notification timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}
