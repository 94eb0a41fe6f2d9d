// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the OS clipboard. It initializes lazily on first use; if
// initialization fails (no display, cgo disabled) every write reports
// the same error.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns a Writer for the OS clipboard.
func NewSystem() *System {
	return &System{}
}

func (s *System) init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: failed to initialize: %v", err)
			s.initErr = errors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: initialized")
	})
	return s.initErr
}

// WriteText replaces the clipboard contents with text.
func (s *System) WriteText(text string) error {
	if err := s.init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes", len(text))
	return nil
}

// Memory is an in-process clipboard used when the system clipboard is
// unavailable and in tests.
type Memory struct {
	mu   sync.Mutex
	text string
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
