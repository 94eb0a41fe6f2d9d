package app

import (
	"context"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/assistant"
	"github.com/zhubert/facade/internal/clipboard"
	"github.com/zhubert/facade/internal/config"
	"github.com/zhubert/facade/internal/keys"
	"github.com/zhubert/facade/internal/seed"
)

// fixedNow is the clock used by test models
var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeClient is an assistant.Client that records requests and returns a
// canned answer.
type fakeClient struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []assistant.Request
}

func (f *fakeClient) Generate(_ context.Context, req assistant.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.text, f.err
}

func (f *fakeClient) Requests() []assistant.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]assistant.Request(nil), f.requests...)
}

// failingClipboard rejects every write
type failingClipboard struct{ err error }

func (f failingClipboard) WriteText(string) error { return f.err }

// testModel creates a test Model over the embedded seed with an
// in-memory clipboard and a fixed clock.
func testModel(opts ...Option) *Model {
	base := []Option{
		WithClipboard(&clipboard.Memory{}),
		WithClock(func() time.Time { return fixedNow }),
	}
	return New(config.Default(), seed.Default(), "0.0.0-test", append(base, opts...)...)
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(width, height int, opts ...Option) *Model {
	m := testModel(opts...)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+b", "up", "f5"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.F5:
		return tea.KeyPressMsg{Code: tea.KeyF5}
	case keys.ShiftF5:
		return tea.KeyPressMsg{Code: tea.KeyF5, Mod: tea.ModShift}
	case keys.F10:
		return tea.KeyPressMsg{Code: tea.KeyF10}
	case keys.CtrlPageUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp, Mod: tea.ModCtrl}
	case keys.CtrlPageDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown, Mod: tea.ModCtrl}
	case keys.CtrlShiftP:
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl | tea.ModShift}
	}
	if len(key) > 5 && key[:5] == "ctrl+" && len(key) == 6 {
		return tea.KeyPressMsg{Code: rune(key[5]), Mod: tea.ModCtrl}
	}
	if len(key) > 4 && key[:4] == "alt+" && len(key) == 5 {
		return tea.KeyPressMsg{Code: rune(key[4]), Mod: tea.ModAlt}
	}
	// Regular character - for single characters, set both Code and Text
	if len(key) == 1 {
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	// Fallback for unknown keys
	return tea.KeyPressMsg{Text: key}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// runCmd executes cmd and feeds every message it produces back into
// the model, expanding batches. Ticks are skipped so tests never sleep.
func runCmd(m *Model, cmd tea.Cmd) {
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(NotificationExpiredMsg); ok {
			continue
		}
		_, next := m.Update(msg)
		runCmd(m, next)
	}
}

// collectMsgs runs cmd synchronously, skipping tick commands
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collectMsgs(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// runWithTimeout runs cmd, giving up on commands that block (ticks)
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}
