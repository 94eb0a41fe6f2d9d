// Package logger writes facade's diagnostics to a log file.
//
// The terminal is owned by the TUI, so nothing is ever logged to stdout
// or stderr once the program is running. Every logger handed out by this
// package forwards to the current sink, so component loggers stored in
// long-lived structs keep working across Init, Reset and Close.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called.
const DefaultLogPath = "/tmp/facade-debug.log"

type sink struct {
	mu      sync.Mutex
	handler slog.Handler
	file    *os.File
	path    string
}

var (
	out   sink
	level = new(slog.LevelVar)
	root  = slog.New(forwarder{})
)

// SetLevel sets the minimum level written to the sink.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(slog.LevelDebug)
		return
	}
	SetLevel(slog.LevelInfo)
}

// Init opens path for appending and routes all logging there.
// Calling Init again before Close or Reset is a no-op.
func Init(path string) error {
	out.mu.Lock()
	if out.handler != nil {
		out.mu.Unlock()
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		out.mu.Unlock()
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	out.file, out.path = f, path
	out.handler = newHandler(f)
	out.mu.Unlock()

	root.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes logging to w. Used by tests and by `--log-file -`.
func InitWriter(w io.Writer) {
	out.mu.Lock()
	defer out.mu.Unlock()
	if out.handler == nil {
		out.handler = newHandler(w)
	}
}

func newHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// current returns the sink's handler, opening DefaultLogPath on first use.
func current() slog.Handler {
	out.mu.Lock()
	defer out.mu.Unlock()
	if out.handler == nil {
		f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			out.handler = slog.NewTextHandler(io.Discard, nil)
		} else {
			out.file, out.path = f, DefaultLogPath
			out.handler = newHandler(f)
		}
	}
	return out.handler
}

// forwarder is a slog.Handler that resolves the sink on every record and
// replays the attrs and groups it was derived with.
type forwarder struct {
	derive []func(slog.Handler) slog.Handler
}

func (f forwarder) Enabled(_ context.Context, l slog.Level) bool {
	return l >= level.Level()
}

func (f forwarder) Handle(ctx context.Context, r slog.Record) error {
	h := current()
	for _, d := range f.derive {
		h = d(h)
	}
	return h.Handle(ctx, r)
}

func (f forwarder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.with(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f forwarder) WithGroup(name string) slog.Handler {
	return f.with(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f forwarder) with(d func(slog.Handler) slog.Handler) forwarder {
	derive := make([]func(slog.Handler) slog.Handler, len(f.derive), len(f.derive)+1)
	copy(derive, f.derive)
	return forwarder{derive: append(derive, d)}
}

// Path returns the file currently receiving log output, or "" if logging
// goes to a writer.
func Path() string {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.path
}

func logf(l slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !root.Enabled(ctx, l) {
		return
	}
	root.Log(ctx, l, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Get returns the structured logger.
func Get() *slog.Logger { return root }

// WithComponent returns a logger with the component attribute pre-attached.
//
//	log := logger.WithComponent("assistant")
//	log.Info("request sent", "generation", gen)
func WithComponent(component string) *slog.Logger {
	return root.With(slog.String("component", component))
}

// Close closes the log file. Later records reopen DefaultLogPath unless
// Init or InitWriter is called first.
func Close() {
	out.mu.Lock()
	defer out.mu.Unlock()
	if out.file != nil {
		out.file.Close()
	}
	out.file, out.path, out.handler = nil, "", nil
}

// Reset closes the sink and restores the info level. Tests use it to
// reinitialize the package.
func Reset() {
	Close()
	level.Set(slog.LevelInfo)
}
