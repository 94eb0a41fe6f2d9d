// Package config loads facade's settings.json, a VS Code style settings
// file with dotted keys that may contain comments and trailing commas.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/zhubert/facade/internal/errors"
	"github.com/zhubert/facade/internal/logger"
)

// AutoSaveModes are the accepted values of editor.autoSave.
var AutoSaveModes = []string{"off", "afterDelay", "onFocusChange", "onWindowChange"}

// DebugLayouts are the accepted values of debug.layout.
var DebugLayouts = []string{"standard", "split", "minimalist"}

// Config holds the user settings.
type Config struct {
	EditorFontSize         int    `json:"editor.fontSize"`
	EditorFontFamily       string `json:"editor.fontFamily"`
	EditorAutoSave         string `json:"editor.autoSave"`
	FilesAutoGuessEncoding bool   `json:"files.autoGuessEncoding"`
	ColorTheme             string `json:"workbench.colorTheme"`
	TerminalFontSize       int    `json:"terminal.integrated.fontSize"`

	AssistantModel          string `json:"assistant.model,omitempty"`     // Empty means the assistant's default model
	AssistantAPIKeyEnv      string `json:"assistant.apiKeyEnv"`           // Environment variable holding the API key
	AssistantTimeoutSeconds int    `json:"assistant.timeoutSeconds"`      // Per-request deadline
	NotificationSeconds     int    `json:"notifications.durationSeconds"` // Toast lifetime
	NotificationsDesktop    bool   `json:"notifications.desktop"`         // Mirror error toasts to the desktop
	DebugLayout             string `json:"debug.layout"`                  // Layout recipe applied when debugging starts
	SeedFile                string `json:"workbench.seedFile,omitempty"`  // Optional YAML seed replacing the built-in workspace

	mu       sync.RWMutex
	filePath string
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		EditorFontSize:          14,
		EditorFontFamily:        "'Cascadia Code', 'Consolas', monospace",
		EditorAutoSave:          "off",
		ColorTheme:              "Default Dark Modern",
		TerminalFontSize:        12,
		AssistantAPIKeyEnv:      "GEMINI_API_KEY",
		AssistantTimeoutSeconds: 60,
		NotificationSeconds:     5,
		DebugLayout:             "standard",
	}
}

// DefaultPath returns ~/.facade/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".facade", "settings.json"), nil
}

// Load reads settings from path, falling back to DefaultPath when path
// is empty. A missing file yields the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.facade/settings.json", err)
		}
		path = p
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("Config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.WithComponent("config").Info("loaded settings", "path", path)
	return cfg, nil
}

// Validate checks enum values and numeric ranges.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.EditorFontSize <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("editor.fontSize must be positive, got %d", c.EditorFontSize))
	}
	if c.TerminalFontSize <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("terminal.integrated.fontSize must be positive, got %d", c.TerminalFontSize))
	}
	if !slices.Contains(AutoSaveModes, c.EditorAutoSave) {
		return errors.ConfigInvalid(fmt.Sprintf("editor.autoSave: unknown mode %q", c.EditorAutoSave))
	}
	if !slices.Contains(DebugLayouts, c.DebugLayout) {
		return errors.ConfigInvalid(fmt.Sprintf("debug.layout: unknown layout %q", c.DebugLayout))
	}
	if c.AssistantTimeoutSeconds <= 0 {
		return errors.ConfigInvalid("assistant.timeoutSeconds must be positive")
	}
	if c.NotificationSeconds <= 0 {
		return errors.ConfigInvalid("notifications.durationSeconds must be positive")
	}
	if c.AssistantAPIKeyEnv == "" {
		return errors.ConfigInvalid("assistant.apiKeyEnv must not be empty")
	}
	return nil
}

// Path returns the file the settings were loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// JSON renders the settings the way the settings screen's JSON view
// shows them.
func (c *Config) JSON() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// AssistantTimeout returns the per-request deadline.
func (c *Config) AssistantTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.AssistantTimeoutSeconds) * time.Second
}

// NotificationDuration returns the toast lifetime.
func (c *Config) NotificationDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.NotificationSeconds) * time.Second
}

// Editor holds the fields edited on the settings screen.
type Editor struct {
	AutoSave          string
	FontFamily        string
	FontSize          int
	AutoGuessEncoding bool
	ColorTheme        string
	TerminalFontSize  int
}

// GetEditor returns the settings-screen fields.
func (c *Config) GetEditor() Editor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Editor{
		AutoSave:          c.EditorAutoSave,
		FontFamily:        c.EditorFontFamily,
		FontSize:          c.EditorFontSize,
		AutoGuessEncoding: c.FilesAutoGuessEncoding,
		ColorTheme:        c.ColorTheme,
		TerminalFontSize:  c.TerminalFontSize,
	}
}

// SetEditor applies settings-screen edits in memory. Nothing is written
// to disk.
func (c *Config) SetEditor(e Editor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.EditorAutoSave = e.AutoSave
	c.EditorFontFamily = e.FontFamily
	c.EditorFontSize = e.FontSize
	c.FilesAutoGuessEncoding = e.AutoGuessEncoding
	c.ColorTheme = e.ColorTheme
	c.TerminalFontSize = e.TerminalFontSize
}

// GetNotificationsDesktop returns whether error toasts go to the desktop.
func (c *Config) GetNotificationsDesktop() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsDesktop
}
