package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: branch, problem counts, debug state and
// language on the edges, key hints for the focused area in between.
type StatusBar struct {
	width         int
	branch        string
	errors        int
	warnings      int
	debugging     bool
	language      string
	notifications int
	bindings      []KeyBinding
}

// NewStatusBar creates a new status bar
func NewStatusBar(branch string) *StatusBar {
	return &StatusBar{branch: branch}
}

// SetWidth sets the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetProblems sets the error and warning counts
func (s *StatusBar) SetProblems(errors, warnings int) {
	s.errors = errors
	s.warnings = warnings
}

// SetContext updates the parts of the bar that follow the workspace
func (s *StatusBar) SetContext(debugging bool, language string, notifications int) {
	s.debugging = debugging
	s.language = language
	s.notifications = notifications
}

// SetBindings sets the key hints for the focused area
func (s *StatusBar) SetBindings(bindings []KeyBinding) {
	s.bindings = bindings
}

// Left returns the unstyled left section
func (s *StatusBar) Left() string {
	parts := []string{"⎇ " + s.branch, fmt.Sprintf("⊗ %d  ⚠ %d", s.errors, s.warnings)}
	if s.debugging {
		parts = append(parts, "▶ Debugging")
	}
	return strings.Join(parts, "   ")
}

// Right returns the unstyled right section
func (s *StatusBar) Right() string {
	var parts []string
	if s.language != "" {
		parts = append(parts, s.language)
	}
	if s.notifications > 0 {
		parts = append(parts, fmt.Sprintf("● %d", s.notifications))
	} else {
		parts = append(parts, "○")
	}
	return strings.Join(parts, "   ")
}

// View renders the status bar
func (s *StatusBar) View() string {
	base := StatusBarStyle
	if s.debugging {
		base = StatusBarDebugStyle
	}

	left := " " + s.Left() + "   "
	right := "   " + s.Right() + " "

	var hints []string
	for _, b := range s.bindings {
		hints = append(hints, StatusKeyStyle.Inherit(base).Render(b.Key)+base.Render(" "+b.Desc))
	}
	middle := strings.Join(hints, base.Render("  "))

	room := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if room < 0 {
		right = ""
		room = s.width - lipgloss.Width(left)
	}
	middle = ansi.Truncate(middle, max(room, 0), "…")
	pad := max(room-lipgloss.Width(middle), 0)

	line := base.Render(left) + middle + base.Render(strings.Repeat(" ", pad)+right)
	return ansi.Truncate(line, s.width, "")
}
