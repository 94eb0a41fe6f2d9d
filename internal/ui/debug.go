package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// DebugAction is what pressing enter on a debug sidebar row does.
type DebugAction struct {
	// SetLayout is true when the row selects Layout
	SetLayout bool
	Layout    workspace.DebugLayout
	// Toggle is true for the start/stop button
	Toggle bool
}

var debugLayoutLabels = map[workspace.DebugLayout]string{
	workspace.LayoutStandard:   "Standard",
	workspace.LayoutSplit:      "Split",
	workspace.LayoutMinimalist: "Minimal",
}

// DebugView is the run and debug sidebar. The selectable rows are the
// layouts followed by the start/stop button.
type DebugView struct {
	cursor int
}

// NewDebugView creates a debug view
func NewDebugView() *DebugView {
	return &DebugView{}
}

func (d *DebugView) rowCount() int {
	return len(workspace.DebugLayouts) + 1
}

// MoveUp moves the cursor up
func (d *DebugView) MoveUp() {
	if d.cursor > 0 {
		d.cursor--
	}
}

// MoveDown moves the cursor down
func (d *DebugView) MoveDown() {
	if d.cursor < d.rowCount()-1 {
		d.cursor++
	}
}

// Selected returns the action of the row under the cursor
func (d *DebugView) Selected() DebugAction {
	if d.cursor < len(workspace.DebugLayouts) {
		return DebugAction{SetLayout: true, Layout: workspace.DebugLayouts[d.cursor]}
	}
	return DebugAction{Toggle: true}
}

// View renders the layout selector, the start button, the variables of
// the active file and the breakpoints.
func (d *DebugView) View(width, height int, focused bool, c *workspace.Controller) string {
	rows := make([]string, 0, d.rowCount())
	for _, l := range workspace.DebugLayouts {
		mark := "○ "
		if l == c.DebugLayout() {
			mark = "● "
		}
		rows = append(rows, mark+debugLayoutLabels[l])
	}
	button := lipgloss.NewStyle().Foreground(ColorSuccess).Render("▶ Start Debugging")
	if c.IsDebugging() {
		button = lipgloss.NewStyle().Foreground(ColorWarning).Render("▶ Continue") +
			MutedStyle.Render("  enter to stop")
	}
	rows = append(rows, button)

	file := "none"
	if f := c.Active(); f != nil {
		file = f.Name
	}
	state := MutedStyle.Render("Not running")
	if c.IsDebugging() {
		state = lipgloss.NewStyle().Foreground(ColorWarning).Render("Paused on entry")
	}

	lines := []string{SectionStyle.Render("LAYOUT")}
	lines = append(lines, renderRows(rows, d.cursor, width, len(rows), focused))
	lines = append(lines,
		"",
		state,
		SectionStyle.Render("VARIABLES"),
		fitLine("  file: "+file, width),
		fitLine("  layout: "+c.DebugLayout().String(), width),
		SectionStyle.Render("BREAKPOINTS"),
		fitLine("  ☐ Raised Exceptions", width),
		fitLine("  ☑ Uncaught Exceptions", width),
	)
	return clipLines(strings.Join(lines, "\n"), height)
}
