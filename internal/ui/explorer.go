package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// Explorer is the file tree view of the sidebar. It keeps a cursor over
// the visible rows; the tree itself is owned by the workspace.
type Explorer struct {
	rows   []workspace.Row
	cursor int
}

// NewExplorer creates an explorer over tree
func NewExplorer(tree *workspace.Tree) *Explorer {
	e := &Explorer{}
	e.SetTree(tree)
	return e
}

// SetTree refreshes the rows after the tree changed. The cursor stays on
// the same node when it is still visible.
func (e *Explorer) SetTree(tree *workspace.Tree) {
	var selectedID string
	if n := e.Selected(); n != nil {
		selectedID = n.ID
	}
	e.rows = tree.Visible()
	e.cursor = min(e.cursor, max(len(e.rows)-1, 0))
	for i, r := range e.rows {
		if r.Node.ID == selectedID {
			e.cursor = i
			break
		}
	}
}

// Cursor returns the index of the highlighted row
func (e *Explorer) Cursor() int {
	return e.cursor
}

// MoveUp moves the cursor up, stopping at the first row
func (e *Explorer) MoveUp() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last row
func (e *Explorer) MoveDown() {
	if e.cursor < len(e.rows)-1 {
		e.cursor++
	}
}

// Selected returns the node under the cursor, or nil for an empty tree
func (e *Explorer) Selected() *workspace.Node {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return nil
	}
	return e.rows[e.cursor].Node
}

// View renders the tree rows into width x height cells
func (e *Explorer) View(width, height int, focused bool, activeID string) string {
	lines := make([]string, len(e.rows))
	for i, r := range e.rows {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", r.Depth))
		name := r.Node.Name
		switch {
		case r.Node.IsDir() && r.Node.Expanded:
			b.WriteString("▾ " + name)
		case r.Node.IsDir():
			b.WriteString("▸ " + name)
		case r.Node.ID == activeID:
			b.WriteString("  " + lipgloss.NewStyle().Foreground(ColorPrimary).Render(name))
		case r.Node.Modified():
			b.WriteString("  " + lipgloss.NewStyle().Foreground(ColorWarning).Render(name+" M"))
		default:
			b.WriteString("  " + name)
		}
		lines[i] = b.String()
	}
	return renderRows(lines, e.cursor, width, height, focused)
}
