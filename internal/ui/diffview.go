package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// DiffView shows a file side by side: HEAD on the left, the working
// copy on the right.
type DiffView struct {
	viewport viewport.Model
	file     *workspace.Node
	rows     []workspace.DiffRow
	width    int
	height   int
}

// NewDiffView creates an empty diff view
func NewDiffView() *DiffView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &DiffView{viewport: vp}
}

// SetSize sets the dimensions, header line included
func (d *DiffView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.viewport.SetWidth(width)
	d.viewport.SetHeight(max(height-1, 1))
	d.render()
}

// SetFile diffs f and scrolls to the top when the file changes
func (d *DiffView) SetFile(f *workspace.Node) {
	changed := d.file == nil || f == nil || d.file.ID != f.ID
	d.file = f
	d.rows = workspace.Diff(f)
	d.render()
	if changed {
		d.viewport.GotoTop()
	}
}

// Rows returns the computed diff rows
func (d *DiffView) Rows() []workspace.DiffRow {
	return d.rows
}

func (d *DiffView) columnWidth() int {
	return max((d.width-1)/2, 1)
}

func (d *DiffView) render() {
	col := d.columnWidth()
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		left := diffCell(r.LeftLine, r.Left, col, r.Op == workspace.DiffRemoved || r.Op == workspace.DiffChanged, DiffRemovedStyle)
		right := diffCell(r.RightLine, r.Right, col, r.Op == workspace.DiffAdded || r.Op == workspace.DiffChanged, DiffAddedStyle)
		lines[i] = left + MutedStyle.Render("│") + right
	}
	d.viewport.SetContent(strings.Join(lines, "\n"))
}

// diffCell renders one side of a row. Conflict markers win over the
// change colour.
func diffCell(num int, text string, width int, changed bool, style lipgloss.Style) string {
	if num == 0 {
		return strings.Repeat(" ", width)
	}
	cell := fitLine(fmt.Sprintf("%4d ", num)+text, width)
	switch {
	case workspace.IsConflictMarker(text):
		return DiffConflictStyle.Render(cell)
	case changed:
		return style.Render(cell)
	default:
		return cell
	}
}

// Update handles scrolling keys
func (d *DiffView) Update(msg tea.Msg) (*DiffView, tea.Cmd) {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the column headers and the rows
func (d *DiffView) View() string {
	name := ""
	if d.file != nil {
		name = d.file.Name
	}
	col := d.columnWidth()
	header := SectionStyle.Render(fitLine(name+" (HEAD)", col)) + MutedStyle.Render("│") +
		SectionStyle.Render(fitLine(name+" (Working Tree)", col))
	return header + "\n" + d.viewport.View()
}
