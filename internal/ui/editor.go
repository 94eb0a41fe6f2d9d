package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// Editor shows the active file read-only with line numbers and syntax
// highlighting. Scrolling is handled by a viewport.
type Editor struct {
	viewport viewport.Model
	file     *workspace.Node
	theme    string
	width    int
	height   int
}

// NewEditor creates an empty editor
func NewEditor() *Editor {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &Editor{viewport: vp}
}

// SetSize sets the editor dimensions, tab strip excluded
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.viewport.SetWidth(width)
	e.viewport.SetHeight(max(height, 1))
	e.render()
}

// File returns the file being shown
func (e *Editor) File() *workspace.Node {
	return e.file
}

// SetFile shows f. Switching to another file scrolls back to the top;
// the same file keeps its position.
func (e *Editor) SetFile(f *workspace.Node) {
	same := e.file != nil && f != nil && e.file.ID == f.ID
	if same && e.theme == CurrentTheme().Name {
		return
	}
	e.file = f
	e.render()
	if !same {
		e.viewport.GotoTop()
	}
}

// render rebuilds the gutter and highlighted lines
func (e *Editor) render() {
	e.theme = CurrentTheme().Name
	if e.file == nil {
		e.viewport.SetContent("")
		return
	}
	lines := HighlightLines(e.file.Content, e.file.Language)
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(GutterStyle.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(line)
	}
	e.viewport.SetContent(b.String())
}

// ScrollOffset returns the index of the first visible line
func (e *Editor) ScrollOffset() int {
	return e.viewport.YOffset()
}

// Update handles scrolling keys
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.viewport, cmd = e.viewport.Update(msg)
	return e, cmd
}

// View renders the visible part of the file
func (e *Editor) View() string {
	return e.viewport.View()
}
