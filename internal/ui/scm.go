package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// SCMView is the source control sidebar. It lists every file with a
// HEAD revision that differs from its content, plus every open file.
type SCMView struct {
	branch  string
	changes []*workspace.Node
	cursor  int
}

// NewSCMView creates a source control view for branch
func NewSCMView(branch string) *SCMView {
	return &SCMView{branch: branch}
}

// Refresh recomputes the change list in tree order
func (s *SCMView) Refresh(tree *workspace.Tree, open []*workspace.Node) {
	isOpen := make(map[string]bool, len(open))
	for _, f := range open {
		isOpen[f.ID] = true
	}
	s.changes = s.changes[:0]
	for _, f := range tree.Files() {
		if f.Modified() || isOpen[f.ID] {
			s.changes = append(s.changes, f)
		}
	}
	if s.cursor >= len(s.changes) {
		s.cursor = max(len(s.changes)-1, 0)
	}
}

// Changes returns the listed files
func (s *SCMView) Changes() []*workspace.Node {
	return s.changes
}

// MoveUp moves the cursor up
func (s *SCMView) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down
func (s *SCMView) MoveDown() {
	if s.cursor < len(s.changes)-1 {
		s.cursor++
	}
}

// Selected returns the file under the cursor
func (s *SCMView) Selected() *workspace.Node {
	if s.cursor < 0 || s.cursor >= len(s.changes) {
		return nil
	}
	return s.changes[s.cursor]
}

// View renders the branch, a changes header and one row per file
func (s *SCMView) View(width, height int, focused bool) string {
	head := []string{
		MutedStyle.Render("⎇ " + s.branch),
		SectionStyle.Render(fmt.Sprintf("CHANGES %d", len(s.changes))),
	}
	if len(s.changes) == 0 {
		return joinLines(append(head, MutedStyle.Render("No changes")))
	}

	mark := lipgloss.NewStyle().Foreground(ColorWarning)
	rows := make([]string, len(s.changes))
	for i, f := range s.changes {
		rows[i] = fitLine(f.Name, max(width-2, 0)) + mark.Render(" M")
	}
	body := renderRows(rows, s.cursor, width, max(height-len(head), 0), focused)
	return joinLines(append(head, body))
}
