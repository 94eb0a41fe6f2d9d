package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// searchHit is one row of the results list: either a file header or a
// matching line of that file.
type searchHit struct {
	fileID string
	header bool
	label  string
}

// SearchView is the search sidebar: a query input over a live content
// search of the workspace.
type SearchView struct {
	input   textinput.Model
	result  workspace.SearchResult
	hits    []searchHit
	cursor  int
	focused bool
}

// NewSearchView creates an empty search view
func NewSearchView() *SearchView {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.CharLimit = SearchCharLimit
	ti.Prompt = "⌕ "
	return &SearchView{input: ti}
}

// SetFocused focuses or blurs the query input
func (s *SearchView) SetFocused(focused bool) {
	s.focused = focused
	if focused {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Query returns the current query text
func (s *SearchView) Query() string {
	return s.input.Value()
}

// SetQuery replaces the query and reruns the search against tree
func (s *SearchView) SetQuery(q string, tree *workspace.Tree) {
	s.input.SetValue(q)
	s.Refresh(tree)
}

// Result returns the last search result
func (s *SearchView) Result() workspace.SearchResult {
	return s.result
}

// Refresh reruns the search for the current query
func (s *SearchView) Refresh(tree *workspace.Tree) {
	s.result = tree.Search(s.input.Value())
	s.hits = s.hits[:0]
	for _, fm := range s.result.Files {
		s.hits = append(s.hits, searchHit{
			fileID: fm.File.ID,
			header: true,
			label:  fmt.Sprintf("%s (%d)", fm.File.Name, len(fm.Matches)),
		})
		for _, m := range fm.Matches {
			s.hits = append(s.hits, searchHit{
				fileID: fm.File.ID,
				label:  fmt.Sprintf("  %d: %s", m.Line, m.Text),
			})
		}
	}
	if s.cursor >= len(s.hits) {
		s.cursor = 0
	}
}

// Update forwards key input to the query field. The caller reruns the
// search with Refresh afterwards.
func (s *SearchView) Update(msg tea.Msg) (*SearchView, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// MoveUp moves the result cursor up
func (s *SearchView) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the result cursor down
func (s *SearchView) MoveDown() {
	if s.cursor < len(s.hits)-1 {
		s.cursor++
	}
}

// Selected returns the id of the file under the cursor
func (s *SearchView) Selected() (string, bool) {
	if s.cursor < 0 || s.cursor >= len(s.hits) {
		return "", false
	}
	return s.hits[s.cursor].fileID, true
}

// View renders the input, a summary line and the grouped results
func (s *SearchView) View(width, height int) string {
	s.input.SetWidth(max(width-3, 1))
	lines := []string{s.input.View()}

	switch {
	case s.result.Query == "":
		lines = append(lines, MutedStyle.Render("Type to search file contents"))
	case len(s.hits) == 0:
		lines = append(lines, MutedStyle.Render("No results found"))
	default:
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("%d results in %d files", s.result.Total(), len(s.result.Files))))
	}
	head := strings.Join(lines, "\n")

	rows := make([]string, len(s.hits))
	for i, h := range s.hits {
		if h.header {
			rows[i] = SectionStyle.Render(h.label)
		} else {
			rows[i] = h.label
		}
	}
	body := renderRows(rows, s.cursor, width, max(height-len(lines), 0), s.focused)
	if body == "" {
		return head
	}
	return head + "\n" + body
}
