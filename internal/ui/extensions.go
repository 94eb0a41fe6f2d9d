package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/workspace"
)

// ExtensionsView is the marketplace sidebar: a filter input above the
// installed and recommended sections.
type ExtensionsView struct {
	input     textinput.Model
	catalog   []workspace.Extension
	installed []workspace.Extension
	suggested []workspace.Extension
	cursor    int
	focused   bool
}

// NewExtensionsView creates a view over catalog
func NewExtensionsView(catalog []workspace.Extension) *ExtensionsView {
	ti := textinput.New()
	ti.Placeholder = "Search Extensions in Marketplace"
	ti.CharLimit = SearchCharLimit
	ti.Prompt = "⌕ "
	e := &ExtensionsView{input: ti, catalog: catalog}
	e.applyFilter()
	return e
}

// SetFocused focuses or blurs the filter input
func (e *ExtensionsView) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
}

// Filter returns the current filter text
func (e *ExtensionsView) Filter() string {
	return e.input.Value()
}

// SetFilter replaces the filter text
func (e *ExtensionsView) SetFilter(q string) {
	e.input.SetValue(q)
	e.applyFilter()
}

// Update forwards key input to the filter field and refilters
func (e *ExtensionsView) Update(msg tea.Msg) (*ExtensionsView, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.applyFilter()
	return e, cmd
}

func (e *ExtensionsView) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(e.input.Value()))
	e.installed = e.installed[:0]
	e.suggested = e.suggested[:0]
	for _, ext := range e.catalog {
		if q != "" && !matchesExtension(ext, q) {
			continue
		}
		if ext.Installed {
			e.installed = append(e.installed, ext)
		} else {
			e.suggested = append(e.suggested, ext)
		}
	}
	if e.cursor >= e.count() {
		e.cursor = 0
	}
}

func matchesExtension(ext workspace.Extension, q string) bool {
	for _, field := range []string{ext.Name, ext.Publisher, ext.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (e *ExtensionsView) count() int {
	return len(e.installed) + len(e.suggested)
}

// Visible returns the extensions that pass the filter, installed first
func (e *ExtensionsView) Visible() []workspace.Extension {
	out := make([]workspace.Extension, 0, e.count())
	out = append(out, e.installed...)
	return append(out, e.suggested...)
}

// MoveUp moves the cursor up
func (e *ExtensionsView) MoveUp() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveDown moves the cursor down
func (e *ExtensionsView) MoveDown() {
	if e.cursor < e.count()-1 {
		e.cursor++
	}
}

// Selected returns the extension under the cursor
func (e *ExtensionsView) Selected() (workspace.Extension, bool) {
	if e.cursor < 0 || e.cursor >= e.count() {
		return workspace.Extension{}, false
	}
	return e.Visible()[e.cursor], true
}

// View renders the filter and both sections. Section headers are not
// selectable, so the cursor is mapped past them.
func (e *ExtensionsView) View(width, height int) string {
	e.input.SetWidth(max(width-3, 1))

	var rows []string
	cursorRow := -1
	add := func(title string, list []workspace.Extension, offset int) {
		rows = append(rows, SectionStyle.Render(fmt.Sprintf("%s %d", title, len(list))))
		for i, ext := range list {
			if offset+i == e.cursor {
				cursorRow = len(rows)
			}
			rows = append(rows, fmt.Sprintf("%s %s  %s", ExtensionGlyph(ext.Icon), ext.Name, MutedStyle.Render(ext.Publisher)))
		}
	}
	add("INSTALLED", e.installed, 0)
	add("RECOMMENDED", e.suggested, len(e.installed))

	if cursorRow < 0 {
		cursorRow = 0
	}
	body := renderRows(rows, cursorRow, width, max(height-1, 0), e.focused && e.count() > 0)
	return e.input.View() + "\n" + body
}

// extensionGlyphs maps seed icon names to terminal glyphs
var extensionGlyphs = map[string]string{
	"sparkles":     "✦",
	"shield-check": "⛨",
	"code-2":       "‹›",
}

// ExtensionGlyph returns the glyph for an extension icon name
func ExtensionGlyph(icon string) string {
	if g, ok := extensionGlyphs[icon]; ok {
		return g
	}
	return "◆"
}
