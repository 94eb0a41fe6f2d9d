package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/facade/internal/keys"
	"github.com/zhubert/facade/internal/palette"
	"github.com/zhubert/facade/internal/workspace"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centred on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}
	modal := ModalStyle.Render(m.State.Render())
	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// modalInnerWidth is the usable width inside ModalStyle
func modalInnerWidth() int {
	return ModalWidth - ModalStyle.GetHorizontalFrameSize()
}

// =============================================================================
// PaletteState - the command palette
// =============================================================================

// PaletteState shows the command palette: a query input over the
// filtered command list. The palette owns the query and cursor; the
// input only edits the text.
type PaletteState struct {
	palette *palette.Palette
	input   textinput.Model
}

func (*PaletteState) modalState() {}

func (s *PaletteState) Title() string { return "Command Palette" }

func (s *PaletteState) Help() string {
	return "↑/↓: navigate  Enter: run  Esc: close"
}

// Palette returns the underlying palette
func (s *PaletteState) Palette() *palette.Palette {
	return s.palette
}

func (s *PaletteState) Render() string {
	width := modalInnerWidth()
	title := ModalTitleStyle.Render(s.Title())

	filtered := s.palette.Filtered()
	var list string
	if len(filtered) == 0 {
		list = MutedStyle.Render("No matching commands")
	} else {
		rows := make([]string, len(filtered))
		for i, c := range filtered {
			label := c.Label
			if c.Shortcut != "" {
				gap := max(width-lipgloss.Width(label)-lipgloss.Width(c.Shortcut), 1)
				label += strings.Repeat(" ", gap) + MutedStyle.Render(c.Shortcut)
			}
			rows[i] = label
		}
		list = renderRows(rows, s.palette.Cursor(), width, min(len(rows), PaletteVisibleRows), true)
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.input.View(), "", list, help)
}

func (s *PaletteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			s.palette.MoveUp()
			return s, nil
		case keys.Down:
			s.palette.MoveDown()
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != s.palette.Query() {
		s.palette.SetQuery(s.input.Value())
	}
	return s, cmd
}

// NewPaletteState opens p and returns a modal state showing it
func NewPaletteState(p *palette.Palette) *PaletteState {
	p.Open()
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.CharLimit = PaletteCharLimit
	ti.Prompt = "> "
	ti.SetWidth(modalInnerWidth() - 2)
	ti.Focus()
	return &PaletteState{palette: p, input: ti}
}

// =============================================================================
// MenuState - the menu bar
// =============================================================================

// MenuState shows one top-level menu with the others as a title row.
// Left and right switch menus, up and down move through the items.
type MenuState struct {
	menus  []workspace.Menu
	menu   int
	cursor int
}

func (*MenuState) modalState() {}

func (s *MenuState) Title() string {
	if len(s.menus) == 0 {
		return "Menu"
	}
	return s.menus[s.menu].Title
}

func (s *MenuState) Help() string {
	return "←/→: menus  ↑/↓: items  Enter: choose  Esc: close"
}

// Active returns the index of the open menu
func (s *MenuState) Active() int {
	return s.menu
}

// Cursor returns the index of the highlighted item
func (s *MenuState) Cursor() int {
	return s.cursor
}

// Selected returns the highlighted item
func (s *MenuState) Selected() (string, bool) {
	if len(s.menus) == 0 {
		return "", false
	}
	items := s.menus[s.menu].Items
	if s.cursor < 0 || s.cursor >= len(items) {
		return "", false
	}
	return items[s.cursor], true
}

func (s *MenuState) Render() string {
	width := modalInnerWidth()
	titles := make([]string, len(s.menus))
	for i, m := range s.menus {
		if i == s.menu {
			titles[i] = TabActiveStyle.Render(" " + m.Title + " ")
		} else {
			titles[i] = TabStyle.Render(" " + m.Title + " ")
		}
	}
	bar := fitLine(strings.Join(titles, ""), width)

	var list string
	if len(s.menus) > 0 {
		items := s.menus[s.menu].Items
		list = renderRows(items, s.cursor, width, len(items), true)
	}
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", list, help)
}

func (s *MenuState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.menus) == 0 {
		return s, nil
	}
	switch keyMsg.String() {
	case keys.Left:
		s.menu = (s.menu - 1 + len(s.menus)) % len(s.menus)
		s.cursor = 0
	case keys.Right:
		s.menu = (s.menu + 1) % len(s.menus)
		s.cursor = 0
	case keys.Up:
		if n := len(s.menus[s.menu].Items); n > 0 {
			s.cursor = (s.cursor - 1 + n) % n
		}
	case keys.Down:
		if n := len(s.menus[s.menu].Items); n > 0 {
			s.cursor = (s.cursor + 1) % n
		}
	}
	return s, nil
}

// NewMenuState opens the first menu of menus
func NewMenuState(menus []workspace.Menu) *MenuState {
	return &MenuState{menus: menus}
}
