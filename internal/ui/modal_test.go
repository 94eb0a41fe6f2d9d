package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/palette"
	"github.com/zhubert/facade/internal/workspace"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}
	if m.View(80, 24) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(NewMenuState(nil))
	if !m.IsVisible() {
		t.Error("modal should be visible after Show")
	}
	if lines := strings.Split(m.View(80, 24), "\n"); len(lines) != 24 {
		t.Errorf("modal should fill the screen height, got %d lines", len(lines))
	}

	m.Hide()
	if m.IsVisible() {
		t.Error("modal should be hidden after Hide")
	}
}

func TestPaletteState_TypingFilters(t *testing.T) {
	p := palette.New(palette.DefaultCatalog)
	state := NewPaletteState(p)

	if !p.IsOpen() {
		t.Fatal("NewPaletteState should open the palette")
	}

	var s ModalState = state
	for _, r := range "sett" {
		s, _ = s.Update(keyPress(string(r)))
	}
	if p.Query() != "sett" {
		t.Errorf("query = %q, want sett", p.Query())
	}
	filtered := p.Filtered()
	if len(filtered) == 0 || filtered[0].ID != "settings" {
		t.Errorf("expected settings to match, got %+v", filtered)
	}

	view := stripANSI(state.Render())
	if !strings.Contains(view, "Open Settings") {
		t.Errorf("filtered command missing from view:\n%s", view)
	}
}

func TestPaletteState_Navigation(t *testing.T) {
	p := palette.New(palette.DefaultCatalog)
	var s ModalState = NewPaletteState(p)

	s, _ = s.Update(keyPress("down"))
	if p.Cursor() != 1 {
		t.Errorf("cursor = %d after down, want 1", p.Cursor())
	}
	s, _ = s.Update(keyPress("up"))
	s, _ = s.Update(keyPress("up"))
	if p.Cursor() != len(p.Filtered())-1 {
		t.Errorf("up from the top should wrap, cursor = %d", p.Cursor())
	}
	_ = s
}

func TestPaletteState_NoMatches(t *testing.T) {
	p := palette.New(palette.DefaultCatalog)
	state := NewPaletteState(p)
	p.SetQuery("zzzz")

	if view := stripANSI(state.Render()); !strings.Contains(view, "No matching commands") {
		t.Errorf("expected empty-state text:\n%s", view)
	}
}

func TestMenuState_Navigation(t *testing.T) {
	menus := testSeed().MenuBar()
	state := NewMenuState(menus)
	var s ModalState = state

	if item, ok := state.Selected(); !ok || item != menus[0].Items[0] {
		t.Errorf("initial item = %q", item)
	}

	s, _ = s.Update(keyPress("down"))
	if item, _ := state.Selected(); item != menus[0].Items[1] {
		t.Errorf("down selected %q", item)
	}

	s, _ = s.Update(keyPress("right"))
	if state.Active() != 1 || state.Cursor() != 0 {
		t.Errorf("right should open the next menu at its first item, got menu %d cursor %d", state.Active(), state.Cursor())
	}

	s, _ = s.Update(keyPress("left"))
	s, _ = s.Update(keyPress("left"))
	if state.Active() != len(menus)-1 {
		t.Errorf("left from the first menu should wrap, got %d", state.Active())
	}
	if state.Title() != menus[len(menus)-1].Title {
		t.Errorf("title = %q", state.Title())
	}
	_ = s
}

func TestMenuState_Render(t *testing.T) {
	state := NewMenuState([]workspace.Menu{
		{Title: "File", Items: []string{"New", "Open"}},
		{Title: "Edit", Items: []string{"Undo"}},
	})
	view := stripANSI(state.Render())
	for _, want := range []string{"File", "Edit", "New", "Open"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Undo") {
		t.Error("only the open menu's items should be listed")
	}
}

func TestMenuState_Empty(t *testing.T) {
	state := NewMenuState(nil)
	if _, ok := state.Selected(); ok {
		t.Error("empty menu bar should select nothing")
	}
	if state.Title() != "Menu" {
		t.Errorf("title = %q", state.Title())
	}
}
