package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/facade/internal/workspace"
)

func TestStatusBar_Sections(t *testing.T) {
	s := NewStatusBar("main")
	s.SetProblems(1, 2)
	s.SetContext(false, "typescript", 0)

	if got := s.Left(); got != "⎇ main   ⊗ 1  ⚠ 2" {
		t.Errorf("Left() = %q", got)
	}
	if got := s.Right(); got != "typescript   ○" {
		t.Errorf("Right() = %q", got)
	}

	s.SetContext(true, "", 3)
	if !strings.HasSuffix(s.Left(), "▶ Debugging") {
		t.Errorf("debugging marker missing: %q", s.Left())
	}
	if got := s.Right(); got != "● 3" {
		t.Errorf("Right() = %q, want bell with count", got)
	}
}

func TestStatusBar_ViewWidth(t *testing.T) {
	s := NewStatusBar("main")
	s.SetWidth(100)
	s.SetBindings([]KeyBinding{{Key: "ctrl+p", Desc: "palette"}, {Key: "tab", Desc: "focus"}})

	view := s.View()
	if w := ansi.StringWidth(view); w != 100 {
		t.Errorf("status bar width = %d, want 100", w)
	}
	plain := stripANSI(view)
	if !strings.Contains(plain, "ctrl+p palette") {
		t.Errorf("key hints missing: %q", plain)
	}

	s.SetWidth(20)
	if w := ansi.StringWidth(s.View()); w > 20 {
		t.Errorf("narrow status bar overflowed: %d", w)
	}
}

func TestRenderActivityBar(t *testing.T) {
	view := RenderActivityBar(workspace.Sidebar{Tab: workspace.TabSearch, Visible: true}, 20)
	lines := strings.Split(view, "\n")
	if len(lines) != 20 {
		t.Errorf("activity bar height = %d, want 20", len(lines))
	}
	plain := stripANSI(view)
	for _, icon := range []string{"❐", "⌕", "⎇", "▷", "⊞", "✦"} {
		if !strings.Contains(plain, icon) {
			t.Errorf("missing icon %s", icon)
		}
	}
}
