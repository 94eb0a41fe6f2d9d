package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_Title(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		branch string
		want   string
	}{
		{"bare", "", "", "facade"},
		{"file", "App.tsx", "", "App.tsx - facade"},
		{"branch", "", "main", "facade (main)"},
		{"both", "App.tsx", "main", "App.tsx - facade (main)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader(nil)
			h.SetActiveFile(tt.file)
			h.SetBranch(tt.branch)
			if got := h.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader_View(t *testing.T) {
	h := NewHeader([]string{"File", "Edit", "View"})
	h.SetWidth(80)
	h.SetActiveFile("App.tsx")

	view := stripANSI(h.View())
	if !strings.HasPrefix(view, " File  Edit  View") {
		t.Errorf("menus should lead the header, got %q", view)
	}
	if !strings.HasSuffix(view, "App.tsx - facade ") {
		t.Errorf("title should end the header, got %q", view)
	}
	if w := ansi.StringWidth(h.View()); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestHeader_ViewNarrowDropsTitle(t *testing.T) {
	h := NewHeader([]string{"File", "Edit", "Selection", "View"})
	h.SetWidth(24)
	h.SetActiveFile("a-very-long-file-name.tsx")

	view := stripANSI(h.View())
	if strings.Contains(view, "facade") {
		t.Errorf("title should be dropped when narrow, got %q", view)
	}
	if w := ansi.StringWidth(view); w != 24 {
		t.Errorf("header width = %d, want 24", w)
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#0078D4")
	if r != 0x00 || g != 0x78 || b != 0xD4 {
		t.Errorf("parseHexColor = %d,%d,%d", r, g, b)
	}
	r, g, b = parseHexColor("bogus")
	if r != 0 || g != 0 || b != 0 {
		t.Error("invalid input should give black")
	}
}
