package ui

import (
	"testing"
)

func TestThemeNames_DefaultFirst(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Fatalf("got %d names, want %d", len(names), len(BuiltinThemes))
	}
	if names[0] != DefaultTheme {
		t.Errorf("first theme = %q, want %q", names[0], DefaultTheme)
	}
	for i := 2; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("themes after the default should be sorted: %v", names)
		}
	}
}

func TestBuiltinThemes_Complete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		if theme.Name != name {
			t.Errorf("theme keyed %q is named %q", name, theme.Name)
		}
		for field, value := range map[string]string{
			"ChromaStyle": theme.ChromaStyle,
			"Primary":     theme.Primary,
			"Bg":          theme.Bg,
			"BgAlt":       theme.BgAlt,
			"Text":        theme.Text,
			"TextMuted":   theme.TextMuted,
			"Error":       theme.Error,
		} {
			if value == "" {
				t.Errorf("%s: %s is empty", name, field)
			}
		}
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetTheme(ThemeMonokai)
	if CurrentTheme().Name != ThemeMonokai {
		t.Errorf("current theme = %q", CurrentTheme().Name)
	}

	SetTheme("No Such Theme")
	if CurrentTheme().Name != DefaultTheme {
		t.Errorf("unknown theme should fall back to the default, got %q", CurrentTheme().Name)
	}
}

func TestGetTheme_Fallback(t *testing.T) {
	if GetTheme("missing").Name != DefaultTheme {
		t.Error("GetTheme should fall back to the default theme")
	}
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" || th.GetBorderFocus() != "#111111" {
		t.Error("optional colors should default to Primary")
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		n, cursor, height int
		start, end        int
	}{
		{0, 0, 5, 0, 0},
		{3, 0, 5, 0, 3},
		{10, 2, 5, 0, 5},
		{10, 7, 5, 3, 8},
		{10, 9, 0, 0, 0},
	}
	for _, tt := range tests {
		start, end := scrollWindow(tt.n, tt.cursor, tt.height)
		if start != tt.start || end != tt.end {
			t.Errorf("scrollWindow(%d, %d, %d) = %d,%d want %d,%d",
				tt.n, tt.cursor, tt.height, start, end, tt.start, tt.end)
		}
	}
}

func TestFitLine(t *testing.T) {
	if got := fitLine("abc", 5); got != "abc  " {
		t.Errorf("fitLine pad = %q", got)
	}
	if got := fitLine("abcdef", 4); got != "abc…" {
		t.Errorf("fitLine truncate = %q", got)
	}
	if got := fitLine("abc", 0); got != "" {
		t.Errorf("fitLine zero width = %q", got)
	}
}
