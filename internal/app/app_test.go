package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/config"
	"github.com/zhubert/facade/internal/seed"
	"github.com/zhubert/facade/internal/ui"
	"github.com/zhubert/facade/internal/workspace"
)

func TestNew_Defaults(t *testing.T) {
	m := testModel()

	if m.Focus() != FocusSidebar {
		t.Errorf("initial focus = %v, want sidebar", m.Focus())
	}
	if m.Workspace().View().Kind() != workspace.ViewWelcome {
		t.Errorf("initial view = %v, want welcome", m.Workspace().View().Kind())
	}
	if len(m.Notifications()) != 0 {
		t.Error("no notifications expected at startup")
	}
	if m.RenderToString() != "Loading..." {
		t.Error("unsized model should render a placeholder")
	}
}

func TestNew_AppliesConfig(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	cfg := config.Default()
	cfg.ColorTheme = ui.ThemeMonokai
	cfg.DebugLayout = "minimalist"
	m := New(cfg, seed.Default(), "test")

	if ui.CurrentTheme().Name != ui.ThemeMonokai {
		t.Errorf("theme = %q, want %q", ui.CurrentTheme().Name, ui.ThemeMonokai)
	}
	if m.Workspace().DebugLayout() != workspace.LayoutMinimalist {
		t.Errorf("debug layout = %v", m.Workspace().DebugLayout())
	}
}

func TestView_Layout(t *testing.T) {
	m := testModelWithSize(120, 40)

	view := m.RenderToString()
	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("view height = %d, want 40", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 120 {
			t.Errorf("line %d is %d wide", i, w)
		}
	}

	plain := ansi.Strip(view)
	for _, want := range []string{"File", "EXPLORER", "vscode-clone", "App.tsx", "TERMINAL", "⎇ main"} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_ModalReplacesScreen(t *testing.T) {
	m := testModelWithSize(100, 30)
	m = sendKey(m, "ctrl+p")

	plain := ansi.Strip(m.RenderToString())
	if !strings.Contains(plain, "Open Settings") {
		t.Errorf("palette should be rendered:\n%s", plain)
	}
	if strings.Contains(plain, "EXPLORER") {
		t.Error("workspace should be hidden behind the modal")
	}
}

func TestView_ToastsOverlay(t *testing.T) {
	m := testModelWithSize(120, 40)
	m.ShowInfo("Hello from a toast")

	plain := ansi.Strip(m.RenderToString())
	if !strings.Contains(plain, "Hello from a toast") {
		t.Errorf("toast not rendered:\n%s", plain)
	}
}

func TestView_HiddenAreas(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "ctrl+b")
	m = sendKey(m, "ctrl+`")

	plain := ansi.Strip(m.RenderToString())
	if strings.Contains(plain, "EXPLORER") {
		t.Error("hidden sidebar should not render")
	}
	if strings.Contains(plain, "TERMINAL") {
		t.Error("hidden panel should not render")
	}
	if lines := strings.Split(plain, "\n"); len(lines) != 40 {
		t.Errorf("view height = %d, want 40", len(lines))
	}
}

func TestFocus_String(t *testing.T) {
	for f, want := range map[Focus]string{
		FocusSidebar: "sidebar",
		FocusMain:    "main",
		FocusPanel:   "panel",
		Focus(9):     "unknown",
	} {
		if f.String() != want {
			t.Errorf("Focus(%d).String() = %q, want %q", f, f.String(), want)
		}
	}
}
