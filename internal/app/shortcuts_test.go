package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/facade/internal/workspace"
)

func TestShortcutRegistry_UniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range ShortcutRegistry {
		if s.Key == "" || s.Handler == nil {
			t.Errorf("incomplete shortcut %+v", s)
		}
		if seen[s.Key] {
			t.Errorf("duplicate shortcut key %q", s.Key)
		}
		seen[s.Key] = true
		if s.Display() == "" || s.Description == "" || s.Category == "" {
			t.Errorf("shortcut %q lacks display metadata", s.Key)
		}
	}
}

func TestShortcut_ToggleSidebar(t *testing.T) {
	m := testModelWithSize(120, 40)

	m = sendKey(m, "ctrl+b")
	if m.Workspace().Sidebar().Visible {
		t.Fatal("ctrl+b should hide the sidebar")
	}
	if m.Focus() != FocusMain {
		t.Errorf("focus should leave the hidden sidebar, got %v", m.Focus())
	}

	m = sendKey(m, "ctrl+b")
	if !m.Workspace().Sidebar().Visible {
		t.Error("ctrl+b should show the sidebar again")
	}
	if m.Workspace().Sidebar().Tab != workspace.TabExplorer {
		t.Error("toggling should keep the tab")
	}
}

func TestShortcut_TogglePanel(t *testing.T) {
	for _, key := range []string{"ctrl+`", "ctrl+@"} {
		t.Run(key, func(t *testing.T) {
			m := testModelWithSize(120, 40)

			m = sendKey(m, key)
			if m.Workspace().Panel().Visible {
				t.Fatal("panel should be hidden")
			}
			m = sendKey(m, key)
			if !m.Workspace().Panel().Visible {
				t.Fatal("panel should be visible")
			}
			if m.Focus() != FocusPanel {
				t.Errorf("showing the panel should focus it, got %v", m.Focus())
			}
		})
	}
}

func TestShortcut_SidebarTabs(t *testing.T) {
	tests := []struct {
		key string
		tab workspace.SidebarTab
	}{
		{"alt+1", workspace.TabExplorer},
		{"alt+2", workspace.TabSearch},
		{"alt+3", workspace.TabGit},
		{"alt+4", workspace.TabDebug},
		{"alt+5", workspace.TabExtensions},
		{"alt+6", workspace.TabAssistant},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := testModelWithSize(120, 40)
			m = sendKey(m, "ctrl+b")
			m = sendKey(m, tt.key)

			sb := m.Workspace().Sidebar()
			if sb.Tab != tt.tab || !sb.Visible {
				t.Errorf("sidebar = %+v, want visible %v", sb, tt.tab)
			}
			if m.Focus() != FocusSidebar {
				t.Errorf("focus = %v, want sidebar", m.Focus())
			}
		})
	}
}

func TestShortcut_TabCyclesVisibleAreas(t *testing.T) {
	m := testModelWithSize(120, 40)

	want := []Focus{FocusMain, FocusPanel, FocusSidebar}
	for i, f := range want {
		m = sendKey(m, "tab")
		if m.Focus() != f {
			t.Fatalf("step %d: focus = %v, want %v", i, m.Focus(), f)
		}
	}

	m = sendKey(m, "ctrl+`")
	m = sendKey(m, "tab")
	m = sendKey(m, "tab")
	if m.Focus() != FocusSidebar {
		t.Errorf("hidden panel should be skipped, focus = %v", m.Focus())
	}
}

func TestShortcut_Debugging(t *testing.T) {
	m := testModelWithSize(120, 40)
	m.Workspace().SetDebugLayout(workspace.LayoutSplit)
	m = sendKey(m, "ctrl+`")

	m = sendKey(m, "f5")
	if !m.Workspace().IsDebugging() {
		t.Fatal("f5 should start debugging")
	}
	panel := m.Workspace().Panel()
	if !panel.Visible || panel.Tab != workspace.PanelDebugConsole {
		t.Errorf("split layout should show the debug console, panel = %+v", panel)
	}
	body := m.panel.Body()
	if body[len(body)-1] != "Debugger attached (split layout)" {
		t.Errorf("debug console = %v", body)
	}

	m = sendKey(m, "f5")
	if !m.Workspace().IsDebugging() {
		t.Error("f5 while running continues")
	}

	m = sendKey(m, "shift+f5")
	if m.Workspace().IsDebugging() {
		t.Error("shift+f5 should stop debugging")
	}
	if !m.Workspace().Panel().Visible {
		t.Error("stopping should not restore the layout")
	}
}

func TestShortcut_CloseAndCycleTabs(t *testing.T) {
	m := testModelWithSize(120, 40)
	ws := m.Workspace()
	ws.OpenByID("app-tsx")
	ws.OpenByID("main-tsx")
	ws.OpenByID("package-json")
	m.sync()

	m = sendKey(m, "ctrl+pgdown")
	if ws.Active().ID != "app-tsx" {
		t.Errorf("next tab should wrap to the first, got %s", ws.Active().ID)
	}
	m = sendKey(m, "ctrl+pgup")
	if ws.Active().ID != "package-json" {
		t.Errorf("previous tab should wrap to the last, got %s", ws.Active().ID)
	}

	m = sendKey(m, "ctrl+w")
	if ws.IsOpen("package-json") || ws.Active().ID != "main-tsx" {
		t.Errorf("closing should activate the last remaining file, active = %s", ws.Active().ID)
	}
	if m.editor.File().ID != "main-tsx" {
		t.Errorf("editor should follow the active file, got %s", m.editor.File().ID)
	}
}

func TestShortcut_FileCommands(t *testing.T) {
	tests := []struct {
		key    string
		notice string
	}{
		{"ctrl+n", "New file created (mock)"},
		{"ctrl+o", "Executed command: open-file"},
		{"ctrl+s", "Executed command: save-file"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := testModelWithSize(120, 40)
			m = sendKey(m, tt.key)

			live := m.Notifications()
			if len(live) != 1 || live[0].Message != tt.notice {
				t.Errorf("notifications = %+v, want %q", live, tt.notice)
			}
		})
	}
}

func TestShortcut_Settings(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "ctrl+,")

	if m.Workspace().View().Kind() != workspace.ViewSettings {
		t.Fatalf("view = %v, want settings", m.Workspace().View().Kind())
	}
	if m.Focus() != FocusMain {
		t.Errorf("settings should take focus, got %v", m.Focus())
	}
}

func TestShortcut_Quit(t *testing.T) {
	for _, key := range []string{"ctrl+c", "ctrl+q"} {
		m := testModelWithSize(120, 40)
		cmd := sendKeyCmd(m, key)
		if cmd == nil {
			t.Fatalf("%s should return a command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key)
		}
	}
}
