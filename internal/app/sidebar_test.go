package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/facade/internal/workspace"
)

func TestExplorer_OpenFile(t *testing.T) {
	m := testModelWithSize(120, 40)

	// root, src, App.tsx
	m = sendKey(m, "down")
	m = sendKey(m, "down")
	m = sendKey(m, "enter")

	ws := m.Workspace()
	if ws.Active() == nil || ws.Active().ID != "app-tsx" {
		t.Fatalf("active = %v, want app-tsx", ws.Active())
	}
	if ws.View().Kind() != workspace.ViewEditor {
		t.Errorf("view = %v, want editor", ws.View().Kind())
	}
	plain := ansi.Strip(m.RenderToString())
	if !strings.Contains(plain, "App.tsx - facade") {
		t.Errorf("title should name the active file:\n%s", plain)
	}
	if !strings.Contains(plain, "Welcome to VS Code Clone") {
		t.Errorf("editor should show the file content:\n%s", plain)
	}
}

func TestExplorer_ToggleDirectory(t *testing.T) {
	m := testModelWithSize(120, 40)

	m = sendKey(m, "down")
	m = sendKey(m, "enter")

	src := m.Workspace().Tree().Find("src")
	if src.Expanded {
		t.Fatal("enter on an expanded directory should collapse it")
	}
	if m.Workspace().View().Kind() != workspace.ViewWelcome {
		t.Error("toggling a directory should not change the view")
	}
	if sel := m.explorer.Selected(); sel == nil || sel.ID != "src" {
		t.Errorf("cursor should stay on src, got %v", sel)
	}

	m = sendKey(m, "space")
	if !m.Workspace().Tree().Find("src").Expanded {
		t.Error("space should expand it again")
	}
}

func TestSearch_TypeAndOpen(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "alt+2")
	m = typeText(m, "StrictMode")

	res := m.search.Result()
	if res.Query != "StrictMode" || len(res.Files) != 1 {
		t.Fatalf("search result = %+v", res)
	}
	if res.Files[0].File.ID != "main-tsx" {
		t.Errorf("matched %s, want main-tsx", res.Files[0].File.ID)
	}

	m = sendKey(m, "down")
	m = sendKey(m, "enter")
	if a := m.Workspace().Active(); a == nil || a.ID != "main-tsx" {
		t.Errorf("enter should open the matched file, active = %v", a)
	}
}

func TestSearch_LettersDoNotTriggerNavigation(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "alt+2")
	m = typeText(m, "jk")

	if m.search.Query() != "jk" {
		t.Errorf("query = %q, want jk", m.search.Query())
	}
}

func TestSourceControl_ShowsDiff(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "alt+3")

	changes := m.scm.Changes()
	if len(changes) == 0 {
		t.Fatal("modified seed files should be listed")
	}
	first := changes[0]

	m = sendKey(m, "enter")
	ws := m.Workspace()
	if ws.View().Kind() != workspace.ViewDiff {
		t.Fatalf("view = %v, want diff", ws.View().Kind())
	}
	if !ws.IsOpen(first.ID) || ws.Active().ID != first.ID {
		t.Errorf("diffed file should be open and active")
	}
	plain := ansi.Strip(m.RenderToString())
	if !strings.Contains(plain, first.Name+" (Working Tree)") {
		t.Errorf("diff header missing:\n%s", plain)
	}

	m = sendKey(m, "tab")
	m = sendKey(m, "esc")
	if ws.View().Kind() != workspace.ViewEditor {
		t.Errorf("esc should return to the editor, view = %v", ws.View().Kind())
	}
}

func TestDebugSidebar_LayoutAndButton(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "alt+4")

	// standard, split, minimalist, button
	m = sendKey(m, "down")
	m = sendKey(m, "down")
	m = sendKey(m, "enter")
	if m.Workspace().DebugLayout() != workspace.LayoutMinimalist {
		t.Fatalf("layout = %v, want minimalist", m.Workspace().DebugLayout())
	}

	m = sendKey(m, "down")
	m = sendKey(m, "enter")
	ws := m.Workspace()
	if !ws.IsDebugging() {
		t.Fatal("button should start debugging")
	}
	if ws.Sidebar().Visible || ws.Panel().Visible {
		t.Error("minimalist layout hides the sidebar and panel")
	}
	if m.Focus() != FocusMain {
		t.Errorf("focus should move off the hidden sidebar, got %v", m.Focus())
	}
}

func TestExtensions_DetailAndBack(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "alt+5")
	m = typeText(m, "python")

	visible := m.extensions.Visible()
	if len(visible) != 1 || visible[0].ID != "python" {
		t.Fatalf("filtered extensions = %+v", visible)
	}

	m = sendKey(m, "enter")
	v, ok := m.Workspace().View().(workspace.ExtensionView)
	if !ok || v.Extension.ID != "python" {
		t.Fatalf("view = %#v, want python detail", m.Workspace().View())
	}
	if plain := ansi.Strip(m.RenderToString()); !strings.Contains(plain, "Install") {
		t.Errorf("detail view not rendered:\n%s", plain)
	}

	m = sendKey(m, "esc")
	if m.Workspace().View().Kind() != workspace.ViewWelcome {
		t.Errorf("esc should return to welcome, view = %v", m.Workspace().View().Kind())
	}
}

func TestPanel_SwitchTabs(t *testing.T) {
	m := testModelWithSize(120, 40)
	m = sendKey(m, "tab")
	m = sendKey(m, "tab")
	if m.Focus() != FocusPanel {
		t.Fatalf("focus = %v, want panel", m.Focus())
	}

	m = sendKey(m, "right")
	if m.Workspace().Panel().Tab != workspace.PanelProblems {
		t.Errorf("tab = %v, want problems", m.Workspace().Panel().Tab)
	}
	if m.panel.Tab() != workspace.PanelProblems {
		t.Error("panel component should follow the controller")
	}

	m = sendKey(m, "left")
	m = sendKey(m, "left")
	if m.Workspace().Panel().Tab != workspace.PanelDebugConsole {
		t.Errorf("left from terminal should wrap, got %v", m.Workspace().Panel().Tab)
	}
}

func TestStepPanelTab(t *testing.T) {
	if got := stepPanelTab(workspace.PanelTerminal, 1); got != workspace.PanelProblems {
		t.Errorf("step +1 = %v", got)
	}
	if got := stepPanelTab(workspace.PanelTerminal, -1); got != workspace.PanelDebugConsole {
		t.Errorf("step -1 = %v", got)
	}
}
