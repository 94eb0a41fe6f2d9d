package workspace

import (
	"log/slog"

	"github.com/zhubert/facade/internal/logger"
)

// Controller is the single source of truth for the workbench's view
// state: which files are open, which one is active, what the main area
// shows, and how the sidebar, panel and debugger are laid out.
//
// Every method runs to completion synchronously and the controller takes
// no locks; callers serialize access (Bubble Tea's Update loop does).
type Controller struct {
	tree   *Tree
	open   OpenFiles
	active *Node
	view   View

	sidebar Sidebar
	panel   Panel

	debug       DebugState
	debugLayout DebugLayout

	log *slog.Logger
}

// NewController creates a controller over tree with the default layout:
// explorer sidebar and terminal panel both visible, welcome view, no
// open files, debugger idle with the standard layout.
func NewController(tree *Tree) *Controller {
	if tree == nil {
		tree = NewTree()
	}
	return &Controller{
		tree:        tree,
		view:        WelcomeView{},
		sidebar:     Sidebar{Tab: TabExplorer, Visible: true},
		panel:       Panel{Tab: PanelTerminal, Visible: true},
		debug:       DebugIdle,
		debugLayout: LayoutStandard,
		log:         logger.WithComponent("workspace"),
	}
}

// Tree returns the current file tree.
func (c *Controller) Tree() *Tree { return c.tree }

// OpenFiles returns the open files in tab order.
func (c *Controller) OpenFiles() []*Node { return c.open.All() }

// IsOpen reports whether the file id has a tab.
func (c *Controller) IsOpen(id string) bool { return c.open.Contains(id) }

// Active returns the active file, or nil.
func (c *Controller) Active() *Node { return c.active }

// View returns what the main content area shows.
func (c *Controller) View() View { return c.view }

// Sidebar returns the sidebar state.
func (c *Controller) Sidebar() Sidebar { return c.sidebar }

// Panel returns the bottom panel state.
func (c *Controller) Panel() Panel { return c.panel }

// DebugState returns the debugger state.
func (c *Controller) DebugState() DebugState { return c.debug }

// IsDebugging reports whether a debug session is displayed.
func (c *Controller) IsDebugging() bool { return c.debug == DebugRunning }

// DebugLayout returns the layout recipe applied on the next start.
func (c *Controller) DebugLayout() DebugLayout { return c.debugLayout }

// Open activates a tree node. Directories toggle their expanded flag and
// leave the editor untouched. Files get a tab (appended if not already
// open, existing order preserved) and become the active editor.
func (c *Controller) Open(node *Node) {
	if node == nil {
		return
	}
	if node.IsDir() {
		c.tree = c.tree.ToggleExpanded(node.ID)
		c.log.Debug("toggled directory", "id", node.ID)
		return
	}
	if c.open.Add(node) {
		c.log.Debug("opened file", "id", node.ID, "tabs", c.open.Len())
	}
	c.active = node
	c.setView(EditorView{File: node})
}

// OpenByID looks id up in the tree and opens it. Unknown ids are ignored.
func (c *Controller) OpenByID(id string) {
	c.Open(c.tree.Find(id))
}

// Close removes the tab for id. When the active file is closed, the last
// remaining tab becomes active; when no tabs remain the welcome view is
// shown. Closing any other tab leaves the active file and view alone.
// Reports whether a tab was removed.
func (c *Controller) Close(id string) bool {
	if !c.open.Remove(id) {
		return false
	}
	c.log.Debug("closed file", "id", id, "tabs", c.open.Len())

	if c.active == nil || c.active.ID != id {
		return true
	}

	next := c.open.Last()
	c.active = next
	if next == nil {
		c.setView(WelcomeView{})
		return true
	}

	// Editor and diff views always follow the active file.
	switch c.view.(type) {
	case EditorView:
		c.setView(EditorView{File: next})
	case DiffView:
		c.setView(DiffView{File: next})
	}
	return true
}

// CloseActive closes the active tab, if any.
func (c *Controller) CloseActive() bool {
	if c.active == nil {
		return false
	}
	return c.Close(c.active.ID)
}

// SelectOpenFile activates an existing tab. Ids without a tab are
// ignored.
func (c *Controller) SelectOpenFile(id string) bool {
	f := c.open.Get(id)
	if f == nil {
		return false
	}
	c.active = f
	c.setView(EditorView{File: f})
	return true
}

// CycleTab activates the tab delta positions away from the active one,
// wrapping at both ends.
func (c *Controller) CycleTab(delta int) bool {
	n := c.open.Len()
	if n == 0 {
		return false
	}
	i := 0
	if c.active != nil {
		i = c.open.Index(c.active.ID)
	}
	i = ((i+delta)%n + n) % n
	return c.SelectOpenFile(c.open.All()[i].ID)
}

// SwitchSidebarTab selects tab and shows the sidebar if it was hidden.
// This is the only operation that reopens a hidden sidebar implicitly.
func (c *Controller) SwitchSidebarTab(tab SidebarTab) {
	c.sidebar.Tab = tab
	c.sidebar.Visible = true
}

// ToggleSidebar flips sidebar visibility, keeping the selected tab.
func (c *Controller) ToggleSidebar() {
	c.sidebar.Visible = !c.sidebar.Visible
}

// TogglePanel flips bottom panel visibility, keeping the selected tab.
func (c *Controller) TogglePanel() {
	c.panel.Visible = !c.panel.Visible
}

// SetPanelTab selects the bottom panel tab without changing visibility.
func (c *Controller) SetPanelTab(tab PanelTab) {
	c.panel.Tab = tab
}

// ShowSettings switches the main area to the settings screen.
func (c *Controller) ShowSettings() {
	c.setView(SettingsView{})
}

// ShowWelcome switches the main area to the welcome screen. Open tabs
// and the active file are kept.
func (c *Controller) ShowWelcome() {
	c.setView(WelcomeView{})
}

// ShowExtension switches the main area to the marketplace page of ext.
func (c *Controller) ShowExtension(ext Extension) {
	c.setView(ExtensionView{Extension: ext})
}

// ShowDiff shows the working-copy diff of an open file and makes it the
// active file. Ids without a tab are ignored.
func (c *Controller) ShowDiff(id string) bool {
	f := c.open.Get(id)
	if f == nil {
		return false
	}
	c.active = f
	c.setView(DiffView{File: f})
	return true
}

// ShowEditor returns to the editor for the active file, falling back to
// the welcome view when nothing is open.
func (c *Controller) ShowEditor() {
	if c.active == nil {
		c.setView(WelcomeView{})
		return
	}
	c.setView(EditorView{File: c.active})
}

// SetDebugLayout changes the recipe applied by the next StartDebugging.
// It may be called while running; the current layout is not touched.
func (c *Controller) SetDebugLayout(l DebugLayout) {
	c.debugLayout = l
}

// StartDebugging moves idle to running and applies the layout recipe:
// minimalist hides the sidebar and panel, split focuses the debug
// console in a visible panel, standard leaves the layout alone.
// Reports false if a session was already running.
func (c *Controller) StartDebugging() bool {
	if c.debug == DebugRunning {
		return false
	}
	c.debug = DebugRunning

	switch c.debugLayout {
	case LayoutMinimalist:
		c.sidebar.Visible = false
		c.panel.Visible = false
	case LayoutSplit:
		c.panel.Tab = PanelDebugConsole
		c.panel.Visible = true
	case LayoutStandard:
	}

	c.log.Info("debugging started", "layout", c.debugLayout.String())
	return true
}

// StopDebugging moves running to idle. The layout changes made by
// StartDebugging are not reverted. Reports false if nothing was running.
func (c *Controller) StopDebugging() bool {
	if c.debug == DebugIdle {
		return false
	}
	c.debug = DebugIdle
	c.log.Info("debugging stopped")
	return true
}

// ToggleDebugging is the start/continue button: it stops a running
// session and starts an idle one.
func (c *Controller) ToggleDebugging() {
	if c.debug == DebugRunning {
		c.StopDebugging()
		return
	}
	c.StartDebugging()
}

// setView transitions the main view with logging
func (c *Controller) setView(v View) {
	if c.view == nil || c.view.Kind() != v.Kind() {
		from := "none"
		if c.view != nil {
			from = c.view.Kind().String()
		}
		c.log.Debug("view transition", "from", from, "to", v.Kind().String())
	}
	c.view = v
}
