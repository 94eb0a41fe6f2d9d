package workspace

import "fmt"

// SidebarTab selects the view shown in the left sidebar.
type SidebarTab int

const (
	TabExplorer SidebarTab = iota
	TabSearch
	TabGit
	TabDebug
	TabExtensions
	TabAssistant
)

// SidebarTabs lists the sidebar tabs in activity-bar order.
var SidebarTabs = []SidebarTab{TabExplorer, TabSearch, TabGit, TabDebug, TabExtensions, TabAssistant}

func (t SidebarTab) String() string {
	switch t {
	case TabExplorer:
		return "explorer"
	case TabSearch:
		return "search"
	case TabGit:
		return "git"
	case TabDebug:
		return "debug"
	case TabExtensions:
		return "extensions"
	case TabAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Title is the heading rendered above the sidebar content.
func (t SidebarTab) Title() string {
	switch t {
	case TabExplorer:
		return "Explorer"
	case TabSearch:
		return "Search"
	case TabGit:
		return "Source Control"
	case TabDebug:
		return "Run and Debug"
	case TabExtensions:
		return "Extensions"
	case TabAssistant:
		return "Assistant"
	default:
		return ""
	}
}

// ParseSidebarTab parses the String form of a sidebar tab.
func ParseSidebarTab(s string) (SidebarTab, error) {
	for _, t := range SidebarTabs {
		if t.String() == s {
			return t, nil
		}
	}
	return TabExplorer, fmt.Errorf("unknown sidebar tab %q", s)
}

// PanelTab selects the view shown in the bottom panel.
type PanelTab int

const (
	PanelTerminal PanelTab = iota
	PanelProblems
	PanelOutput
	PanelDebugConsole
)

// PanelTabs lists the panel tabs in display order.
var PanelTabs = []PanelTab{PanelTerminal, PanelProblems, PanelOutput, PanelDebugConsole}

func (t PanelTab) String() string {
	switch t {
	case PanelTerminal:
		return "terminal"
	case PanelProblems:
		return "problems"
	case PanelOutput:
		return "output"
	case PanelDebugConsole:
		return "debug-console"
	default:
		return "unknown"
	}
}

// Title is the label of the panel tab button.
func (t PanelTab) Title() string {
	switch t {
	case PanelTerminal:
		return "Terminal"
	case PanelProblems:
		return "Problems"
	case PanelOutput:
		return "Output"
	case PanelDebugConsole:
		return "Debug Console"
	default:
		return ""
	}
}

// ParsePanelTab parses the String form of a panel tab.
func ParsePanelTab(s string) (PanelTab, error) {
	for _, t := range PanelTabs {
		if t.String() == s {
			return t, nil
		}
	}
	return PanelTerminal, fmt.Errorf("unknown panel tab %q", s)
}

// DebugLayout is the layout recipe applied when debugging starts.
type DebugLayout int

const (
	LayoutStandard DebugLayout = iota
	LayoutSplit
	LayoutMinimalist
)

// DebugLayouts lists the layouts in selector order.
var DebugLayouts = []DebugLayout{LayoutStandard, LayoutSplit, LayoutMinimalist}

func (l DebugLayout) String() string {
	switch l {
	case LayoutStandard:
		return "standard"
	case LayoutSplit:
		return "split"
	case LayoutMinimalist:
		return "minimalist"
	default:
		return "unknown"
	}
}

// ParseDebugLayout parses the String form of a debug layout.
func ParseDebugLayout(s string) (DebugLayout, error) {
	for _, l := range DebugLayouts {
		if l.String() == s {
			return l, nil
		}
	}
	return LayoutStandard, fmt.Errorf("unknown debug layout %q", s)
}

// DebugState is the debug session state machine.
type DebugState int

const (
	DebugIdle DebugState = iota
	DebugRunning
)

func (s DebugState) String() string {
	switch s {
	case DebugIdle:
		return "idle"
	case DebugRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Sidebar is the left auxiliary area. Hiding it keeps Tab so reshowing
// restores the previous selection.
type Sidebar struct {
	Tab     SidebarTab
	Visible bool
}

// Panel is the bottom auxiliary area.
type Panel struct {
	Tab     PanelTab
	Visible bool
}
