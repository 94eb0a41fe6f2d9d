package palette

import "github.com/zhubert/facade/internal/workspace"

// Command is one entry in the command palette.
type Command struct {
	ID       string
	Label    string
	Shortcut string
}

// DefaultCatalog is the fixed list of commands offered by the palette,
// in display order.
var DefaultCatalog = []Command{
	{ID: workspace.CmdNewFile, Label: "File: New Text File", Shortcut: "Ctrl+N"},
	{ID: workspace.CmdOpenFile, Label: "File: Open File...", Shortcut: "Ctrl+O"},
	{ID: workspace.CmdSaveFile, Label: "File: Save", Shortcut: "Ctrl+S"},
	{ID: workspace.CmdSettings, Label: "Preferences: Open Settings (UI)", Shortcut: "Ctrl+,"},
	{ID: workspace.CmdTheme, Label: "Preferences: Color Theme", Shortcut: "Ctrl+K Ctrl+T"},
	{ID: workspace.CmdTerminal, Label: "Terminal: Toggle Terminal", Shortcut: "Ctrl+`"},
	{ID: workspace.CmdAssistant, Label: "AI: Ask Gemini", Shortcut: "Ctrl+Alt+G"},
	{ID: workspace.CmdToggleSidebar, Label: "View: Toggle Primary Side Bar Visibility", Shortcut: "Ctrl+B"},
	{ID: workspace.CmdStartDebugging, Label: "Debug: Start Debugging", Shortcut: "F5"},
	{ID: workspace.CmdStopDebugging, Label: "Debug: Stop", Shortcut: "Shift+F5"},
	{ID: workspace.CmdWelcome, Label: "Help: Welcome", Shortcut: ""},
	{ID: workspace.CmdCopyFile, Label: "File: Copy Active File Contents", Shortcut: ""},
}
