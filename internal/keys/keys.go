// Package keys names the key strings facade binds.
//
// Each value is computed from the tea.KeyPressMsg the terminal delivers,
// so a binding compared against msg.String() cannot drift from what
// Bubble Tea reports. Printable single characters are matched literally.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Function keys
var (
	F5      = tea.KeyPressMsg{Code: tea.KeyF5}.String()                      // "f5"
	ShiftF5 = (tea.KeyPressMsg{Code: tea.KeyF5, Mod: tea.ModShift}).String() // "shift+f5"
	F10     = tea.KeyPressMsg{Code: tea.KeyF10}.String()                     // "f10"
)

// Ctrl combinations
var (
	CtrlC        = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()                // "ctrl+c"
	CtrlQ        = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()                // "ctrl+q"
	CtrlB        = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String()                // "ctrl+b"
	CtrlP        = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String()                // "ctrl+p"
	CtrlW        = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()                // "ctrl+w"
	CtrlN        = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()                // "ctrl+n"
	CtrlS        = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String()                // "ctrl+s"
	CtrlO        = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String()                // "ctrl+o"
	CtrlJ        = (tea.KeyPressMsg{Code: 'j', Mod: tea.ModCtrl}).String()                // "ctrl+j"
	CtrlComma    = (tea.KeyPressMsg{Code: ',', Mod: tea.ModCtrl}).String()                // "ctrl+,"
	CtrlBacktick = (tea.KeyPressMsg{Code: '`', Mod: tea.ModCtrl}).String()                // "ctrl+`"
	CtrlAt       = (tea.KeyPressMsg{Code: '@', Mod: tea.ModCtrl}).String()                // "ctrl+@", what most terminals send for ctrl+`
	CtrlShiftP   = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+p"
	CtrlPageUp   = (tea.KeyPressMsg{Code: tea.KeyPgUp, Mod: tea.ModCtrl}).String()        // "ctrl+pgup"
	CtrlPageDown = (tea.KeyPressMsg{Code: tea.KeyPgDown, Mod: tea.ModCtrl}).String()      // "ctrl+pgdown"
)

// Alt+digit selects a sidebar tab.
var (
	Alt1 = (tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}).String() // "alt+1"
	Alt2 = (tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt}).String() // "alt+2"
	Alt3 = (tea.KeyPressMsg{Code: '3', Mod: tea.ModAlt}).String() // "alt+3"
	Alt4 = (tea.KeyPressMsg{Code: '4', Mod: tea.ModAlt}).String() // "alt+4"
	Alt5 = (tea.KeyPressMsg{Code: '5', Mod: tea.ModAlt}).String() // "alt+5"
	Alt6 = (tea.KeyPressMsg{Code: '6', Mod: tea.ModAlt}).String() // "alt+6"
)
