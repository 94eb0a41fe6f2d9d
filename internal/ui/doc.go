// Package ui provides the user interface components of the facade workbench.
//
// # Overview
//
// The ui package implements the visual components of facade using the Bubble
// Tea framework and Lipgloss styling library. Components hold only view
// state (cursors, scroll offsets, input text); the workspace package owns
// everything else and the app package wires the two together.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header: menus and window title (1 line)                  │
//	├──┬──────────────┬────────────────────────────────────────┤
//	│A │              │ Tabs (1 line)                          │
//	│c │   Sidebar    │ Editor / Diff / Settings / Welcome     │
//	│t │  (1/4 width) │                                        │
//	│i │              ├────────────────────────────────────────┤
//	│v │              │ Panel: terminal, problems, output,     │
//	│  │              │ debug console (1/3 height)             │
//	├──┴──────────────┴────────────────────────────────────────┤
//	│ Status bar (1 line)                                      │
//	└──────────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Menu titles on the left, the window title on the right, over a
// gradient background.
//
// StatusBar: Branch, problem counts, debug state, language and the
// notification bell, with key hints for the focused area in between.
//
// Sidebar views: Explorer, SearchView, SCMView, DebugView, ExtensionsView
// and Chat, one per activity bar tab.
//
// Editor and DiffView: read-only file views on a viewport, highlighted
// with chroma.
//
// Modal: Popup dialogs behind the ModalState union:
//   - PaletteState: the command palette
//   - MenuState: the menu bar
//
// Settings: a huh form over the editor settings plus a JSON view.
//
// # Styles
//
// All styles are declared in styles.go and rebuilt by SetTheme from the
// themes in theme.go, so switching workbench.colorTheme restyles every
// component.
package ui
