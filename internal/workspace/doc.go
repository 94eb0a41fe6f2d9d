// Package workspace holds the workbench's view state machine.
//
// The Controller owns everything the rest of the UI derives its
// rendering from: the file tree (only directory expansion ever changes),
// the ordered set of open files, the active file, the main View (a
// closed union of welcome, editor, settings, extension detail and diff),
// the sidebar and bottom panel selections, and the debugger's
// idle/running state together with the layout recipe it applies on
// start.
//
// Nothing here performs I/O or blocks. Rendering lives in internal/ui
// and the Bubble Tea wiring in internal/app.
package workspace
