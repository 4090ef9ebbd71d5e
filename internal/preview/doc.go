// Package preview shows a live rendering of a .dsl file in the terminal.
//
// The preview is a bubbletea program. It polls the file for changes and
// feeds edits, terminal resizes and button presses to a livedsl.Driver,
// then draws the latest markup tree with lipgloss. When the file stops
// compiling, the last good rendering stays on screen under the error.
package preview
