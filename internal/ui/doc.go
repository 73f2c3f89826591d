// Package ui provides semantic text formatting for git-profile output.
//
// Formatters colourise when the terminal supports it. With NO_COLOR set, or
// on a dumb terminal, they fall back to plain decorations:
//
//	ui.Code.Sprint("git-profile list")  // `git-profile list`
//	ui.Highlight.Sprint("work")         // 'work'
//	ui.Muted.Sprint("not set")          // (not set)
//
// Machine-readable output (the profile list, --json) never goes through
// these formatters.
package ui
