// Package utils provides small helpers shared by the configs, workflows and
// cmd packages.
//
// # Filesystem Utilities
//
//   - ExpandHome: expands a leading ~ in user-supplied paths
//
// # Terminal Utilities
//
//   - IsTerminal: reports whether a file is attached to a terminal
package utils
