// Package logger provides leveled logging for git-profile commands.
//
// Verbosity is controlled by two persistent flags:
//
//   - --verbose: info and warning messages
//   - --debug: everything, including debug and error traces
//
// Without flags the logger is silent; user-facing results and failures are
// printed by the commands themselves.
//
// All log lines go to stderr. stdout carries command output only, so
// `git-profile list --verbose | sort` still sees one profile per line.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Opened %s", path)
package logger
