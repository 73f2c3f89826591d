package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// Status renders a one-line status message led by a formatted marker,
// e.g. Status(Success, "✓", "Profile saved").
func Status(marker Formatter, symbol, msg string) string {
	return marker.Sprint(symbol) + " " + msg
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

// Semantic formatters for CLI output.
var (
	// Code formats runnable commands. Backticks without colour.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths such as the git config location.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success markers.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats failure markers.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info formats hints and arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats profile ids and field values. 'Quotes' without colour.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary notes. (Parentheses) without colour.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
