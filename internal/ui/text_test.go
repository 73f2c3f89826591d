package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	t.Helper()
	os.Unsetenv("NO_COLOR")
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatterWithColor(t *testing.T) {
	forceColor(t)

	result := Code.Sprint("git-profile list")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "git-profile add work", "`git-profile add work`"},
		{"Path has no decoration", Path, "~/.gitconfig", "~/.gitconfig"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "team.infra", "'team.infra'"},
		{"Muted adds parentheses", Muted, "not set", "(not set)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	result := Highlight.Sprintf("user.%s.email", "work")
	want := "'user.work.email'"
	if result != want {
		t.Errorf("Highlight.Sprintf() = %q, want %q", result, want)
	}
}

func TestStatus(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := Status(Success, "✓", "Profile saved")
	if got != "✓ Profile saved" {
		t.Errorf("Status() = %q", got)
	}
}

func TestNoColorFunction(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := map[string]string{
		"":        "\n",
		"saved":   "saved\n",
		"saved\n": "saved\n",
		"a\nb":    "a\nb\n",
	}
	for input, want := range tests {
		if got := EnsureNewline(input); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", input, got, want)
		}
	}
}
