// Package cmd contains testing utilities shared between command tests.
// This file provides helpers for isolating the user's git config and
// running the CLI in-process with captured output.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// setupTestEnvironment points HOME and XDG_CONFIG_HOME at a temp directory,
// disables colour and, unless content is nil, writes ~/.gitconfig.
// Returns the path of the (possibly absent) ~/.gitconfig.
func setupTestEnvironment(t *testing.T, content *string) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("NO_COLOR", "1")

	path := filepath.Join(home, ".gitconfig")
	if content != nil {
		if err := os.WriteFile(path, []byte(*content), 0600); err != nil {
			t.Fatalf("Failed to write gitconfig: %v", err)
		}
	}

	t.Cleanup(ResetGlobalState)
	return path
}

// gitconfig is a convenience for passing literal config content to setupTestEnvironment.
func gitconfig(content string) *string {
	return &content
}

// createTestCLI returns the real root command with fresh state, the given
// arguments and its output streams redirected.
func createTestCLI(args []string, stdout, stderr io.Writer) *cobra.Command {
	ResetGlobalState()

	RootCmd.SetOut(stdout)
	RootCmd.SetErr(stderr)
	RootCmd.SetArgs(args)

	return RootCmd
}

// runCLI executes the CLI with args and returns what it wrote to stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := createTestCLI(args, &stdout, &stderr).Execute()
	return stdout.String(), stderr.String(), err
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// readFileIfExists returns the content of path, or the error from reading it.
func readFileIfExists(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

// writeTestFile writes content to path or fails the test.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
