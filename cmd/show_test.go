package cmd

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/git-profile/internal/profiles"
	"golang.org/x/crypto/ssh"
)

// TestShow contains integration tests for the `git-profile show` command.
func TestShow(t *testing.T) {
	t.Run("Text", testShowText)
	t.Run("JSON", testShowJSON)
	t.Run("SSHFingerprint", testShowSSHFingerprint)
	t.Run("UnreadableSSHKey", testShowUnreadableSSHKey)
	t.Run("NotFound", testShowNotFound)
}

func testShowText(t *testing.T) {
	setupTestEnvironment(t, gitconfig(`[user "team.infra"]
	name = Infra Bot
	email = infra@example.com
`))

	stdout, stderr, err := runCLI(t, "show", "team.infra")
	if err != nil {
		t.Fatalf("Command failed: %v\nstderr: %s", err, stderr)
	}

	for _, want := range []string{
		"Profile 'team.infra'",
		"Name:         Infra Bot",
		"Email:        infra@example.com",
		"Signing key:  (not set)",
		"SSH key:      (not set)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "Fingerprint:") {
		t.Errorf("No fingerprint expected without an SSH key, got:\n%s", stdout)
	}
}

func testShowJSON(t *testing.T) {
	setupTestEnvironment(t, gitconfig(`[user "work"]
	name = Jane
	email = jane@corp.example
	signingkey = KEY1
`))

	stdout, _, err := runCLI(t, "show", "work", "--json")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	var got profiles.Identity
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, stdout)
	}
	want := profiles.Identity{ID: "work", Name: "Jane", Email: "jane@corp.example", SigningKey: "KEY1"}
	if got != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}
	if strings.Contains(stdout, "sshkey") {
		t.Errorf("Unset sshkey should be omitted, got:\n%s", stdout)
	}
}

func testShowSSHFingerprint(t *testing.T) {
	path := setupTestEnvironment(t, nil)
	keyPath := filepath.Join(filepath.Dir(path), "id_work")

	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	sshKey, err := ssh.NewPublicKey(publicKey)
	if err != nil {
		t.Fatalf("failed to convert key: %v", err)
	}
	writeTestFile(t, keyPath+".pub", string(ssh.MarshalAuthorizedKey(sshKey)))
	writeTestFile(t, path, "[user \"work\"]\n\tname = W\n\temail = w@example.com\n\tsshkey = "+keyPath+"\n")

	stdout, _, err := runCLI(t, "show", "work")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(stdout, "Fingerprint:  "+ssh.FingerprintSHA256(sshKey)) {
		t.Errorf("Expected fingerprint in output, got:\n%s", stdout)
	}
}

func testShowUnreadableSSHKey(t *testing.T) {
	setupTestEnvironment(t, gitconfig("[user \"work\"]\n\tname = W\n\temail = w@example.com\n\tsshkey = /nonexistent/id_work\n"))

	stdout, _, err := runCLI(t, "show", "work")
	if err != nil {
		t.Fatalf("A missing SSH key must not fail show: %v", err)
	}
	if !strings.Contains(stdout, "(public key not readable)") {
		t.Errorf("Expected muted note, got:\n%s", stdout)
	}
}

func testShowNotFound(t *testing.T) {
	setupTestEnvironment(t, gitconfig("[user \"work\"]\n\tname = W\n"))

	stdout, stderr, err := runCLI(t, "show", "home")
	if err == nil {
		t.Fatal("Expected error for unknown profile")
	}
	if stdout != "" {
		t.Errorf("Expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "profile not found: home") || !strings.Contains(stderr, "`git-profile list`") {
		t.Errorf("Expected not-found message and hint, got %q", stderr)
	}
}
