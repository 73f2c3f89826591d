package profiles

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// Fingerprint returns the SHA256 fingerprint of the public half of the SSH
// key at path. It reads <path>.pub first, then path itself, so both a
// private key with its .pub sibling and a bare public key work.
func Fingerprint(path string) (string, error) {
	var lastErr error
	for _, candidate := range []string{path + ".pub", path} {
		data, err := os.ReadFile(candidate)
		if err != nil {
			lastErr = err
			continue
		}

		publicKey, _, _, _, err := ssh.ParseAuthorizedKey(data)
		if err != nil {
			lastErr = fmt.Errorf("parsing %s: %w", candidate, err)
			continue
		}
		return ssh.FingerprintSHA256(publicKey), nil
	}
	return "", fmt.Errorf("no public key for %s: %w", path, lastErr)
}
