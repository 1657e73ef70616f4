package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Digest returns the hex SHA-256 of b.
func Digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// DigestFile returns the hex SHA-256 of the file at path.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Fingerprint shortens a hex digest to 20 characters for display.
func Fingerprint(digest string) string {
	if len(digest) > 20 {
		return digest[:20]
	}
	return digest
}
