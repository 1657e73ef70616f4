package crypto

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// KeySize is the length of keys returned by DeriveKey.
const KeySize = chacha20poly1305.KeySize

var errEmptySecret = errors.New("empty secret")

// DeriveKey expands secret into a KeySize key bound to info.
func DeriveKey(secret, info string) ([]byte, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	ikm := []byte(secret)
	defer Wipe(ikm)

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
