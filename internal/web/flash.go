package web

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"speedread/internal/crypto"
	"speedread/internal/domain"
)

const flashCookie = "speedread_flash"

// Flasher stores one-shot messages in an authenticated, encrypted cookie.
type Flasher struct {
	key []byte
}

// NewFlasher derives the cookie key from secret.
func NewFlasher(secret string) (*Flasher, error) {
	key, err := crypto.DeriveKey(secret, "speedread flash v1")
	if err != nil {
		return nil, fmt.Errorf("flash key: %w", err)
	}
	return &Flasher{key: key}, nil
}

// Add queues msg for the next page render.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	msgs, _ := f.read(r)
	msgs = append(msgs, msg)

	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	blob, err := crypto.Seal(f.key, raw, []byte(flashCookie))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(blob),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the queued messages and clears the cookie. A cookie that fails
// authentication is dropped and reported as domain.ErrBadFlash.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) ([]string, error) {
	if _, err := r.Cookie(flashCookie); err != nil {
		return nil, nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return f.read(r)
}

func (f *Flasher) read(r *http.Request) ([]string, error) {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil, nil
	}
	blob, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil, domain.ErrBadFlash
	}
	raw, err := crypto.Open(f.key, blob, []byte(flashCookie))
	if err != nil {
		return nil, domain.ErrBadFlash
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, domain.ErrBadFlash
	}
	return msgs, nil
}
