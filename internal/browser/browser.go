// Package browser opens URLs in the user's default browser.
package browser

import (
	"errors"
	"os/exec"
)

// ErrNoOpener is returned when no launcher command exists on this system.
var ErrNoOpener = errors.New("no browser launcher found")

// Opener starts the platform's URL handler without waiting for it.
type Opener struct {
	// LookPath and Start default to exec.LookPath and starting an exec.Cmd.
	LookPath func(file string) (string, error)
	Start    func(name string, args ...string) error
}

// New returns an Opener backed by os/exec.
func New() *Opener {
	return &Opener{LookPath: exec.LookPath, Start: start}
}

// Open hands url to the first available launcher command.
func (o *Opener) Open(url string) error {
	for _, c := range candidates(url) {
		path, err := o.LookPath(c[0])
		if err != nil {
			continue
		}
		return o.Start(path, c[1:]...)
	}
	return ErrNoOpener
}

func start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The handler detaches; reap it in the background.
	go func() { _ = cmd.Wait() }()
	return nil
}
