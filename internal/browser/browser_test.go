package browser_test

import (
	"errors"
	"testing"

	"speedread/internal/browser"
)

func TestOpen_UsesFirstAvailable(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := &browser.Opener{
		LookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		Start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}
	if err := o.Open("http://127.0.0.1:5000/"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName == "" {
		t.Fatal("no command started")
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != "http://127.0.0.1:5000/" {
		t.Fatalf("url not passed last: %v", gotArgs)
	}
}

func TestOpen_NoLauncher(t *testing.T) {
	o := &browser.Opener{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		Start: func(string, ...string) error {
			t.Fatal("Start must not be called")
			return nil
		},
	}
	if err := o.Open("http://127.0.0.1:5000/"); !errors.Is(err, browser.ErrNoOpener) {
		t.Fatalf("want ErrNoOpener, got %v", err)
	}
}

func TestOpen_StartError(t *testing.T) {
	boom := errors.New("boom")
	o := &browser.Opener{
		LookPath: func(file string) (string, error) { return file, nil },
		Start:    func(string, ...string) error { return boom },
	}
	if err := o.Open("http://x/"); !errors.Is(err, boom) {
		t.Fatalf("want start error, got %v", err)
	}
}
