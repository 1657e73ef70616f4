package domain

import (
	"context"
	"io"
)

// Command is one subprocess invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // full environment; nil inherits the launcher's
}

// CommandRunner runs subprocesses in the foreground, wiring stdio through.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) error
}

// BrowserOpener opens a URL in the user's default browser.
type BrowserOpener interface {
	Open(url string) error
}

// AppRunner starts the application and blocks until it exits.
type AppRunner interface {
	RunApp(ctx context.Context, plan LaunchPlan, env []string) error
}

// LaunchStore persists the last launch record.
type LaunchStore interface {
	SaveLaunch(rec LaunchRecord) error
	LoadLaunch() (LaunchRecord, error)
}

// Converter rewrites an EPUB for speed reading.
type Converter interface {
	ConvertEPUB(r io.ReaderAt, size int64, w io.Writer, mode Mode) error
}
