package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"speedread/internal/domain"
)

// ExecRunner runs commands with os/exec, streaming their output to the
// launcher's own stdio.
type ExecRunner struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
	Log            zerolog.Logger
	// WaitDelay bounds how long a cancelled child may take to exit.
	WaitDelay time.Duration
}

// NewExecRunner returns a runner wired to the process's stdio.
func NewExecRunner(log zerolog.Logger) *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Log:       log,
		WaitDelay: 10 * time.Second,
	}
}

// Run executes c in the foreground. Cancelling ctx interrupts the child.
func (r *ExecRunner) Run(ctx context.Context, c domain.Command) error {
	cmdText := strings.Join(append([]string{c.Name}, c.Args...), " ")
	r.Log.Debug().Str("cmd", cmdText).Str("dir", c.Dir).Msg("running")

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %s: %w", cmdText, err)
	}
	return nil
}

var _ domain.CommandRunner = (*ExecRunner)(nil)

// ExitCode maps a launch error to a process exit code. A failed child's own
// code is passed through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
