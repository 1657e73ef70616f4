package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"speedread/internal/domain"
)

// PythonApp runs plan.AppCommand inside the venv.
type PythonApp struct {
	Runner domain.CommandRunner
}

// RunApp runs the configured command from the project directory. The first
// word of the command is looked up in the venv's bin directory first, since
// the launcher's own PATH is not the activated one.
func (a PythonApp) RunApp(ctx context.Context, plan domain.LaunchPlan, env []string) error {
	if len(plan.AppCommand) == 0 {
		return errors.New("empty app command")
	}
	return a.Runner.Run(ctx, domain.Command{
		Name: resolveInVenv(plan, plan.AppCommand[0]),
		Args: plan.AppCommand[1:],
		Dir:  plan.ProjectDir,
		Env:  env,
	})
}

// AppFunc adapts a function to domain.AppRunner.
type AppFunc func(ctx context.Context, plan domain.LaunchPlan, env []string) error

// RunApp calls f.
func (f AppFunc) RunApp(ctx context.Context, plan domain.LaunchPlan, env []string) error {
	return f(ctx, plan, env)
}

var (
	_ domain.AppRunner = PythonApp{}
	_ domain.AppRunner = AppFunc(nil)
)

func resolveInVenv(plan domain.LaunchPlan, name string) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	candidate := filepath.Join(BinDir(plan), name+exeSuffix(plan.Variant))
	if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
		return candidate
	}
	return name
}
