package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"speedread/internal/crypto"
	"speedread/internal/domain"
)

// Deps are the collaborators a Launcher drives.
type Deps struct {
	Runner  domain.CommandRunner
	Browser domain.BrowserOpener
	App     domain.AppRunner
	Log     zerolog.Logger

	// Store opens the launch record for a venv directory; nil disables records.
	Store func(venvDir string) domain.LaunchStore

	Environ func() []string  // defaults to os.Environ
	Now     func() time.Time // defaults to time.Now
	LockDir string           // defaults to os.TempDir()
}

// Launcher runs the bootstrap sequence.
type Launcher struct {
	d Deps
}

// New returns a Launcher over d.
func New(d Deps) *Launcher {
	if d.Environ == nil {
		d.Environ = os.Environ
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.LockDir == "" {
		d.LockDir = os.TempDir()
	}
	return &Launcher{d: d}
}

// run carries one launch's mutable state.
type run struct {
	plan    domain.LaunchPlan
	results []domain.StepResult
	errs    []error
}

// step records err for name. It reports whether the sequence must stop.
func (r *run) step(name string, err error) (stop bool) {
	r.results = append(r.results, domain.StepResult{Step: name, Err: err})
	if err == nil {
		return false
	}
	r.errs = append(r.errs, fmt.Errorf("%s: %w", name, err))
	return r.plan.Policy.FailFast
}

func (r *run) skip(name string) {
	r.results = append(r.results, domain.StepResult{Step: name, Skipped: true})
}

func (r *run) err() error { return errors.Join(r.errs...) }

// Launch runs the whole sequence and returns each step's outcome. The
// returned error joins every step failure.
func (l *Launcher) Launch(ctx context.Context, plan domain.LaunchPlan) ([]domain.StepResult, error) {
	r := &run{plan: plan}
	log := l.d.Log.With().Str("variant", plan.Variant.String()).Bool("native", plan.Native).Logger()
	env := l.d.Environ()

	if plan.Native {
		r.skip(domain.StepEnsureEnv)
		r.skip(domain.StepActivate)
		r.skip(domain.StepUpgradeInstaller)
		r.skip(domain.StepInstallDeps)
	} else {
		created, err := l.EnsureEnv(ctx, plan)
		if r.step(domain.StepEnsureEnv, err) {
			return r.results, r.err()
		}
		if err == nil {
			log.Info().Str("venv", plan.VenvDir).Bool("created", created).Msg("environment ready")
		}

		env = Activate(env, plan)
		r.step(domain.StepActivate, nil)

		err = l.UpgradeInstaller(ctx, plan, env)
		if r.step(domain.StepUpgradeInstaller, err) {
			return r.results, r.err()
		}

		err = l.InstallDeps(ctx, plan, env)
		if r.step(domain.StepInstallDeps, err) {
			return r.results, r.err()
		}
		if err == nil {
			l.record(plan, created, log)
		} else {
			log.Error().Err(err).Msg("dependency install failed; continuing")
		}
	}

	env = Configure(env, plan)
	r.step(domain.StepConfigure, nil)

	if err := l.d.Browser.Open(plan.URL); err != nil {
		if plan.Policy.IgnoreBrowserError {
			log.Debug().Err(err).Str("url", plan.URL).Msg("browser open failed, ignored")
			r.step(domain.StepOpenBrowser, nil)
		} else {
			log.Error().Err(err).Str("url", plan.URL).Msg("browser open failed")
			if r.step(domain.StepOpenBrowser, err) {
				return r.results, r.err()
			}
		}
	} else {
		r.step(domain.StepOpenBrowser, nil)
	}

	log.Info().Str("url", plan.URL).Msg("starting application")
	r.step(domain.StepRunApp, l.d.App.RunApp(ctx, plan, env))
	return r.results, r.err()
}

// StepNames lists the steps in execution order.
var StepNames = []string{
	domain.StepEnsureEnv,
	domain.StepActivate,
	domain.StepUpgradeInstaller,
	domain.StepInstallDeps,
	domain.StepConfigure,
	domain.StepOpenBrowser,
	domain.StepRunApp,
}

// EnsureEnv creates the venv unless the directory already exists. Creation is
// serialised across processes with a file lock, so concurrent launches end up
// with a single environment.
func (l *Launcher) EnsureEnv(ctx context.Context, plan domain.LaunchPlan) (created bool, err error) {
	if exists, err := isDir(plan.VenvDir); err != nil || exists {
		return false, err
	}

	lock := flock.New(filepath.Join(l.d.LockDir, "speedread-"+crypto.Fingerprint(crypto.Digest([]byte(plan.VenvDir)))+".lock"))
	if _, err := lock.TryLockContext(ctx, 100*time.Millisecond); err != nil {
		return false, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	defer func() { _ = lock.Unlock() }()

	if exists, err := isDir(plan.VenvDir); err != nil || exists {
		return false, err
	}
	err = l.d.Runner.Run(ctx, domain.Command{
		Name: plan.Python,
		Args: []string{"-m", "venv", plan.VenvDir},
		Dir:  plan.ProjectDir,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpgradeInstaller upgrades pip inside the venv.
func (l *Launcher) UpgradeInstaller(ctx context.Context, plan domain.LaunchPlan, env []string) error {
	return l.d.Runner.Run(ctx, domain.Command{
		Name: VenvPython(plan),
		Args: []string{"-m", "pip", "install", "--upgrade", "pip"},
		Dir:  plan.ProjectDir,
		Env:  env,
	})
}

// InstallDeps installs the manifest into the venv. A missing manifest fails
// before pip is invoked.
func (l *Launcher) InstallDeps(ctx context.Context, plan domain.LaunchPlan, env []string) error {
	if !fileExists(plan.Requirements) {
		return fmt.Errorf("%w: %s", domain.ErrManifestMissing, plan.Requirements)
	}
	return l.d.Runner.Run(ctx, domain.Command{
		Name: VenvPython(plan),
		Args: []string{"-m", "pip", "install", "-r", plan.Requirements},
		Dir:  plan.ProjectDir,
		Env:  env,
	})
}

// Configure exports plan.Env on top of env.
func Configure(env []string, plan domain.LaunchPlan) []string {
	fold := plan.Variant == domain.VariantWindows
	for _, kv := range plan.Env {
		env = Set(env, kv.Key, kv.Value, fold)
	}
	return env
}

func (l *Launcher) record(plan domain.LaunchPlan, created bool, log zerolog.Logger) {
	if l.d.Store == nil {
		return
	}
	sum, err := crypto.DigestFile(plan.Requirements)
	if err != nil {
		log.Warn().Err(err).Msg("hash manifest")
	}
	rec := domain.LaunchRecord{
		ProjectDir:      plan.ProjectDir,
		VenvDir:         plan.VenvDir,
		Variant:         plan.Variant,
		EntryModule:     plan.EntryModule,
		RequirementsSHA: sum,
		VenvCreated:     created,
		PreparedAt:      l.d.Now().UTC(),
	}
	if err := l.d.Store(plan.VenvDir).SaveLaunch(rec); err != nil {
		log.Warn().Err(err).Msg("save launch record")
	}
}

func isDir(p string) (bool, error) {
	fi, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("%s exists and is not a directory", p)
	}
	return true, nil
}
