package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"speedread/internal/config"
	"speedread/internal/domain"
)

// Environment variables exported to the application.
const (
	EnvAppModule = "FLASK_APP"
	EnvAppMode   = "FLASK_ENV"
	ModeDev      = "development"
)

// NewPlan resolves cfg into an absolute LaunchPlan.
func NewPlan(cfg config.LaunchConfig, native bool) (domain.LaunchPlan, error) {
	variant := domain.VariantFor(runtime.GOOS)
	if cfg.Variant != "" {
		v, err := domain.ParseVariant(cfg.Variant)
		if err != nil {
			return domain.LaunchPlan{}, err
		}
		variant = v
	}

	project, err := ResolveProjectDir(cfg.ProjectDir, cfg.Requirements)
	if err != nil {
		return domain.LaunchPlan{}, err
	}

	return domain.LaunchPlan{
		ProjectDir:   project,
		VenvDir:      under(project, cfg.VenvDir),
		Python:       cfg.Python,
		Requirements: under(project, cfg.Requirements),
		EntryModule:  cfg.EntryModule,
		AppCommand:   append([]string(nil), cfg.AppCommand...),
		Env: []domain.EnvVar{
			{Key: EnvAppModule, Value: cfg.EntryModule},
			{Key: EnvAppMode, Value: ModeDev},
		},
		URL:     cfg.URL,
		Variant: variant,
		Policy:  domain.PolicyFor(variant),
		Native:  native,
	}, nil
}

// ResolveProjectDir returns the directory the launcher works in. An explicit
// dir wins. Otherwise it is the executable's own directory when that holds
// the manifest, falling back to the working directory.
func ResolveProjectDir(dir, manifest string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		exeDir := filepath.Dir(exe)
		if fileExists(under(exeDir, manifest)) {
			return exeDir, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve project dir: %w", err)
	}
	return wd, nil
}

func under(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func fileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
