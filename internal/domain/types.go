package domain

import (
	"fmt"
	"strings"
	"time"
)

// Variant selects which launcher flavour runs: the POSIX shell script or the
// Windows batch file.
type Variant string

const (
	VariantPOSIX   Variant = "posix"
	VariantWindows Variant = "windows"
)

// String returns the string form of the variant.
func (v Variant) String() string { return string(v) }

// ParseVariant accepts "posix" or "windows" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "posix", "unix", "linux", "darwin":
		return VariantPOSIX, nil
	case "windows", "win":
		return VariantWindows, nil
	}
	return "", fmt.Errorf("unknown launcher variant %q", s)
}

// VariantFor maps a GOOS value to its launcher variant.
func VariantFor(goos string) Variant {
	if goos == "windows" {
		return VariantWindows
	}
	return VariantPOSIX
}

// Policy controls how the launcher reacts to failing steps.
type Policy struct {
	// FailFast aborts the sequence on the first failing step.
	FailFast bool
	// IgnoreBrowserError drops browser-open failures silently.
	IgnoreBrowserError bool
}

// PolicyFor returns the error policy each variant has always had:
// POSIX is fail-fast with a silenced browser step, Windows keeps going.
func PolicyFor(v Variant) Policy {
	if v == VariantWindows {
		return Policy{FailFast: false, IgnoreBrowserError: false}
	}
	return Policy{FailFast: true, IgnoreBrowserError: true}
}

// EnvVar is a single KEY=VALUE pair exported to the application process.
type EnvVar struct {
	Key   string
	Value string
}

// String returns KEY=VALUE.
func (e EnvVar) String() string { return e.Key + "=" + e.Value }

// LaunchPlan is everything the bootstrap launcher needs for one run.
type LaunchPlan struct {
	ProjectDir   string   // directory holding the manifest and entry module
	VenvDir      string   // virtual-environment directory (absolute)
	Python       string   // interpreter used to create the venv
	Requirements string   // dependency manifest (absolute)
	EntryModule  string   // value exported as FLASK_APP
	AppCommand   []string // argv run inside the venv, e.g. ["python", "-m", "flask", "run"]
	Env          []EnvVar // exported to the app in order
	URL          string   // opened in the browser before the app starts
	Variant      Variant
	Policy       Policy
	Native       bool // run the in-process web server instead of AppCommand
}

// Step names reported by the launcher.
const (
	StepEnsureEnv        = "ensure-env"
	StepActivate         = "activate"
	StepUpgradeInstaller = "upgrade-installer"
	StepInstallDeps      = "install-deps"
	StepConfigure        = "configure"
	StepOpenBrowser      = "open-browser"
	StepRunApp           = "run-app"
)

// StepResult records the outcome of one launcher step.
type StepResult struct {
	Step    string
	Err     error
	Skipped bool
}

// LaunchRecord is the persisted summary of the last successful environment
// preparation.
type LaunchRecord struct {
	ProjectDir      string    `json:"project_dir"`
	VenvDir         string    `json:"venv_dir"`
	Variant         Variant   `json:"variant"`
	EntryModule     string    `json:"entry_module"`
	RequirementsSHA string    `json:"requirements_sha256,omitempty"`
	VenvCreated     bool      `json:"venv_created"`
	PreparedAt      time.Time `json:"prepared_at"`
}

// Mode selects how the leading part of each word is emphasised.
type Mode string

const (
	ModeSyllable Mode = "syllable"
	ModeBionic   Mode = "bionic"
)

// String returns the string form of the mode.
func (m Mode) String() string { return string(m) }

// ParseMode maps form/flag input to a Mode. Anything other than "bionic"
// falls back to syllable mode, matching the upload form's default.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeBionic)) {
		return ModeBionic
	}
	return ModeSyllable
}
