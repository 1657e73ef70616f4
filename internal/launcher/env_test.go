package launcher_test

import (
	"path/filepath"
	"slices"
	"testing"

	"speedread/internal/domain"
	"speedread/internal/launcher"
)

func TestActivate_Windows(t *testing.T) {
	plan := domain.LaunchPlan{VenvDir: filepath.Join("C:", "proj", "venv"), Variant: domain.VariantWindows}
	env := launcher.Activate([]string{`Path=C:\Windows`, "PYTHONHOME=x"}, plan)

	path, ok := launcher.Lookup(env, "PATH", true)
	if !ok {
		t.Fatalf("PATH missing: %v", env)
	}
	want := filepath.Join(plan.VenvDir, "Scripts") + `;C:\Windows`
	if path != want {
		t.Fatalf("PATH = %q, want %q", path, want)
	}
	if _, ok := launcher.Lookup(env, "pythonhome", true); ok {
		t.Fatal("PYTHONHOME should be removed")
	}
	n := 0
	for _, kv := range env {
		if len(kv) > 5 && (kv[:5] == "PATH=" || kv[:5] == "Path=") {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("want a single PATH entry, got %d: %v", n, env)
	}
}

func TestActivate_EmptyPath(t *testing.T) {
	plan := domain.LaunchPlan{VenvDir: "/p/venv", Variant: domain.VariantPOSIX}
	env := launcher.Activate(nil, plan)
	if !slices.Contains(env, "PATH="+filepath.Join("/p/venv", "bin")) {
		t.Fatalf("unexpected env: %v", env)
	}
}

func TestConfigure_OverridesExisting(t *testing.T) {
	plan := domain.LaunchPlan{
		Variant: domain.VariantPOSIX,
		Env:     []domain.EnvVar{{Key: "FLASK_APP", Value: "app.py"}, {Key: "FLASK_ENV", Value: "development"}},
	}
	env := launcher.Configure([]string{"FLASK_ENV=production", "A=1"}, plan)
	if slices.Contains(env, "FLASK_ENV=production") {
		t.Fatalf("old value kept: %v", env)
	}
	for _, want := range []string{"A=1", "FLASK_APP=app.py", "FLASK_ENV=development"} {
		if !slices.Contains(env, want) {
			t.Fatalf("missing %s: %v", want, env)
		}
	}
}

func TestVenvPython(t *testing.T) {
	posix := launcher.VenvPython(domain.LaunchPlan{VenvDir: "venv", Variant: domain.VariantPOSIX})
	if posix != filepath.Join("venv", "bin", "python") {
		t.Fatalf("posix: %s", posix)
	}
	win := launcher.VenvPython(domain.LaunchPlan{VenvDir: "venv", Variant: domain.VariantWindows})
	if win != filepath.Join("venv", "Scripts", "python.exe") {
		t.Fatalf("windows: %s", win)
	}
}
