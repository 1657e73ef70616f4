package launcher

import (
	"path/filepath"
	"strings"

	"speedread/internal/domain"
)

// BinDir returns the venv's executable directory for plan's variant.
func BinDir(plan domain.LaunchPlan) string {
	if plan.Variant == domain.VariantWindows {
		return filepath.Join(plan.VenvDir, "Scripts")
	}
	return filepath.Join(plan.VenvDir, "bin")
}

// VenvPython returns the interpreter inside the venv.
func VenvPython(plan domain.LaunchPlan) string {
	return filepath.Join(BinDir(plan), "python"+exeSuffix(plan.Variant))
}

func exeSuffix(v domain.Variant) string {
	if v == domain.VariantWindows {
		return ".exe"
	}
	return ""
}

func listSep(v domain.Variant) string {
	if v == domain.VariantWindows {
		return ";"
	}
	return ":"
}

// Activate returns base with the venv activated, the same way the venv's
// activate script does it: VIRTUAL_ENV is set, the bin directory is put
// first on PATH and PYTHONHOME is removed.
func Activate(base []string, plan domain.LaunchPlan) []string {
	fold := plan.Variant == domain.VariantWindows

	path, _ := Lookup(base, "PATH", fold)
	newPath := BinDir(plan)
	if path != "" {
		newPath += listSep(plan.Variant) + path
	}

	env := Unset(base, "PYTHONHOME", fold)
	env = Set(env, "VIRTUAL_ENV", plan.VenvDir, fold)
	return Set(env, "PATH", newPath, fold)
}

// Lookup finds key in env. fold makes the match case-insensitive, as
// Windows environments are.
func Lookup(env []string, key string, fold bool) (string, bool) {
	for i := len(env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(env[i], "="); ok && keyEqual(k, key, fold) {
			return v, true
		}
	}
	return "", false
}

// Set returns env with key set to value, replacing every existing entry.
func Set(env []string, key, value string, fold bool) []string {
	return append(Unset(env, key, fold), key+"="+value)
}

// Unset returns a copy of env without key.
func Unset(env []string, key string, fold bool) []string {
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if k, _, ok := strings.Cut(kv, "="); ok && keyEqual(k, key, fold) {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func keyEqual(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}
