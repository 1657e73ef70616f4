package commands

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeEPUB(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct{ name, body string }{
		{"mimetype", "application/epub+zip"},
		{"OEBPS/ch1.xhtml", `<html><head><title>x</title></head><body><p>Молоко</p></body></html>`},
	}
	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := io.WriteString(f, e.body); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write epub: %v", err)
	}
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "book.epub")
	writeEPUB(t, in)

	out, err := execute(t, "convert", in)
	if err != nil {
		t.Fatalf("convert: %v (%s)", err, out)
	}
	want := filepath.Join(dir, "book-speedread.epub")
	if !strings.Contains(out, want) {
		t.Fatalf("output %q does not name %s", out, want)
	}

	zr, err := zip.OpenReader(want)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	defer zr.Close()
	if len(zr.File) != 2 || zr.File[0].Name != "mimetype" {
		t.Fatalf("unexpected entries: %v", zr.File)
	}
	rc, err := zr.File[1].Open()
	if err != nil {
		t.Fatalf("open chapter: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if !strings.Contains(string(body), "<strong>Мо</strong>локо") {
		t.Fatalf("chapter not converted: %s", body)
	}
}

func TestConvertCommand_BadZip(t *testing.T) {
	in := filepath.Join(t.TempDir(), "broken.epub")
	if err := os.WriteFile(in, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "convert", in); err == nil {
		t.Fatal("expected error for corrupt epub")
	}
}

func TestStatusCommand_NoRecord(t *testing.T) {
	t.Setenv("SPEEDREAD_PROJECT_DIR", t.TempDir())
	out, err := execute(t, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "No launch recorded") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speedread", "config.toml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "max_upload_mb = 100") {
		t.Fatalf("unexpected config:\n%s", data)
	}

	root = newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected refusal to overwrite")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatal("empty version")
	}
}

func TestLaunchCommand_ReportsFailureOnce(t *testing.T) {
	t.Setenv("SPEEDREAD_PROJECT_DIR", t.TempDir())
	t.Setenv("SPEEDREAD_PYTHON", "speedread-no-such-python")

	out, err := execute(t, "launch", "--variant", "posix")
	if err == nil {
		t.Fatal("expected launch to fail without an interpreter")
	}
	if n := strings.Count(out, "ensure-env"); n != 1 {
		t.Fatalf("failure printed %d times:\n%s", n, out)
	}
}

func TestNoColorFlag(t *testing.T) {
	if _, err := execute(t, "--no-color", "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !settings.Log.NoColor {
		t.Fatal("--no-color not applied to log settings")
	}
}
