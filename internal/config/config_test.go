package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"speedread/internal/config"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := config.Default()
	if cfg.Launch.VenvDir != def.Launch.VenvDir || cfg.Launch.EntryModule != "app.py" {
		t.Fatalf("unexpected launch defaults: %+v", cfg.Launch)
	}
	if cfg.Launch.URL != "http://127.0.0.1:5000/" {
		t.Fatalf("url default: %q", cfg.Launch.URL)
	}
	if cfg.Server.MaxUploadMB != 100 {
		t.Fatalf("max upload default: %d", cfg.Server.MaxUploadMB)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.Default()
	cfg.Launch.VenvDir = ".venv"
	cfg.Launch.AppCommand = []string{"python", "app.py"}
	cfg.Server.Addr = "127.0.0.1:8081"
	cfg.Log.Debug = true

	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Launch.VenvDir != ".venv" || got.Server.Addr != "127.0.0.1:8081" || !got.Log.Debug {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Launch.AppCommand) != 2 || got.Launch.AppCommand[1] != "app.py" {
		t.Fatalf("app command: %v", got.Launch.AppCommand)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \"0.0.0.0:9000\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:9000" {
		t.Fatalf("addr: %q", cfg.Server.Addr)
	}
	if cfg.Server.Secret != "dev" || cfg.Launch.Requirements != "requirements.txt" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SPEEDREAD_ADDR", "127.0.0.1:7000")
	t.Setenv("SPEEDREAD_SECRET", "s3cret")
	t.Setenv("SPEEDREAD_DEBUG", "true")
	t.Setenv("NO_COLOR", "1")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Log.NoColor {
		t.Fatal("NO_COLOR not applied")
	}
	if cfg.Server.Addr != "127.0.0.1:7000" || cfg.Server.Secret != "s3cret" || !cfg.Log.Debug {
		t.Fatalf("env not applied: %+v", cfg)
	}

	t.Setenv("SPEEDREAD_DEBUG", "maybe")
	if _, err := config.Load(filepath.Join(t.TempDir(), "none.toml")); err == nil {
		t.Fatal("expected error for bad SPEEDREAD_DEBUG")
	}
}

func TestExpandVariables(t *testing.T) {
	t.Setenv("SPEEDREAD_TEST_DIR", "/opt/books")
	if got := config.ExpandVariables("${SPEEDREAD_TEST_DIR}/venv"); got != "/opt/books/venv" {
		t.Fatalf("got %q", got)
	}
	if got := config.ExpandVariables("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}
