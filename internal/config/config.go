// Package config loads speedread's TOML configuration.
//
// Values are layered: built-in defaults, then the config file
// ($XDG_CONFIG_HOME/speedread/config.toml unless overridden), then
// SPEEDREAD_* environment variables and NO_COLOR. Command-line flags are
// applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	appName  = "speedread"
	fileName = "config.toml"
)

// Config holds the application configuration settings.
type Config struct {
	Launch LaunchConfig `toml:"launch"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// LaunchConfig drives the bootstrap launcher.
type LaunchConfig struct {
	ProjectDir   string   `toml:"project_dir"`  // empty: the executable's directory
	VenvDir      string   `toml:"venv_dir"`     // relative to ProjectDir unless absolute
	Python       string   `toml:"python"`       // interpreter used to create the venv
	Requirements string   `toml:"requirements"` // relative to ProjectDir unless absolute
	EntryModule  string   `toml:"entry_module"`
	AppCommand   []string `toml:"app_command"` // first element resolved inside the venv
	URL          string   `toml:"url"`
	Variant      string   `toml:"variant"` // posix | windows | empty for the host OS
}

// ServerConfig configures the native web server.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	Secret      string `toml:"secret"`
	MaxUploadMB int64  `toml:"max_upload_mb"`
	CacheSize   int    `toml:"cache_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug   bool `toml:"debug"`
	JSON    bool `toml:"json"`
	NoColor bool `toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	python := "python3"
	if runtime.GOOS == "windows" {
		python = "python"
	}
	return Config{
		Launch: LaunchConfig{
			VenvDir:      "venv",
			Python:       python,
			Requirements: "requirements.txt",
			EntryModule:  "app.py",
			AppCommand:   []string{"python", "-m", "flask", "run"},
			URL:          "http://127.0.0.1:5000/",
		},
		Server: ServerConfig{
			Addr:        "127.0.0.1:5000",
			Secret:      "dev",
			MaxUploadMB: 100,
			CacheSize:   50000,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName)
}

// Load reads path on top of the defaults. A missing file is not an error;
// an empty path selects DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	cfg.Launch.ProjectDir = ExpandVariables(cfg.Launch.ProjectDir)
	cfg.Launch.VenvDir = ExpandVariables(cfg.Launch.VenvDir)
	cfg.Launch.Requirements = ExpandVariables(cfg.Launch.Requirements)
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("SPEEDREAD_ADDR"); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := lookup("SPEEDREAD_SECRET"); ok && v != "" {
		cfg.Server.Secret = v
	}
	if v, ok := lookup("SPEEDREAD_PYTHON"); ok && v != "" {
		cfg.Launch.Python = v
	}
	if v, ok := lookup("SPEEDREAD_PROJECT_DIR"); ok && v != "" {
		cfg.Launch.ProjectDir = v
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		cfg.Log.NoColor = true
	}
	if v, ok := lookup("SPEEDREAD_DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SPEEDREAD_DEBUG: %w", err)
		}
		cfg.Log.Debug = b
	}
	return nil
}

// ExpandVariables expands environment variables in path values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> current username
// Any other variable is read from the environment.
func ExpandVariables(val string) string {
	if !strings.Contains(val, "$") {
		return val
	}
	return os.Expand(val, func(name string) string {
		switch name {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME")
			}
			return u.Username
		}
		return os.Getenv(name)
	})
}
