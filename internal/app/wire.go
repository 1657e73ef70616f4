package app

import (
	"context"

	"speedread/internal/browser"
	"speedread/internal/config"
	"speedread/internal/domain"
	"speedread/internal/epub"
	"speedread/internal/launcher"
	"speedread/internal/logger"
	"speedread/internal/store"
	"speedread/internal/textproc"
	"speedread/internal/web"
)

// Wire bundles all services and clients for the CLI.
type Wire struct {
	Settings  config.Config
	Converter *epub.Converter
	Server    *web.Server
	Runner    domain.CommandRunner
	Browser   domain.BrowserOpener

	cfg Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	split, err := textproc.NewSplitter(cfg.Settings.Server.CacheSize)
	if err != nil {
		return nil, err
	}
	conv := epub.NewConverter(epub.NewProcessor(split))

	flash, err := web.NewFlasher(cfg.Settings.Server.Secret)
	if err != nil {
		return nil, err
	}
	srv, err := web.New(web.Options{
		Converter:   conv,
		Flash:       flash,
		Log:         logger.Component(cfg.Log, "web"),
		MaxUploadMB: cfg.Settings.Server.MaxUploadMB,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Settings:  cfg.Settings,
		Converter: conv,
		Server:    srv,
		Runner:    launcher.NewExecRunner(logger.Component(cfg.Log, "exec")),
		Browser:   browser.New(),
		cfg:       cfg,
	}, nil
}

// Launcher returns the bootstrap launcher. In native mode the application is
// this process's web server; otherwise it is the configured Python command.
func (w *Wire) Launcher(native bool) *launcher.Launcher {
	var appRunner domain.AppRunner = launcher.PythonApp{Runner: w.Runner}
	if native {
		appRunner = launcher.AppFunc(func(ctx context.Context, _ domain.LaunchPlan, _ []string) error {
			return w.Server.Run(ctx, w.Settings.Server.Addr)
		})
	}
	return launcher.New(launcher.Deps{
		Runner:  w.Runner,
		Browser: w.Browser,
		App:     appRunner,
		Log:     logger.Component(w.cfg.Log, "launcher"),
		Store:   func(dir string) domain.LaunchStore { return store.NewLaunchFileStore(dir) },
	})
}

// Plan resolves the launch settings into a plan.
func (w *Wire) Plan(native bool) (domain.LaunchPlan, error) {
	return launcher.NewPlan(w.Settings.Launch, native)
}

// LaunchStore opens the launch record for plan's environment.
func (w *Wire) LaunchStore(plan domain.LaunchPlan) domain.LaunchStore {
	return store.NewLaunchFileStore(plan.VenvDir)
}
