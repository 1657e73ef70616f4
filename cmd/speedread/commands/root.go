package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"speedread/internal/app"
	"speedread/internal/config"
	"speedread/internal/logger"
)

var (
	configPath string
	debug      bool
	jsonLog    bool
	noColor    bool

	settings config.Config
	appCtx   *app.Wire
)

// Execute runs the CLI and returns the first error, unwrapped enough for the
// caller to recover a child process's exit code.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "speedread",
		Short:         "Speed-reading EPUB converter and launcher",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				settings.Log.Debug = debug
			}
			if cmd.Flags().Changed("json-log") {
				settings.Log.JSON = jsonLog
			}
			if cmd.Flags().Changed("no-color") {
				settings.Log.NoColor = noColor
			}

			log := logger.New(logger.Options{
				Debug:   settings.Log.Debug,
				JSON:    settings.Log.JSON,
				NoColor: settings.Log.NoColor,
				Out:     cmd.ErrOrStderr(),
			})
			appCtx, err = app.NewWire(app.Config{Settings: settings, Log: log})
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/speedread/config.toml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "log JSON lines even on a terminal")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colour in console logs")

	root.AddCommand(launchCmd(), serveCmd(), convertCmd(), statusCmd(), configCmd(), versionCmd())
	return root
}
