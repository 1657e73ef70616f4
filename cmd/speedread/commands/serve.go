package commands

import (
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		open bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the EPUB converter web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = appCtx.Settings.Server.Addr
			}
			if open {
				if err := appCtx.Browser.Open("http://" + addr + "/"); err != nil {
					cmd.PrintErrf("could not open browser: %v\n", err)
				}
			}
			return appCtx.Server.Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:5000)")
	cmd.Flags().BoolVar(&open, "open", false, "open the form in the default browser")
	return cmd
}
