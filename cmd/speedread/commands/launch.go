package commands

import (
	"github.com/spf13/cobra"

	"speedread/internal/domain"
)

func launchCmd() *cobra.Command {
	var (
		native     bool
		projectDir string
		variant    string
	)
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Create the venv, install requirements, open the browser and run the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectDir != "" {
				appCtx.Settings.Launch.ProjectDir = projectDir
			}
			if variant != "" {
				appCtx.Settings.Launch.Variant = variant
			}
			plan, err := appCtx.Plan(native)
			if err != nil {
				return err
			}
			// Step failures are joined into err, which cobra prints once.
			_, err = appCtx.Launcher(native).Launch(cmd.Context(), plan)
			return err
		},
	}
	cmd.Flags().BoolVar(&native, "native", false, "run the built-in Go server instead of the Python app")
	cmd.Flags().StringVar(&projectDir, "project-dir", "", "directory holding requirements.txt and app.py")
	cmd.Flags().StringVar(&variant, "variant", "", "launcher behaviour: "+domain.VariantPOSIX.String()+" or "+domain.VariantWindows.String())
	return cmd
}
