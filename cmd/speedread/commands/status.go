package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"speedread/internal/crypto"
	"speedread/internal/domain"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last recorded launch for this project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := appCtx.Plan(false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rec, err := appCtx.LaunchStore(plan).LoadLaunch()
			if errors.Is(err, domain.ErrNoRecord) {
				fmt.Fprintf(out, "No launch recorded for %s\n", plan.VenvDir)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Project:      %s\n", rec.ProjectDir)
			fmt.Fprintf(out, "Environment:  %s\n", rec.VenvDir)
			fmt.Fprintf(out, "Variant:      %s\n", rec.Variant)
			fmt.Fprintf(out, "Entry:        %s\n", rec.EntryModule)
			fmt.Fprintf(out, "Requirements: %s\n", crypto.Fingerprint(rec.RequirementsSHA))
			fmt.Fprintf(out, "Prepared:     %s\n", rec.PreparedAt.Local().Format(time.RFC1123))
			return nil
		},
	}
}
