package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"speedread/internal/domain"
	"speedread/internal/epub"
)

func convertCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "convert <in.epub> [out.epub]",
		Short: "Convert a local EPUB for speed reading",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out := filepath.Join(filepath.Dir(in), epub.OutputName(filepath.Base(in)))
			if len(args) == 2 {
				out = args[1]
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			converted, err := appCtx.Converter.ConvertBytes(data, domain.ParseMode(mode))
			if err != nil {
				return fmt.Errorf("convert %s: %w", in, err)
			}
			if err := os.WriteFile(out, converted, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ModeSyllable), "emphasis mode: syllable or bionic")
	return cmd
}
