package commands

import (
	"github.com/spf13/cobra"

	"cbzkit/internal/app"
)

// sanitize <files...>: run the full extract/resize/repack pipeline.
func sanitizeCmd() *cobra.Command {
	var (
		resize   string
		quality  int
		tempRoot string
	)
	cmd := &cobra.Command{
		Use:   "sanitize <file>...",
		Short: "Remove duplicates and resize oversized images in CBZ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.Config{Resize: resize, Quality: quality, TempRoot: tempRoot}.Options()
			if err != nil {
				return err
			}
			// Per-archive outcomes are reported as diagnostics only; a bad
			// archive must not fail the batch or the process.
			appCtx.Sanitizer.ProcessAll(args, opts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&resize, "resize", "r", "1440x", "resize images keeping aspect ratio (WIDTHxHEIGHT, either side optional)")
	cmd.Flags().IntVarP(&quality, "quality", "q", 75, "quality parameter for the image compression algorithm")
	cmd.Flags().StringVarP(&tempRoot, "tmp", "t", "/tmp", "root path for temporary directories")
	return cmd
}
