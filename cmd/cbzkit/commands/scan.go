package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cbzkit/internal/fsutil"
)

// scan <files...>: report oversized and duplicate entries, mutating nothing.
func scanCmd() *cobra.Command {
	var sizeMB float64
	cmd := &cobra.Command{
		Use:   "scan <file>...",
		Short: "Report oversized and duplicate entries in CBZ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := int64(sizeMB * 1e6)
			for _, path := range args {
				if !fsutil.IsRegularFile(path) {
					logger.Debug("skipping inaccessible file", "path", path)
					continue
				}
				logger.Debug("checking file", "path", path)
				report, err := appCtx.Scanner.Scan(path, limit)
				if err != nil {
					logger.Warn("not a valid zip file", "path", path)
					continue
				}
				if len(report.LargeEntries) > 0 {
					sizes := make([]string, len(report.LargeEntries))
					for i, e := range report.LargeEntries {
						sizes[i] = fmt.Sprintf("%.1f", float64(e.Size)/1e6)
					}
					logger.Info("large entries", "path", path, "sizes_mb", sizes)
				}
				if len(report.DuplicateNames) > 0 {
					logger.Info("duplicate entries", "path", path, "names", report.DuplicateNames)
				}
				for _, names := range report.SameContent {
					logger.Info("identical content under different names", "path", path, "names", names)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&sizeMB, "size", "z", 1.5, "size limit [MB] for candidates (candidates must be larger)")
	return cmd
}
