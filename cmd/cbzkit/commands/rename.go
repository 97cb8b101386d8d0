package commands

import (
	"github.com/spf13/cobra"
)

// rename <files...>: strip numeric suffixes, e.g. foobar_1234.cbz -> foobar.cbz.
func renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file>...",
		Short: "Strip the numeric suffix from CBZ filenames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				logger.Debug("handling file", "path", path)
				if err := appCtx.Renamer.Rename(path); err != nil {
					// Contained per file: a refused rename is a diagnostic,
					// not a process failure.
					logger.Error("rename refused", "path", path, "error", err)
				}
			}
			return nil
		},
	}
}
