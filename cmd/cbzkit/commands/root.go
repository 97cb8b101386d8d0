package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cbzkit/internal/app"
)

var (
	verbose bool
	logger  *slog.Logger
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cbzkit",
		Short: "Sanitize, scan and rename comic book archives",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			appCtx = app.New(logger)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show more output")

	root.AddCommand(sanitizeCmd(), scanCmd(), renameCmd())
	return root.Execute()
}
