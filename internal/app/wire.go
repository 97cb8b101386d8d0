package app

import (
	"log/slog"

	"cbzkit/internal/domain"
	"cbzkit/internal/services/extract"
	"cbzkit/internal/services/normalize"
	"cbzkit/internal/services/rename"
	"cbzkit/internal/services/repack"
	"cbzkit/internal/services/sanitize"
	"cbzkit/internal/services/scan"
)

// App bundles the services the CLI commands run against.
type App struct {
	Sanitizer domain.Orchestrator
	Scanner   domain.Scanner
	Renamer   domain.Renamer
}

// New constructs the dependency graph. All services share one logger.
func New(log *slog.Logger) *App {
	extractor := extract.New(log)
	normalizer := normalize.New(log)
	repackager := repack.New(log)

	return &App{
		Sanitizer: sanitize.New(extractor, normalizer, repackager, log),
		Scanner:   scan.New(log),
		Renamer:   rename.New(log),
	}
}
