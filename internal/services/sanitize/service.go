package sanitize

import (
	"fmt"
	"log/slog"

	"cbzkit/internal/domain"
	"cbzkit/internal/fsutil"
)

// Service orchestrates the sanitize pipeline over batches of archives.
type Service struct {
	extractor  domain.Extractor
	normalizer domain.Normalizer
	repackager domain.Repackager
	log        *slog.Logger
}

// New composes the pipeline from its three stages.
func New(ex domain.Extractor, no domain.Normalizer, re domain.Repackager, log *slog.Logger) *Service {
	return &Service{extractor: ex, normalizer: no, repackager: re, log: log}
}

// Process runs one archive through extract, normalize and repack inside a
// working directory scoped to this call. All failures are contained in the
// returned Outcome; Process never panics the batch.
func (s *Service) Process(archivePath string, opts domain.Options) domain.Outcome {
	out := domain.Outcome{Path: archivePath, Status: domain.StatusPending}

	if !fsutil.IsRegularFile(archivePath) {
		s.log.Warn("cannot access file", "path", archivePath)
		out.Status = domain.StatusSkipped
		out.Err = fmt.Errorf("%w: %s", domain.ErrUnreadableInput, archivePath)
		return out
	}

	err := fsutil.WithWorkDir(opts.TempRoot, "cbzkit-*", func(dir string) error {
		s.advance(&out, domain.StatusExtracting, dir)
		if err := s.extractor.Extract(archivePath, dir); err != nil {
			return err
		}
		s.advance(&out, domain.StatusNormalizing, dir)
		if err := s.normalizer.Normalize(dir, opts.BBox, opts.Quality); err != nil {
			return err
		}
		s.advance(&out, domain.StatusRepackaging, dir)
		return s.repackager.Repack(dir, archivePath)
	})
	if err != nil {
		s.log.Error("sanitize failed", "path", archivePath, "state", out.Status.String(), "error", err)
		out.Status = domain.StatusFailed
		out.Err = err
		return out
	}

	out.Status = domain.StatusDone
	return out
}

// ProcessAll runs a whole batch, one archive at a time. A failed archive is
// reported in its outcome and the loop advances to the next input.
func (s *Service) ProcessAll(paths []string, opts domain.Options) []domain.Outcome {
	outcomes := make([]domain.Outcome, 0, len(paths))
	for _, p := range paths {
		s.log.Info("sanitizing file", "path", p)
		outcomes = append(outcomes, s.Process(p, opts))
	}
	return outcomes
}

func (s *Service) advance(out *domain.Outcome, next domain.Status, workDir string) {
	out.Status = next
	s.log.Debug("pipeline stage", "path", out.Path, "state", next.String(), "workdir", workDir)
}

// Compile-time assertion that Service implements domain.Orchestrator.
var _ domain.Orchestrator = (*Service)(nil)
