package domain

import "fmt"

// Options is the validated per-run configuration for the sanitize pipeline.
type Options struct {
	BBox     BoundingBox
	Quality  int    // re-encode quality (JPEG)
	TempRoot string // root directory for scoped working directories
}

// Status tracks an archive through the sanitize pipeline.
type Status int

const (
	StatusPending Status = iota
	StatusExtracting
	StatusNormalizing
	StatusRepackaging
	StatusDone
	StatusSkipped
	StatusFailed
)

// String returns the lowercase state name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusExtracting:
		return "extracting"
	case StatusNormalizing:
		return "normalizing"
	case StatusRepackaging:
		return "repackaging"
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusSkipped || s == StatusFailed
}

// Outcome is the per-archive result of a sanitize run.
type Outcome struct {
	Path   string
	Status Status
	Err    error // set when Status is StatusSkipped or StatusFailed
}

// EntrySize pairs an archive entry name with its uncompressed byte size.
type EntrySize struct {
	Name string
	Size int64
}

// ScanReport is the read-only findings for one archive: entries above the
// size threshold, names that repeat, and distinct names carrying identical
// content.
type ScanReport struct {
	Path           string
	LargeEntries   []EntrySize         // sorted by size, largest first
	DuplicateNames []string            // names occurring more than once
	SameContent    map[string][]string // hex digest -> names (>= 2 each)
}

// Empty reports whether the scan found nothing worth flagging.
func (r ScanReport) Empty() bool {
	return len(r.LargeEntries) == 0 && len(r.DuplicateNames) == 0 && len(r.SameContent) == 0
}
