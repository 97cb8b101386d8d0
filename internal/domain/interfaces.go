package domain

// Extractor validates and extracts archive entries into destDir. Entry names
// must stay inside destDir; later entries repeating an earlier name are
// dropped. Returns ErrCorruptArchive if the container cannot be parsed.
type Extractor interface {
	Extract(archivePath, destDir string) error
}

// Normalizer walks root recursively and re-encodes every decodable image at
// the given quality, downsampling those exceeding bbox. A re-encoded file
// replaces the original only when strictly smaller in bytes.
type Normalizer interface {
	Normalize(root string, bbox BoundingBox, quality int) error
}

// Repackager writes the working tree at root into a fresh archive at
// archivePath, first moving the existing file there to a "-orig" backup.
// Returns ErrBackupExists if the backup path is occupied.
type Repackager interface {
	Repack(root, archivePath string) error
}

// Orchestrator runs the extract/normalize/repack pipeline per archive inside
// a scoped working directory, containing all failures per archive.
type Orchestrator interface {
	Process(archivePath string, opts Options) Outcome
	ProcessAll(paths []string, opts Options) []Outcome
}

// Scanner inspects an archive read-only and reports entries larger than
// limitBytes plus duplicate names and duplicate content.
type Scanner interface {
	Scan(archivePath string, limitBytes int64) (ScanReport, error)
}

// Renamer strips the numeric suffix from a single archive filename,
// refusing to overwrite an existing destination.
type Renamer interface {
	Rename(path string) error
}
