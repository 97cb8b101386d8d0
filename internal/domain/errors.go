package domain

import "errors"

// Sentinel errors for the per-archive and per-entry failure modes. All of
// them are contained at the orchestrator or walk boundary; none may abort a
// batch. Match with errors.Is.
var (
	// ErrCorruptArchive means the container could not be opened or parsed.
	// The archive is skipped and the batch continues.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrPathTraversal means an entry name would resolve outside the
	// extraction root. The entry is skipped and the archive continues.
	ErrPathTraversal = errors.New("entry path escapes extraction root")

	// ErrUnreadableInput means the input path is missing or not a regular
	// file. The archive is skipped and the batch continues.
	ErrUnreadableInput = errors.New("input is not a readable regular file")

	// ErrUndecodableImage means a working-tree file is not a decodable
	// raster image. The file is left untouched.
	ErrUndecodableImage = errors.New("not a decodable image")

	// ErrBackupExists means the derived backup path is already occupied.
	// Repackaging aborts before the original is renamed.
	ErrBackupExists = errors.New("backup destination already exists")
)
