// Package sanitize sequences extraction, normalization and repackaging per
// archive inside a scoped working directory.
//
// Each archive runs to a terminal state (done, skipped or failed) without
// affecting the rest of the batch; the working directory is removed on
// every exit path.
package sanitize
