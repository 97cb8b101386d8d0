// Package rename strips numeric download suffixes from CBZ filenames,
// turning "foobar_1234.cbz" into "foobar.cbz". It refuses to overwrite an
// existing destination.
package rename
