// Package extract materializes archive entries into a working directory.
//
// Archives are untrusted input: entry names that would resolve outside the
// destination root are refused, symlink entries are refused, and later
// entries repeating an earlier name are dropped (first writer wins, since
// enumeration order carries the page ordering).
package extract
