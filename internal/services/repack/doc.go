// Package repack writes a working tree back into a fresh archive.
//
// The original archive is preserved under a "-orig" backup name before the
// new one is written; an occupied backup path aborts before anything is
// renamed. Entries are written in deterministic lexicographic order so the
// output is a pure function of the working-tree contents.
package repack
