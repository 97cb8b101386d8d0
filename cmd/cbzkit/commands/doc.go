// Package commands defines the cbzkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sanitize   Remove duplicates, resize oversized images, repack
//   - scan       Report oversized and duplicate entries, read-only
//   - rename     Strip numeric suffixes from CBZ filenames
//
// # Implementation
//
// The root command builds the logger and the service graph before any
// subcommand runs. Per-archive failures are diagnostics, never exit codes;
// only flag and argument errors fail the process.
package commands
