// Package scan reports oversized and duplicate archive entries.
//
// Scanning is strictly read-only: archives are opened, never mutated. On
// top of the size and repeated-name checks it digests entry contents so
// that identical pages hiding under different names are reported too.
package scan
