// Package util provides the low-level helpers used to assemble iconjar packages.
//
// The helpers here have small, stated contracts and no knowledge of the
// group/set/icon tree. The iconjar package composes them into the
// compilation and packaging pipeline.
//
// Key Components:
//
// Identifiers:
//   - NewIdentifier returns a 36 character uppercase token (8-4-4-4-12)
//   - IsIdentifier checks a string against that shape
//
// Dates:
//   - FormatDate renders the "Y-M-D H:MM:SS" form used in package metadata
//
// Filenames:
//   - CleanString reduces a name to lowercase letters, digits, '@', '.' and '-'
//   - UniqueFilename probes a directory for a free "stem.N.ext" variant
//
// Files and Compression:
//   - CopyFile copies bytes between paths of a go-billy filesystem
//   - Compress and Decompress wrap gzip at the fastest level
//
// Directory Analysis:
//   - ScanDirectory returns the pruned tree of matching files under a root
//
// Nothing in this package is safe for concurrent use against the same
// destination directory; the filesystem is the only shared state.
package util
