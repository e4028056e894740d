// Package importer turns a directory of icon files into an iconjar.Package.
//
// Directories that contain subdirectories become groups and the files
// directly inside a directory become a set named after it. Files at the top
// of the tree go into a set named after the package. Files are kept when
// their extension names a known icon type, they pass the include and exclude
// globs, and their content agrees with the extension.
package importer
