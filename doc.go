// Package main provides the iconjar command-line interface.
//
// iconjar builds icon collection packages in the .iconjar format: a directory
// with a gzip-compressed JSON metadata file and a copy of every icon file.
//
// The main binary supports multiple subcommands:
//   - build: Build a package from a TOML, YAML or JSON manifest
//   - convert: Build a package from a directory of icon files
//   - validate: Check packages for missing files and broken references
//   - inspect: Show what a package contains
package main
