// Package cmd provides the command-line interface implementation for iconjar.
//
// This package contains all the subcommand implementations for the iconjar CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - build: Manifest to package conversion
//   - convert: Icon directory tree to package conversion
//   - validate: Package validation and consistency checking
//   - inspect: Package summaries
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. Shared settings are resolved by viper from flags,
// ICONJAR_* environment variables and an optional config file.
package cmd
