// Package cmd implements the designsuite command-line interface. Each file
// registers a single sub-command (serve, render, preview, check, list-tools,
// ...). Plumbing shared between commands, such as configuration loading or
// service initialisation, lives in shared.go.
package cmd
