// Package conversion turns Fluxor action signatures into MCP tool schemas and
// describes their Go types for the Fluxor type registry.
package conversion
