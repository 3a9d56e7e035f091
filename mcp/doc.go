// Package mcp publishes the portal module directory over the Model Context
// Protocol. Its central Service boots a Fluxor runtime hosting the portal
// actions, converts them into MCP tools and can expose them over an MCP
// server.
package mcp
