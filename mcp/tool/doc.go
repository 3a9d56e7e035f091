// Package tool names MCP tools derived from Fluxor actions. A tool name joins
// the service path (with "/" replaced by "_") and the method with "-".
package tool
