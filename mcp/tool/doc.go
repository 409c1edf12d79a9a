// Package tool maps command paths to MCP tool names and back.
package tool
