// Package conv provides small helpers to coerce loosely typed values, such as
// MCP tool arguments, into Go types and to work with optional pointers.
package conv
