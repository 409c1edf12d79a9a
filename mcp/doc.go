// Package mcp exposes the leaf commands of a command tree as MCP tools.
//
// Every leaf reachable from the root becomes a tool named after its command
// path (cdn-ls, vk-lookup) that accepts the residual command-line arguments.
// A call dispatches the arguments on a freshly built tree with captured
// streams, so each invocation initialises its command exactly once.
package mcp
