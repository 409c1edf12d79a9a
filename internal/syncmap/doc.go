// Package syncmap offers a small generic map guarded by a sync.RWMutex,
// used to hold the MCP tool entries derived from the command tree.
package syncmap
