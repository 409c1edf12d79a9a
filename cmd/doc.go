// Package cmd assembles the shamir command tree and implements the
// command-line entry point: global options, configuration loading, logging
// setup and dispatch.  The mcp group that serves the tree over the Model
// Context Protocol lives here too, as it needs to rebuild the whole tree.
package cmd
