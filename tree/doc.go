// Package tree implements the command tree of the shamir multitool: nested
// command groups, the resolver that walks an argument vector down the tree to
// a leaf command and the formatter that renders contextual help whenever the
// walk stops at a group.  Resolution is pure and never performs I/O; the only
// side effect lives in Help.Execute which writes to the diagnostic stream.
package tree
