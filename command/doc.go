// Package command adapts strongly typed option structs to tree.Command.  The
// residual arguments handed over by the resolver are parsed with
// github.com/jessevdk/go-flags into a fresh options value right before
// execution; parse failures print usage to the diagnostic stream.
package command
