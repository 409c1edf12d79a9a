package cmd

import (
	"os"
	"strings"

	"github.com/viant/shamir/config"
)

// Options are global options accepted ahead of the first command token.
// Struct tags are interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config  string `short:"f" long:"config" description:"configuration YAML path or URL (defaults to $SHAMIR_CONFIG)"`
	Verbose []bool `short:"v" long:"verbose" description:"increase log verbosity (-v info, -vv debug)"`
}

// ConfigLocation returns the configured location, falling back to the
// SHAMIR_CONFIG environment variable.
func (o *Options) ConfigLocation() string {
	if o.Config != "" {
		return o.Config
	}
	return strings.TrimSpace(os.Getenv(config.EnvConfig))
}
