package radio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/viant/shamir/command"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/tree"
)

// LookupOptions are the options of vk lookup.
type LookupOptions struct {
	Args struct {
		Callsign string `positional-arg-name:"callsign" description:"Callsign to look up"`
	} `positional-args:"yes" required:"yes"`
}

// NewGroup assembles the vk command group.
func NewGroup(cfg *config.Radio) *tree.Group {
	return tree.MustGroup("vk", "Australian Amateur Radio commands", nil, []tree.Command{NewLookup(cfg)})
}

// NewLookup prints the details of a callsign.
func NewLookup(cfg *config.Radio) tree.Command {
	return command.New("lookup", "Look up an Australian Amateur Radio Callsign", func(ctx context.Context, env *tree.Env, options *LookupOptions) int {
		client := NewClient(cfg.URL, time.Duration(cfg.TimeoutSec)*time.Second)
		result, err := client.Lookup(ctx, options.Args.Callsign)
		if errors.Is(err, ErrNotFound) {
			fmt.Fprintf(env.Stderr, "%s: No such callsign found.\n", options.Args.Callsign)
			return tree.ExitFailure
		}
		if err != nil {
			return command.Fail(env, err)
		}
		for _, field := range []struct{ label, value string }{
			{"Callsign", result.Callsign},
			{"Name", result.Name},
			{"Suburb", result.Suburb},
			{"State", result.State},
			{"Link", result.Link},
		} {
			if field.value == "" {
				continue
			}
			fmt.Fprintf(env.Stdout, "%-8s : %s\n", field.label, field.value)
		}
		return tree.ExitOK
	})
}
