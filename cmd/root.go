package cmd

import (
	"sort"

	"github.com/viant/shamir/cdn"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/radio"
	"github.com/viant/shamir/steam"
	"github.com/viant/shamir/tree"
)

const (
	rootName        = "shamir"
	rootDescription = "command-line multitool"
)

// NewRoot builds the complete command tree; subgroups are listed by name.
func NewRoot(cfg *config.Config) (*tree.Group, error) {
	subgroups := []*tree.Group{
		cdn.NewGroup(cfg.CDN),
		NewMCPGroup(cfg),
		steam.NewGroup(),
		radio.NewGroup(cfg.Radio),
	}
	sort.Slice(subgroups, func(i, j int) bool { return subgroups[i].Name() < subgroups[j].Name() })
	return tree.NewGroup(rootName, rootDescription, subgroups, nil)
}
