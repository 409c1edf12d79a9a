package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/shamir/command"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/internal/conv"
	"github.com/viant/shamir/mcp"
	"github.com/viant/shamir/tree"
)

// ListToolsOptions select the tools to list.
type ListToolsOptions struct {
	Tools []string `short:"t" long:"tools" description:"list only commands matching the pattern (repeatable)"`
}

// newListTools prints every tool `serve` would expose, as advertised by an
// in-process MCP server.
func newListTools(cfg *config.Config) tree.Command {
	return command.New("tools", "List the MCP tools that serve exposes", func(ctx context.Context, env *tree.Env, options *ListToolsOptions) int {
		svc, err := newToolService(cfg, env, options.Tools)
		if err != nil {
			return command.Fail(env, err)
		}
		cli, err := svc.Client(ctx, nil)
		if err != nil {
			return command.Fail(env, err)
		}
		tools, err := mcp.ListTools(ctx, cli)
		if err != nil {
			return command.Fail(env, err)
		}
		// Sorting for deterministic output.
		sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
		for _, t := range tools {
			fmt.Fprintf(env.Stdout, "%s\t%s\n", t.Name, conv.Dereference(t.Description))
		}
		return tree.ExitOK
	})
}
