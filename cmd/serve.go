package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	mcpserver "github.com/viant/mcp"
	"github.com/viant/shamir/command"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/mcp"
	"github.com/viant/shamir/tree"
)

// ServeOptions configure the MCP server.
type ServeOptions struct {
	Address string   `short:"a" long:"address" description:"listen address (defaults to serve.address, :5000)"`
	Tools   []string `short:"t" long:"tools" description:"expose only commands matching the pattern, e.g. cdn/ or steam/enum (repeatable)"`
}

// NewMCPGroup assembles the mcp command group.
func NewMCPGroup(cfg *config.Config) *tree.Group {
	return tree.MustGroup("mcp", "Expose the multitool commands as MCP tools", nil, []tree.Command{
		newServe(cfg),
		newListTools(cfg),
	})
}

// newToolService exposes every leaf outside the mcp group itself.
func newToolService(cfg *config.Config, env *tree.Env, patterns []string) (*mcp.Service, error) {
	if len(patterns) == 0 && cfg.Serve != nil {
		patterns = cfg.Serve.Tools
	}
	opts := []mcp.Option{mcp.WithExclude("mcp/"), mcp.WithLogger(env.Logger)}
	if len(patterns) > 0 {
		opts = append(opts, mcp.WithInclude(patterns...))
	}
	return mcp.New(func() (*tree.Group, error) { return NewRoot(cfg) }, opts...)
}

func newServe(cfg *config.Config) tree.Command {
	return command.New("serve", "Serve the multitool commands as MCP tools over HTTP", func(ctx context.Context, env *tree.Env, options *ServeOptions) int {
		svc, err := newToolService(cfg, env, options.Tools)
		if err != nil {
			return command.Fail(env, err)
		}
		address := options.Address
		if address == "" && cfg.Serve != nil {
			address = cfg.Serve.Address
		}

		mcpServer, err := mcpserver.NewServer(svc.NewHandler, cfg.Server)
		if err != nil {
			return command.Fail(env, err)
		}
		httpSrv := mcpServer.HTTP(ctx, address)
		errs := make(chan error, 1)
		go func() {
			errs <- httpSrv.ListenAndServe()
		}()
		env.Logger.WithField("tools", len(svc.ToolNames())).Infof("serving MCP tools on %s", httpSrv.Addr)
		fmt.Fprintf(env.Stderr, "MCP server listening on %s\n", httpSrv.Addr)

		select {
		case err = <-errs:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return command.Fail(env, fmt.Errorf("http server: %w", err))
			}
			return tree.ExitOK
		case <-ctx.Done():
		}
		fmt.Fprintln(env.Stderr, "shutting down")
		if err = httpSrv.Close(); err != nil {
			return command.Fail(env, err)
		}
		return tree.ExitOK
	})
}
