package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	mcpclient "github.com/viant/mcp/client"
)

// NewHandler returns a server handler exposing the shared tool registry.
// Tools are registered once at construction, every connection reuses them.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.Registry.ToolRegistry.Put(tool.Metadata.Name, tool)
	}
	return impl, nil
}

// Client returns a client connected to an in-process MCP server backed by
// the service tools.
func (s *Service) Client(ctx context.Context, options *mcp.ServerOptions) (mcpclient.Interface, error) {
	srv, err := mcp.NewServer(s.NewHandler, options)
	if err != nil {
		return nil, err
	}
	return srv.AsClient(ctx), nil
}

// ListTools pages through the tools advertised by an MCP client.
func ListTools(ctx context.Context, cli mcpclient.Interface) ([]mcpschema.Tool, error) {
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return nil, err
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}
	return tools, nil
}
