package mcp

import (
	"context"
	"strings"

	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
	"github.com/viant/shamir/internal/conv"
	"github.com/viant/shamir/mcp/tool"
	"github.com/viant/shamir/tree"
)

// Input represents tool call arguments.
type Input struct {
	Args  []string `json:"args,omitempty" description:"command line arguments, options included, following the command name"`
	Stdin string   `json:"stdin,omitempty" description:"data made available on standard input"`
}

// Output captures the outcome of a tool call.
type Output struct {
	ExitCode int
	stdout   strings.Builder
	stderr   strings.Builder
}

// Stdout returns text written to standard output
func (o *Output) Stdout() string { return o.stdout.String() }

// Stderr returns text written to standard error
func (o *Output) Stderr() string { return o.stderr.String() }

// Text returns the tool result text: stdout on success, otherwise stderr
// falling back to stdout.
func (o *Output) Text() string {
	if o.ExitCode == tree.ExitOK {
		return o.Stdout()
	}
	if text := o.Stderr(); text != "" {
		return text
	}
	return o.Stdout()
}

func (s *Service) toolEntry(name tool.Name, cmd tree.Command) *serverproto.ToolEntry {
	var inputSchema mcpschema.ToolInputSchema
	_ = inputSchema.Load(&Input{})
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	description := cmd.Description()
	return &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        name.String(),
			Description: &description,
			InputSchema: inputSchema,
		},
		Handler: s.handler(name),
	}
}

func (s *Service) handler(name tool.Name) func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		input := &Input{}
		if err := conv.Convert(request.Params.Arguments, input); err != nil {
			return nil, jsonrpc.NewError(jsonrpc.InvalidParams, err.Error(), nil)
		}
		output, err := s.ExecuteTool(ctx, name.String(), input)
		if err != nil {
			return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
		}
		res := &mcpschema.CallToolResult{}
		if output.ExitCode != tree.ExitOK {
			res.IsError = conv.Pointer[bool](true)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: output.Text(),
		})
		return res, nil
	}
}
