package mcp

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/shamir/command"
	"github.com/viant/shamir/internal/conv"
	"github.com/viant/shamir/steam"
	"github.com/viant/shamir/tree"
)

type echoOptions struct {
	Upper bool `short:"u" long:"upper" description:"upper case"`
}

func newTestTree() (*tree.Group, error) {
	echo := command.New("echo", "Echo standard input", func(_ context.Context, env *tree.Env, options *echoOptions) int {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return command.Fail(env, err)
		}
		text := string(data)
		if options.Upper {
			text = "UPPER:" + text
		}
		_, _ = io.WriteString(env.Stdout, text)
		return tree.ExitOK
	})
	util, err := tree.NewGroup("util", "Utilities", nil, []tree.Command{echo})
	if err != nil {
		return nil, err
	}
	serve, err := tree.NewGroup("mcp", "MCP", nil, []tree.Command{
		command.New("serve", "Serve", func(context.Context, *tree.Env, *struct{}) int { return tree.ExitOK }),
	})
	if err != nil {
		return nil, err
	}
	return tree.NewGroup("shamir", "command-line multitool", []*tree.Group{serve, steam.NewGroup(), util}, nil)
}

func TestService_ToolNames(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		expect      []string
	}{
		{
			description: "all",
			expect:      []string{"mcp-serve", "steam-enum", "steam-gid", "util-echo"},
		},
		{
			description: "exclude group",
			options:     []Option{WithExclude("mcp/")},
			expect:      []string{"steam-enum", "steam-gid", "util-echo"},
		},
		{
			description: "include glob",
			options:     []Option{WithInclude("steam/*", "util")},
			expect:      []string{"steam-enum", "steam-gid", "util-echo"},
		},
		{
			description: "include exact, exclude",
			options:     []Option{WithInclude("steam"), WithExclude("steam/gid")},
			expect:      []string{"steam-enum"},
		},
	}
	for _, tc := range testCases {
		svc, err := New(newTestTree, tc.options...)
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.expect, svc.ToolNames(), tc.description)
		assert.Len(t, svc.Tools(), len(tc.expect), tc.description)
	}
}

func TestService_LookupTool(t *testing.T) {
	svc, err := New(newTestTree)
	require.NoError(t, err)

	entry, err := svc.LookupTool("steam/enum")
	require.NoError(t, err)
	assert.Equal(t, "steam-enum", entry.Metadata.Name)
	assert.Equal(t, "Find a Steam enum value", conv.Dereference(entry.Metadata.Description))
	assert.Equal(t, "object", entry.Metadata.InputSchema.Type)

	_, err = svc.LookupTool("steam-missing")
	assert.Error(t, err)
}

func TestService_ExecuteTool(t *testing.T) {
	svc, err := New(newTestTree)
	require.NoError(t, err)
	ctx := context.Background()

	var testCases = []struct {
		description string
		name        string
		input       *Input
		exitCode    int
		text        string
	}{
		{
			description: "stdout",
			name:        "steam-enum",
			input:       &Input{Args: []string{"EResult", "2"}},
			text:        "Fail = 2\n",
		},
		{
			description: "stdin",
			name:        "util-echo",
			input:       &Input{Args: []string{"-u"}, Stdin: "hi"},
			text:        "UPPER:hi",
		},
		{
			description: "failure carries stderr",
			name:        "steam-enum",
			input:       &Input{Args: []string{"EResult", "zzzz"}},
			exitCode:    1,
			text:        "No match found in EResult for 'zzzz'\n",
		},
		{
			description: "nil input",
			name:        "util-echo",
			text:        "",
		},
	}
	for _, tc := range testCases {
		output, err := svc.ExecuteTool(ctx, tc.name, tc.input)
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.exitCode, output.ExitCode, tc.description)
		assert.Equal(t, tc.text, output.Text(), tc.description)
	}

	// every call gets a fresh tree, so repeated calls never re-initialise a command
	for i := 0; i < 2; i++ {
		output, err := svc.ExecuteTool(ctx, "util-echo", &Input{Stdin: "again"})
		require.NoError(t, err)
		assert.Equal(t, "again", output.Stdout())
	}

	_, err = svc.ExecuteTool(ctx, "util-missing", nil)
	assert.Error(t, err)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(func() (*tree.Group, error) { return nil, assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)

	duplicate := func() (*tree.Group, error) {
		noop := func(context.Context, *tree.Env, *struct{}) int { return tree.ExitOK }
		ab, _ := tree.NewGroup("a-b", "first", nil, []tree.Command{command.New("c", "c", noop)})
		a, _ := tree.NewGroup("a", "second", nil, []tree.Command{command.New("b-c", "bc", noop)})
		return tree.NewGroup("root", "root", []*tree.Group{ab, a}, nil)
	}
	_, err = New(duplicate)
	assert.Error(t, err)
}

func TestService_Client(t *testing.T) {
	ctx := context.Background()
	svc, err := New(newTestTree, WithExclude("mcp/"))
	require.NoError(t, err)

	cli, err := svc.Client(ctx, nil)
	require.NoError(t, err)

	tools, err := ListTools(ctx, cli)
	require.NoError(t, err)
	var names []string
	for _, aTool := range tools {
		names = append(names, aTool.Name)
	}
	assert.ElementsMatch(t, []string{"steam-enum", "steam-gid", "util-echo"}, names)

	res, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      "steam-enum",
		Arguments: mcpschema.CallToolRequestParamsArguments(map[string]interface{}{"args": []string{"EResult", "OK"}}),
	})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "OK = 1\n", res.Content[0].Text)
	assert.False(t, conv.Dereference(res.IsError))

	res, err = cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
		Name:      "steam-enum",
		Arguments: mcpschema.CallToolRequestParamsArguments(map[string]interface{}{"args": []string{"Nope", "1"}}),
	})
	require.NoError(t, err)
	assert.True(t, conv.Dereference(res.IsError))
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].Text, "No such enum could be found. Valid names:")
}
