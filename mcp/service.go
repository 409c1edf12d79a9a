package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/viant/shamir/internal/syncmap"
	"github.com/viant/shamir/mcp/matcher"
	"github.com/viant/shamir/mcp/tool"
	"github.com/viant/shamir/tree"

	serverproto "github.com/viant/mcp-protocol/server"
)

// Builder creates a fresh command tree. It is called once to discover tools
// and again for every tool call.
type Builder func() (*tree.Group, error)

// Service holds the tool registry derived from a command tree.
type Service struct {
	build   Builder
	include []string
	exclude []string
	logger  logrus.FieldLogger

	tools *syncmap.Map[*serverproto.ToolEntry]
	paths *syncmap.Map[[]string]
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithInclude limits exposed commands to those matching any of the patterns
// (see matcher.Match). Defaults to "*".
func WithInclude(patterns ...string) Option {
	return func(s *Service) {
		s.include = patterns
	}
}

// WithExclude hides commands matching any of the patterns.
func WithExclude(patterns ...string) Option {
	return func(s *Service) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// WithLogger sets the logger handed to commands run by tool calls.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New walks the tree produced by build and registers a tool for every
// selected leaf command.
func New(build Builder, opts ...Option) (*Service, error) {
	if build == nil {
		return nil, fmt.Errorf("tree builder was nil")
	}
	s := &Service{
		build:   build,
		include: []string{"*"},
		logger:  logrus.StandardLogger(),
		tools:   syncmap.New[*serverproto.ToolEntry](),
		paths:   syncmap.New[[]string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	root, err := s.build()
	if err != nil {
		return fmt.Errorf("failed to build command tree: %w", err)
	}
	return tree.Walk(root, func(path []string, cmd tree.Command) error {
		key := strings.Join(path, "/")
		if !matcher.Any(s.include, key) || matcher.Any(s.exclude, key) {
			return nil
		}
		name := tool.NewName(path)
		if _, ok := s.tools.Lookup(name.String()); ok {
			return fmt.Errorf("duplicate tool name %v for command %v", name, key)
		}
		s.tools.Set(name.String(), s.toolEntry(name, cmd))
		s.paths.Set(name.String(), append([]string{}, path...))
		return nil
	})
}

// ToolNames returns the names of all registered tools in ascending order.
func (s *Service) ToolNames() []string {
	return s.tools.Keys()
}

// Tools returns all registered tool entries ordered by name.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.tools.List() {
		result = append(result, entry)
	}
	return result
}

// LookupTool returns the entry for a tool name; cdn/ls and "cdn ls" are
// accepted as well.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	entry, ok := s.tools.Lookup(tool.Canonical(name).String())
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return entry, nil
}

// ExecuteTool runs the command behind a tool with the supplied input.
func (s *Service) ExecuteTool(ctx context.Context, name string, input *Input) (*Output, error) {
	toolName := tool.Canonical(name).String()
	path, ok := s.paths.Lookup(toolName)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	root, err := s.build()
	if err != nil {
		return nil, fmt.Errorf("failed to build command tree: %w", err)
	}
	if input == nil {
		input = &Input{}
	}
	output := &Output{}
	env := &tree.Env{
		Stdin:  strings.NewReader(input.Stdin),
		Stdout: &output.stdout,
		Stderr: &output.stderr,
		Logger: s.logger.WithField("tool", toolName),
	}
	args := append(append([]string{}, path...), input.Args...)
	output.ExitCode = tree.Dispatch(ctx, root, args, env)
	return output, nil
}
