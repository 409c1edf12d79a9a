package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/viant/shamir/tree"
)

// RunFunc executes a command with parsed options.
type RunFunc[T any] func(ctx context.Context, env *tree.Env, options *T) int

// Command is a tree.Command whose arguments are parsed into T.
type Command[T any] struct {
	tree.Args
	name        string
	description string
	run         RunFunc[T]
}

// New creates a typed command.  T must be a struct using go-flags tags.
func New[T any](name, description string, run RunFunc[T]) *Command[T] {
	return &Command[T]{name: name, description: description, run: run}
}

func (c *Command[T]) Name() string        { return c.name }
func (c *Command[T]) Description() string { return c.description }

// Execute parses the residual arguments and runs the command.
func (c *Command[T]) Execute(ctx context.Context, env *tree.Env) int {
	options, parser, err := c.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(env.Stderr, flagsErr.Message)
			return tree.ExitHelp
		}
		fmt.Fprintf(env.Stderr, "%v\n\n", err)
		if parser != nil {
			parser.WriteHelp(env.Stderr)
		}
		return tree.ExitFailure
	}
	return c.run(ctx, env, options)
}

// Parse decodes the residual arguments into a new options value.
func (c *Command[T]) Parse() (*T, *flags.Parser, error) {
	options := new(T)
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = c.name
	parser.ShortDescription = c.description
	parser.LongDescription = c.description
	rest, err := parser.ParseArgs(c.Values())
	if err != nil {
		return nil, parser, err
	}
	if len(rest) > 0 {
		return nil, parser, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return options, parser, nil
}

// Fail reports err on the diagnostic stream and returns tree.ExitFailure.
func Fail(env *tree.Env, err error) int {
	if env.Logger != nil {
		env.Logger.WithError(err).Debug("command failed")
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return tree.ExitFailure
}
