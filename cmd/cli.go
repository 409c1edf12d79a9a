package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/viant/shamir/config"
	"github.com/viant/shamir/tree"
)

// Run is the entry point for the CLI.  It returns the process exit code.
func Run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return RunWithEnv(ctx, args, tree.NewEnv())
}

// RunWithEnv parses global options, loads configuration and dispatches the
// remaining arguments on the command tree using the supplied streams.
func RunWithEnv(ctx context.Context, args []string, env *tree.Env) int {
	options := &Options{}
	parser := flags.NewParser(options, flags.PassDoubleDash|flags.PassAfterNonOption|flags.IgnoreUnknown)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return tree.ExitFailure
	}

	cfg, err := loadConfig(ctx, options.ConfigLocation())
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return tree.ExitFailure
	}

	runEnv := *env
	logger := newLogger(cfg.Log, len(options.Verbose), env.Stderr)
	runEnv.Logger = logger

	root, err := NewRoot(cfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return tree.ExitFailure
	}
	resolution := tree.Resolve(root, rest)
	if resolution.Unmatched != "" {
		logger.WithFields(logrus.Fields{
			"token": resolution.Unmatched,
			"group": strings.Join(resolution.Path.Names(), " "),
		}).Debug("no command or group matched")
	}
	return resolution.Run(ctx, &runEnv)
}

func loadConfig(ctx context.Context, location string) (*config.Config, error) {
	cfg := &config.Config{}
	if location != "" {
		var err error
		if cfg, err = config.Load(ctx, location); err != nil {
			return nil, err
		}
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
