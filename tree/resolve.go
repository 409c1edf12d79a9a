package tree

import "context"

// Resolution is the outcome of walking an argument vector down the tree:
// either a leaf command with its residual arguments or a *Help scoped to the
// last group reached.
type Resolution struct {
	Command Command
	Args    []string
	Path    *Path
	// Unmatched holds the token that matched no child.  It is never rendered
	// in help text; callers may log it.
	Unmatched string
}

// IsHelp reports whether resolution ended in synthesized help.
func (r *Resolution) IsHelp() bool {
	_, ok := r.Command.(*Help)
	return ok
}

// Run initialises the resolved command with the residual arguments and
// executes it, returning its exit code verbatim.
func (r *Resolution) Run(ctx context.Context, env *Env) int {
	r.Command.Init(r.Args)
	return r.Command.Execute(ctx, env)
}

// Resolve consumes one token per level: commands are checked before
// subgroups, both in declaration order, using exact case-sensitive match.
// Resolve does not initialise the matched command, so resolving the same
// vector twice yields the same result.
func Resolve(root *Group, args []string) *Resolution {
	return resolve(root, nil, args)
}

func resolve(group *Group, path *Path, args []string) *Resolution {
	path = path.Push(group)
	if len(args) == 0 {
		return &Resolution{Command: NewHelp(path), Path: path}
	}
	token, rest := args[0], args[1:]
	for _, cmd := range group.commands {
		if cmd.Name() == token {
			return &Resolution{Command: cmd, Args: append([]string{}, rest...), Path: path}
		}
	}
	for _, sub := range group.subgroups {
		if sub.Name() == token {
			return resolve(sub, path, rest)
		}
	}
	return &Resolution{Command: NewHelp(path), Path: path, Unmatched: token}
}

// Dispatch resolves args against root and runs the result.
func Dispatch(ctx context.Context, root *Group, args []string, env *Env) int {
	return Resolve(root, args).Run(ctx, env)
}
