package steam

import (
	"context"
	"fmt"

	"github.com/viant/shamir/command"
	"github.com/viant/shamir/tree"
)

// EnumOptions are the options of steam enum.
type EnumOptions struct {
	Args struct {
		Enum  string `positional-arg-name:"enum" description:"Name of the enum to search"`
		Value string `positional-arg-name:"value" description:"Query (substring or numeric value)"`
	} `positional-args:"yes" required:"yes"`
}

// GidOptions are the options of steam gid.
type GidOptions struct {
	Args struct {
		Gid uint64 `positional-arg-name:"gid" description:"Global ID to describe"`
	} `positional-args:"yes" required:"yes"`
}

// NewGroup assembles the steam command group.
func NewGroup() *tree.Group {
	return tree.MustGroup("steam", "Steam Network utilities", nil, []tree.Command{
		NewEnum(NewCatalog()),
		NewGid(),
	})
}

// NewEnum finds enum members by number, name or substring.
func NewEnum(catalog *Catalog) tree.Command {
	return command.New("enum", "Find a Steam enum value", func(_ context.Context, env *tree.Env, options *EnumOptions) int {
		enum := catalog.Find(options.Args.Enum)
		if enum == nil {
			fmt.Fprintln(env.Stderr, "No such enum could be found. Valid names:")
			for _, name := range catalog.Names() {
				fmt.Fprintf(env.Stderr, "  - %s\n", name)
			}
			return tree.ExitFailure
		}
		matches := enum.Match(options.Args.Value)
		switch len(matches) {
		case 0:
			fmt.Fprintf(env.Stderr, "No match found in %s for '%s'\n", enum.Name(), options.Args.Value)
			return tree.ExitFailure
		case 1:
			fmt.Fprintln(env.Stdout, matches[0])
			return tree.ExitOK
		default:
			fmt.Fprintf(env.Stderr, "Multiple matches found in %s:\n", enum.Name())
			for _, match := range matches {
				fmt.Fprintf(env.Stderr, "  - %s\n", match.Name)
			}
			return tree.ExitFailure
		}
	})
}

// NewGid explains the components of a GlobalID.
func NewGid() tree.Command {
	return command.New("gid", "Explain a gid_t (Global ID)", func(_ context.Context, env *tree.Env, options *GidOptions) int {
		gid := GlobalID(options.Args.Gid)
		fmt.Fprintf(env.Stdout, "Box ID             : %d\n", gid.BoxID())
		fmt.Fprintf(env.Stdout, "Process ID         : %d\n", gid.ProcessID())
		fmt.Fprintf(env.Stdout, "Process Start Time : %s\n", gid.StartTime().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(env.Stdout, "Sequence           : %d\n", gid.SequentialCount())
		return tree.ExitOK
	})
}
