package tree

import (
	"context"
	"fmt"
	"strings"
)

const indent = "    "

// Help is the command synthesized when resolution stops at a group.
type Help struct {
	path *Path
}

// NewHelp returns help scoped to the deepest group of path.
func NewHelp(path *Path) *Help { return &Help{path: path} }

func (h *Help) Name() string        { return "help" }
func (h *Help) Description() string { return "Print help text" }

// Init is a no-op; help ignores arguments.
func (h *Help) Init([]string) {}

// Path returns the traversal path the help is scoped to.
func (h *Help) Path() *Path { return h.path }

// Text renders the help text.
func (h *Help) Text() string { return RenderHelp(h.path) }

// Execute writes the help text to the diagnostic stream.  The text already
// ends with a newline; no extra blank line is appended.
func (h *Help) Execute(_ context.Context, env *Env) int {
	fmt.Fprint(env.Stderr, h.Text())
	return ExitHelp
}

// RenderHelp renders the help text for the deepest group on path:
//
//	Group
//	    root bar : child command tree
//
//	Commands:
//	    one : bar/1 command
func RenderHelp(path *Path) string {
	group := path.Deepest()
	if group == nil {
		return ""
	}
	var blocks []string

	var b strings.Builder
	b.WriteString("Group\n")
	b.WriteString(indent)
	b.WriteString(strings.Join(path.Names(), " "))
	b.WriteString(" : ")
	b.WriteString(group.Description())
	b.WriteString("\n")
	blocks = append(blocks, b.String())

	if len(group.subgroups) > 0 {
		nodes := make([]Node, len(group.subgroups))
		for i, sub := range group.subgroups {
			nodes[i] = sub
		}
		blocks = append(blocks, renderBlock("Subgroups:", nodes))
	}
	if len(group.commands) > 0 {
		nodes := make([]Node, len(group.commands))
		for i, cmd := range group.commands {
			nodes[i] = cmd
		}
		blocks = append(blocks, renderBlock("Commands:", nodes))
	}
	return strings.Join(blocks, "\n")
}

func renderBlock(title string, nodes []Node) string {
	width := 0
	for _, node := range nodes {
		if n := len(node.Name()); n > width {
			width = n
		}
	}
	width++

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, node := range nodes {
		b.WriteString(indent)
		b.WriteString(node.Name())
		b.WriteString(strings.Repeat(" ", width-len(node.Name())))
		b.WriteString(": ")
		b.WriteString(node.Description())
		b.WriteString("\n")
	}
	return b.String()
}
