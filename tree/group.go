package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidNode reports a nil child or a node with empty name/description.
	ErrInvalidNode = errors.New("invalid node")
	// ErrDuplicateName reports two direct children sharing a name.
	ErrDuplicateName = errors.New("duplicate name")
)

// Group is an internal node of the command tree.  It is immutable once built.
type Group struct {
	name        string
	description string
	subgroups   []*Group
	commands    []Command
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.description }

// Subgroups returns the child groups in display order.
func (g *Group) Subgroups() []*Group { return append([]*Group{}, g.subgroups...) }

// Commands returns the child commands in display order.
func (g *Group) Commands() []Command { return append([]Command{}, g.commands...) }

// NewGroup validates and builds a group.  Names are compared exactly and must
// be unique across both subgroups and commands.
func NewGroup(name, description string, subgroups []*Group, commands []Command) (*Group, error) {
	if err := validateNode(name, description); err != nil {
		return nil, err
	}
	seen := make(map[string]string, len(subgroups)+len(commands))
	claim := func(kind, childName, childDescription string) error {
		if err := validateNode(childName, childDescription); err != nil {
			return fmt.Errorf("group %q: %s: %w", name, kind, err)
		}
		if prev, ok := seen[childName]; ok {
			return fmt.Errorf("group %q: %s %q clashes with %s: %w", name, kind, childName, prev, ErrDuplicateName)
		}
		seen[childName] = kind
		return nil
	}
	for i, sub := range subgroups {
		if sub == nil {
			return nil, fmt.Errorf("group %q: subgroup #%d is nil: %w", name, i, ErrInvalidNode)
		}
		if err := claim("subgroup", sub.Name(), sub.Description()); err != nil {
			return nil, err
		}
	}
	for i, cmd := range commands {
		if cmd == nil {
			return nil, fmt.Errorf("group %q: command #%d is nil: %w", name, i, ErrInvalidNode)
		}
		if err := claim("command", cmd.Name(), cmd.Description()); err != nil {
			return nil, err
		}
	}
	return &Group{
		name:        name,
		description: description,
		subgroups:   append([]*Group{}, subgroups...),
		commands:    append([]Command{}, commands...),
	}, nil
}

// MustGroup is NewGroup for static assembly; it panics on invalid input.
func MustGroup(name, description string, subgroups []*Group, commands []Command) *Group {
	g, err := NewGroup(name, description, subgroups, commands)
	if err != nil {
		panic(err)
	}
	return g
}

func validateNode(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidNode)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%q has empty description: %w", name, ErrInvalidNode)
	}
	return nil
}

// Walk visits every leaf command depth-first in display order, commands
// before subgroups.  path holds the tokens leading to the command, root
// excluded.
func Walk(root *Group, fn func(path []string, cmd Command) error) error {
	return walk(root, nil, fn)
}

func walk(g *Group, prefix []string, fn func(path []string, cmd Command) error) error {
	for _, cmd := range g.commands {
		path := append(append([]string{}, prefix...), cmd.Name())
		if err := fn(path, cmd); err != nil {
			return err
		}
	}
	for _, sub := range g.subgroups {
		if err := walk(sub, append(append([]string{}, prefix...), sub.Name()), fn); err != nil {
			return err
		}
	}
	return nil
}
