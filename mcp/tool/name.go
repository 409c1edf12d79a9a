package tool

import "strings"

const separator = "-"

// Name represents tool name, the command path joined with "-" (cdn-ls)
type Name string

func (t Name) String() string {
	return string(t)
}

// NewName creates a tool name from a command path
func NewName(path []string) Name {
	return Name(strings.Join(path, separator))
}

// Canonical normalises user supplied tool references (cdn/ls, "cdn ls", cdn.ls)
// into a tool name.
func Canonical(name string) Name {
	name = strings.TrimSpace(name)
	return NewName(strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '/', '.', ' ', '-':
			return true
		}
		return false
	}))
}
