package matcher

import (
	"path"
	"strings"
)

// Match reports whether a slash separated command path (cdn/ls) satisfies
// pattern. "*" matches everything, a trailing "/" matches any command under
// the group, glob patterns follow path.Match and any other pattern matches
// the exact command or a whole group.
func Match(pattern, name string) bool {
	switch {
	case pattern == "*":
		return true
	case pattern == "":
		return false
	case strings.HasSuffix(pattern, "/"):
		return strings.HasPrefix(name, pattern)
	case strings.ContainsAny(pattern, "*?["):
		ok, _ := path.Match(pattern, name)
		return ok
	}
	return name == pattern || strings.HasPrefix(name, pattern+"/")
}

// Any reports whether name satisfies at least one of the patterns
func Any(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
