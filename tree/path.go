package tree

// Path records the groups visited by one resolution.  It is a persistent
// stack: Push never mutates the receiver, so sibling descents cannot observe
// each other.  The nil *Path is the empty path.
type Path struct {
	group  *Group
	parent *Path
	depth  int
}

// Push returns a new path with g on top.
func (p *Path) Push(g *Group) *Path {
	return &Path{group: g, parent: p, depth: p.Len() + 1}
}

// Len returns the number of groups on the path.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return p.depth
}

// Deepest returns the most recently pushed group or nil.
func (p *Path) Deepest() *Group {
	if p == nil {
		return nil
	}
	return p.group
}

// Groups returns the groups from the root to the deepest one.
func (p *Path) Groups() []*Group {
	out := make([]*Group, p.Len())
	for i, node := len(out)-1, p; node != nil; i, node = i-1, node.parent {
		out[i] = node.group
	}
	return out
}

// Names returns group names from the root to the deepest one.
func (p *Path) Names() []string {
	groups := p.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Name()
	}
	return out
}
