package entity

import "github.com/cxxdoc/cxxdoc/internal/diag"

// ResolveGroups walks the tree rooted at root and relocates every entity
// carrying a non-empty Ingroup into the nearest ancestor's GROUP child of
// that name (§4.5). Entities whose target group cannot be found are left
// in place and a Warning is recorded. Running ResolveGroups twice is a
// no-op: Ingroup is cleared on every successful relocation, so the second
// pass finds nothing left to do.
func ResolveGroups(root *Entity, sink *diag.Sink) {
	for _, e := range collect(root) {
		if e.Ingroup == "" {
			continue
		}
		group := findGroup(e.Parent(), e.Ingroup)
		if group == nil {
			if sink != nil {
				sink.Warningf("", "unresolved @ingroup %q for %s %q", e.Ingroup, e.Kind, e.Name)
			}
			continue
		}
		e.Detach()
		e.Ingroup = ""
		group.Adopt(e)
	}
}

// findGroup searches start and its ancestors for a GROUP child named name.
func findGroup(start *Entity, name string) *Entity {
	for anc := start; anc != nil; anc = anc.Parent() {
		if matches := anc.Groups.At(name); len(matches) > 0 {
			return matches[0]
		}
	}
	return nil
}

// DeclareGroup ensures root has a GROUP child named name, creating one if
// absent. Used to pre-declare groups named only in configuration (§3.4),
// so @ingroup references resolve even when no @group declaration exists.
func DeclareGroup(root *Entity, name string) *Entity {
	if existing := root.Groups.At(name); len(existing) > 0 {
		return existing[0]
	}
	g := New(Group, name)
	root.Adopt(g)
	return g
}

// collect returns every entity in the tree rooted at root, root excluded,
// in an unspecified but deterministic (pre-order, child-set order) walk.
func collect(root *Entity) []*Entity {
	var out []*Entity
	var walk func(e *Entity)
	walk = func(e *Entity) {
		for _, set := range []*ChildSet{e.Namespaces, e.Types, e.Variables, e.Enumerators, e.Macros, e.Groups, e.Functions, e.Operators} {
			for _, child := range set.All() {
				out = append(out, child)
				walk(child)
			}
		}
	}
	walk(root)
	return out
}
