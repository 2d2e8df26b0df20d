package entity

import (
	"testing"

	"github.com/cxxdoc/cxxdoc/internal/diag"
)

func TestResolveGroupsRelocatesEntity(t *testing.T) {
	root := NewRoot()
	DeclareGroup(root, "widgets")
	fn := New(Function, "make")
	fn.Ingroup = "widgets"
	root.Adopt(fn)

	ResolveGroups(root, nil)

	if len(root.Functions.At("make")) != 0 {
		t.Fatalf("expected make() to leave the root function set")
	}
	group := root.Groups.At("widgets")[0]
	if len(group.Functions.At("make")) != 1 {
		t.Fatalf("expected make() to be relocated under group widgets")
	}
	if fn.Ingroup != "" {
		t.Fatalf("Ingroup = %q, want cleared after relocation", fn.Ingroup)
	}
}

func TestResolveGroupsWarnsOnUnknownGroup(t *testing.T) {
	root := NewRoot()
	fn := New(Function, "make")
	fn.Ingroup = "nonexistent"
	root.Adopt(fn)

	sink := &diag.Sink{}
	ResolveGroups(root, sink)

	if len(sink.Events()) == 0 {
		t.Fatalf("expected a warning for an unresolved @ingroup")
	}
	if fn.Ingroup != "nonexistent" {
		t.Fatalf("Ingroup = %q, want left in place after failed resolution", fn.Ingroup)
	}
}

func TestResolveGroupsIsIdempotent(t *testing.T) {
	root := NewRoot()
	DeclareGroup(root, "widgets")
	fn := New(Function, "make")
	fn.Ingroup = "widgets"
	root.Adopt(fn)

	ResolveGroups(root, nil)
	before := root.Groups.At("widgets")[0].Functions.Len()
	ResolveGroups(root, nil)
	after := root.Groups.At("widgets")[0].Functions.Len()

	if before != after {
		t.Fatalf("second ResolveGroups pass changed function count: %d -> %d", before, after)
	}
}

func TestDeclareGroupReturnsExistingGroup(t *testing.T) {
	root := NewRoot()
	g1 := DeclareGroup(root, "widgets")
	g2 := DeclareGroup(root, "widgets")
	if g1 != g2 {
		t.Fatalf("DeclareGroup created a second group instead of reusing the existing one")
	}
	if root.Groups.Len() != 1 {
		t.Fatalf("expected exactly one widgets group, got %d", root.Groups.Len())
	}
}
