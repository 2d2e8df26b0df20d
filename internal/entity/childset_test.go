package entity

import "testing"

func TestChildSetAdoptAndDetach(t *testing.T) {
	parent := NewRoot()
	child := New(Function, "f")

	if collision := parent.Adopt(child); collision {
		t.Fatalf("first adopt should not collide")
	}
	if child.Parent() != parent {
		t.Fatalf("Parent() = %v, want parent", child.Parent())
	}
	if parent.Functions.Len() != 1 {
		t.Fatalf("expected 1 function registered")
	}

	child.Detach()
	if child.Parent() != nil {
		t.Fatalf("Parent() after Detach = %v, want nil", child.Parent())
	}
	if parent.Functions.Len() != 0 {
		t.Fatalf("expected 0 functions after detach")
	}
}

func TestChildSetNamesPreservesInsertionOrder(t *testing.T) {
	root := NewRoot()
	root.Adopt(New(Function, "z"))
	root.Adopt(New(Function, "a"))
	root.Adopt(New(Function, "m"))

	names := root.Functions.Names()
	want := []string{"z", "a", "m"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestChildSetReadoptMovesParent(t *testing.T) {
	a := New(Namespace, "a")
	b := New(Namespace, "b")
	child := New(Function, "f")

	a.Adopt(child)
	b.Adopt(child)

	if child.Parent() != b {
		t.Fatalf("Parent() = %v, want b", child.Parent())
	}
	if a.Functions.Len() != 0 {
		t.Fatalf("expected a to no longer hold f after re-adoption")
	}
	if b.Functions.Len() != 1 {
		t.Fatalf("expected b to hold f")
	}
}
