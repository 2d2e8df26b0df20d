package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cxxdoc/cxxdoc/internal/entity"
)

func TestEmitWritesPageForFunction(t *testing.T) {
	root := entity.NewRoot()
	fn := entity.New(entity.Function, "add")
	fn.Decl = "int add(int a, int b)"
	fn.Docs = "Adds two numbers."
	root.Adopt(fn)

	out := t.TempDir()
	if err := New(out).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "add.md"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "int add(int a, int b)") {
		t.Fatalf("page = %q, want the declaration", data)
	}
	if !strings.Contains(string(data), "Adds two numbers.") {
		t.Fatalf("page = %q, want the docs", data)
	}
}

func TestEmitSkipsHiddenEntities(t *testing.T) {
	root := entity.NewRoot()
	fn := entity.New(entity.Function, "secret")
	fn.Hide = true
	root.Adopt(fn)

	out := t.TempDir()
	if err := New(out).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "secret.md")); err == nil {
		t.Fatalf("expected secret.md to be skipped for a hidden entity")
	}
}

func TestEmitOverloadsShareOnePage(t *testing.T) {
	root := entity.NewRoot()
	a := entity.New(entity.Function, "f")
	a.Decl = "void f(int)"
	b := entity.New(entity.Function, "f")
	b.Decl = "void f(double)"
	root.Adopt(a)
	root.Adopt(b)

	out := t.TempDir()
	if err := New(out).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "f.md"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "void f(int)") || !strings.Contains(string(data), "void f(double)") {
		t.Fatalf("page = %q, want both overloads present", data)
	}
}

func TestSanitizeEscapesNonIdentifierBytes(t *testing.T) {
	got := sanitize("operator<<")
	if strings.Contains(got, "<") {
		t.Fatalf("sanitize(%q) = %q, want '<' escaped", "operator<<", got)
	}
	if !strings.Contains(got, "_u") {
		t.Fatalf("sanitize(%q) = %q, want an escape sequence", "operator<<", got)
	}
}

func TestEmitNestsNamespaceChildren(t *testing.T) {
	root := entity.NewRoot()
	ns := entity.New(entity.Namespace, "widgets")
	fn := entity.New(entity.Function, "make")
	ns.Adopt(fn)
	root.Adopt(ns)

	out := t.TempDir()
	if err := New(out).Emit(root); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "widgets", "make.md")); err != nil {
		t.Fatalf("expected widgets/make.md, got error: %v", err)
	}
}
