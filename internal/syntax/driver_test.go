package syntax

import (
	"context"
	"strings"
	"testing"

	"github.com/cxxdoc/cxxdoc/internal/diag"
	"github.com/cxxdoc/cxxdoc/internal/entity"
)

func TestDriverExtractsFunctionWithDocs(t *testing.T) {
	src := []byte("/** @brief Adds two numbers. */\nint add(int a, int b) { return a + b; }\n")
	sink := &diag.Sink{}
	d := NewDriver(sink)
	if sink.HasFatal() {
		t.Fatalf("NewDriver reported fatal: %v", sink.Events())
	}

	matches := d.Matches(context.Background(), src, sink)
	var found *entity.Match
	for i := range matches {
		if matches[i].Kind == entity.Function && matches[i].Name == "add" {
			found = &matches[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a function match named add, got %+v", matches)
	}
	if !strings.Contains(string(found.Docs), "@brief") {
		t.Fatalf("Docs = %q, want the preceding comment attached", found.Docs)
	}
}

func TestDriverDeclIncludesParameterList(t *testing.T) {
	src := []byte("int add(int a, int b) { return a + b; }\n")
	d := NewDriver(nil)
	matches := d.Matches(context.Background(), src, nil)

	var found *entity.Match
	for i := range matches {
		if matches[i].Kind == entity.Function && matches[i].Name == "add" {
			found = &matches[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a function match named add, got %+v", matches)
	}
	if !strings.Contains(found.Decl, "int a, int b") {
		t.Fatalf("Decl = %q, want the full parameter list retained", found.Decl)
	}
	if strings.Contains(found.Decl, "return") {
		t.Fatalf("Decl = %q, want the body excluded", found.Decl)
	}
}

func TestDriverDeclIncludesBaseClassClause(t *testing.T) {
	src := []byte("class Widget : public Base {\n  int x;\n};\n")
	d := NewDriver(nil)
	matches := d.Matches(context.Background(), src, nil)

	var found *entity.Match
	for i := range matches {
		if matches[i].Kind == entity.Type && matches[i].Name == "Widget" {
			found = &matches[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a type match named Widget, got %+v", matches)
	}
	if !strings.Contains(found.Decl, "public Base") {
		t.Fatalf("Decl = %q, want the base-class clause retained", found.Decl)
	}
	if strings.Contains(found.Decl, "int x") {
		t.Fatalf("Decl = %q, want the class body excluded", found.Decl)
	}
}

func TestDriverDeclStopsBeforePrototypeSemicolon(t *testing.T) {
	src := []byte("int add(int a, int b);\n")
	d := NewDriver(nil)
	matches := d.Matches(context.Background(), src, nil)

	var found *entity.Match
	for i := range matches {
		if matches[i].Kind == entity.Function && matches[i].Name == "add" {
			found = &matches[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a function match named add, got %+v", matches)
	}
	if !strings.Contains(found.Decl, "int a, int b") {
		t.Fatalf("Decl = %q, want the full parameter list retained for a prototype", found.Decl)
	}
	if strings.Contains(found.Decl, ";") {
		t.Fatalf("Decl = %q, want the trailing semicolon excluded", found.Decl)
	}
}

func TestDriverExtractsNamespaceAndType(t *testing.T) {
	src := []byte("namespace widgets {\nclass Widget {};\n}\n")
	d := NewDriver(nil)
	matches := d.Matches(context.Background(), src, nil)

	var sawNamespace, sawType bool
	for _, m := range matches {
		if m.Kind == entity.Namespace && m.Name == "widgets" {
			sawNamespace = true
		}
		if m.Kind == entity.Type && m.Name == "Widget" {
			sawType = true
		}
	}
	if !sawNamespace || !sawType {
		t.Fatalf("expected namespace widgets and type Widget, got %+v", matches)
	}
}
