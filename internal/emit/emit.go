// Package emit walks a finalized entity tree and writes one Markdown page
// per kept entity (C7).
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cxxdoc/cxxdoc/internal/entity"
)

// Emitter writes the rendered tree to a directory.
type Emitter struct {
	OutDir string
}

// New returns an Emitter writing under outDir.
func New(outDir string) *Emitter {
	return &Emitter{OutDir: outDir}
}

// Emit walks root (excluded itself) and writes a page for every visible
// descendant, plus a root index.md (§4.6).
func (e *Emitter) Emit(root *entity.Entity) error {
	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := e.writeIndex(root, e.OutDir); err != nil {
		return err
	}
	return e.walk(root, e.OutDir)
}

func (e *Emitter) walk(parent *entity.Entity, dir string) error {
	for _, set := range childSets(parent) {
		for _, name := range set.Names() {
			children := set.At(name)
			if len(children) == 0 || children[0].Hide {
				continue
			}
			if err := e.writePage(children, dir); err != nil {
				return err
			}
			sub := filepath.Join(dir, sanitize(children[0].Name))
			if err := e.walk(children[0], sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// writePage renders one or more overloads sharing a name into a single
// page (§4.6: "FUNCTION/OPERATOR overloads sharing a name are emitted as
// sections within a single page, in insertion order").
func (e *Emitter) writePage(overloads []*entity.Entity, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	head := overloads[0]
	var b strings.Builder
	title := head.Name
	if title == "" {
		title = head.Kind.String()
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for i, ov := range overloads {
		if len(overloads) > 1 {
			fmt.Fprintf(&b, "## Overload %d\n\n", i+1)
		}
		if ov.Decl != "" {
			fmt.Fprintf(&b, "```cpp\n%s\n```\n\n", ov.Decl)
		}
		b.WriteString(ov.Docs)
		b.WriteString("\n")
	}

	path := filepath.Join(dir, sanitize(head.Name)+".md")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (e *Emitter) writeIndex(root *entity.Entity, dir string) error {
	var b strings.Builder
	b.WriteString("# Index\n\n")
	for _, set := range childSets(root) {
		names := set.Names()
		if len(names) == 0 {
			continue
		}
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		for _, name := range sorted {
			children := set.At(name)
			if len(children) == 0 || children[0].Hide {
				continue
			}
			fmt.Fprintf(&b, "- [%s](%s.md)\n", name, sanitize(name))
		}
	}
	return os.WriteFile(filepath.Join(dir, "index.md"), []byte(b.String()), 0o644)
}

func childSets(e *entity.Entity) []*entity.ChildSet {
	return []*entity.ChildSet{e.Namespaces, e.Types, e.Variables, e.Enumerators, e.Macros, e.Groups, e.Functions, e.Operators}
}

// sanitize replaces every character (code point) outside [A-Za-z0-9_]
// with _u%04X of that code point, so entity names become safe filesystem
// path segments
// regardless of source character set (§4.6).
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 128 && (isAlnum(byte(r)) || r == '_') {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "_u%04X", r)
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
