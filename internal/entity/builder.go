package entity

import "github.com/cxxdoc/cxxdoc/internal/diag"

// Match is the intermediate record produced by a syntax query driver (§3.2).
// It is intentionally free of any tree-sitter type so the builder can be
// tested and reused independent of the concrete syntax backend.
type Match struct {
	Kind       Kind
	Start, End uint32
	Middle     uint32
	Name       string
	Docs       []byte
	Source     []byte
}

// Translator is the subset of the markup translator the builder depends on,
// satisfied by (*markup.Translator).Translate.
type Translator interface {
	Translate(docs []byte, e *Entity, sink *diag.Sink)
}

type frame struct {
	start, end uint32
	entity     *Entity
}

// Builder assembles a rooted Entity tree from a stream of Matches in source
// order, re-parenting each under its enclosing match by nested byte-range
// containment (§4.4).
type Builder struct {
	translator Translator
	sink       *diag.Sink
	stack      []frame
}

// NewBuilder seeds a builder with the given root entity (callers merging
// several files into one shared tree pass the same root to each file's
// builder) and a diagnostic sink.
func NewBuilder(root *Entity, translator Translator, sink *diag.Sink) *Builder {
	return &Builder{
		translator: translator,
		sink:       sink,
		stack:      []frame{{start: 0, end: ^uint32(0), entity: root}},
	}
}

// Add consumes one Match, in source order.
func (b *Builder) Add(m Match) {
	e := New(m.Kind, m.Name)
	if m.Middle >= m.Start && int(m.Middle) <= len(m.Source) {
		e.Decl = string(m.Source[m.Start:m.Middle])
	}
	if b.translator != nil {
		b.translator.Translate(m.Docs, e, b.sink)
	}

	for len(b.stack) > 1 {
		top := b.stack[len(b.stack)-1]
		if top.start <= m.Start && m.End <= top.end {
			break
		}
		b.stack = b.stack[:len(b.stack)-1]
		b.adopt(b.stack[len(b.stack)-1].entity, top.entity)
	}

	top := b.stack[len(b.stack)-1]
	if top.entity.Kind == Type {
		e.Ingroup = ""
	}

	if e.Kind == File {
		// The comment carried @file: this match produces no entity at all.
		return
	}

	b.stack = append(b.stack, frame{start: m.Start, end: m.End, entity: e})
}

// Finish pops any remaining frames, adopting each into its parent, and
// returns the root entity (the last frame's entity).
func (b *Builder) Finish() *Entity {
	for len(b.stack) > 1 {
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.adopt(b.stack[len(b.stack)-1].entity, top.entity)
	}
	return b.stack[0].entity
}

func (b *Builder) adopt(parent, child *Entity) {
	if parent.Adopt(child) && b.sink != nil {
		b.sink.Warningf("", "duplicate %s %q under %q; retaining both as overloads", child.Kind, child.Name, parent.Name)
	}
}
