package entity

import "encoding/json"

// wireEntity mirrors Entity for JSON encoding: ChildSet keeps its fields
// unexported to protect its insertion-order invariant, so the cache needs
// its own exported view rather than marshaling Entity directly.
type wireEntity struct {
	Kind    Kind
	Name    string
	Decl    string
	Docs    string
	Brief   string
	Ingroup string
	Hide    bool

	Namespaces  []*wireEntity
	Types       []*wireEntity
	Variables   []*wireEntity
	Enumerators []*wireEntity
	Macros      []*wireEntity
	Groups      []*wireEntity
	Functions   []*wireEntity
	Operators   []*wireEntity
}

func toWire(e *Entity) *wireEntity {
	return &wireEntity{
		Kind:        e.Kind,
		Name:        e.Name,
		Decl:        e.Decl,
		Docs:        e.Docs,
		Brief:       e.Brief,
		Ingroup:     e.Ingroup,
		Hide:        e.Hide,
		Namespaces:  toWireAll(e.Namespaces),
		Types:       toWireAll(e.Types),
		Variables:   toWireAll(e.Variables),
		Enumerators: toWireAll(e.Enumerators),
		Macros:      toWireAll(e.Macros),
		Groups:      toWireAll(e.Groups),
		Functions:   toWireAll(e.Functions),
		Operators:   toWireAll(e.Operators),
	}
}

func toWireAll(set *ChildSet) []*wireEntity {
	all := set.All()
	if len(all) == 0 {
		return nil
	}
	out := make([]*wireEntity, len(all))
	for i, child := range all {
		out[i] = toWire(child)
	}
	return out
}

func fromWire(w *wireEntity) *Entity {
	e := New(w.Kind, w.Name)
	e.Decl = w.Decl
	e.Docs = w.Docs
	e.Brief = w.Brief
	e.Ingroup = w.Ingroup
	e.Hide = w.Hide
	for _, group := range [][]*wireEntity{
		w.Namespaces, w.Types, w.Variables, w.Enumerators,
		w.Macros, w.Groups, w.Functions, w.Operators,
	} {
		for _, child := range group {
			e.Adopt(fromWire(child))
		}
	}
	return e
}

// Marshal serializes e and its entire subtree for the render cache (§4.9).
func Marshal(e *Entity) ([]byte, error) {
	return json.Marshal(toWire(e))
}

// Unmarshal reconstructs a subtree previously produced by Marshal.
func Unmarshal(data []byte) (*Entity, error) {
	var w wireEntity
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(&w), nil
}
