// Package entity defines the rooted tree of documented program elements
// produced by the pipeline: namespaces, types, variables, enumerators,
// functions, operators, macros, and the groups that @group/@ingroup carve
// out of the syntactic tree.
package entity

// Kind is the syntactic or structural category of an Entity.
type Kind int

const (
	Root Kind = iota
	Namespace
	Type
	Enumerator
	Variable
	Function
	Operator
	Macro
	Group
	// File marks a comment that carried @file. It is never retained in the
	// tree: the builder discards the entity that would have carried it.
	File
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "root"
	case Namespace:
		return "namespace"
	case Type:
		return "type"
	case Enumerator:
		return "enumerator"
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Operator:
		return "operator"
	case Macro:
		return "macro"
	case Group:
		return "group"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Entity represents one documented element, or the tree root.
type Entity struct {
	Kind    Kind
	Name    string
	Decl    string
	Docs    string
	Brief   string
	Ingroup string
	Hide    bool

	Namespaces  *ChildSet
	Types       *ChildSet
	Variables   *ChildSet
	Enumerators *ChildSet
	Macros      *ChildSet
	Groups      *ChildSet
	Functions   *ChildSet
	Operators   *ChildSet

	parent *Entity
}

// New creates an Entity of the given kind and name with empty child sets.
func New(kind Kind, name string) *Entity {
	return &Entity{
		Kind:        kind,
		Name:        name,
		Namespaces:  newChildSet(),
		Types:       newChildSet(),
		Variables:   newChildSet(),
		Enumerators: newChildSet(),
		Macros:      newChildSet(),
		Groups:      newChildSet(),
		Functions:   newChildSet(),
		Operators:   newChildSet(),
	}
}

// NewRoot creates the unique ROOT entity.
func NewRoot() *Entity {
	return New(Root, "")
}

// Parent returns the entity currently holding e in one of its child sets,
// or nil for the root or a freshly constructed, not-yet-adopted entity.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// childSet returns the child set that entities of kind k are stored in, or
// nil for kinds that cannot be adopted (Root, File).
func (e *Entity) childSet(k Kind) *ChildSet {
	switch k {
	case Namespace:
		return e.Namespaces
	case Type:
		return e.Types
	case Variable:
		return e.Variables
	case Enumerator:
		return e.Enumerators
	case Macro:
		return e.Macros
	case Group:
		return e.Groups
	case Function:
		return e.Functions
	case Operator:
		return e.Operators
	default:
		return nil
	}
}

// Adopt inserts child into the appropriate child set of e, per §4.4's
// dispatch table, and records e as child's parent. It reports whether an
// entity with the same name already occupied a slot on a non-overloadable
// (unique-keyed) child map (the "duplicate unique key" warning condition,
// §4.4); both entities are retained either way. FUNCTION and OPERATOR
// child maps are insertion-ordered multimaps, so a second entity under a
// name already in use there is a normal overload set, never a collision.
func (e *Entity) Adopt(child *Entity) (collision bool) {
	set := e.childSet(child.Kind)
	if set == nil {
		return false
	}
	if child.parent != nil {
		child.parent.childSet(child.Kind).remove(child)
	}
	duplicate := set.add(child)
	child.parent = e
	return duplicate && !Overloadable(child.Kind)
}

// Detach removes e from its current parent's child set, if any.
func (e *Entity) Detach() {
	if e.parent == nil {
		return
	}
	e.parent.childSet(e.Kind).remove(e)
	e.parent = nil
}

// Overloadable reports whether kind stores multiple entities per name.
func Overloadable(k Kind) bool {
	return k == Function || k == Operator
}
