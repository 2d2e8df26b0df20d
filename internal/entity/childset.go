package entity

// ChildSet is an insertion-ordered, name-keyed collection of child
// entities. For non-overloadable kinds it holds at most one entity per
// name in well-formed input; FUNCTION and OPERATOR children use the same
// structure as a multimap, since overloads share a name and must preserve
// source order (§4.4, §9 "Overload storage").
type ChildSet struct {
	order  []string
	byName map[string][]*Entity
}

func newChildSet() *ChildSet {
	return &ChildSet{byName: make(map[string][]*Entity)}
}

// add inserts e under its own Name, reporting whether the name already had
// an entry (the duplicate-unique-key condition; both entries are kept).
func (s *ChildSet) add(e *Entity) bool {
	existing := s.byName[e.Name]
	if len(existing) == 0 {
		s.order = append(s.order, e.Name)
	}
	s.byName[e.Name] = append(existing, e)
	return len(existing) > 0
}

func (s *ChildSet) remove(e *Entity) {
	lst := s.byName[e.Name]
	for i, x := range lst {
		if x == e {
			lst = append(lst[:i:i], lst[i+1:]...)
			break
		}
	}
	if len(lst) == 0 {
		delete(s.byName, e.Name)
		for i, n := range s.order {
			if n == e.Name {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.byName[e.Name] = lst
}

// Names returns the child names in first-insertion order.
func (s *ChildSet) Names() []string {
	return s.order
}

// At returns the entities registered under name, in insertion order. For a
// non-overloadable kind this has length 0 or 1 in well-formed input.
func (s *ChildSet) At(name string) []*Entity {
	return s.byName[name]
}

// Len returns the number of distinct names held.
func (s *ChildSet) Len() int {
	return len(s.order)
}

// All returns every entity across every name, in (name order, then
// within-name insertion order).
func (s *ChildSet) All() []*Entity {
	var out []*Entity
	for _, name := range s.order {
		out = append(out, s.byName[name]...)
	}
	return out
}
