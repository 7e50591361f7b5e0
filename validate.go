package queries

import (
	"cmp"
	"slices"
)

// MaxArity is the largest number of component bindings a callback may receive.
const MaxArity = 8

// Binding ties one callback parameter to a component type.
type Binding struct {
	Type    ComponentType
	Mutable bool
}

// BindingSpec describes the callback parameters: an optional leading entity handle
// followed by the component bindings in order.
type BindingSpec struct {
	Entity     bool
	Components []Binding
}

func (s BindingSpec) Arity() int {
	return len(s.Components)
}

func (s BindingSpec) types() []ComponentType {
	out := make([]ComponentType, len(s.Components))
	for i, b := range s.Components {
		out[i] = b.Type
	}
	return out
}

func (s BindingSpec) clone() BindingSpec {
	return BindingSpec{
		Entity:     s.Entity,
		Components: slices.Clone(s.Components),
	}
}

// duplicates returns types bound more than once where any of the bindings is mutable.
func (s BindingSpec) duplicates() []ComponentType {
	type seen struct {
		t       ComponentType
		count   int
		mutable bool
	}
	byID := make(map[ComponentTypeID]*seen)
	var order []ComponentTypeID
	for _, b := range s.Components {
		id := b.Type.TypeID()
		entry, ok := byID[id]
		if !ok {
			entry = &seen{t: b.Type}
			byID[id] = entry
			order = append(order, id)
		}
		entry.count++
		entry.mutable = entry.mutable || b.Mutable
	}
	var out []ComponentType
	for _, id := range order {
		if e := byID[id]; e.count > 1 && e.mutable {
			out = append(out, e.t)
		}
	}
	return out
}

func mutable(types ...ComponentType) []Binding {
	out := make([]Binding, len(types))
	for i, t := range types {
		out[i] = Binding{Type: t, Mutable: true}
	}
	return out
}

// Validate proves that every component bound by spec is present on every entity
// criteria can match. Rules are checked in order: arity, declaration conflicts and
// duplicate bindings, then presence. skipValidation bypasses only the presence rule.
// A nil error means the pair is valid.
func Validate(criteria Criteria, spec BindingSpec, skipValidation bool) error {
	if spec.Arity() > MaxArity {
		return ArityExceededError{Arity: spec.Arity(), Max: MaxArity}
	}
	for i, b := range spec.Components {
		if b.Type == nil {
			return NilBindingError{Index: i}
		}
	}
	if conflicts := criteria.conflicts(); len(conflicts) > 0 {
		return DeclarationConflictError{Types: sortByID(conflicts)}
	}
	if dups := spec.duplicates(); len(dups) > 0 {
		return DuplicateBindingError{Types: sortByID(dups)}
	}
	if skipValidation {
		return nil
	}

	var missing []ComponentType
	for _, b := range spec.Components {
		if !criteria.required.has(b.Type.TypeID()) {
			missing = append(missing, b.Type)
		}
	}
	if len(missing) > 0 {
		return UnprovenComponentError{Types: sortByID(missing)}
	}
	return nil
}

func sortByID(types []ComponentType) []ComponentType {
	types = slices.CompactFunc(slices.SortedFunc(slices.Values(types), func(a, b ComponentType) int {
		return cmp.Compare(a.TypeID(), b.TypeID())
	}), func(a, b ComponentType) bool {
		return a.TypeID() == b.TypeID()
	})
	return types
}
