package queries

// QueryBuilder accumulates the criteria of one query. Every method returns the
// builder so declarations chain in any order; nothing is checked until a terminal
// ForEach call compiles the query.
type QueryBuilder struct {
	storage        Storage
	owner          *QuerySystem
	criteria       Criteria
	skipValidation bool
}

// Criteria is the matching rule of a query: required and forbidden component
// types plus optional native filter nodes, all of which must hold.
type Criteria struct {
	required  typeSet
	forbidden typeSet
	extra     []QueryNode
}

type typeSet struct {
	order []ComponentType
	ids   map[ComponentTypeID]struct{}
}

func newQueryBuilder(storage Storage, owner *QuerySystem) *QueryBuilder {
	return &QueryBuilder{
		storage: storage,
		owner:   owner,
	}
}

// Require adds t to the required set.
func (b *QueryBuilder) Require(t ComponentType) *QueryBuilder {
	b.criteria.required.add(t)
	return b
}

func (b *QueryBuilder) RequireAll(types ...ComponentType) *QueryBuilder {
	b.criteria.required.add(types...)
	return b
}

// Forbid adds t to the forbidden set.
func (b *QueryBuilder) Forbid(t ComponentType) *QueryBuilder {
	b.criteria.forbidden.add(t)
	return b
}

func (b *QueryBuilder) ForbidAll(types ...ComponentType) *QueryBuilder {
	b.criteria.forbidden.add(types...)
	return b
}

// Also narrows the match with an extra filter node. Extra nodes never prove that a
// bound component is present.
func (b *QueryBuilder) Also(node QueryNode) *QueryBuilder {
	if node != nil {
		b.criteria.extra = append(b.criteria.extra, node)
	}
	return b
}

// SkipValidation disables the presence check. Conflicting declarations are still rejected.
func (b *QueryBuilder) SkipValidation(skip bool) *QueryBuilder {
	b.skipValidation = skip
	return b
}

func (b *QueryBuilder) Criteria() Criteria {
	return b.criteria.clone()
}

// Validate checks spec against the accumulated criteria without compiling.
func (b *QueryBuilder) Validate(spec BindingSpec) error {
	return Validate(b.criteria, spec, b.skipping())
}

func (b *QueryBuilder) skipping() bool {
	if b.skipValidation {
		return true
	}
	return b.owner != nil && b.owner.skipValidation
}

// With requires the component type T.
func With[T any](b *QueryBuilder) *QueryBuilder {
	return b.Require(FactoryNewComponent[T]())
}

// Without forbids the component type T.
func Without[T any](b *QueryBuilder) *QueryBuilder {
	return b.Forbid(FactoryNewComponent[T]())
}

func (c Criteria) Required() []ComponentType {
	return c.required.types()
}

func (c Criteria) Forbidden() []ComponentType {
	return c.forbidden.types()
}

// conflicts returns the types that are both required and forbidden, in declaration order.
func (c Criteria) conflicts() []ComponentType {
	var out []ComponentType
	for _, t := range c.forbidden.order {
		if c.required.has(t.TypeID()) {
			out = append(out, t)
		}
	}
	return out
}

// node renders the criteria as the store's native filter.
func (c Criteria) node() QueryNode {
	children := make([]QueryNode, 0, len(c.extra)+1)
	if len(c.forbidden.order) > 0 {
		children = append(children, newCompositeNode(OpNot, c.forbidden.components()))
	}
	children = append(children, c.extra...)
	return newCompositeNode(OpAnd, c.required.components(), children...)
}

func (c Criteria) clone() Criteria {
	return Criteria{
		required:  c.required.clone(),
		forbidden: c.forbidden.clone(),
		extra:     append([]QueryNode(nil), c.extra...),
	}
}

func (s *typeSet) add(types ...ComponentType) {
	if s.ids == nil {
		s.ids = make(map[ComponentTypeID]struct{})
	}
	for _, t := range types {
		if t == nil {
			continue
		}
		if _, ok := s.ids[t.TypeID()]; ok {
			continue
		}
		s.ids[t.TypeID()] = struct{}{}
		s.order = append(s.order, t)
	}
}

func (s typeSet) has(id ComponentTypeID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s typeSet) types() []ComponentType {
	return append([]ComponentType(nil), s.order...)
}

func (s typeSet) components() []Component {
	out := make([]Component, len(s.order))
	for i, t := range s.order {
		out[i] = t
	}
	return out
}

func (s typeSet) clone() typeSet {
	var out typeSet
	out.add(s.order...)
	return out
}
