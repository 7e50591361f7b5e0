package queries

import (
	"errors"

	"github.com/TheBitDrifter/table"
)

// segment visits the first n rows of one matched archetype table and returns how
// many rows it completed.
type segment func(tbl table.Table, n int) (int, error)

// CompiledQuery is a validated query ready for repeated execution. It is immutable
// once built. Its storage handles borrow from the storage it was compiled against,
// which must outlive it.
type CompiledQuery struct {
	storage  Storage
	source   *Cursor
	criteria Criteria
	spec     BindingSpec
	handles  []ComponentType
	segment  segment
	visited  int
}

// bind validates spec against the builder criteria and compiles it with seg as the
// per-archetype body. On failure no query is returned and the owning system records
// the error without losing a query it already holds.
func (b *QueryBuilder) bind(spec BindingSpec, seg segment) (*CompiledQuery, error) {
	if b.owner != nil && b.owner.query != nil {
		return nil, b.owner.failBind(QueryAlreadyBoundError{System: b.owner.name})
	}
	spec = spec.clone()
	if err := Validate(b.criteria, spec, b.skipping()); err != nil {
		if b.owner != nil {
			b.owner.failBind(err)
		}
		return nil, err
	}

	criteria := b.criteria.clone()
	handles := spec.types()
	comps := make([]Component, len(handles))
	for i, h := range handles {
		comps[i] = h
	}
	b.storage.register(comps...)

	q := &CompiledQuery{
		storage:  b.storage,
		source:   newCursor(criteria.node(), b.storage),
		criteria: criteria,
		spec:     spec,
		handles:  handles,
		segment:  seg,
	}
	if b.owner != nil {
		b.owner.query = q
	}
	Config.log().Debug("query compiled",
		"system", b.ownerName(),
		"required", typeNames(criteria.Required()),
		"forbidden", typeNames(criteria.Forbidden()),
		"arity", spec.Arity(),
		"entity", spec.Entity,
	)
	return q, nil
}

func (b *QueryBuilder) ownerName() string {
	if b.owner == nil {
		return ""
	}
	return b.owner.name
}

// Run visits every entity currently matching the query exactly once and invokes the
// callback. The storage is locked for the pass, so entities created or destroyed by
// the callback through the Enqueue methods take effect once the pass ends.
//
// A StoreConsistencyError aborts the pass: remaining entities are not visited,
// queued operations are still applied and the query stays usable.
func (q *CompiledQuery) Run() (err error) {
	sto := q.storage
	if !sto.Locked() {
		sto.Lock()
		defer func() {
			if uerr := sto.Unlock(); uerr != nil {
				err = errors.Join(err, uerr)
			}
		}()
	}

	q.visited = 0
	for _, arch := range q.source.archetypes() {
		n := arch.length()
		if n == 0 {
			continue
		}
		if missing, ok := arch.provides(q.handles); !ok {
			return StoreConsistencyError{Archetype: arch.ID(), Type: missing}
		}
		done, err := q.segment(arch.table, n)
		q.visited += done
		if err != nil {
			sce := StoreConsistencyError{Archetype: arch.ID(), Err: err}
			var missing EntityNotFoundError
			if errors.As(err, &missing) {
				sce.Entity = missing.ID
			}
			return sce
		}
	}
	return nil
}

// Visited returns the number of entities the last Run passed to the callback.
func (q *CompiledQuery) Visited() int {
	return q.visited
}

func (q *CompiledQuery) Criteria() Criteria {
	return q.criteria.clone()
}

func (q *CompiledQuery) Spec() BindingSpec {
	return q.spec.clone()
}

// Matched returns how many entities the query would visit right now.
func (q *CompiledQuery) Matched() int {
	return q.source.TotalMatched()
}
