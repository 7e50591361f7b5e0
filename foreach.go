package queries

import "github.com/TheBitDrifter/table"

// ForEachEntity compiles a query whose callback receives only the entity handle.
func ForEachEntity(b *QueryBuilder, fn func(Entity)) (*CompiledQuery, error) {
	sto := b.storage
	return b.bind(BindingSpec{Entity: true}, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en)
		}
		return n, nil
	})
}

// ForEachDynamic compiles a query from a binding spec assembled at runtime. The
// callback receives the entity (nil unless spec.Entity is set) and one *T per
// component binding, in spec order. The args slice is reused between calls.
func ForEachDynamic(b *QueryBuilder, spec BindingSpec, fn func(Entity, []any)) (*CompiledQuery, error) {
	sto := b.storage
	types := spec.types()
	args := make([]any, len(types))
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			var en Entity
			if spec.Entity {
				e, err := sto.entityAt(tbl, i)
				if err != nil {
					return i, err
				}
				en = e
			}
			for j, t := range types {
				args[j] = t.pointer(i, tbl)
			}
			fn(en, args)
		}
		return n, nil
	})
}
