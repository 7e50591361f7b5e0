package queries

import "github.com/TheBitDrifter/table"

// ForEach1 compiles a query whose callback receives T1 of every matching entity.
func ForEach1[T1 any](b *QueryBuilder, fn func(*T1)) (*CompiledQuery, error) {
	c1 := FactoryNewComponent[T1]()
	spec := BindingSpec{Components: mutable(c1)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity1 is ForEach1 with the entity handle passed first.
func ForEachEntity1[T1 any](b *QueryBuilder, fn func(Entity, *T1)) (*CompiledQuery, error) {
	c1 := FactoryNewComponent[T1]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach2 compiles a query whose callback receives T1, T2 of every matching entity.
func ForEach2[T1, T2 any](b *QueryBuilder, fn func(*T1, *T2)) (*CompiledQuery, error) {
	c1, c2 := FactoryNewComponent[T1](), FactoryNewComponent[T2]()
	spec := BindingSpec{Components: mutable(c1, c2)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity2 is ForEach2 with the entity handle passed first.
func ForEachEntity2[T1, T2 any](b *QueryBuilder, fn func(Entity, *T1, *T2)) (*CompiledQuery, error) {
	c1, c2 := FactoryNewComponent[T1](), FactoryNewComponent[T2]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach3 compiles a query whose callback receives T1, T2, T3 of every matching entity.
func ForEach3[T1, T2, T3 any](b *QueryBuilder, fn func(*T1, *T2, *T3)) (*CompiledQuery, error) {
	c1, c2, c3 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3]()
	spec := BindingSpec{Components: mutable(c1, c2, c3)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity3 is ForEach3 with the entity handle passed first.
func ForEachEntity3[T1, T2, T3 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3)) (*CompiledQuery, error) {
	c1, c2, c3 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach4 compiles a query whose callback receives T1, T2, T3, T4 of every matching entity.
func ForEach4[T1, T2, T3, T4 any](b *QueryBuilder, fn func(*T1, *T2, *T3, *T4)) (*CompiledQuery, error) {
	c1, c2, c3, c4 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4]()
	spec := BindingSpec{Components: mutable(c1, c2, c3, c4)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity4 is ForEach4 with the entity handle passed first.
func ForEachEntity4[T1, T2, T3, T4 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3, *T4)) (*CompiledQuery, error) {
	c1, c2, c3, c4 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3, c4)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach5 compiles a query whose callback receives T1, T2, T3, T4, T5 of every matching entity.
func ForEach5[T1, T2, T3, T4, T5 any](b *QueryBuilder, fn func(*T1, *T2, *T3, *T4, *T5)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5]()
	spec := BindingSpec{Components: mutable(c1, c2, c3, c4, c5)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity5 is ForEach5 with the entity handle passed first.
func ForEachEntity5[T1, T2, T3, T4, T5 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3, *T4, *T5)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3, c4, c5)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach6 compiles a query whose callback receives T1, T2, T3, T4, T5, T6 of every matching entity.
func ForEach6[T1, T2, T3, T4, T5, T6 any](b *QueryBuilder, fn func(*T1, *T2, *T3, *T4, *T5, *T6)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6]()
	spec := BindingSpec{Components: mutable(c1, c2, c3, c4, c5, c6)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity6 is ForEach6 with the entity handle passed first.
func ForEachEntity6[T1, T2, T3, T4, T5, T6 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3, c4, c5, c6)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach7 compiles a query whose callback receives T1, T2, T3, T4, T5, T6, T7 of every matching entity.
func ForEach7[T1, T2, T3, T4, T5, T6, T7 any](b *QueryBuilder, fn func(*T1, *T2, *T3, *T4, *T5, *T6, *T7)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6, c7 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6](), FactoryNewComponent[T7]()
	spec := BindingSpec{Components: mutable(c1, c2, c3, c4, c5, c6, c7)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl), c7.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity7 is ForEach7 with the entity handle passed first.
func ForEachEntity7[T1, T2, T3, T4, T5, T6, T7 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6, c7 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6](), FactoryNewComponent[T7]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3, c4, c5, c6, c7)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl), c7.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEach8 compiles a query whose callback receives T1, T2, T3, T4, T5, T6, T7, T8 of every matching entity.
func ForEach8[T1, T2, T3, T4, T5, T6, T7, T8 any](b *QueryBuilder, fn func(*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6, c7, c8 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6](), FactoryNewComponent[T7](), FactoryNewComponent[T8]()
	spec := BindingSpec{Components: mutable(c1, c2, c3, c4, c5, c6, c7, c8)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			fn(c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl), c7.Accessor.Get(i, tbl), c8.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}

// ForEachEntity8 is ForEach8 with the entity handle passed first.
func ForEachEntity8[T1, T2, T3, T4, T5, T6, T7, T8 any](b *QueryBuilder, fn func(Entity, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) (*CompiledQuery, error) {
	c1, c2, c3, c4, c5, c6, c7, c8 := FactoryNewComponent[T1](), FactoryNewComponent[T2](), FactoryNewComponent[T3](), FactoryNewComponent[T4](), FactoryNewComponent[T5](), FactoryNewComponent[T6](), FactoryNewComponent[T7](), FactoryNewComponent[T8]()
	sto := b.storage
	spec := BindingSpec{Entity: true, Components: mutable(c1, c2, c3, c4, c5, c6, c7, c8)}
	return b.bind(spec, func(tbl table.Table, n int) (int, error) {
		for i := 0; i < n; i++ {
			en, err := sto.entityAt(tbl, i)
			if err != nil {
				return i, err
			}
			fn(en, c1.Accessor.Get(i, tbl), c2.Accessor.Get(i, tbl), c3.Accessor.Get(i, tbl), c4.Accessor.Get(i, tbl), c5.Accessor.Get(i, tbl), c6.Accessor.Get(i, tbl), c7.Accessor.Get(i, tbl), c8.Accessor.Get(i, tbl))
		}
		return n, nil
	})
}
