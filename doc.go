/*
Package queries compiles component queries over an archetype entity store and runs
them with direct, mutable access to the bound components.

A query is declared once, validated once and then executed every tick. Validation
proves that every component the callback binds is in the required set, so the
iteration loop never checks presence per entity.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data container that defines entity attributes.
  - Archetype: A collection of entities sharing the same component types.
  - Criteria: Required and forbidden component types, plus optional filter nodes.
  - CompiledQuery: Validated criteria, cached storage handles and the callback.
  - Scheduler: Configures systems once and runs their queries every tick.

Basic Usage:

	schema := table.Factory.NewSchema()
	storage := queries.Factory.NewStorage(schema)

	position := queries.FactoryNewComponent[Position]()
	velocity := queries.FactoryNewComponent[Velocity]()
	frozen := queries.FactoryNewComponent[Frozen]()

	storage.NewEntities(100, position, velocity)

	b := queries.Factory.NewQueryBuilder(storage).
		RequireAll(position, velocity).
		Forbid(frozen)

	move, err := queries.ForEach2(b, func(pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})
	if err != nil {
		// declaration conflict, unproven component or arity error
	}
	for range ticks {
		if err := move.Run(); err != nil {
			// store consistency violation; the pass was aborted
		}
	}

Callbacks may bind up to MaxArity components. ForEachN receives component pointers,
ForEachEntityN receives the entity first and ForEachDynamic accepts a BindingSpec
built at runtime.

While a query runs the storage is locked. Structural changes made from a callback
must use the Enqueue methods and are applied when the pass ends, so entities created
during a pass are first visited on the next one.
*/
package queries
