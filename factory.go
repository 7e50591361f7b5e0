package queries

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewStorage(schema table.Schema) Storage {
	return newStorage(schema)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, storage Storage) *Cursor {
	return newCursor(query, storage)
}

// NewQueryBuilder returns a builder whose terminal call is not tied to any system.
func (f factory) NewQueryBuilder(storage Storage) *QueryBuilder {
	return newQueryBuilder(storage, nil)
}

func (f factory) NewScheduler(storage Storage) *Scheduler {
	return newScheduler(storage)
}

// ComponentType resolves a registered component type, and with it its storage handle, by id.
func (f factory) ComponentType(id ComponentTypeID) (ComponentType, bool) {
	return components.lookup(id)
}

// FactoryNewComponent returns the component type for T. Repeated calls with the same T
// return the same identity.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return registerComponent[T](components)
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
