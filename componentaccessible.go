package queries

import "github.com/TheBitDrifter/table"

var _ ComponentType = AccessibleComponent[struct{}]{}

// TypeID returns the process-wide identity of the component type
func (c AccessibleComponent[T]) TypeID() ComponentTypeID {
	return c.id
}

// Name returns the Go type name the component was registered under
func (c AccessibleComponent[T]) Name() string {
	return c.name
}

// Present reports whether tbl stores this component
func (c AccessibleComponent[T]) Present(tbl table.Table) bool {
	return c.Accessor.Check(tbl)
}

func (c AccessibleComponent[T]) pointer(row int, tbl table.Table) any {
	return c.Accessor.Get(row, tbl)
}

// GetFromCursor retrieves a component value for the entity at the cursor position
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return c.Accessor.Get(
		cursor.entityIndex-1,
		cursor.currentArchetype.table,
	)
}

// GetFromCursorSafe safely retrieves a component value, checking if the component exists
// Returns a boolean indicating success and the component pointer if found
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	ok := c.Accessor.Check(cursor.currentArchetype.table)
	if ok {
		return true, c.GetFromCursor(cursor)
	}
	return false, nil
}

// CheckCursor determines if the component exists in the archetype at the cursor position
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return c.Accessor.Check(cursor.currentArchetype.table)
}

// GetFromEntity retrieves a component value for the specified entity
func (c AccessibleComponent[T]) GetFromEntity(entity Entity) *T {
	return c.Accessor.Get(entity.Index(), entity.Table())
}

// GetFromEntitySafe is GetFromEntity for entities that may be dead or lack the component
func (c AccessibleComponent[T]) GetFromEntitySafe(entity Entity) (*T, error) {
	if entity == nil || !entity.Valid() {
		return nil, EntityNotFoundError{}
	}
	if !c.Accessor.Check(entity.Table()) {
		return nil, ComponentNotFoundError{Component: c}
	}
	return c.GetFromEntity(entity), nil
}
