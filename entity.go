package queries

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Entity = &entity{}

type entity struct {
	sto *storage
	table.Entry
}

// Valid reports whether the entity is still alive in its storage.
func (e *entity) Valid() bool {
	return e != nil && e.Entry != nil
}

// live resolves the entry from the storage's entry index. The embedded entry is a
// snapshot taken at creation: its row and table go stale once the entity moves
// between tables or its table compacts after a deletion.
func (e *entity) live() table.Entry {
	if !e.Valid() {
		return nil
	}
	entry, err := e.sto.entryIndex.Entry(int(e.Entry.ID()) - 1)
	if err != nil {
		return e.Entry
	}
	return entry
}

// Index returns the entity's current row, or -1 once destroyed.
func (e *entity) Index() int {
	entry := e.live()
	if entry == nil {
		return -1
	}
	return entry.Index()
}

// Table returns the table currently storing the entity, or nil once destroyed.
func (e *entity) Table() table.Table {
	entry := e.live()
	if entry == nil {
		return nil
	}
	return entry.Table()
}

func (e *entity) Components() []Component {
	if !e.Valid() {
		return nil
	}
	elementTypes := iter_util.Collect(e.Table().ElementTypes())
	components := make([]Component, len(elementTypes))
	for i, et := range elementTypes {
		components[i] = et
	}
	return components
}

func (e *entity) AddComponent(c Component) error {
	if e.sto.locked {
		return LockedStorageError{}
	}
	if !e.Valid() {
		return EntityNotFoundError{}
	}
	originTable := e.Table()
	if originTable.Contains(c) {
		return ComponentExistsError{Component: c}
	}
	e.sto.register(c)

	destMask := originTable.(mask.Maskable).Mask()
	destMask.Mark(e.sto.schema.RowIndexFor(c))

	comps := append(e.Components(), c)
	destArchetype, err := e.sto.archetypes.getOrCreate(e.sto.schema, e.sto.entryIndex, destMask, comps)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}

	if err := originTable.TransferEntries(destArchetype.table, e.Index()); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	return nil
}

func (e *entity) RemoveComponent(c Component) error {
	if e.sto.locked {
		return LockedStorageError{}
	}
	if !e.Valid() {
		return EntityNotFoundError{}
	}
	originTable := e.Table()
	if !originTable.Contains(c) {
		return ComponentNotFoundError{Component: c}
	}

	destMask := originTable.(mask.Maskable).Mask()
	destMask.Unmark(e.sto.schema.RowIndexFor(c))

	removed := e.sto.schema.RowIndexFor(c)
	kept := make([]Component, 0)
	for _, comp := range e.Components() {
		if e.sto.schema.RowIndexFor(comp) != removed {
			kept = append(kept, comp)
		}
	}
	destArchetype, err := e.sto.archetypes.getOrCreate(e.sto.schema, e.sto.entryIndex, destMask, kept)
	if err != nil {
		return fmt.Errorf("failed to get/create archetype: %w", err)
	}

	if err := originTable.TransferEntries(destArchetype.table, e.Index()); err != nil {
		return fmt.Errorf("failed to transfer entity: %w", err)
	}
	return nil
}

func (e *entity) EnqueueAddComponent(c Component) error {
	if !e.sto.locked {
		return e.AddComponent(c)
	}
	e.sto.opQueue.EnqueueComponentOp(opAddComponent, e.sto, e, c)
	return nil
}

func (e *entity) EnqueueRemoveComponent(c Component) error {
	if !e.sto.locked {
		return e.RemoveComponent(c)
	}
	e.sto.opQueue.EnqueueComponentOp(opRemoveComponent, e.sto, e, c)
	return nil
}
