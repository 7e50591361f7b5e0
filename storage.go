package queries

import (
	"fmt"
	"slices"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ Storage = &storage{}

type storage struct {
	locked     bool
	schema     table.Schema
	entryIndex table.EntryIndex
	archetypes *archetypes
	opQueue    opQueue

	// indexed by entry id - 1; nil once destroyed
	entities []*entity
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

func newStorage(schema table.Schema) Storage {
	archetypes := &archetypes{
		nextID:           1,
		idsGroupedByMask: make(map[mask.Mask]archetypeID),
	}
	storage := &storage{
		archetypes: archetypes,
		schema:     schema,
		entryIndex: table.Factory.NewEntryIndex(),
		opQueue:    newOpQueue(),
	}
	return storage
}

func (sto *storage) Entity(id int) (Entity, error) {
	if id < 1 || id > len(sto.entities) || sto.entities[id-1] == nil {
		return nil, EntityNotFoundError{ID: id}
	}
	return sto.entities[id-1], nil
}

func (sto *storage) NewEntities(n int, components ...Component) ([]Entity, error) {
	if sto.locked {
		return nil, LockedStorageError{}
	}
	sto.register(components...)

	var entityMask mask.Mask
	for _, component := range components {
		entityMask.Mark(sto.schema.RowIndexFor(component))
	}
	entityArchetype, err := sto.archetypes.getOrCreate(sto.schema, sto.entryIndex, entityMask, components)
	if err != nil {
		return nil, err
	}

	entries, err := entityArchetype.table.NewEntries(n)
	if err != nil {
		return nil, err
	}

	entities := make([]Entity, n)
	for i, entry := range entries {
		en := &entity{Entry: entry, sto: sto}
		sto.track(en)
		entities[i] = en
	}
	return entities, nil
}

// track places en at its entry id, growing the slice by doubling when needed.
func (sto *storage) track(en *entity) {
	index := int(en.ID()) - 1
	if index >= len(sto.entities) {
		neededCap := index + 1
		if cap(sto.entities) < neededCap {
			grown := make([]*entity, len(sto.entities), max(neededCap, 2*cap(sto.entities)))
			copy(grown, sto.entities)
			sto.entities = grown
		}
		sto.entities = sto.entities[:neededCap]
	}
	sto.entities[index] = en
}

func (sto *storage) RowIndexFor(c Component) uint32 {
	return sto.schema.RowIndexFor(c)
}

func (sto *storage) Locked() bool {
	return sto.locked
}

func (sto *storage) Lock() {
	sto.locked = true
}

// Unlock releases the storage and applies every queued structural operation.
func (sto *storage) Unlock() error {
	sto.locked = false
	return sto.processOperationQueue()
}

func (sto *storage) EnqueueNewEntities(amount int, components ...Component) error {
	if !sto.locked {
		_, err := sto.NewEntities(amount, components...)
		if err != nil {
			return fmt.Errorf("failed to create entities directly: %w", err)
		}
		return nil
	}

	sto.opQueue.enqueueOp(operation{
		typ:    opCreate,
		amount: amount,
		comps:  components,
	})
	return nil
}

func (sto *storage) DestroyEntities(entities ...Entity) error {
	if sto.locked {
		return LockedStorageError{}
	}
	// Rows are resolved before any deletion moves them
	tableGroups := make(map[table.Table][]int)
	var doomed []*entity
	seen := make(map[*entity]struct{}, len(entities))
	for _, en := range entities {
		e, ok := en.(*entity)
		if !ok || !e.Valid() || e.sto != sto {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		tbl := e.Table()
		tableGroups[tbl] = append(tableGroups[tbl], e.Index())
		doomed = append(doomed, e)
	}
	for tbl, rows := range tableGroups {
		// Highest rows first, so a swap-with-last never moves a row still to be deleted
		slices.Sort(rows)
		slices.Reverse(rows)
		if _, err := tbl.DeleteEntries(rows...); err != nil {
			return fmt.Errorf("failed to delete entries: %w", err)
		}
	}
	for _, e := range doomed {
		index := int(e.ID()) - 1
		if index >= 0 && index < len(sto.entities) && sto.entities[index] == e {
			sto.entities[index] = nil
		}
		e.Entry = nil
	}
	return nil
}

func (sto *storage) EnqueueDestroyEntities(entities ...Entity) error {
	if !sto.locked {
		return sto.DestroyEntities(entities...)
	}
	sto.opQueue.EnqueueDestroy(sto, entities)
	return nil
}

func (sto *storage) archetypeList() []archetype {
	return sto.archetypes.asSlice
}

func (sto *storage) register(components ...Component) {
	for _, component := range components {
		sto.schema.Register(component)
	}
}

// entityAt resolves the entity stored at row of tbl.
func (sto *storage) entityAt(tbl table.Table, row int) (*entity, error) {
	entry, err := tbl.Entry(row)
	if err != nil {
		return nil, err
	}
	id := int(entry.ID())
	if id < 1 || id > len(sto.entities) || sto.entities[id-1] == nil {
		return nil, EntityNotFoundError{ID: id}
	}
	return sto.entities[id-1], nil
}

func (a *archetypes) getOrCreate(schema table.Schema, entryIndex table.EntryIndex, m mask.Mask, components []Component) (archetype, error) {
	if id, found := a.idsGroupedByMask[m]; found {
		return a.asSlice[id-1], nil
	}
	created, err := newArchetype(schema, entryIndex, a.nextID, components...)
	if err != nil {
		return archetype{}, err
	}
	a.asSlice = append(a.asSlice, created)
	a.idsGroupedByMask[m] = a.nextID
	a.nextID++
	return created, nil
}
