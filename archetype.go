package queries

import "github.com/TheBitDrifter/table"

type archetypeID uint32

// archetype groups every entity sharing one exact component set in a single table.
type archetype struct {
	id    archetypeID
	table table.Table
}

func newArchetype(schema table.Schema, entryIndex table.EntryIndex, id archetypeID, components ...Component) (archetype, error) {
	elementTypes := make([]table.ElementType, len(components))
	for i, comp := range components {
		elementTypes[i] = comp
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		return archetype{}, err
	}
	return archetype{
		table: tbl,
		id:    id,
	}, nil
}

func (a archetype) ID() uint32 {
	return uint32(a.id)
}

func (a archetype) Table() table.Table {
	return a.table
}

// length is the number of entities currently stored in the archetype.
func (a archetype) length() int {
	if a.table == nil {
		return 0
	}
	return a.table.Length()
}

// provides reports whether every handle has a column in the archetype's table and
// returns the first that does not.
func (a archetype) provides(handles []ComponentType) (ComponentType, bool) {
	for _, h := range handles {
		if !h.Present(a.table) {
			return h, false
		}
	}
	return nil, true
}
