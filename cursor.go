package queries

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, storage Storage) *Cursor {
	return &Cursor{
		query:   query,
		storage: storage,
	}
}

func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	if c.storageIndex == 0 && c.entityIndex == 0 {
		c.refresh()
	}
	for c.storageIndex < len(c.matchedStorages) {
		c.currentArchetype = c.matchedStorages[c.storageIndex]
		c.remaining = c.currentArchetype.table.Length()

		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.storageIndex++
		c.entityIndex = 0
	}
	c.Reset()
	return false
}

func (c *Cursor) Entities() iter.Seq2[int, table.Table] {
	return func(yield func(int, table.Table) bool) {
		defer c.Reset()
		for _, arch := range c.archetypes() {
			c.currentArchetype = arch
			c.remaining = arch.table.Length()
			for c.entityIndex = 0; c.entityIndex < c.remaining; c.entityIndex++ {
				if !yield(c.entityIndex, arch.table) {
					return
				}
			}
		}
	}
}

// archetypes returns every matching archetype, evaluating only those created since
// the previous call.
func (c *Cursor) archetypes() []archetype {
	c.refresh()
	return c.matchedStorages
}

func (c *Cursor) refresh() {
	all := c.storage.archetypeList()
	for _, arch := range all[c.seen:] {
		if c.query.Evaluate(arch, c.storage) {
			c.matchedStorages = append(c.matchedStorages, arch)
		}
	}
	c.seen = len(all)
}

func (c *Cursor) Reset() {
	c.storageIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.currentArchetype = archetype{}
}

// CurrentEntity returns the entity the cursor is positioned on.
func (c *Cursor) CurrentEntity() (Entity, error) {
	en, err := c.storage.entityAt(c.currentArchetype.table, c.entityIndex-1)
	if err != nil {
		return nil, err
	}
	return en, nil
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

func (c *Cursor) TotalMatched() int {
	total := 0
	for _, arch := range c.archetypes() {
		total += arch.length()
	}
	return total
}
