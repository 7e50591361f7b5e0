package queries

import (
	"testing"
)

// TestQueryFiltering tests the basic query filtering capabilities
func TestQueryFiltering(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	type entitySetup struct {
		components []Component
		count      int
	}

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		build           func(q Query) QueryNode
		expectedMatches int
	}{
		{
			name: "And query matches exact",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			build:           func(q Query) QueryNode { return q.And(posComp, velComp) },
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			build:           func(q Query) QueryNode { return q.Or(posComp, velComp) },
			expectedMatches: 30,
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
				{[]Component{healthComp}, 20},
			},
			build:           func(q Query) QueryNode { return q.Not(velComp) },
			expectedMatches: 30,
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp, healthComp}, 5},
				{[]Component{posComp, velComp}, 10},
				{[]Component{posComp, healthComp}, 15},
				{[]Component{velComp, healthComp}, 20},
				{[]Component{posComp}, 25},
			},
			build: func(q Query) QueryNode {
				// (Position AND Velocity) OR (Position AND Health)
				return q.Or(q.And(posComp, velComp), q.And(posComp, healthComp))
			},
			expectedMatches: 30,
		},
		{
			name: "And with nested not",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
			},
			build:           func(q Query) QueryNode { return q.And(posComp, q.Not(velComp)) },
			expectedMatches: 10,
		},
		{
			name: "Function node",
			entitySetups: []entitySetup{
				{[]Component{posComp}, 3},
				{[]Component{velComp}, 4},
			},
			build: func(q Query) QueryNode {
				return QueryFunc(func(a Archetype, _ Storage) bool { return a.Table().Contains(velComp) })
			},
			expectedMatches: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sto := newTestStorage(t)
			for _, setup := range tt.entitySetups {
				mustEntities(t, sto, setup.count, setup.components...)
			}

			cursor := Factory.NewCursor(tt.build(Factory.NewQuery()), sto)
			matchCount := 0
			for cursor.Next() {
				matchCount++
			}

			if matchCount != tt.expectedMatches {
				t.Errorf("Query matched %d entities, want %d", matchCount, tt.expectedMatches)
			}
			if total := cursor.TotalMatched(); total != tt.expectedMatches {
				t.Errorf("TotalMatched() = %d, want %d", total, tt.expectedMatches)
			}
		})
	}
}

// TestCursorSeesNewArchetypes tests that a cursor picks up archetypes created after its first pass
func TestCursorSeesNewArchetypes(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()
	sto := newTestStorage(t)

	mustEntities(t, sto, 2, posComp)
	cursor := Factory.NewCursor(Factory.NewQuery().And(posComp), sto)
	if got := cursor.TotalMatched(); got != 2 {
		t.Fatalf("TotalMatched() = %d, want 2", got)
	}

	mustEntities(t, sto, 3, posComp, velComp)
	mustEntities(t, sto, 4, healthComp)
	if got := cursor.TotalMatched(); got != 5 {
		t.Errorf("TotalMatched() after new archetype = %d, want 5", got)
	}

	visits := 0
	for cursor.Next() {
		pos := posComp.GetFromCursor(cursor)
		pos.X++
		visits++
	}
	// Second pass reuses the cursor
	for cursor.Next() {
		if posComp.GetFromCursor(cursor).X != 1 {
			t.Fatalf("mutation from first pass not visible")
		}
	}
	if visits != 5 {
		t.Errorf("visited %d entities, want 5", visits)
	}
}

func TestCursorEntities(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	sto := newTestStorage(t)
	mustEntities(t, sto, 3, posComp)
	mustEntities(t, sto, 2, posComp, velComp)

	cursor := Factory.NewCursor(Factory.NewQuery().And(posComp), sto)
	count := 0
	for row, tbl := range cursor.Entities() {
		posComp.Accessor.Get(row, tbl).Y = 7
		count++
	}
	if count != 5 {
		t.Errorf("Entities() yielded %d rows, want 5", count)
	}

	for cursor.Next() {
		if ok, pos := posComp.GetFromCursorSafe(cursor); !ok || pos.Y != 7 {
			t.Errorf("row not updated through Entities()")
		}
		if velComp.CheckCursor(cursor) && cursor.RemainingInArchetype() >= 2 {
			t.Errorf("RemainingInArchetype() = %d inside a two-row archetype", cursor.RemainingInArchetype())
		}
	}
}
