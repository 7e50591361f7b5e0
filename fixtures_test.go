package queries

import (
	"testing"

	"github.com/TheBitDrifter/table"
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

type Health struct {
	Value int
}

type Frozen struct {
	Since int
}

// Single-letter components for criteria tables
type (
	compA struct{ value int }
	compB struct{ value int }
	compC struct{ value int }
	compD struct{ value int }
	compE struct{ value int }
	compF struct{ value int }
	compG struct{ value int }
	compH struct{ value int }
	compI struct{ value int }
)

func newTestStorage(t testing.TB) Storage {
	t.Helper()
	return Factory.NewStorage(table.Factory.NewSchema())
}

func mustEntities(t testing.TB, sto Storage, n int, comps ...Component) []Entity {
	t.Helper()
	entities, err := sto.NewEntities(n, comps...)
	if err != nil {
		t.Fatalf("Failed to create entities: %v", err)
	}
	return entities
}

func ids(entities ...Entity) []int {
	out := make([]int, len(entities))
	for i, en := range entities {
		out[i] = int(en.ID())
	}
	return out
}
