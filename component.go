package queries

import (
	"github.com/TheBitDrifter/table"
)

// Component is the store-level identity of a component type: the element type a
// table allocates a column for. Builders and callbacks work with ComponentType,
// which adds the registry id and a typed storage handle.
type Component interface {
	table.ElementType
}
