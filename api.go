package queries

import (
	"iter"
	"time"

	"github.com/TheBitDrifter/table"
)

// Storage is the entity-component store queries run against.
type Storage interface {
	Entity(id int) (Entity, error)
	NewEntities(int, ...Component) ([]Entity, error)
	EnqueueNewEntities(int, ...Component) error
	DestroyEntities(...Entity) error
	EnqueueDestroyEntities(...Entity) error
	RowIndexFor(Component) uint32
	Locked() bool
	Lock()
	Unlock() error

	archetypeList() []archetype
	register(...Component)
	entityAt(tbl table.Table, row int) (*entity, error)
}

type Entity interface {
	table.Entry
	Valid() bool
	Components() []Component
	AddComponent(Component) error
	RemoveComponent(Component) error
	EnqueueAddComponent(Component) error
	EnqueueRemoveComponent(Component) error
}

// ComponentTypeID identifies a component type across every storage in the process.
// Two ids are equal iff they denote the same Go type. The zero value is never assigned.
type ComponentTypeID uint32

// ComponentType is a registered component together with its storage handle.
type ComponentType interface {
	Component
	TypeID() ComponentTypeID
	Name() string
	Present(tbl table.Table) bool

	pointer(row int, tbl table.Table) any
}

type Archetype interface {
	ID() uint32
	Table() table.Table
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

// QueryNode is the native filter representation of the store.
type QueryNode interface {
	Evaluate(archetype Archetype, storage Storage) bool
}

// System declares a single query when its owning scheduler is configured.
type System interface {
	Configure(b *QueryBuilder) error
}

// Ticker is implemented by systems that need the frame delta before their query runs.
type Ticker interface {
	Tick(dt time.Duration)
}

type iCursor interface {
	Entities() iter.Seq2[int, table.Table]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
	Len() int
}

// Warning: internal Dependencies abound!
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The storage to iterate over
	storage Storage

	// Current iteration state
	currentArchetype archetype
	storageIndex     int
	entityIndex      int
	remaining        int

	// Archetypes are append-only, so only those past seen need evaluating
	seen            int
	matchedStorages []archetype
}

type AccessibleComponent[T any] struct {
	Component
	table.Accessor[T] // concrete.

	id   ComponentTypeID
	name string
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
