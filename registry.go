package queries

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// MaxComponentTypes bounds the number of distinct component types in a process.
const MaxComponentTypes = 256

var components = newRegistry(MaxComponentTypes)

// registry hands out one AccessibleComponent per Go type so identities compare equal
// across storages, builders and callbacks.
type registry struct {
	mu     sync.Mutex
	byType map[reflect.Type]ComponentTypeID
	cache  *SimpleCache[ComponentType]
}

func newRegistry(capacity int) *registry {
	return &registry{
		byType: make(map[reflect.Type]ComponentTypeID),
		cache:  FactoryNewCache[ComponentType](capacity).(*SimpleCache[ComponentType]),
	}
}

func registerComponent[T any](r *registry) AccessibleComponent[T] {
	t := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Types are matched by identity; names collide for same-named local types
	if id, ok := r.byType[t]; ok {
		return (*r.cache.GetItem32(uint32(id - 1))).(AccessibleComponent[T])
	}

	iden := table.FactoryNewElementType[T]()
	id := ComponentTypeID(r.cache.Len() + 1)
	c := AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
		id:        id,
		name:      t.String(),
	}
	if _, err := r.cache.Register(typeKey(t, id), c); err != nil {
		panic(err)
	}
	r.byType[t] = id
	return c
}

func (r *registry) lookup(id ComponentTypeID) (ComponentType, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == 0 || int(id) > r.cache.Len() {
		return nil, false
	}
	return *r.cache.GetItem32(uint32(id - 1)), true
}

// typeKey names a registered type in the cache. The id suffix keeps same-named
// types apart.
func typeKey(t reflect.Type, id ComponentTypeID) string {
	name := t.String()
	if t.PkgPath() != "" {
		name = t.PkgPath() + "." + t.Name()
	}
	return fmt.Sprintf("%s#%d", name, id)
}
