package queries

import (
	"fmt"
)

type operation struct {
	typ      operationType
	amount   int
	comps    []Component
	entities []Entity
	sto      Storage
}

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent
	opCancelled
)

type opKey struct {
	entity Entity
}

// opQueue holds structural changes requested while the storage is locked.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[opKey]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[opKey]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) enqueueOp(op operation) {
	switch op.typ {
	case opCreate:
		q.createOps = append(q.createOps, op)
	case opDestroy:
		q.destroyOps = append(q.destroyOps, op)
	case opAddComponent, opRemoveComponent:
		q.componentOps = append(q.componentOps, op)
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0
}

func (q *opQueue) reset() {
	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

// processOperationQueue applies creates, then component changes, then destroys.
// The queue is cleared even when an operation fails.
func (s *storage) processOperationQueue() error {
	if s.opQueue.empty() {
		return nil
	}
	defer s.opQueue.reset()

	for _, op := range s.opQueue.createOps {
		if _, err := s.NewEntities(op.amount, op.comps...); err != nil {
			return fmt.Errorf("failed to process queued entity creation: %w", err)
		}
	}

	for _, op := range s.opQueue.componentOps {
		if op.typ == opCancelled {
			continue
		}
		entity := op.entities[0]
		if !entity.Valid() {
			continue
		}
		switch op.typ {
		case opAddComponent:
			if err := entity.AddComponent(op.comps[0]); err != nil {
				return fmt.Errorf("failed to add queued component: %w", err)
			}
		case opRemoveComponent:
			if err := entity.RemoveComponent(op.comps[0]); err != nil {
				return fmt.Errorf("failed to remove queued component: %w", err)
			}
		}
	}

	for _, op := range s.opQueue.destroyOps {
		if len(op.entities) > 0 {
			if err := op.sto.DestroyEntities(op.entities...); err != nil {
				return fmt.Errorf("failed to delete queued entries: %w", err)
			}
		}
	}
	return nil
}

func (q *opQueue) EnqueueDestroy(sto Storage, entries []Entity) {
	var newEntities []Entity
	for _, entity := range entries {
		key := opKey{entity: entity}
		if _, exists := q.pendingDestroy[key]; exists {
			continue
		}
		newEntities = append(newEntities, entity)
		q.pendingDestroy[key] = struct{}{}

		// Component changes on a doomed entity are dropped
		if idx, hasMods := q.pendingMods[key]; hasMods {
			q.componentOps[idx].typ = opCancelled
			delete(q.pendingMods, key)
		}
	}

	if len(newEntities) > 0 {
		q.enqueueOp(operation{
			typ:      opDestroy,
			entities: newEntities,
			sto:      sto,
		})
	}
}

func (q *opQueue) EnqueueComponentOp(typ operationType, sto Storage, entity Entity, comp Component) {
	key := opKey{entity: entity}

	if _, isDestroyed := q.pendingDestroy[key]; isDestroyed {
		return
	}

	// Later requests for the same entity replace the pending one
	if existingIdx, exists := q.pendingMods[key]; exists {
		existingOp := &q.componentOps[existingIdx]
		existingOp.comps = []Component{comp}
		existingOp.typ = typ
		return
	}

	q.pendingMods[key] = len(q.componentOps)
	q.enqueueOp(operation{
		typ:      typ,
		entities: []Entity{entity},
		sto:      sto,
		comps:    []Component{comp},
	})
}
