package queries

import (
	"fmt"
	"strings"
)

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "storage is currently locked"
}

type EntityNotFoundError struct {
	ID int
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.ID)
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %s", componentName(e.Component))
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %s", componentName(e.Component))
}

// DeclarationConflictError reports component types that are both required and forbidden.
type DeclarationConflictError struct {
	Types []ComponentType
}

func (e DeclarationConflictError) Error() string {
	return fmt.Sprintf("declaration conflict: %s both required and forbidden", typeNames(e.Types))
}

// UnprovenComponentError reports bound component types missing from the required set.
type UnprovenComponentError struct {
	Types []ComponentType
}

func (e UnprovenComponentError) Error() string {
	return fmt.Sprintf("unproven component usage: %s bound by the callback but not required", typeNames(e.Types))
}

type ArityExceededError struct {
	Arity int
	Max   int
}

func (e ArityExceededError) Error() string {
	return fmt.Sprintf("arity exceeded: %d component bindings, at most %d supported", e.Arity, e.Max)
}

// NilBindingError reports a binding at Index that names no component type.
type NilBindingError struct {
	Index int
}

func (e NilBindingError) Error() string {
	return fmt.Sprintf("binding %d has no component type", e.Index)
}

// DuplicateBindingError reports a component type bound more than once with mutable access.
type DuplicateBindingError struct {
	Types []ComponentType
}

func (e DuplicateBindingError) Error() string {
	return fmt.Sprintf("duplicate binding: %s bound more than once with mutable access", typeNames(e.Types))
}

// StoreConsistencyError reports an entity the matcher produced whose storage could not be resolved.
type StoreConsistencyError struct {
	Archetype uint32
	Entity    int
	Type      ComponentType
	Err       error
}

func (e StoreConsistencyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "store consistency violation in archetype %d", e.Archetype)
	if e.Entity != 0 {
		fmt.Fprintf(&b, " for entity %d", e.Entity)
	}
	if e.Type != nil {
		fmt.Fprintf(&b, ": no storage for component %s", e.Type.Name())
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e StoreConsistencyError) Unwrap() error {
	return e.Err
}

type QueryAlreadyBoundError struct {
	System string
}

func (e QueryAlreadyBoundError) Error() string {
	return fmt.Sprintf("system %q already bound its query", e.System)
}

type SchedulerConfiguredError struct {
	System string
}

func (e SchedulerConfiguredError) Error() string {
	if e.System == "" {
		return "scheduler already configured"
	}
	return fmt.Sprintf("cannot add system %q: scheduler already configured", e.System)
}

type NotConfiguredError struct{}

func (e NotConfiguredError) Error() string {
	return "scheduler has not been configured"
}

type DuplicateSystemError struct {
	System string
}

func (e DuplicateSystemError) Error() string {
	return fmt.Sprintf("system %q already added", e.System)
}

type RegistryFullError struct {
	Capacity int
}

func (e RegistryFullError) Error() string {
	return fmt.Sprintf("component registry at maximum capacity (%d)", e.Capacity)
}

func typeNames(types []ComponentType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}

func componentName(c Component) string {
	if ct, ok := c.(ComponentType); ok {
		return ct.Name()
	}
	return fmt.Sprintf("%T", c)
}
