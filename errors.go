package tableau

import "fmt"

type LockedSceneError struct{}

func (e LockedSceneError) Error() string {
	return "scene is currently locked"
}

// InactiveCursorError is returned when a cursor is read before iteration
// starts or after it ends.
type InactiveCursorError struct{}

func (e InactiveCursorError) Error() string {
	return "cursor is not positioned on an entity"
}

type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.Entity)
}

type ComponentExistsError struct {
	Component string
	Entity    Entity
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity %d: %s", e.Entity, e.Component)
}

type ComponentNotFoundError struct {
	Component string
	Entity    Entity
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %s", e.Entity, e.Component)
}

// TypeRegistryExhaustedError is returned when a scene is asked to register
// more distinct component types than the presence bitset can hold.
type TypeRegistryExhaustedError struct {
	Component string
	Max       int
}

func (e TypeRegistryExhaustedError) Error() string {
	return fmt.Sprintf("cannot register component %s: registry holds at most %d types", e.Component, e.Max)
}

type CacheCapacityError struct {
	Key      string
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d), cannot register %q", e.Capacity, e.Key)
}
