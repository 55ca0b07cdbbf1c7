package tableau

import (
	"reflect"
)

// MaxComponentTypes bounds the number of distinct component types one scene
// can register. It is the width of every entity's presence bitset.
const MaxComponentTypes = 16

// ComponentTypeID is the small integer a scene assigns to a component type on
// first use. Ids are never reclaimed.
type ComponentTypeID uint32

// typeRegistry assigns ids per scene and owns one dense store and one sorted
// entity list per registered type.
type typeRegistry struct {
	ids         map[reflect.Type]ComponentTypeID
	stores      []componentStore
	entityLists [][]Entity
}

func newTypeRegistry() typeRegistry {
	return typeRegistry{
		ids: make(map[reflect.Type]ComponentTypeID),
	}
}

func (r *typeRegistry) len() int {
	return len(r.stores)
}

func (r *typeRegistry) lookup(t reflect.Type) (ComponentTypeID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// storeFor returns the dense store for T, registering T on first use.
func storeFor[T any](r *typeRegistry) (*denseStore[T], error) {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return r.stores[id].(*denseStore[T]), nil
	}
	if len(r.stores) >= MaxComponentTypes {
		return nil, TypeRegistryExhaustedError{Component: t.String(), Max: MaxComponentTypes}
	}

	id := ComponentTypeID(len(r.stores))
	store := newDenseStore[T](id, t.String())
	r.ids[t] = id
	r.stores = append(r.stores, store)
	r.entityLists = append(r.entityLists, nil)
	return store, nil
}

// existingStoreFor never registers T.
func existingStoreFor[T any](r *typeRegistry) (*denseStore[T], bool) {
	id, ok := r.ids[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.stores[id].(*denseStore[T]), true
}

func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
