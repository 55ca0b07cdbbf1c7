package tableau

import (
	"go.uber.org/zap"
)

// ComponentTypeIDOf returns the id s assigns to T, registering T on first use.
func ComponentTypeIDOf[T any](s *Scene) (ComponentTypeID, error) {
	store, err := storeFor[T](&s.registry)
	if err != nil {
		s.log.Error("component type registration failed", zap.Error(err))
		return 0, err
	}
	return store.id, nil
}

// AddComponent attaches value to e in a new, unshared slot. Attaching a
// Rendering component also attaches a default Transform when e has none.
func AddComponent[T any](s *Scene, e Entity, value T) error {
	if s.Locked() {
		return LockedSceneError{}
	}
	if !s.Valid(e) {
		return EntityNotFoundError{Entity: e}
	}
	store, err := storeFor[T](&s.registry)
	if err != nil {
		s.log.Error("component type registration failed", zap.Error(err))
		return err
	}
	if s.records[e].has(store.id) {
		s.log.Debug("component already present",
			zap.Int("entity", int(e)),
			zap.String("component", store.name),
			zap.Uint32("id", uint32(store.id)),
		)
		return ComponentExistsError{Component: store.name, Entity: e}
	}
	if err := s.ensureDependencies(e, value); err != nil {
		return err
	}

	index := store.append(componentSlot[T]{value: value, entities: []Entity{e}})
	s.link(store.id, e, index)
	return nil
}

// ShareComponent makes target reference source's T slot. No value is copied:
// a change made through either entity is visible through both.
func ShareComponent[T any](s *Scene, source, target Entity) error {
	if s.Locked() {
		return LockedSceneError{}
	}
	for _, e := range [...]Entity{source, target} {
		if !s.Valid(e) {
			return EntityNotFoundError{Entity: e}
		}
	}
	store, ok := existingStoreFor[T](&s.registry)
	if !ok {
		return ComponentNotFoundError{Component: typeNameOf[T](), Entity: source}
	}
	index, ok := s.records[source].slot(store.id)
	if !ok {
		return ComponentNotFoundError{Component: store.name, Entity: source}
	}
	if s.records[target].has(store.id) {
		s.log.Debug("component already present",
			zap.Int("entity", int(target)),
			zap.String("component", store.name),
		)
		return ComponentExistsError{Component: store.name, Entity: target}
	}
	if err := s.ensureDependencies(target, store.get(index).value); err != nil {
		return err
	}

	store.linkEntity(index, target)
	s.link(store.id, target, index)
	return nil
}

// RemoveComponent detaches T from e. It is a no-op when e has no T.
func RemoveComponent[T any](s *Scene, e Entity) error {
	if s.Locked() {
		return LockedSceneError{}
	}
	if !s.Valid(e) {
		return EntityNotFoundError{Entity: e}
	}
	store, ok := existingStoreFor[T](&s.registry)
	if !ok || !s.records[e].has(store.id) {
		return nil
	}
	s.detach(store.id, e)
	return nil
}

// HasComponent reports whether e has a T. Invalid entities have nothing.
func HasComponent[T any](s *Scene, e Entity) bool {
	if !s.Valid(e) {
		return false
	}
	store, ok := existingStoreFor[T](&s.registry)
	if !ok {
		return false
	}
	return s.records[e].has(store.id)
}

// GetComponent returns e's T. The pointer aliases the dense store and is only
// valid until the next add, share or remove of a T.
func GetComponent[T any](s *Scene, e Entity) (*T, error) {
	if !s.Valid(e) {
		return nil, EntityNotFoundError{Entity: e}
	}
	store, ok := existingStoreFor[T](&s.registry)
	if !ok {
		return nil, ComponentNotFoundError{Component: typeNameOf[T](), Entity: e}
	}
	index, ok := s.records[e].slot(store.id)
	if !ok {
		return nil, ComponentNotFoundError{Component: store.name, Entity: e}
	}
	return &store.get(index).value, nil
}

// ComponentEntities returns the sorted entities that have a T. The slice is a
// view into the scene: it must not be modified and is invalidated by the next
// mutation of T or entity removal. Iterate through a Cursor to have mutations
// deferred instead.
func ComponentEntities[T any](s *Scene) []Entity {
	store, ok := existingStoreFor[T](&s.registry)
	if !ok {
		return nil
	}
	list := s.registry.entityLists[store.id]
	return list[:len(list):len(list)]
}

// ensureDependencies attaches the components value's type implies.
func (s *Scene) ensureDependencies(e Entity, value any) error {
	if _, ok := value.(Rendering); !ok {
		return nil
	}
	if HasComponent[Transform](s, e) {
		return nil
	}
	return AddComponent(s, e, NewTransform())
}
