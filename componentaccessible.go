package tableau

import "reflect"

var _ Component = AccessibleComponent[struct{}]{}

func (c AccessibleComponent[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c AccessibleComponent[T]) String() string {
	return typeNameOf[T]()
}

// ID returns the id scene assigns to T, registering it on first use
func (c AccessibleComponent[T]) ID(scene *Scene) (ComponentTypeID, error) {
	return ComponentTypeIDOf[T](scene)
}

func (c AccessibleComponent[T]) Add(scene *Scene, e Entity, value T) error {
	return AddComponent(scene, e, value)
}

func (c AccessibleComponent[T]) Share(scene *Scene, source, target Entity) error {
	return ShareComponent[T](scene, source, target)
}

func (c AccessibleComponent[T]) Remove(scene *Scene, e Entity) error {
	return RemoveComponent[T](scene, e)
}

func (c AccessibleComponent[T]) Has(scene *Scene, e Entity) bool {
	return HasComponent[T](scene, e)
}

// GetFromEntity retrieves the component value for the specified entity
func (c AccessibleComponent[T]) GetFromEntity(scene *Scene, e Entity) (*T, error) {
	return GetComponent[T](scene, e)
}

// GetFromCursor retrieves the component value for the entity at the cursor
// position. It fails outside iteration.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) (*T, error) {
	if !cursor.initialized {
		return nil, InactiveCursorError{}
	}
	return GetComponent[T](cursor.scene, cursor.current)
}

// CheckCursor determines if the entity at the cursor position has T
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return cursor.initialized && HasComponent[T](cursor.scene, cursor.current)
}

func (c AccessibleComponent[T]) Entities(scene *Scene) []Entity {
	return ComponentEntities[T](scene)
}
