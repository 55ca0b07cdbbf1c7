package tableau

type factory struct{}

var Factory factory

func (f factory) NewScene() *Scene {
	return newScene()
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, scene *Scene) *Cursor {
	return newCursor(query, scene)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		items:       make([]T, 0, cap),
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
