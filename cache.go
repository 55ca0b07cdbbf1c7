package tableau

var _ Cache[any] = &SimpleCache[any]{}

func (c *SimpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *SimpleCache[T]) GetItem(index int) *T {
	return &c.items[index]
}

func (c *SimpleCache[T]) GetItem32(index uint32) *T {
	return &c.items[index]
}

// Lookup resolves a location, checking that its index still holds its key.
func (c *SimpleCache[T]) Lookup(loc CacheLocation) (*T, bool) {
	index, ok := c.itemIndices[loc.Key]
	if !ok || uint32(index) != loc.Index {
		return nil, false
	}
	return &c.items[index], true
}

// Register stores item under key. Registering an existing key returns its
// location and leaves the stored item untouched.
func (c *SimpleCache[T]) Register(key string, item T) (CacheLocation, error) {
	if index, ok := c.itemIndices[key]; ok {
		return CacheLocation{Key: key, Index: uint32(index)}, nil
	}
	if len(c.items) >= c.maxCapacity {
		return CacheLocation{}, CacheCapacityError{Key: key, Capacity: c.maxCapacity}
	}

	index := len(c.items)
	c.itemIndices[key] = index
	c.items = append(c.items, item)
	return CacheLocation{Key: key, Index: uint32(index)}, nil
}

func (c *SimpleCache[T]) Len() int {
	return len(c.items)
}

func (c *SimpleCache[T]) Clear() {
	c.items = make([]T, 0, c.maxCapacity)
	c.itemIndices = make(map[string]int)
}
