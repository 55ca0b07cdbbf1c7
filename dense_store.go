package tableau

// componentStore is the type-erased view of a denseStore. The scene detaches,
// shares and retargets components through it without knowing the value type.
type componentStore interface {
	typeID() ComponentTypeID
	typeName() string
	len() int
	slotEntities(index SlotIndex) []Entity
	linkEntity(index SlotIndex, e Entity)
	// unlinkEntity drops e from the slot and reports how many entities still
	// reference it.
	unlinkEntity(index SlotIndex, e Entity) int
	retargetEntity(index SlotIndex, from, to Entity)
	// removeAt swap-removes the slot. It returns the entities of the slot that
	// was moved into index; the caller must repoint them before returning.
	removeAt(index SlotIndex) []Entity
}

var _ componentStore = &denseStore[struct{}]{}

// componentSlot pairs one component value with the sorted set of entities
// referencing it.
type componentSlot[T any] struct {
	value    T
	entities []Entity
}

type denseStore[T any] struct {
	id    ComponentTypeID
	name  string
	slots []componentSlot[T]
}

func newDenseStore[T any](id ComponentTypeID, name string) *denseStore[T] {
	return &denseStore[T]{id: id, name: name}
}

func (d *denseStore[T]) typeID() ComponentTypeID {
	return d.id
}

func (d *denseStore[T]) typeName() string {
	return d.name
}

func (d *denseStore[T]) len() int {
	return len(d.slots)
}

func (d *denseStore[T]) append(slot componentSlot[T]) SlotIndex {
	d.slots = append(d.slots, slot)
	return SlotIndex(len(d.slots) - 1)
}

func (d *denseStore[T]) get(index SlotIndex) *componentSlot[T] {
	return &d.slots[index]
}

func (d *denseStore[T]) slotEntities(index SlotIndex) []Entity {
	return d.slots[index].entities
}

func (d *denseStore[T]) linkEntity(index SlotIndex, e Entity) {
	slot := &d.slots[index]
	slot.entities = insertSorted(slot.entities, e)
}

func (d *denseStore[T]) unlinkEntity(index SlotIndex, e Entity) int {
	slot := &d.slots[index]
	slot.entities, _ = removeSorted(slot.entities, e)
	return len(slot.entities)
}

func (d *denseStore[T]) retargetEntity(index SlotIndex, from, to Entity) {
	slot := &d.slots[index]
	slot.entities = replaceSorted(slot.entities, from, to)
}

func (d *denseStore[T]) removeAt(index SlotIndex) []Entity {
	last := len(d.slots) - 1
	var moved []Entity
	if int(index) != last {
		d.slots[index] = d.slots[last]
		moved = d.slots[index].entities
	}
	d.slots[last] = componentSlot[T]{}
	d.slots = shrinkToFit(d.slots[:last])
	return moved
}
