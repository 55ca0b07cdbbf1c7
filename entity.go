package tableau

import (
	"slices"

	"github.com/TheBitDrifter/mask"
)

// Entity is a handle to a row of a scene's entity table. Its value is the row
// index, so removing an entity recycles the id of the last row.
type Entity int

// SlotIndex addresses a slot in one component type's dense store.
type SlotIndex int32

const noSlot SlotIndex = -1

type entityRecord struct {
	presence mask.Mask
	slots    [MaxComponentTypes]SlotIndex
}

func newEntityRecord() entityRecord {
	rec := entityRecord{}
	for i := range rec.slots {
		rec.slots[i] = noSlot
	}
	return rec
}

func (rec *entityRecord) has(id ComponentTypeID) bool {
	var bit mask.Mask
	bit.Mark(uint32(id))
	return rec.presence.ContainsAll(bit)
}

func (rec *entityRecord) slot(id ComponentTypeID) (SlotIndex, bool) {
	if !rec.has(id) {
		return noSlot, false
	}
	return rec.slots[id], true
}

func (rec *entityRecord) mark(id ComponentTypeID, index SlotIndex) {
	rec.presence.Mark(uint32(id))
	rec.slots[id] = index
}

func (rec *entityRecord) unmark(id ComponentTypeID) {
	rec.presence.Unmark(uint32(id))
	rec.slots[id] = noSlot
}

// Sorted entity lists back both the per-slot membership and the per-type
// global lists.

func insertSorted(list []Entity, e Entity) []Entity {
	i, found := slices.BinarySearch(list, e)
	if found {
		return list
	}
	return slices.Insert(list, i, e)
}

func removeSorted(list []Entity, e Entity) ([]Entity, bool) {
	i, found := slices.BinarySearch(list, e)
	if !found {
		return list, false
	}
	return slices.Delete(list, i, i+1), true
}

func replaceSorted(list []Entity, from, to Entity) []Entity {
	list, _ = removeSorted(list, from)
	return insertSorted(list, to)
}

// shrinkToFit reallocates s when its spare capacity exceeds the configured
// threshold.
func shrinkToFit[S ~[]E, E any](s S) S {
	if cap(s)-len(s) <= Config.shrinkThreshold {
		return s
	}
	shrunk := make(S, len(s))
	copy(shrunk, s)
	return shrunk
}
