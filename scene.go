package tableau

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scene owns an entity table and the component stores of every type attached
// to its entities. A scene is not safe for concurrent use.
type Scene struct {
	id       uuid.UUID
	locks    int
	registry typeRegistry
	records  []entityRecord
	opQueue  opQueue
	log      *zap.Logger
}

func newScene() *Scene {
	id := uuid.New()
	return &Scene{
		id:       id,
		registry: newTypeRegistry(),
		opQueue:  newOpQueue(),
		log:      Config.logger.With(zap.Stringer("scene", id)),
	}
}

func (s *Scene) ID() uuid.UUID {
	return s.id
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.records)
}

// Valid reports whether e currently names a row of the entity table.
func (s *Scene) Valid(e Entity) bool {
	return e >= 0 && int(e) < len(s.records)
}

// Locked reports whether direct mutation is currently forbidden.
func (s *Scene) Locked() bool {
	return s.locks > 0
}

// Lock forbids direct mutation until the matching Unlock. Locks nest.
func (s *Scene) Lock() {
	s.locks++
}

// Unlock releases one lock. Releasing the last lock applies every queued
// operation.
func (s *Scene) Unlock() error {
	if s.locks == 0 {
		return nil
	}
	s.locks--
	if s.locks > 0 {
		return nil
	}
	return s.processOperationQueue()
}

// AddEntity appends an entity and tags it. An empty tag becomes "Entity #<id>".
func (s *Scene) AddEntity(tag string) (Entity, error) {
	if s.Locked() {
		return 0, LockedSceneError{}
	}
	// Tag must be registrable before the row exists, otherwise a full registry
	// would leave an untagged entity behind.
	if _, err := storeFor[Tag](&s.registry); err != nil {
		return 0, err
	}

	e := Entity(len(s.records))
	s.records = append(s.records, newEntityRecord())
	if tag == "" {
		tag = fmt.Sprintf("Entity #%d", e)
	}
	if err := AddComponent(s, e, Tag{Name: tag}); err != nil {
		return 0, fmt.Errorf("failed to tag entity %d: %w", e, err)
	}
	s.log.Debug("entity added", zap.Int("entity", int(e)), zap.String("tag", tag))
	return e, nil
}

// RemoveEntity detaches every component of e and swap-removes its row. The
// entity that was last takes over e's id; its previous id becomes invalid.
func (s *Scene) RemoveEntity(e Entity) error {
	if s.Locked() {
		return LockedSceneError{}
	}
	if !s.Valid(e) {
		return EntityNotFoundError{Entity: e}
	}

	for id := range s.registry.len() {
		if s.records[e].has(ComponentTypeID(id)) {
			s.detach(ComponentTypeID(id), e)
		}
	}

	last := Entity(len(s.records) - 1)
	s.records[e] = s.records[last]
	s.records[last] = entityRecord{}
	s.records = shrinkToFit(s.records[:last])

	if e != last {
		s.retargetEntity(last, e)
	}
	s.log.Debug("entity removed", zap.Int("entity", int(e)), zap.Int("moved", int(last)))
	return nil
}

// retargetEntity rewrites every back-reference of the row now stored at to,
// which was previously known as from.
func (s *Scene) retargetEntity(from, to Entity) {
	rec := &s.records[to]
	for i, store := range s.registry.stores {
		id := ComponentTypeID(i)
		index, ok := rec.slot(id)
		if !ok {
			continue
		}
		store.retargetEntity(index, from, to)
		s.registry.entityLists[id] = replaceSorted(s.registry.entityLists[id], from, to)
	}
}

// link records that e references slot index of type id.
func (s *Scene) link(id ComponentTypeID, e Entity, index SlotIndex) {
	s.records[e].mark(id, index)
	s.registry.entityLists[id] = insertSorted(s.registry.entityLists[id], e)
}

// detach moves (e, id) from Present to Absent. A slot left without entities is
// swap-removed and the entities of the slot moved into its place are
// repointed.
func (s *Scene) detach(id ComponentTypeID, e Entity) {
	rec := &s.records[e]
	index := rec.slots[id]
	store := s.registry.stores[id]

	if store.unlinkEntity(index, e) == 0 {
		for _, moved := range store.removeAt(index) {
			s.records[moved].slots[id] = index
		}
	}
	rec.unmark(id)
	s.registry.entityLists[id], _ = removeSorted(s.registry.entityLists[id], e)
}

// ComponentTypes yields the ids of every component type e has.
func (s *Scene) ComponentTypes(e Entity) iter.Seq[ComponentTypeID] {
	return func(yield func(ComponentTypeID) bool) {
		if !s.Valid(e) {
			return
		}
		for i := range s.registry.len() {
			id := ComponentTypeID(i)
			if s.records[e].has(id) && !yield(id) {
				return
			}
		}
	}
}

// ComponentNames lists the type names of e's components in id order.
func (s *Scene) ComponentNames(e Entity) []string {
	var names []string
	for id := range s.ComponentTypes(e) {
		names = append(names, s.registry.stores[id].typeName())
	}
	return names
}

// RegisteredTypes returns the number of component types this scene has
// assigned ids to.
func (s *Scene) RegisteredTypes() int {
	return s.registry.len()
}

// StoreLen returns the number of distinct component values stored for a type
// id. Shared components count once.
func (s *Scene) StoreLen(id ComponentTypeID) int {
	if int(id) >= s.registry.len() {
		return 0
	}
	return s.registry.stores[id].len()
}
