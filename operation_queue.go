package tableau

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/multierr"
)

type operation struct {
	typ    operationType
	tag    string
	entity Entity
	apply  func(*Scene) error
}

type operationType int

const (
	opNone operationType = iota
	opCreate
	opDestroy
	opAddComponent
	opShareComponent
	opRemoveComponent
)

type opKey struct {
	entity    Entity
	component reflect.Type
}

type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []Entity
	pendingDestroy map[Entity]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0
}

// processOperationQueue applies every queued operation. A failing operation
// does not stop the drain: the remaining operations still run and all
// failures are returned together.
func (s *Scene) processOperationQueue() error {
	if s.opQueue.empty() {
		return nil
	}
	defer s.opQueue.clear()

	var errs error
	// Creates only append rows, so ids named by later ops stay put
	for _, op := range s.opQueue.createOps {
		if _, err := s.AddEntity(op.tag); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to process queued entity creation: %w", err))
		}
	}

	for _, op := range s.opQueue.componentOps {
		if op.typ == opNone {
			continue
		}
		if err := op.apply(s); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to process queued component operation on entity %d: %w", op.entity, err))
		}
	}

	// Destroy highest ids first: the row moved into a freed id is then always
	// one that is not pending destruction.
	destroy := slices.SortedFunc(slices.Values(s.opQueue.destroyOps), func(a, b Entity) int {
		return cmp.Compare(b, a)
	})
	for _, e := range destroy {
		if err := s.RemoveEntity(e); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("failed to process queued entity destruction: %w", err))
		}
	}
	return errs
}

func (q *opQueue) clear() {
	q.createOps = q.createOps[:0]
	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}

func (q *opQueue) EnqueueCreate(tag string) {
	q.createOps = append(q.createOps, operation{typ: opCreate, tag: tag})
}

func (q *opQueue) EnqueueDestroy(entities []Entity) {
	for _, e := range entities {
		if _, exists := q.pendingDestroy[e]; exists {
			continue
		}
		q.pendingDestroy[e] = struct{}{}
		q.destroyOps = append(q.destroyOps, e)

		// Drop pending component operations for this entity
		for i := range q.componentOps {
			if q.componentOps[i].entity == e {
				q.componentOps[i].typ = opNone
			}
		}
		for key := range q.pendingMods {
			if key.entity == e {
				delete(q.pendingMods, key)
			}
		}
	}
}

// EnqueueComponentOp queues op for (op.entity, component). A later op for the
// same pair replaces the earlier one, except that an attach following a
// removal runs after it so a component can be replaced while locked.
func (q *opQueue) EnqueueComponentOp(component reflect.Type, op operation) {
	if _, isDestroyed := q.pendingDestroy[op.entity]; isDestroyed {
		return
	}
	key := opKey{entity: op.entity, component: component}
	if existingIdx, exists := q.pendingMods[key]; exists {
		if q.componentOps[existingIdx].typ != opRemoveComponent || op.typ == opRemoveComponent {
			q.componentOps[existingIdx] = op
			return
		}
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, op)
}

// EnqueueAddEntity adds an entity now, or once the scene is unlocked.
func (s *Scene) EnqueueAddEntity(tag string) error {
	if !s.Locked() {
		_, err := s.AddEntity(tag)
		return err
	}
	s.opQueue.EnqueueCreate(tag)
	return nil
}

// EnqueueRemoveEntity removes entities now, or once the scene is unlocked.
// Unlocked removal follows the same descending id order as the queue.
func (s *Scene) EnqueueRemoveEntity(entities ...Entity) error {
	if s.Locked() {
		s.opQueue.EnqueueDestroy(entities)
		return nil
	}
	ordered := slices.SortedFunc(slices.Values(entities), func(a, b Entity) int {
		return cmp.Compare(b, a)
	})
	for _, e := range slices.Compact(ordered) {
		if err := s.RemoveEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func EnqueueAddComponent[T any](s *Scene, e Entity, value T) error {
	if !s.Locked() {
		return AddComponent(s, e, value)
	}
	s.opQueue.EnqueueComponentOp(reflect.TypeFor[T](), operation{
		typ:    opAddComponent,
		entity: e,
		apply: func(s *Scene) error {
			return AddComponent(s, e, value)
		},
	})
	return nil
}

func EnqueueShareComponent[T any](s *Scene, source, target Entity) error {
	if !s.Locked() {
		return ShareComponent[T](s, source, target)
	}
	s.opQueue.EnqueueComponentOp(reflect.TypeFor[T](), operation{
		typ:    opShareComponent,
		entity: target,
		apply: func(s *Scene) error {
			return ShareComponent[T](s, source, target)
		},
	})
	return nil
}

func EnqueueRemoveComponent[T any](s *Scene, e Entity) error {
	if !s.Locked() {
		return RemoveComponent[T](s, e)
	}
	s.opQueue.EnqueueComponentOp(reflect.TypeFor[T](), operation{
		typ:    opRemoveComponent,
		entity: e,
		apply: func(s *Scene) error {
			return RemoveComponent[T](s, e)
		},
	})
	return nil
}
