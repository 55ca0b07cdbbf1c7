package tableau

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, scene *Scene) *Cursor {
	return &Cursor{
		query: query,
		scene: scene,
	}
}

// Next advances to the next matching entity. When iteration ends the cursor
// resets itself and unlocks the scene.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.index < len(c.matched) {
		c.current = c.matched[c.index]
		c.index++
		return true
	}
	c.Reset()
	return false
}

// Entity returns the entity the cursor is positioned on.
func (c *Cursor) Entity() Entity {
	return c.current
}

func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		c.initialize()
		defer c.Reset()

		for c.index < len(c.matched) {
			c.current = c.matched[c.index]
			c.index++
			if !yield(c.current) {
				return
			}
		}
	}
}

// Collect drains the cursor into a slice.
func (c *Cursor) Collect() []Entity {
	return iter_util.Collect(c.Entities())
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.scene.Lock()
	c.matched = c.matched[:0]
	for i := range c.scene.records {
		if c.query.Evaluate(c.scene.records[i].presence, c.scene) {
			c.matched = append(c.matched, Entity(i))
		}
	}
	c.index = 0
	c.initialized = true
}

// Reset stops iteration and releases the cursor's scene lock, applying any
// operations queued meanwhile. Their error is reported by Err.
func (c *Cursor) Reset() {
	if !c.initialized {
		return
	}
	c.index = 0
	c.matched = c.matched[:0]
	c.initialized = false
	if err := c.scene.Unlock(); err != nil {
		c.scene.log.Error("failed to apply queued operations", zap.Error(err))
		c.err = err
	}
}

// Err returns the first error raised while applying queued operations.
func (c *Cursor) Err() error {
	return c.err
}

// TotalMatched returns the number of entities the query matches right now.
func (c *Cursor) TotalMatched() int {
	if c.initialized {
		return len(c.matched)
	}
	total := 0
	for i := range c.scene.records {
		if c.query.Evaluate(c.scene.records[i].presence, c.scene) {
			total++
		}
	}
	return total
}
