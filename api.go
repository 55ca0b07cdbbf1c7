package tableau

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
)

// Component identifies a component type independently of any scene. Handles
// are created with FactoryNewComponent and resolved per scene on use.
type Component interface {
	componentType() reflect.Type
	String() string
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(presence mask.Mask, scene *Scene) bool
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Lookup(CacheLocation) (*T, bool)
	Register(string, T) (CacheLocation, error)
	Len() int
}

// Cursor iterates the entities of a scene matching a query. The scene stays
// locked from the first Next until iteration ends or Reset is called.
type Cursor struct {
	query QueryNode
	scene *Scene

	// Current iteration state
	matched []Entity
	index   int
	current Entity

	initialized bool
	err         error
}

// AccessibleComponent is a typed handle for component type T.
type AccessibleComponent[T any] struct{}

// CacheLocation addresses an item registered in a Cache.
type CacheLocation struct {
	Key   string
	Index uint32
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
