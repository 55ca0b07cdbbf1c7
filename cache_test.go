package tableau

import (
	"errors"
	"fmt"
	"testing"
)

func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	locations := make([]CacheLocation, len(items))

	for i, item := range items {
		loc, err := cache.Register(item, item)
		if err != nil {
			t.Fatalf("Failed to register item %s: %v", item, err)
		}
		locations[i] = loc

		// Indexes start at 0 and increment
		if loc.Index != uint32(i) || loc.Key != item {
			t.Errorf("Location for item %s is %+v, expected index %d", item, loc, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found {
			t.Errorf("Item %s not found in cache", item)
		}
		if uint32(index) != locations[i].Index {
			t.Errorf("Index for item %s is %d, expected %d", item, index, locations[i].Index)
		}
		if got := *cache.GetItem(index); got != item {
			t.Errorf("GetItem(%d) = %s, expected %s", index, got, item)
		}
		if got := *cache.GetItem32(locations[i].Index); got != item {
			t.Errorf("GetItem32(%d) = %s, expected %s", locations[i].Index, got, item)
		}
		if got, ok := cache.Lookup(locations[i]); !ok || *got != item {
			t.Errorf("Lookup(%+v) = %v, %v", locations[i], got, ok)
		}
	}

	if _, found := cache.GetIndex("nonexistent"); found {
		t.Errorf("Found non-existent item in cache")
	}
	if cache.Len() != len(items) {
		t.Errorf("Len() = %d, expected %d", cache.Len(), len(items))
	}
}

func TestCacheRegisterExistingKey(t *testing.T) {
	cache := FactoryNewCache[int](4)
	first, _ := cache.Register("answer", 42)
	again, err := cache.Register("answer", 7)
	if err != nil {
		t.Fatalf("Register() of an existing key error = %v", err)
	}
	if again != first {
		t.Errorf("Register() = %+v, expected %+v", again, first)
	}
	if got := *cache.GetItem32(first.Index); got != 42 {
		t.Errorf("stored item = %d, expected 42", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", cache.Len())
	}
}

func TestCacheLookupStale(t *testing.T) {
	cache := FactoryNewCache[int](4)
	cache.Register("a", 1)
	cache.Register("b", 2)

	tests := []struct {
		name string
		loc  CacheLocation
		ok   bool
	}{
		{"Valid", CacheLocation{Key: "b", Index: 1}, true},
		{"Wrong index", CacheLocation{Key: "b", Index: 0}, false},
		{"Unknown key", CacheLocation{Key: "c", Index: 1}, false},
		{"Zero location", CacheLocation{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := cache.Lookup(tt.loc); ok != tt.ok {
				t.Errorf("Lookup(%+v) ok = %v, expected %v", tt.loc, ok, tt.ok)
			}
		})
	}
}

func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := FactoryNewCache[int](capacity)

	for i := range capacity {
		key := fmt.Sprintf("item%d", i)
		if _, err := cache.Register(key, i); err != nil {
			t.Errorf("Failed to register item %s: %v", key, err)
		}
	}

	_, err := cache.Register("overflow", 100)
	var capErr CacheCapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Register() past capacity error = %v, expected CacheCapacityError", err)
	}
	if capErr.Capacity != capacity || capErr.Key != "overflow" {
		t.Errorf("CacheCapacityError = %+v", capErr)
	}
}

func TestCacheClear(t *testing.T) {
	cache := FactoryNewCache[string](10).(*SimpleCache[string])

	items := []string{"item1", "item2", "item3"}
	for _, item := range items {
		if _, err := cache.Register(item, item); err != nil {
			t.Errorf("Failed to register item %s: %v", item, err)
		}
	}

	cache.Clear()

	for _, item := range items {
		if _, found := cache.GetIndex(item); found {
			t.Errorf("Item %s still found after cache clear", item)
		}
	}
	for i, item := range items {
		loc, err := cache.Register(item, item)
		if err != nil {
			t.Errorf("Failed to register item %s after clear: %v", item, err)
		}
		if loc.Index != uint32(i) {
			t.Errorf("Index after clear = %d, expected %d", loc.Index, i)
		}
	}
}

func TestCacheWithComplexTypes(t *testing.T) {
	cache := FactoryNewCache[Mesh](10)
	meshes := []Mesh{
		{Name: "cube", Vertices: 24, Indices: 36},
		{Name: "plane", Vertices: 4, Indices: 6},
	}
	for _, mesh := range meshes {
		if _, err := cache.Register(mesh.Name, mesh); err != nil {
			t.Fatalf("Failed to register mesh %s: %v", mesh.Name, err)
		}
	}

	index, _ := cache.GetIndex("plane")
	mesh := cache.GetItem(index)
	mesh.Vertices = 8
	if got := cache.GetItem(index).Vertices; got != 8 {
		t.Errorf("GetItem() does not address the stored mesh, Vertices = %d", got)
	}
}
