package queries

import (
	"errors"
	"testing"
)

// TestCacheBasicOperations tests the basic operations of the SimpleCache
func TestCacheBasicOperations(t *testing.T) {
	const capacity = 10
	cache := FactoryNewCache[string](capacity)

	items := []string{"item1", "item2", "item3", "item4", "item5"}
	indices := make([]int, len(items))

	for i, item := range items {
		index, err := cache.Register(item, item)
		if err != nil {
			t.Errorf("Failed to register item %s: %v", item, err)
		}
		indices[i] = index

		if index != i {
			t.Errorf("Index for item %s is %d, expected %d", item, index, i)
		}
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		if !found {
			t.Errorf("Item %s not found in cache", item)
		}
		if index != indices[i] {
			t.Errorf("Index for item %s is %d, expected %d", item, index, indices[i])
		}
	}

	for i, item := range items {
		if cachedItem := *cache.GetItem(indices[i]); cachedItem != item {
			t.Errorf("Item at index %d is %s, expected %s", indices[i], cachedItem, item)
		}
		if cachedItem := *cache.GetItem32(uint32(indices[i])); cachedItem != item {
			t.Errorf("Item at index %d is %s, expected %s", indices[i], cachedItem, item)
		}
	}

	if _, found := cache.GetIndex("nonexistent"); found {
		t.Errorf("Found non-existent item in cache")
	}
	if cache.Len() != len(items) {
		t.Errorf("Len() = %d, want %d", cache.Len(), len(items))
	}
}

func TestCacheDuplicateKey(t *testing.T) {
	cache := FactoryNewCache[int](4)

	first, err := cache.Register("key", 1)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	second, err := cache.Register("key", 2)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if first != second {
		t.Errorf("duplicate key got index %d, want %d", second, first)
	}
	if got := *cache.GetItem(first); got != 1 {
		t.Errorf("duplicate key overwrote item: got %d, want 1", got)
	}
}

func TestCacheCapacity(t *testing.T) {
	cache := FactoryNewCache[int](2)
	for _, key := range []string{"a", "b"} {
		if _, err := cache.Register(key, 0); err != nil {
			t.Fatalf("Register(%q) error = %v", key, err)
		}
	}

	_, err := cache.Register("c", 0)
	var full RegistryFullError
	if !errors.As(err, &full) {
		t.Fatalf("Register() over capacity error = %v, want RegistryFullError", err)
	}
	if full.Capacity != 2 {
		t.Errorf("Capacity = %d, want 2", full.Capacity)
	}

	cache.(*SimpleCache[int]).Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
	if _, err := cache.Register("c", 0); err != nil {
		t.Errorf("Register() after Clear error = %v", err)
	}
}
