package cache

import "testing"

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := NewLRUCache[string, int](size); err == nil {
			t.Fatalf("expected error for size %d", size)
		}
	}
}

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	cache, err := NewLRUCache[string, string](2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	cache.Put("alpha", "x")
	cache.Put("beta", "y")
	cache.Put("alpha", "z")

	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", cache.Len())
	}
	if v, ok := cache.Get("alpha"); !ok || v != "z" {
		t.Fatalf("expected updated value z, got %q (hit=%v)", v, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewLRUCache[int, string](2)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	cache.Put(1, "one")
	cache.Put(2, "two")
	// Touch 1 so that 2 becomes the oldest entry.
	if _, ok := cache.Get(1); !ok {
		t.Fatalf("expected key 1 to be cached")
	}
	cache.Put(3, "three")

	if _, ok := cache.Get(2); ok {
		t.Fatalf("expected key 2 to be evicted")
	}
	for _, key := range []int{1, 3} {
		if _, ok := cache.Get(key); !ok {
			t.Fatalf("expected key %d to be cached", key)
		}
	}
}

func TestNilCacheIsEmpty(t *testing.T) {
	var cache *LRUCache[string, int]
	cache.Put("a", 1)
	if _, ok := cache.Get("a"); ok {
		t.Fatalf("expected nil cache to miss")
	}
	if cache.Len() != 0 {
		t.Fatalf("expected nil cache to be empty")
	}
}
