package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if got := c.Stats().Capacity; got != 100 {
		t.Errorf("capacity = %d, want 100", got)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if got := New[string, int](0).Stats().Capacity; got != DefaultCapacity {
		t.Errorf("default capacity = %d, want %d", got, DefaultCapacity)
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v, want 42, true", val, ok)
	}
	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to not exist")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("overwritten value = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 3 {
		val, err := c.GetOrCreate("key1", create)
		if err != nil || val != 100 {
			t.Errorf("GetOrCreate() = %d, %v, want 100, nil", val, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](10)
	boom := errors.New("boom")
	if _, err := c.GetOrCreate("key", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrCreate() error = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed create should not be cached")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a")
	c.Set("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	if !c.Delete("key1") {
		t.Error("expected Delete to return true for existing key")
	}
	if c.Delete("key1") {
		t.Error("expected Delete to return false for missing key")
	}
	c.Set("key2", 1)
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	for i := range 5 {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	c.Set("x", 1)
	if _, ok := c.Get("x"); !ok {
		t.Error("cache should be usable after Clear")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")
	c.Get("c")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 2 || s.HitRate != 0.5 {
		t.Errorf("Stats() = %+v, want 2 hits, 2 misses, rate 0.5", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g*200 + i) % 100
				_, _ = c.GetOrCreate(k, func() (int, error) { return k * 2, nil })
				if v, ok := c.Get(k); ok && v != k*2 {
					t.Errorf("Get(%d) = %d, want %d", k, v, k*2)
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("Len() = %d, exceeds capacity 64", c.Len())
	}
}

func TestLRUList(t *testing.T) {
	var l lruList[int]
	a := l.PushFront(1)
	l.PushFront(2)
	l.PushFront(3)
	l.MoveToFront(a)

	want := []int{2, 3, 1}
	for _, w := range want {
		k, ok := l.RemoveOldest()
		if !ok || k != w {
			t.Errorf("RemoveOldest() = %d, %v, want %d", k, ok, w)
		}
	}
	if _, ok := l.RemoveOldest(); ok {
		t.Error("RemoveOldest on empty list should fail")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}
