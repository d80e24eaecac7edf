package cache

import (
	"errors"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c := New[int](DefaultConfig())

	if _, ok := c.Get("a"); ok {
		t.Error("Get() on empty cache returned a value")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}

	c.Delete("a")
	if c.Size() != 0 {
		t.Errorf("Size() = %d after Delete; want 0", c.Size())
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %.0f; want 1, 1, 50", hits, misses, rate)
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c := New[string](Config{MaxItems: 2})
	clock := time.Unix(0, 0)
	c.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	c.Set("a", "A")
	c.Set("b", "B")
	c.Set("a", "A2") // overwrite keeps the size
	c.Set("c", "C")

	if c.Size() != 2 {
		t.Fatalf("Size() = %d; want 2", c.Size())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("oldest entry b was not evicted")
	}
	if v, ok := c.Get("a"); !ok || v != "A2" {
		t.Errorf("Get(a) = %q, %v; want A2, true", v, ok)
	}
}

func TestCache_TTL(t *testing.T) {
	c := New[int](Config{MaxItems: 4, TTL: time.Minute})
	clock := time.Unix(0, 0)
	c.now = func() time.Time { return clock }

	c.Set("a", 1)
	clock = clock.Add(30 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Error("entry expired early")
	}

	clock = clock.Add(time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived its TTL")
	}
	if c.Size() != 0 {
		t.Errorf("Size() = %d; expired entry should be dropped", c.Size())
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("k", compute)
		if err != nil || v != 42 {
			t.Fatalf("GetOrSet() = %v, %v; want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute ran %d times; want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrSet() error = %v; want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation was cached")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}
