package cache

import (
	"testing"
	"time"
)

func TestCache_SetGetExpire(t *testing.T) {
	c := NewCache[[]byte](time.Hour)
	defer c.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", []byte("v"), time.Minute)

	got, ok := c.Get("k")
	if !ok || string(got) != "v" {
		t.Fatalf("Expected hit with v, got %q ok=%v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after expiration")
	}

	c.sweep()
	if c.Len() != 0 {
		t.Errorf("Expected sweep to drop expired entry, len=%d", c.Len())
	}
}

func TestCache_Delete(t *testing.T) {
	c := NewCache[int](time.Hour)
	defer c.Close()

	c.Set("n", 1, time.Minute)
	c.Delete("n")

	if _, ok := c.Get("n"); ok {
		t.Error("Expected miss after delete")
	}
}

func TestCache_CloseTwice(t *testing.T) {
	c := NewCache[int](time.Millisecond)
	c.Close()
	c.Close()
}
