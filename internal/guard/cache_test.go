package guard

import (
	"fmt"
	"testing"
	"time"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  hello   world  ", "hello world"},
		{"HELLO\tworld\n", "hello world"},
		{"already normal", "already normal"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCache_SetGet(t *testing.T) {
	c := NewCache(time.Minute, 10)
	c.Set("k", "v", 0)

	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get = (%q, %v), want (v, true)", got, ok)
	}
}

func TestCache_KeysNormalizedConsistently(t *testing.T) {
	c := NewCache(time.Minute, 10)
	c.Set("  Hint:  Variables ", "v", 0)

	if _, ok := c.Get("hint: variables"); !ok {
		t.Fatal("normalized lookup missed an entry stored with a messy key")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	now := time.Now()
	c := NewCache(time.Hour, 10)
	c.now = func() time.Time { return now }

	c.Set("k", "v", time.Minute)

	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry missing immediately after set")
	}

	now = now.Add(time.Minute + time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry served")
	}

	// Lazy expiry removed the entry on access.
	if s := c.Stats(); s.Total != 0 {
		t.Fatalf("expired entry still present: %+v", s)
	}
}

func TestCache_LRUEviction(t *testing.T) {
	now := time.Now()
	c := NewCache(time.Hour, 5)
	c.now = func() time.Time { return now }

	for i := range 5 {
		c.Set(fmt.Sprintf("k%d", i), "v", 0)
		now = now.Add(time.Second)
	}

	// Touch every key except k2.
	for _, k := range []string{"k0", "k1", "k3", "k4"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("%s missing before eviction", k)
		}
		now = now.Add(time.Second)
	}

	// Inserting a new key at capacity evicts exactly the untouched one.
	c.Set("k5", "v", 0)

	if _, ok := c.Get("k2"); ok {
		t.Fatal("k2 should have been evicted")
	}
	for _, k := range []string{"k0", "k1", "k3", "k4", "k5"} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("%s unexpectedly evicted", k)
		}
	}
}

func TestCache_OverwriteAtCapacityDoesNotEvict(t *testing.T) {
	c := NewCache(time.Hour, 2)
	c.Set("a", "1", 0)
	c.Set("b", "2", 0)
	c.Set("a", "updated", 0)

	if _, ok := c.Get("b"); !ok {
		t.Fatal("overwriting an existing key evicted another entry")
	}
	if got, _ := c.Get("a"); got != "updated" {
		t.Fatalf("a = %q, want updated", got)
	}
}

func TestCache_Sweep(t *testing.T) {
	now := time.Now()
	c := NewCache(time.Hour, 10)
	c.now = func() time.Time { return now }

	c.Set("short", "v", time.Minute)
	c.Set("long", "v", time.Hour)

	now = now.Add(10 * time.Minute)

	if removed := c.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d entries, want 1", removed)
	}
	if _, ok := c.Get("long"); !ok {
		t.Fatal("sweep removed an unexpired entry")
	}
}

func TestCache_Stats(t *testing.T) {
	now := time.Now()
	c := NewCache(time.Hour, 4)
	c.now = func() time.Time { return now }

	c.Set("a", "v", time.Minute)
	c.Set("b", "v", time.Hour)

	now = now.Add(5 * time.Minute)

	s := c.Stats()
	if s.Total != 2 || s.Valid != 1 || s.Expired != 1 {
		t.Fatalf("stats = %+v, want total=2 valid=1 expired=1", s)
	}
	if s.Capacity != 4 || s.Utilization != 0.5 {
		t.Fatalf("stats = %+v, want capacity=4 utilization=0.5", s)
	}
}
