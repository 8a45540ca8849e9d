package cache

import (
	"strings"
	"testing"
	"time"
)

func TestReportKey_ContentAddressed(t *testing.T) {
	a := ReportKey("let light = 1")
	b := ReportKey("let light = 1")
	c := ReportKey("let dark = 1")

	if a != b {
		t.Error("Identical content must produce identical keys")
	}
	if a == c {
		t.Error("Different content must produce different keys")
	}
	if !strings.HasPrefix(a, "divinepl:v1:") {
		t.Errorf("Key missing version prefix: %q", a)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := ReportKey("script")
	if _, found := c.Get(key); found {
		t.Fatal("Expected a miss before Set")
	}

	if err := c.Set(key, []byte(`{"venial_count":1}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("Expected a hit after Set")
	}
	if string(val) != `{"venial_count":1}` {
		t.Errorf("Unexpected value: %s", val)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected a miss after Delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	key := ReportKey("script")
	if err := c.Set(key, []byte("report"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if val, found := c.Get(key); !found || string(val) != "report" {
		t.Fatalf("Expected a hit, got found=%v val=%s", found, val)
	}

	// An already-expired entry is treated as a miss and removed
	if err := c.Set(key, []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected a miss for an expired entry")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	key := ReportKey("script")
	if err := layered.Set(key, []byte("report"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Drop the memory layer; the disk layer must still answer
	layered.memory.Clear()
	if val, found := layered.Get(key); !found || string(val) != "report" {
		t.Fatalf("Expected a disk hit, got found=%v val=%s", found, val)
	}

	// The hit was promoted back into memory
	if _, found := layered.memory.Get(key); !found {
		t.Error("Expected the disk hit to be promoted to memory")
	}
}
