package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKeys(t *testing.T) {
	if ChunkKey("text") == ChunkKey("other text") {
		t.Error("different content should produce different chunk keys")
	}
	if ChunkKey("text") != ChunkKey("text") {
		t.Error("chunk keys should be stable")
	}
	if ChunkKey("text") == FocusKey("text") {
		t.Error("chunk and focus keys for the same content must differ")
	}
	if !strings.HasPrefix(StatusKey("job-1"), "redline:v1:status:") {
		t.Errorf("unexpected status key %q", StatusKey("job-1"))
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if _, found := c.Get("missing"); found {
		t.Error("unexpected hit for missing key")
	}
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get = (%q, %v)", got, found)
	}
	c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("value survived Delete")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	if err := c.Set(ChunkKey("chunk body"), []byte(`{"summary":"s"}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, found := c.Get(ChunkKey("chunk body"))
	if !found || !bytes.Equal(got, []byte(`{"summary":"s"}`)) {
		t.Errorf("Get = (%q, %v)", got, found)
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)
	if err := c.Set("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry should miss")
	}
}

func TestLayeredCachePromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Minute)

	// Seed only the disk layer, as a previous process would have.
	seed := NewDiskCache(dir, time.Minute)
	if err := seed.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	got, found := layered.Get("k")
	if !found || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Get = (%q, %v)", got, found)
	}

	// The hit should now be served from memory even if the file goes away.
	seed.Delete("k")
	if _, found := layered.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}
}
