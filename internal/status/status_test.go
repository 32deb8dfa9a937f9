package status

import (
	"testing"
	"time"

	"github.com/pkoval/redline/internal/cache"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(cache.NewMemoryCache(time.Minute, time.Minute))
}

func TestStoreRoundTrip(t *testing.T) {
	s := newStore(t)
	if err := s.Set("job-1", StateProcessing, 40, "analyzing chunk 2 of 5"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rec, ok := s.Get("job-1")
	if !ok {
		t.Fatal("record not found")
	}
	if rec.Status != StateProcessing || rec.Progress != 40 || rec.Message != "analyzing chunk 2 of 5" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestStoreClampsProgress(t *testing.T) {
	s := newStore(t)
	s.Set("low", StatePending, -5, "")
	s.Set("high", StateCompleted, 250, "")

	if rec, _ := s.Get("low"); rec.Progress != 0 {
		t.Errorf("progress = %d, want 0", rec.Progress)
	}
	if rec, _ := s.Get("high"); rec.Progress != 100 {
		t.Errorf("progress = %d, want 100", rec.Progress)
	}
}

func TestStoreMissAndClear(t *testing.T) {
	s := newStore(t)
	if _, ok := s.Get("unknown"); ok {
		t.Error("unexpected hit for unknown job")
	}
	s.Set("job-2", StateFailed, 100, "model unavailable")
	s.Clear("job-2")
	if _, ok := s.Get("job-2"); ok {
		t.Error("record survived Clear")
	}
}
