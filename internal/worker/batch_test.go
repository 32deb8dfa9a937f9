package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcess(t *testing.T) {
	processor := NewBatchProcessor(&stubRunner{}, 2)

	outcomes := processor.Process(context.Background(), []string{"a.txt", "b.txt", "c.txt"})
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}
	for _, out := range outcomes {
		if out.Err != nil {
			t.Errorf("unexpected error for %s: %v", out.Source, out.Err)
		}
		if out.Result == nil {
			t.Errorf("missing result for %s", out.Source)
		}
	}
}

func TestBatchProcessFailure(t *testing.T) {
	runner := &stubRunner{failOn: map[string]bool{"b.txt": true}}
	processor := NewBatchProcessor(runner, 2)

	outcomes := processor.Process(context.Background(), []string{"a.txt", "b.txt"})
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}

	failures := 0
	for _, out := range outcomes {
		if out.Err != nil {
			failures++
			if out.Source != "b.txt" {
				t.Errorf("failure attributed to %q", out.Source)
			}
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}
}

func TestBatchProcessEmpty(t *testing.T) {
	processor := NewBatchProcessor(&stubRunner{}, 2)
	if outcomes := processor.Process(context.Background(), nil); len(outcomes) != 0 {
		t.Errorf("got %d outcomes for no sources", len(outcomes))
	}
}

func TestBatchProcessFile(t *testing.T) {
	path := writeManifest(t, "a.txt\n# note\n\nb.txt\nb.txt\nc.txt\n")
	processor := NewBatchProcessor(&stubRunner{}, 2)

	outcomes, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(outcomes) != 3 {
		t.Errorf("got %d outcomes, want 3 after dedup", len(outcomes))
	}
}

func TestBatchProcessFileMissing(t *testing.T) {
	processor := NewBatchProcessor(&stubRunner{}, 2)
	if _, err := processor.ProcessFile(context.Background(), "no_such_manifest.txt"); err == nil {
		t.Error("expected an error for a missing manifest")
	}
}

func TestReadSources(t *testing.T) {
	path := writeManifest(t, "doc1.txt\n# skip me\nhttps://example.com/tos\n   \ndoc2.txt   \ndoc1.txt\n")

	sources, err := ReadSources(path)
	if err != nil {
		t.Fatalf("ReadSources: %v", err)
	}

	want := []string{"doc1.txt", "https://example.com/tos", "doc2.txt"}
	if len(sources) != len(want) {
		t.Fatalf("got %d sources, want %d", len(sources), len(want))
	}
	for i, s := range sources {
		if s != want[i] {
			t.Errorf("sources[%d] = %q, want %q", i, s, want[i])
		}
	}
}

func TestReadSourcesMissing(t *testing.T) {
	if _, err := ReadSources("absent.txt"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
