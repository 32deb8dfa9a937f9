package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// BatchProcessor analyzes many documents concurrently.
type BatchProcessor struct {
	runner      Runner
	concurrency int
}

// NewBatchProcessor creates a processor running at most concurrency
// analyses at once.
func NewBatchProcessor(runner Runner, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		runner:      runner,
		concurrency: concurrency,
	}
}

// Process analyzes every source and returns outcomes in completion
// order.
func (b *BatchProcessor) Process(ctx context.Context, sources []string) []Outcome {
	if len(sources) == 0 {
		return []Outcome{}
	}

	pool := NewPool(ctx, b.concurrency, b.runner)
	pool.Start()

	for _, source := range sources {
		pool.Submit(source)
	}
	return pool.Wait()
}

// ProcessFile reads a manifest, one path or URL per line, and analyzes
// every entry.
func (b *BatchProcessor) ProcessFile(ctx context.Context, manifestPath string) ([]Outcome, error) {
	sources, err := ReadSources(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.Process(ctx, sources), nil
}

// ReadSources reads batch inputs from a manifest file. Blank lines and
// # comments are skipped; duplicate entries collapse to the first.
func ReadSources(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return sources, nil
}
