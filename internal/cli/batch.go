package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoval/redline/internal/ingest"
	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pipeline"
	"github.com/pkoval/redline/internal/status"
	"github.com/pkoval/redline/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	manifestPath string
	batchFormat  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file|url|glob>...",
	Short: "Analyze multiple documents in parallel",
	Long: `Analyze multiple documents in parallel and write one report per
document into the output directory.

Sources are local files, glob patterns, or http(s) URLs, given as
arguments or listed in a manifest file (one per line, # comments
allowed). A shared worker pool fans the documents out and a summary
reports successes and failures at the end.

Examples:
  redline batch contracts/*.pdf
  redline batch terms.txt https://example.com/tos --concurrency 4
  redline batch --manifest urls.txt --format html -d reports`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && manifestPath == "" {
			return fmt.Errorf("requires at least one source argument or --manifest")
		}
		return nil
	},
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", runtime.NumCPU(), "number of parallel workers")
	batchCmd.Flags().StringVarP(&outputDir, "output-dir", "d", "./redline-reports", "directory for per-document reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&manifestPath, "manifest", "", "file listing sources, one per line")
	batchCmd.Flags().StringVar(&batchFormat, "format", "json", "report format: text, json, or html")

	// Shared with the analyze command
	batchCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent for URL fetches")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read from a URL")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (memory-only when empty)")
	batchCmd.Flags().StringVar(&patternsPath, "patterns", "", "YAML file extending the builtin pattern tables")
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-assisted analysis")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider: gemini or openai")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default per provider)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	sources, err := collectSources(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCommonFlags(cfg)
	if err := configureLLM(cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Redline Batch Analysis\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Documents:    %d\n", len(sources))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Format:       %s\n", batchFormat)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s\n", cfg.LLM.Provider)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize analyzer: %w", err)
	}

	runner := &batchRunner{
		analyzer: analyzer,
		fetcher:  ingest.NewFetcher(cfg.HTTP),
	}
	if analyzer.Cache != nil {
		runner.status = status.NewStore(analyzer.Cache)
	}
	for _, source := range sources {
		runner.setStatus(source, status.StatePending, 0, "queued")
	}

	fmt.Fprintf(os.Stderr, "⚙️  Analyzing %d documents with %d workers...\n", len(sources), concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(runner, concurrency)
	outcomes := processor.Process(ctx, sources)

	renderer := pipeline.NewRenderer(batchFormat)
	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Source, outcome.Err)
			continue
		}

		path := filepath.Join(outputDir, sanitizeFilename(outcome.Source)+reportExt(batchFormat))
		if err := writeReport(renderer, path, outcome.Result); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Source, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d clauses, %s)\n", outcome.Source, len(outcome.Result.HighRiskClauses), outcome.Result.DocumentType)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// batchRunner adapts the analyzer to the worker pool and tracks
// per-document progress through the shared cache.
type batchRunner struct {
	analyzer *pipeline.Analyzer
	fetcher  *ingest.Fetcher
	status   *status.Store
}

func (r *batchRunner) Run(ctx context.Context, source string) (*model.AnalysisResult, error) {
	r.setStatus(source, status.StateProcessing, 10, "loading document")

	text, err := loadSource(ctx, r.fetcher, source)
	if err != nil {
		r.setStatus(source, status.StateFailed, 100, err.Error())
		return nil, err
	}

	r.setStatus(source, status.StateProcessing, 50, "analyzing")
	result, err := r.analyzer.Analyze(ctx, text)
	if err != nil {
		r.setStatus(source, status.StateFailed, 100, err.Error())
		return nil, err
	}

	r.setStatus(source, status.StateCompleted, 100, "done")
	return result, nil
}

func (r *batchRunner) setStatus(source, state string, progress int, message string) {
	if r.status == nil {
		return
	}
	r.status.Set(source, state, progress, message)
}

// collectSources merges manifest entries and command-line arguments.
// Local arguments are treated as glob patterns; URLs pass through.
func collectSources(args []string) ([]string, error) {
	var sources []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			sources = append(sources, s)
		}
	}

	if manifestPath != "" {
		entries, err := worker.ReadSources(manifestPath)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			add(entry)
		}
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			add(arg)
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			// A literal path with no matches still goes through so the
			// runner reports a useful error for it.
			add(arg)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources to analyze")
	}
	return sources, nil
}

// sanitizeFilename turns a source path or URL into a safe file slug.
func sanitizeFilename(source string) string {
	s := strings.TrimPrefix(source, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	).Replace(s)
	s = strings.Trim(s, "._-")

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		return "document"
	}
	return s
}

// reportExt maps an output format to its file extension.
func reportExt(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return ".json"
	case "html":
		return ".html"
	default:
		return ".txt"
	}
}
