package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoval/redline/internal/ingest"
	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pipeline"
)

var (
	outPath      string
	format       string
	timeout      time.Duration
	userAgent    string
	maxBytes     int64
	noCache      bool
	cacheDir     string
	patternsPath string
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

const defaultLLMProvider = "gemini"

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|url>",
	Short: "Analyze a document for risky clauses",
	Long: `Analyze a contract or legal document for risky clauses.

The source can be a local file (.txt, .md, .html, .pdf) or an http(s)
URL. The report lists every high-risk clause with its score, rationale,
negotiation advice, and suggested replacement wording, and includes a
highlighted copy of the document.

Pass --llm to add LLM-assisted analysis on top of the pattern engine.
The provider API key is read from the environment, never from the
config file.

Examples:
  redline analyze contract.pdf
  redline analyze terms.txt --format html -o report.html
  redline analyze https://example.com/terms --llm`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to a file instead of stdout")
	analyzeCmd.Flags().StringVar(&format, "format", "", "output format: text, json, or html (default from config)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent for URL fetches")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read from a URL")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	analyzeCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (memory-only when empty)")
	analyzeCmd.Flags().StringVar(&patternsPath, "patterns", "", "YAML file extending the builtin pattern tables")
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM-assisted analysis")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider: gemini or openai")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default per provider)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCommonFlags(cfg)
	if format != "" {
		cfg.Output.Format = format
	}
	if err := configureLLM(cfg); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s\n", cfg.LLM.Provider)
		}
		fmt.Fprintln(os.Stderr)
	}

	analyzer, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize analyzer: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Loading document...\n")
	}
	fetcher := ingest.NewFetcher(cfg.HTTP)
	text, err := loadSource(ctx, fetcher, source)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	result, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Document type: %s (%.1f%% confidence)\n", result.DocumentType, result.DocumentTypeConf)
		fmt.Fprintf(os.Stderr, "✓ Flagged %d high-risk clauses\n", len(result.HighRiskClauses))
		fmt.Fprintf(os.Stderr, "✓ Analysis source: %s\n", result.Source)
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.Format)
	if outPath != "" {
		if err := writeReport(renderer, outPath, result); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", outPath)
		}
		return nil
	}
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// applyCommonFlags folds the flags shared by analyze and batch into the
// effective config. Empty flag values leave the config untouched.
func applyCommonFlags(cfg *model.Config) {
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	if patternsPath != "" {
		cfg.Patterns.Path = patternsPath
	}
}

// configureLLM resolves the provider and its API key. The key is read
// from the environment so it never has to live in the config file.
func configureLLM(cfg *model.Config) error {
	if llmEnabled && cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultLLMProvider
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch cfg.LLM.Provider {
	case "":
		return nil
	case "gemini", "google":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "openai":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// loadSource reads document text from a local file or an http(s) URL.
func loadSource(ctx context.Context, fetcher *ingest.Fetcher, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetcher.FromURL(ctx, source)
	}
	return ingest.FromFile(source)
}

// writeReport renders a result into a freshly created file.
func writeReport(renderer *pipeline.Renderer, path string, result *model.AnalysisResult) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	if err := renderer.Render(f, result); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
