// Package llm talks to external text-generation services. Providers share
// one typed request/response contract; prompt construction, JSON decoding,
// and error classification live here so the pipeline never sees a raw
// vendor response.
package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/pkoval/redline/internal/model"
)

// Provider is the interface for LLM backends. Errors returned by Analyze
// and Refine are classified; callers decide between a per-call fallback
// (errors.Is ErrTransient) and disabling the provider for the rest of the
// run (errors.Is ErrPermanent).
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze extracts risky clauses and a summary from one chunk or
	// focus excerpt set
	Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error)

	// Refine tailors mitigation and replacement language for a single
	// already-identified clause
	Refine(ctx context.Context, req RefineRequest) (*Refinement, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnalysisKind selects the prompt variant for an analysis request.
type AnalysisKind string

const (
	// KindChunk analyzes one overlapping document chunk
	KindChunk AnalysisKind = "chunk"

	// KindFocus analyzes a set of keyword-selected sentences
	KindFocus AnalysisKind = "focus"
)

// PatternContext summarizes one document-type risk pattern for prompt
// guidance. It mirrors pattern.TypeRule without importing the package.
type PatternContext struct {
	Key         string // refinement group key, e.g. "overly_broad_definition"
	Context     string // risk description
	Severity    int    // 1-5
	Solution    string // template solution approach
	Alternative string // template replacement language
}

// Exchange is a worked example shown to the model before the real input.
type Exchange struct {
	Human string
	AI    string
}

// AnalysisRequest carries the input for one analysis call.
type AnalysisRequest struct {
	// Text is the chunk text or the joined focus excerpts
	Text string

	// Kind selects the chunk or focus prompt variant
	Kind AnalysisKind

	// ChunkIndex is the 1-based chunk number, chunk kind only
	ChunkIndex int

	// ChunkLength is the character length of Text
	ChunkLength int

	// DocType is the classifier label, e.g. "nda"
	DocType string

	// DocTypeName is the display name, e.g. "Non-Disclosure Agreement"
	DocTypeName string

	// Patterns is the type-specific risk pattern guidance
	Patterns []PatternContext

	// Strategy is the general mitigation strategy for the document type
	Strategy string

	// Example overrides the builtin worked example when set
	Example *Exchange
}

// Analysis is the normalized provider response: a chunk summary plus zero
// or more clauses already coerced into the canonical schema.
type Analysis struct {
	Summary string
	Clauses []model.Clause
}

// RefineRequest carries one clause through the second-stage refinement
// call. Solution and Alternative are the pattern templates the model is
// asked to tailor.
type RefineRequest struct {
	ClauseText      string
	RiskLevel       string
	RiskScore       int
	Rationale       string
	PatternCategory string // matched refinement group key, or "general_risk"
	Solution        string
	Alternative     string
	DocTypeName     string
}

// Refinement holds the two refined outputs. Mitigation is negotiation
// advice; ReplacementClause is insertable contract language. The two are
// never conflated.
type Refinement struct {
	Mitigation        string
	ReplacementClause string
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "gemini", "openai", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints (OpenAI-compatible servers)
	BaseURL string

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for response generation
	Temperature float64

	// Timeout for API requests
	Timeout int // seconds

	// Verbose prints request diagnostics to stderr
	Verbose bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "", // Disabled by default
		Model:       "",
		Timeout:     30,
		MaxTokens:   1200,
		Temperature: 0.15,
	}
}

// apiLimiter paces calls across all providers. Chunk workers run
// concurrently and free-tier quotas are low, so requests queue here
// instead of erroring at the vendor.
var apiLimiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 2)
