package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkoval/redline/internal/cache"
	"github.com/pkoval/redline/internal/detect"
	"github.com/pkoval/redline/internal/highlight"
	"github.com/pkoval/redline/internal/llm"
	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pattern"
	"github.com/pkoval/redline/internal/refine"
)

const (
	indemnitySentence = "Customer shall indemnify and hold harmless Provider from any and all claims, losses and damages arising out of this Agreement."

	mutualTerminationDoc = "Either party may terminate this Agreement at any time upon written notice to the other party."

	cleanDoc = "The parties agree to meet quarterly to review project progress and share status updates."
)

var riskyDoc = "The engagement between the parties is governed by these terms. " +
	indemnitySentence + " Invoices are payable within thirty days of receipt."

type stubProvider struct {
	mu           sync.Mutex
	analysis     llm.Analysis
	analyzeErr   error
	refinement   llm.Refinement
	refineErr    error
	analyzeCalls int
	refineCalls  int
}

func (s *stubProvider) Name() string                         { return "stub" }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (s *stubProvider) Analyze(ctx context.Context, req llm.AnalysisRequest) (*llm.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzeCalls++
	if s.analyzeErr != nil {
		return nil, s.analyzeErr
	}
	out := llm.Analysis{Summary: s.analysis.Summary}
	out.Clauses = append(out.Clauses, s.analysis.Clauses...)
	return &out, nil
}

func (s *stubProvider) Refine(ctx context.Context, req llm.RefineRequest) (*llm.Refinement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refineCalls++
	if s.refineErr != nil {
		return nil, s.refineErr
	}
	r := s.refinement
	return &r, nil
}

func (s *stubProvider) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analyzeCalls
}

const (
	stubMitigation  = "Limit the indemnity to third-party claims caused by the indemnifying party's negligence and cap recoverable amounts at fees paid."
	stubReplacement = "Each party shall indemnify the other against third-party claims arising from its own negligence or willful misconduct, capped at the fees paid in the twelve months preceding the claim."
)

func TestAnalyzeEmptyDocument(t *testing.T) {
	a := &Analyzer{}
	for _, text := range []string{"", "   \n\t  "} {
		if _, err := a.Analyze(context.Background(), text); err == nil {
			t.Errorf("Analyze(%q) should fail", text)
		}
	}
}

func TestAnalyzeHeuristicOnly(t *testing.T) {
	a := &Analyzer{}
	result, err := a.Analyze(context.Background(), indemnitySentence)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Source != model.AnalysisSourceFallback {
		t.Errorf("Source = %q, want %q", result.Source, model.AnalysisSourceFallback)
	}
	if len(result.HighRiskClauses) != 1 {
		t.Fatalf("clauses = %d, want 1: %+v", len(result.HighRiskClauses), result.HighRiskClauses)
	}
	c := result.HighRiskClauses[0]
	if c.RiskScore != 5 || c.RiskLevel != model.LevelCritical {
		t.Errorf("score/level = %d/%s, want 5/Critical", c.RiskScore, c.RiskLevel)
	}
	if c.Category != model.CategoryIndemnity {
		t.Errorf("category = %q, want %q", c.Category, model.CategoryIndemnity)
	}
	if c.Mitigation == "" || c.ReplacementClause == "" {
		t.Error("refined clause should carry mitigation and replacement language")
	}
	if c.RefinementMethod != refine.MethodPatternOnly {
		t.Errorf("RefinementMethod = %q, want %q", c.RefinementMethod, refine.MethodPatternOnly)
	}
	if result.Summary == "" {
		t.Error("summary should not be empty")
	}
	if !strings.Contains(result.HighlightedPreview, `<mark class="risk-high"`) {
		t.Errorf("preview missing high-risk mark: %s", result.HighlightedPreview)
	}
	if result.PreviewText != indemnitySentence {
		t.Error("PreviewText should carry the full source text")
	}
	if result.DocumentType == "" {
		t.Error("document type should not be empty")
	}
	if result.RiskIndex == nil {
		t.Fatal("RiskIndex should be set")
	}
	if result.RiskIndex.Index <= 0 || result.RiskIndex.Label == "" {
		t.Errorf("RiskIndex = %+v, want a positive index with a label", result.RiskIndex)
	}
}

func TestAnalyzeMutualTerminationDropped(t *testing.T) {
	a := &Analyzer{}
	result, err := a.Analyze(context.Background(), mutualTerminationDoc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// The detector floors mutual termination to score 1, and minimal-risk
	// clauses never reach the final list.
	if len(result.HighRiskClauses) != 0 {
		t.Errorf("clauses = %+v, want none", result.HighRiskClauses)
	}
	if !strings.Contains(result.HighlightedPreview, `<mark class="risk-low"`) {
		t.Error("the clause should still be marked in the preview")
	}
	if result.Source != model.AnalysisSourceFallback {
		t.Errorf("Source = %q, want %q", result.Source, model.AnalysisSourceFallback)
	}
}

func TestAnalyzeCleanDocument(t *testing.T) {
	a := &Analyzer{}
	result, err := a.Analyze(context.Background(), cleanDoc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(result.HighRiskClauses) != 0 {
		t.Errorf("clauses = %+v, want none", result.HighRiskClauses)
	}
	if result.Summary == "" {
		t.Error("summary should fall back to document text")
	}
	if strings.Contains(result.HighlightedPreview, "<mark") {
		t.Error("clean document should have no marks")
	}
	if result.DocumentType != "General Agreement" {
		t.Errorf("DocumentType = %q, want General Agreement", result.DocumentType)
	}
	if result.DocumentTypeConf != 30.0 {
		t.Errorf("DocumentTypeConf = %v, want 30.0", result.DocumentTypeConf)
	}
	if result.RiskIndex == nil || result.RiskIndex.Index != 0 || result.RiskIndex.Label != "minimal" {
		t.Errorf("RiskIndex = %+v, want index 0 with label minimal", result.RiskIndex)
	}
}

func TestAnalyzeProviderSuccess(t *testing.T) {
	stub := &stubProvider{
		analysis: llm.Analysis{
			Summary: "The agreement shifts indemnity risk onto the customer.",
			Clauses: []model.Clause{{
				ClauseText: indemnitySentence,
				RiskScore:  5,
				RiskLevel:  model.LevelCritical,
				Rationale:  "One-sided indemnity without any cap.",
				Category:   model.CategoryIndemnity,
				Confidence: 0.9,
				Source:     model.SourceLLM,
			}},
		},
		refinement: llm.Refinement{Mitigation: stubMitigation, ReplacementClause: stubReplacement},
	}
	a := &Analyzer{Provider: stub}

	result, err := a.Analyze(context.Background(), riskyDoc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.Source != model.AnalysisSourceLLM {
		t.Errorf("Source = %q, want %q", result.Source, model.AnalysisSourceLLM)
	}
	// One chunk call plus the focus pass.
	if stub.calls() != 2 {
		t.Errorf("analyze calls = %d, want 2", stub.calls())
	}
	if len(result.HighRiskClauses) == 0 {
		t.Fatal("expected at least one clause")
	}
	c := result.HighRiskClauses[0]
	if c.Source != model.SourceLLM {
		t.Errorf("clause source = %q, want llm", c.Source)
	}
	if c.Mitigation != stubMitigation {
		t.Errorf("Mitigation = %q, want refined advice", c.Mitigation)
	}
	if !strings.Contains(result.Summary, "shifts indemnity risk") {
		t.Errorf("summary should include the provider summary: %q", result.Summary)
	}
}

func TestAnalyzePermanentErrorDisablesProvider(t *testing.T) {
	stub := &stubProvider{
		analyzeErr: llm.Classify(errors.New("models/gemini-nope is not found")),
	}
	cfg := model.DefaultConfig()
	cfg.Analysis.ChunkSize = 1000
	cfg.Analysis.ChunkOverlap = 100
	cfg.Analysis.ChunkWorkers = 1
	a := &Analyzer{Provider: stub, Config: cfg}

	var doc strings.Builder
	for doc.Len() < 1200 {
		doc.WriteString(indemnitySentence)
		doc.WriteString(" The parties will review deliverable schedules during the quarter. ")
	}

	result, err := a.Analyze(context.Background(), doc.String())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// The first failed call trips the run gate; no chunk or focus call
	// should follow it.
	if stub.calls() != 1 {
		t.Errorf("analyze calls = %d, want 1", stub.calls())
	}
	if result.Source != model.AnalysisSourceFallback {
		t.Errorf("Source = %q, want %q", result.Source, model.AnalysisSourceFallback)
	}
	if len(result.HighRiskClauses) == 0 {
		t.Fatal("heuristics should still produce clauses")
	}
	if result.HighRiskClauses[0].Category != model.CategoryIndemnity {
		t.Errorf("category = %q, want indemnity", result.HighRiskClauses[0].Category)
	}
}

func TestAnalyzeTransientErrorFallsBack(t *testing.T) {
	stub := &stubProvider{
		analyzeErr: llm.Classify(errors.New("429 quota exceeded")),
	}
	a := &Analyzer{Provider: stub}

	result, err := a.Analyze(context.Background(), riskyDoc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Transient failures fall back per call without tripping the gate, so
	// the focus pass still tries the provider.
	if stub.calls() != 2 {
		t.Errorf("analyze calls = %d, want 2", stub.calls())
	}
	if result.Source != model.AnalysisSourceFallback {
		t.Errorf("Source = %q, want %q", result.Source, model.AnalysisSourceFallback)
	}
	if len(result.HighRiskClauses) == 0 {
		t.Fatal("heuristics should still produce clauses")
	}
}

func TestAnalyzeCacheShortCircuitsProvider(t *testing.T) {
	stub := &stubProvider{
		analysis: llm.Analysis{
			Summary: "Cached chunk summary.",
			Clauses: []model.Clause{{
				ClauseText: indemnitySentence,
				RiskScore:  5,
				Source:     model.SourceLLM,
			}},
		},
		refinement: llm.Refinement{Mitigation: stubMitigation, ReplacementClause: stubReplacement},
	}
	a := &Analyzer{
		Provider: stub,
		Cache:    cache.NewMemoryCache(time.Hour, time.Hour),
	}

	first, err := a.Analyze(context.Background(), riskyDoc)
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	if first.Source != model.AnalysisSourceLLM {
		t.Fatalf("first Source = %q, want %q", first.Source, model.AnalysisSourceLLM)
	}
	callsAfterFirst := stub.calls()
	if callsAfterFirst == 0 {
		t.Fatal("first run should call the provider")
	}

	second, err := a.Analyze(context.Background(), riskyDoc)
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}
	if stub.calls() != callsAfterFirst {
		t.Errorf("second run made %d extra calls", stub.calls()-callsAfterFirst)
	}
	// A fully cached run makes no live calls, so the source reports the
	// deterministic pipeline.
	if second.Source != model.AnalysisSourceFallback {
		t.Errorf("second Source = %q, want %q", second.Source, model.AnalysisSourceFallback)
	}
	if len(second.HighRiskClauses) == 0 {
		t.Error("cached clauses should survive the second run")
	}
}

func TestFallbackClausesKeywordScan(t *testing.T) {
	lib := pattern.Default()
	r := &run{cfg: model.DefaultConfig(), lib: lib, detector: detect.New(lib)}

	// No detection rule covers exclusive remedies, so the legacy keyword
	// scan supplies the clause.
	text := "Your sole and exclusive remedy for any service failure shall be re-performance of the affected services."
	clauses := r.fallbackClauses(text, 3)
	if len(clauses) != 1 {
		t.Fatalf("clauses = %d, want 1: %+v", len(clauses), clauses)
	}
	c := clauses[0]
	if c.RiskScore != 4 {
		t.Errorf("score = %d, want 4", c.RiskScore)
	}
	if c.Source != model.SourceHeuristic {
		t.Errorf("source = %q, want heuristic", c.Source)
	}
	if c.Rationale == "" || c.Mitigation == "" || c.ReplacementClause == "" {
		t.Error("keyword clauses should carry rationale, mitigation, and replacement")
	}
	if !strings.Contains(text, c.ClauseText) {
		t.Errorf("clause text %q should come from the document", c.ClauseText)
	}
}

func TestFallbackClausesEmptyText(t *testing.T) {
	lib := pattern.Default()
	r := &run{cfg: model.DefaultConfig(), lib: lib, detector: detect.New(lib)}
	if clauses := r.fallbackClauses("   ", 3); clauses != nil {
		t.Errorf("clauses = %+v, want nil", clauses)
	}
}

func TestTruncateForDisplay(t *testing.T) {
	short := model.Clause{ClauseText: "Short clause text."}
	if got := truncateForDisplay(short); got.ClauseText != short.ClauseText || got.Truncated {
		t.Errorf("short text should pass through unchanged: %+v", got)
	}

	// A sentence boundary past the floor becomes the cut point.
	sentence := strings.Repeat("a", 450) + ". " + strings.Repeat("b", 200)
	got := truncateForDisplay(model.Clause{ClauseText: sentence})
	if got.ClauseText != strings.Repeat("a", 450)+"." {
		t.Errorf("want cut at sentence boundary, got %d chars", len(got.ClauseText))
	}
	if !got.Truncated {
		t.Error("truncated flag should be set")
	}

	// No boundary past the floor: hard cut with ellipsis.
	unbroken := strings.Repeat("c", 700)
	got = truncateForDisplay(model.Clause{ClauseText: unbroken})
	if got.ClauseText != strings.Repeat("c", 500)+"..." {
		t.Errorf("want hard cut at 500, got %d chars", len(got.ClauseText))
	}
	if !got.Truncated {
		t.Error("truncated flag should be set")
	}
}

func TestAssembleClauses(t *testing.T) {
	clauses := []model.Clause{
		{ClauseText: "located clause", RiskScore: 4},
		{ClauseText: "unlocated clause", RiskScore: 5},
		{ClauseText: "minimal clause", RiskScore: 1},
	}
	preview := highlight.Preview{
		Highlighted: []int{0, 2},
		Expanded:    map[int]string{0: "located clause with full sentence context"},
	}

	out := assembleClauses(clauses, preview)
	if len(out) != 1 {
		t.Fatalf("clauses = %d, want 1: %+v", len(out), out)
	}
	if out[0].ClauseText != "located clause with full sentence context" {
		t.Errorf("clause text should sync to the expanded span, got %q", out[0].ClauseText)
	}
}

func TestRebaseSpans(t *testing.T) {
	clauses := []model.Clause{
		{ClauseText: "a", Position: &model.Span{Start: 10, End: 20}},
		{ClauseText: "b"},
	}
	rebaseSpans(clauses, 500)
	if p := clauses[0].Position; p.Start != 510 || p.End != 520 {
		t.Errorf("span = %+v, want [510,520)", p)
	}
	if clauses[1].Position != nil {
		t.Error("nil positions stay nil")
	}

	same := &model.Span{Start: 3, End: 7}
	clauses = []model.Clause{{Position: same}}
	rebaseSpans(clauses, 0)
	if clauses[0].Position != same {
		t.Error("base 0 should not touch spans")
	}
}

func TestBuildSummaryFallsBackToExcerpt(t *testing.T) {
	r := &run{cfg: model.DefaultConfig(), fullText: cleanDoc}
	if got := r.buildSummary(nil); got != cleanDoc {
		t.Errorf("summary = %q, want document text", got)
	}

	r.fullText = strings.Repeat("word ", 2000)
	got := r.buildSummary([]string{"  ", ""})
	if got == "" || len(got) > 500 {
		t.Errorf("excerpt summary length = %d, want 1..500", len(got))
	}
}

func TestBuildSummaryJoinsParts(t *testing.T) {
	r := &run{cfg: model.DefaultConfig(), fullText: cleanDoc}
	got := r.buildSummary([]string{"First part.", "  Second part.  "})
	if got != "First part. Second part." {
		t.Errorf("summary = %q", got)
	}
}

func TestNewDefaults(t *testing.T) {
	a, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Library == nil {
		t.Error("library should default to the builtin tables")
	}
	if a.Classifier == nil {
		t.Error("classifier should be set")
	}
	if a.Provider != nil {
		t.Error("provider should be disabled by default")
	}
	if a.Cache == nil {
		t.Error("caching is on by default")
	}
}
