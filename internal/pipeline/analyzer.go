// Package pipeline orchestrates a complete document analysis: document
// type classification, chunking, LLM-augmented detection with heuristic
// fallbacks, merge and dedup, two-stage solution refinement, and the
// highlighted preview.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkoval/redline/internal/cache"
	"github.com/pkoval/redline/internal/chunk"
	"github.com/pkoval/redline/internal/classify"
	"github.com/pkoval/redline/internal/detect"
	"github.com/pkoval/redline/internal/highlight"
	"github.com/pkoval/redline/internal/llm"
	"github.com/pkoval/redline/internal/merge"
	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pattern"
	"github.com/pkoval/redline/internal/refine"
	"github.com/pkoval/redline/internal/score"
)

const (
	// Summary widths for the analyses produced without the model: plain
	// chunks, failed provider calls, and the focus excerpt.
	plainSummaryChars    = 260
	fallbackSummaryChars = 320
	focusSummaryChars    = 360

	// focusTriggerCount runs the focus pass when chunk analysis yielded
	// fewer candidate clauses than this.
	focusTriggerCount = 6

	// Display truncation for very long clause texts: cut at the last
	// sentence boundary past the floor, else hard cut at the limit.
	displayClauseLimit   = 500
	displaySentenceFloor = 400

	// Legacy keyword scan: first occurrence of each top keyword with a
	// fixed window of context around it.
	legacyKeywordCount  = 20
	legacyContextChars  = 220
	defaultSummaryChars = 900

	// truncatedDocChars bounds the document excerpt used when no stage
	// produced a summary.
	truncatedDocChars    = 6000
	summaryFallbackChars = 500
)

// heuristicNote joins the summary when every clause came from pattern
// matching alone.
const heuristicNote = "Enhanced pattern matching detected high-risk clauses."

// Analyzer runs the full risk-analysis pipeline over document text. Zero
// values are usable: a nil Library falls back to the builtin tables, a
// nil Classifier to the keyword classifier, a nil Provider disables LLM
// augmentation, and a nil Cache disables result caching.
type Analyzer struct {
	Library    *pattern.Library
	Classifier classify.Classifier
	Provider   llm.Provider
	Cache      cache.Cache
	Config     *model.Config
}

// New builds an Analyzer from configuration. A provider that fails to
// initialize is reported and dropped; the deterministic pipeline does not
// depend on it.
func New(cfg *model.Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	lib := pattern.Default()
	if cfg.Patterns.Path != "" {
		loaded, err := pattern.Load(cfg.Patterns.Path)
		if err != nil {
			return nil, err
		}
		lib = loaded
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.Config{
			Provider:    cfg.LLM.Provider,
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			Verbose:     cfg.Output.Verbose,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM provider disabled: %v\n", err)
		} else {
			provider = p
		}
	}

	return &Analyzer{
		Library:    lib,
		Classifier: classify.NewKeywordClassifier(),
		Provider:   provider,
		Cache:      newStore(cfg.Cache),
		Config:     cfg,
	}, nil
}

// newStore picks the cache backing from configuration: layered when a
// disk directory is set, in-memory otherwise, nil when caching is off.
func newStore(cfg model.CacheConfig) cache.Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return cache.NewLayeredCache(cache.ChunkTTL, cfg.Dir, cache.ChunkTTL)
	}
	return cache.NewMemoryCache(cache.ChunkTTL, 5*time.Minute)
}

// Analyze runs every pipeline stage over text. The provider is optional
// at every step; only empty input fails.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*model.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("document text is empty")
	}

	cfg := a.Config
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	lib := a.Library
	if lib == nil {
		lib = pattern.Default()
	}
	classifier := a.Classifier
	if classifier == nil {
		classifier = classify.NewKeywordClassifier()
	}

	docType, confidence := classifier.Classify(text, "")

	r := &run{
		cfg:         cfg,
		lib:         lib,
		detector:    detect.New(lib),
		provider:    a.Provider,
		store:       a.Cache,
		fullText:    text,
		docType:     docType,
		docTypeName: classify.TypeName(docType),
		confidence:  confidence,
		patterns:    patternContexts(lib, docType),
		strategy:    lib.Mitigations(docType)["general"],
	}
	return r.execute(ctx), nil
}

// run is the working state of one Analyze invocation. The llmDown flag
// is run scoped: a permanent provider failure disables further calls for
// the rest of this run only, and every worker observes it.
type run struct {
	cfg         *model.Config
	lib         *pattern.Library
	detector    *detect.Detector
	provider    llm.Provider
	store       cache.Cache
	fullText    string
	docType     string
	docTypeName string
	confidence  float64
	patterns    []llm.PatternContext
	strategy    string

	llmDown atomic.Bool
	llmUsed atomic.Bool
}

// chunkResult is one analysis unit's contribution. The JSON shape is also
// the cached record for chunk and focus analyses.
type chunkResult struct {
	Summary string         `json:"summary"`
	Clauses []model.Clause `json:"high_risk_clauses"`
}

func (r *run) execute(ctx context.Context) *model.AnalysisResult {
	chunks := chunk.Split(r.fullText, r.cfg.Analysis.ChunkSize, r.cfg.Analysis.ChunkOverlap)
	selected := chunk.SelectLLM(chunks, r.lib, r.cfg.Analysis.MaxLLMChunks)
	results := r.analyzeChunks(ctx, chunks, selected)

	var summaryParts []string
	var candidates []model.Clause
	for idx, res := range results {
		if res.Summary != "" {
			summaryParts = append(summaryParts, res.Summary)
		}
		rebaseSpans(res.Clauses, chunks[idx].Start)
		candidates = append(candidates, res.Clauses...)
	}

	if len(candidates) < focusTriggerCount {
		if snippets := chunk.FocusSentences(r.fullText, r.lib, chunk.DefaultMaxFocus); len(snippets) > 0 {
			focus := r.analyzeFocus(ctx, snippets)
			if focus.Summary != "" {
				summaryParts = append(summaryParts, focus.Summary)
			}
			candidates = append(candidates, focus.Clauses...)
		}
	}

	// The deterministic detector always sweeps the whole document as a
	// safety net, whatever the provider produced.
	heuristic := r.withReplacements(r.detector.Detect(r.fullText, r.cfg.Analysis.MaxHeuristic))

	if len(candidates) == 0 {
		candidates = heuristic
		if len(candidates) > 0 {
			summaryParts = append(summaryParts, heuristicNote)
		}
	} else {
		candidates = merge.Merge(candidates, heuristic, r.cfg.Analysis.MaxMergedClauses)
	}

	deduped := merge.DedupeByPosition(candidates, r.cfg.Analysis.MaxClauses)
	deduped = merge.OrderByPriority(deduped, r.fullText)

	refiner := refine.New(r.liveProvider(), r.lib)
	deduped = refiner.Batch(ctx, deduped, r.docType, r.docTypeName, r.cfg.Analysis.RefineTop)

	preview := highlight.BuildPreview(r.fullText, deduped)
	final := assembleClauses(deduped, preview)
	index := score.NewScorer().Calculate(final)

	return &model.AnalysisResult{
		Summary:            r.buildSummary(summaryParts),
		HighRiskClauses:    final,
		HighlightedPreview: preview.HTML,
		PreviewText:        r.fullText,
		DocumentType:       r.docTypeName,
		DocumentTypeConf:   math.Round(r.confidence*1000) / 10,
		RiskIndex:          &index,
		Source:             r.source(),
	}
}

// analyzeChunks runs the per-chunk analyses. Chunks selected for the
// model go through a bounded worker group; the rest take the cheap
// heuristic path on the spot. Every result lands in its chunk's slot, so
// output order never depends on completion order.
func (r *run) analyzeChunks(ctx context.Context, chunks []chunk.Chunk, selected map[int]bool) []chunkResult {
	results := make([]chunkResult, len(chunks))

	workers := r.cfg.Analysis.ChunkWorkers
	if workers <= 0 {
		workers = 4
	}
	if workers > len(chunks) {
		workers = len(chunks)
	}
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, c := range chunks {
		if !selected[i] {
			results[i] = chunkResult{
				Summary: chunk.Shorten(c.Text, plainSummaryChars),
				Clauses: r.fallbackClauses(c.Text, 2),
			}
			continue
		}

		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = chunkResult{
					Summary: chunk.Shorten(text, plainSummaryChars),
					Clauses: r.fallbackClauses(text, 2),
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = r.analyzeChunk(ctx, idx, text)
		}(i, c.Text)
	}

	wg.Wait()
	return results
}

// analyzeChunk sends one selected chunk to the provider, with the content
// addressed cache in front and heuristic fallbacks behind. Fallback
// results are cached too, so a flaky provider does not retry on the next
// run over the same text.
func (r *run) analyzeChunk(ctx context.Context, idx int, text string) chunkResult {
	if !r.llmReady() {
		return chunkResult{
			Summary: chunk.Shorten(text, plainSummaryChars),
			Clauses: r.fallbackClauses(text, 3),
		}
	}

	key := cache.ChunkKey(text)
	if cached, ok := r.cachedResult(key); ok {
		return cached
	}

	analysis, err := r.callProvider(ctx, llm.AnalysisRequest{
		Text:        text,
		Kind:        llm.KindChunk,
		ChunkIndex:  idx + 1,
		ChunkLength: len(text),
		DocType:     r.docType,
		DocTypeName: r.docTypeName,
		Patterns:    r.patterns,
		Strategy:    r.strategy,
	})
	if err != nil {
		if r.cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "chunk %d analysis failed, using heuristic fallback: %v\n", idx+1, err)
		}
		fallback := chunkResult{
			Summary: chunk.Shorten(text, fallbackSummaryChars),
			Clauses: r.fallbackClauses(text, 3),
		}
		r.storeResult(key, fallback, cache.ChunkTTL)
		return fallback
	}

	result := chunkResult{Summary: analysis.Summary, Clauses: analysis.Clauses}
	if len(result.Clauses) == 0 {
		result.Clauses = r.fallbackClauses(text, 3)
	}
	r.storeResult(key, result, cache.ChunkTTL)
	return result
}

// analyzeFocus gives the top keyword sentences a second look when chunk
// analysis produced few candidates.
func (r *run) analyzeFocus(ctx context.Context, snippets []string) chunkResult {
	joined := chunk.JoinFocus(snippets)
	if joined == "" {
		return chunkResult{}
	}

	if !r.llmReady() {
		return chunkResult{
			Summary: chunk.Shorten(joined, focusSummaryChars),
			Clauses: r.focusFallback(joined, 4),
		}
	}

	key := cache.FocusKey(joined)
	if cached, ok := r.cachedResult(key); ok {
		return cached
	}

	analysis, err := r.callProvider(ctx, llm.AnalysisRequest{
		Text:        joined,
		Kind:        llm.KindFocus,
		DocType:     r.docType,
		DocTypeName: r.docTypeName,
		Patterns:    r.patterns,
		Strategy:    r.strategy,
	})
	if err != nil {
		if r.cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "focus analysis failed, using heuristic fallback: %v\n", err)
		}
		fallback := chunkResult{
			Summary: chunk.Shorten(joined, focusSummaryChars),
			Clauses: r.focusFallback(joined, 4),
		}
		r.storeResult(key, fallback, cache.FocusTTL)
		return fallback
	}

	result := chunkResult{Summary: analysis.Summary, Clauses: analysis.Clauses}
	if len(result.Clauses) == 0 {
		result.Clauses = r.focusFallback(joined, 4)
	}
	r.storeResult(key, result, cache.FocusTTL)
	return result
}

// callProvider wraps every analysis call with the run's disable gate: a
// permanent failure turns the provider off for the rest of the run, and
// any success marks the result as model-assisted.
func (r *run) callProvider(ctx context.Context, req llm.AnalysisRequest) (*llm.Analysis, error) {
	analysis, err := r.provider.Analyze(ctx, req)
	if err != nil {
		if errors.Is(err, llm.ErrPermanent) {
			r.llmDown.Store(true)
			fmt.Fprintf(os.Stderr, "disabling %s provider for this run: %v\n", r.provider.Name(), err)
		}
		return nil, err
	}
	r.llmUsed.Store(true)
	return analysis, nil
}

func (r *run) llmReady() bool {
	return r.provider != nil && !r.llmDown.Load()
}

// liveProvider returns the provider for the refinement stage, nil when
// the run's gate has tripped.
func (r *run) liveProvider() llm.Provider {
	if !r.llmReady() {
		return nil
	}
	return r.provider
}

func (r *run) source() string {
	if r.llmUsed.Load() {
		return model.AnalysisSourceLLM
	}
	return model.AnalysisSourceFallback
}

// fallbackClauses is the heuristic stand-in for a provider response: the
// full detector first, then the legacy first-match keyword scan when the
// detector comes back empty.
func (r *run) fallbackClauses(text string, limit int) []model.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if clauses := r.withReplacements(r.detector.Detect(text, limit)); len(clauses) > 0 {
		return clauses
	}
	return r.keywordScan(text, limit)
}

// focusFallback detects over the joined snippet text, whose offsets mean
// nothing in the document, so spans are cleared.
func (r *run) focusFallback(joined string, limit int) []model.Clause {
	clauses := r.fallbackClauses(joined, limit)
	for i := range clauses {
		clauses[i].Position = nil
	}
	return clauses
}

// withReplacements attaches replacement language by category and fills
// the confidence and weight defaults the merge relies on.
func (r *run) withReplacements(clauses []model.Clause) []model.Clause {
	for i := range clauses {
		if clauses[i].ReplacementClause == "" {
			clauses[i].ReplacementClause = r.lib.Replacement(clauses[i].Category)
		}
		if clauses[i].Confidence == 0 {
			clauses[i].Confidence = 0.75
		}
		if clauses[i].Weight == 0 {
			clauses[i].Weight = 5.0
		}
	}
	return clauses
}

// keywordScan is the legacy detector: the first occurrence of each of the
// top keywords with a fixed window of context around it.
func (r *run) keywordScan(text string, limit int) []model.Clause {
	lowered := strings.ToLower(text)
	var clauses []model.Clause

	keywords := r.lib.Keywords()
	if len(keywords) > legacyKeywordCount {
		keywords = keywords[:legacyKeywordCount]
	}
	for _, kw := range keywords {
		idx := strings.Index(lowered, kw.Pattern)
		if idx < 0 {
			continue
		}
		start := idx - legacyContextChars
		if start < 0 {
			start = 0
		}
		end := idx + len(kw.Pattern) + legacyContextChars
		if end > len(text) {
			end = len(text)
		}
		snippet := strings.TrimSpace(text[start:end])
		if snippet == "" {
			continue
		}

		score := model.CoerceScore(kw.DefaultScore)
		clauses = append(clauses, model.Clause{
			ClauseText:        snippet,
			RiskScore:         score,
			RiskLevel:         model.RiskLevelFromScore(score),
			Rationale:         kw.Rationale,
			Mitigation:        kw.Suggestion,
			ReplacementClause: r.lib.Replacement(kw.ReplacementCategory),
			Source:            model.SourceHeuristic,
		})
		if len(clauses) >= limit {
			break
		}
	}
	return clauses
}

func (r *run) cachedResult(key string) (chunkResult, bool) {
	if r.store == nil {
		return chunkResult{}, false
	}
	data, ok := r.store.Get(key)
	if !ok {
		return chunkResult{}, false
	}
	var result chunkResult
	if err := json.Unmarshal(data, &result); err != nil {
		return chunkResult{}, false
	}
	return result, true
}

func (r *run) storeResult(key string, result chunkResult, ttl time.Duration) {
	if r.store == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = r.store.Set(key, data, ttl)
}

// buildSummary joins the per-stage summaries, falling back to a shortened
// document excerpt when no stage produced one.
func (r *run) buildSummary(parts []string) string {
	maxChars := r.cfg.Analysis.SummaryMaxChars
	if maxChars <= 0 {
		maxChars = defaultSummaryChars
	}

	var kept []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	if summary := chunk.Shorten(strings.Join(kept, " "), maxChars); summary != "" {
		return summary
	}

	excerpt := r.fullText
	if len(excerpt) > truncatedDocChars {
		excerpt = excerpt[:truncatedDocChars]
	}
	return chunk.Shorten(excerpt, summaryFallbackChars)
}

// assembleClauses builds the final clause list from the refined set and
// the preview bookkeeping. Only clauses the highlighter could place
// survive, their text synchronized to the expanded span shown in the
// preview; minimal-risk leftovers are dropped.
func assembleClauses(clauses []model.Clause, preview highlight.Preview) []model.Clause {
	highlighted := make(map[int]bool, len(preview.Highlighted))
	for _, idx := range preview.Highlighted {
		highlighted[idx] = true
	}

	out := make([]model.Clause, 0, len(clauses))
	for idx, clause := range clauses {
		if !highlighted[idx] {
			continue
		}
		if expanded := preview.Expanded[idx]; expanded != "" {
			clause.ClauseText = expanded
		}
		if clause.RiskScore <= 1 {
			continue
		}
		out = append(out, truncateForDisplay(clause))
	}
	return out
}

// truncateForDisplay shortens very long clause text for the clause list,
// preferring a sentence boundary past the floor over a hard cut.
func truncateForDisplay(clause model.Clause) model.Clause {
	text := clause.ClauseText
	if len(text) <= displayClauseLimit {
		return clause
	}

	head := text[:displayClauseLimit]
	cut := -1
	for _, term := range []string{".", "?", "!"} {
		if i := strings.LastIndex(head, term); i > cut {
			cut = i
		}
	}
	if cut > displaySentenceFloor {
		clause.ClauseText = text[:cut+1]
	} else {
		clause.ClauseText = head + "..."
	}
	clause.Truncated = true
	return clause
}

// rebaseSpans shifts chunk-relative clause spans onto document offsets.
func rebaseSpans(clauses []model.Clause, base int) {
	if base == 0 {
		return
	}
	for i := range clauses {
		if p := clauses[i].Position; p != nil {
			clauses[i].Position = &model.Span{Start: p.Start + base, End: p.End + base}
		}
	}
}

// patternContexts renders the document type's refinement groups as prompt
// guidance.
func patternContexts(lib *pattern.Library, docType string) []llm.PatternContext {
	rules := lib.TypeRules(docType)
	if len(rules) == 0 {
		return nil
	}
	contexts := make([]llm.PatternContext, 0, len(rules))
	for _, rule := range rules {
		contexts = append(contexts, llm.PatternContext{
			Key:         rule.Key,
			Context:     rule.Context,
			Severity:    rule.Severity,
			Solution:    rule.SolutionTemplate,
			Alternative: rule.AlternativePattern,
		})
	}
	return contexts
}
