// Package refine upgrades a detected clause's mitigation and replacement
// text in two stages: a template lookup against the document type's
// refinement groups, then a provider call that tailors the template to
// the clause. When the provider is unavailable or answers poorly, the
// template stands.
package refine

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/pkoval/redline/internal/llm"
	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pattern"
)

var errProviderUnavailable = errors.New("llm provider unavailable")

const (
	// DefaultMaxRefine caps how many clauses a batch run sends to the
	// provider.
	DefaultMaxRefine = 6

	// minMitigationLen and minReplacementLen reject provider answers too
	// short to be usable; the template is kept instead.
	minMitigationLen  = 30
	minReplacementLen = 50

	generalContext  = "General contractual risk requiring balanced terms"
	generalSolution = "Negotiate balanced, mutual terms with clear limits and adequate protections."
)

// Refinement method values recorded on the clause.
const (
	MethodPatternPlusLLM = "pattern_plus_llm"
	MethodLLMGeneral     = "llm_general"
	MethodPatternOnly    = "pattern_only"
)

// Refiner tailors mitigation and replacement text for detected clauses.
type Refiner struct {
	provider llm.Provider
	library  *pattern.Library
}

// New returns a Refiner backed by the given provider and pattern library.
// A nil provider is allowed; refinement then stops at the template stage.
func New(provider llm.Provider, library *pattern.Library) *Refiner {
	return &Refiner{provider: provider, library: library}
}

// template holds the stage-one result handed to the provider.
type template struct {
	category    string // matched refinement group key, empty for general
	context     string
	severity    int
	solution    string
	alternative string
}

// Clause runs both refinement stages on a single clause and returns the
// updated copy. The clause keeps its template-derived advice when the
// provider fails or returns answers below the length thresholds.
func (r *Refiner) Clause(ctx context.Context, clause model.Clause, docType, docTypeName string) model.Clause {
	if clause.ClauseText == "" {
		return clause
	}

	riskScore := clause.RiskScore
	if riskScore == 0 {
		riskScore = 3
	}
	riskLevel := clause.RiskLevel
	if riskLevel == "" {
		riskLevel = model.LevelMedium
	}

	tpl := r.matchTemplate(clause.ClauseText, docType, riskScore)

	refined, err := r.callProvider(ctx, clause, riskLevel, riskScore, tpl, docTypeName)
	if err != nil {
		clause.Mitigation = tpl.solution
		clause.ReplacementClause = tpl.alternative
		applyPatternMetadata(&clause, tpl)
		clause.RefinementMethod = MethodPatternOnly
		return clause
	}

	if len(refined.Mitigation) > minMitigationLen {
		clause.Mitigation = refined.Mitigation
	} else {
		clause.Mitigation = tpl.solution
	}
	if len(refined.ReplacementClause) > minReplacementLen {
		clause.ReplacementClause = refined.ReplacementClause
	} else {
		clause.ReplacementClause = tpl.alternative
	}

	applyPatternMetadata(&clause, tpl)
	if tpl.category != "" {
		clause.RefinementMethod = MethodPatternPlusLLM
	} else {
		clause.RefinementMethod = MethodLLMGeneral
	}
	return clause
}

// matchTemplate finds the first refinement group for docType whose
// patterns match the clause text, falling back to the general template.
func (r *Refiner) matchTemplate(clauseText, docType string, riskScore int) template {
	for _, rule := range r.library.TypeRules(docType) {
		if rule.Match(clauseText) {
			return template{
				category:    rule.Key,
				context:     rule.Context,
				severity:    rule.Severity,
				solution:    rule.SolutionTemplate,
				alternative: rule.AlternativePattern,
			}
		}
	}

	solution := r.library.Mitigations(docType)["general"]
	if solution == "" {
		solution = generalSolution
	}
	return template{
		context:     generalContext,
		severity:    riskScore,
		solution:    solution,
		alternative: pattern.GenericAlternative,
	}
}

func (r *Refiner) callProvider(ctx context.Context, clause model.Clause, riskLevel string, riskScore int, tpl template, docTypeName string) (*llm.Refinement, error) {
	if r.provider == nil {
		return nil, errProviderUnavailable
	}
	return r.provider.Refine(ctx, llm.RefineRequest{
		ClauseText:      clause.ClauseText,
		RiskLevel:       riskLevel,
		RiskScore:       riskScore,
		Rationale:       clause.Rationale,
		PatternCategory: tpl.category,
		Solution:        tpl.solution,
		Alternative:     tpl.alternative,
		DocTypeName:     docTypeName,
	})
}

func applyPatternMetadata(clause *model.Clause, tpl template) {
	if tpl.category == "" {
		return
	}
	clause.PatternMatched = titleCase(tpl.category)
	clause.PatternSeverity = tpl.severity
}

// titleCase turns a snake_case group key into a display label, e.g.
// "unlimited_liability" becomes "Unlimited Liability".
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Batch refines the highest-scored clauses in place, at most maxRefine of
// them, and returns the slice in its original order.
func (r *Refiner) Batch(ctx context.Context, clauses []model.Clause, docType, docTypeName string, maxRefine int) []model.Clause {
	if len(clauses) == 0 {
		return clauses
	}
	if maxRefine <= 0 {
		maxRefine = DefaultMaxRefine
	}

	order := make([]int, len(clauses))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return clauses[order[a]].RiskScore > clauses[order[b]].RiskScore
	})
	if len(order) > maxRefine {
		order = order[:maxRefine]
	}

	for _, idx := range order {
		clauses[idx] = r.Clause(ctx, clauses[idx], docType, docTypeName)
	}
	return clauses
}
