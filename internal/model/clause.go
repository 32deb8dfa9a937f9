package model

import "strings"

// Span marks a clause's location in the source document as [Start, End) byte offsets.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether the overlap with other exceeds the given fraction
// of either span's length.
func (s Span) Overlaps(other Span, fraction float64) bool {
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End
	if other.End < end {
		end = other.End
	}
	overlap := end - start
	if overlap <= 0 {
		return false
	}
	if float64(overlap) > float64(s.End-s.Start)*fraction {
		return true
	}
	return float64(overlap) > float64(other.End-other.Start)*fraction
}

// ClauseSource identifies which detector produced a clause
type ClauseSource string

const (
	SourceHeuristic ClauseSource = "heuristic" // deterministic pattern engine
	SourceLLM       ClauseSource = "llm"       // language-model analysis
)

// Risk categories assigned to detected clauses
const (
	CategoryIndemnity         = "indemnity"
	CategoryLiability         = "liability"
	CategoryTermination       = "termination"
	CategoryRenewal           = "renewal"
	CategoryIPRights          = "intellectual_property"
	CategoryDataProtection    = "data_protection"
	CategoryDisputeResolution = "dispute_resolution"
	CategoryPayment           = "payment"
	CategoryWarranty          = "warranty"
	CategoryConfidentiality   = "confidentiality"
	CategoryNonCompete        = "non_compete"
	CategoryAmendment         = "amendment"
	CategoryAssignment        = "assignment"
	CategoryForceMajeure      = "force_majeure"
	CategoryJurisdiction      = "jurisdiction"
	CategoryGeneric           = "generic"
)

// Clause is a single risky clause detected in a document, with scoring,
// rationale, and proposed replacement language.
type Clause struct {
	ClauseText        string       `json:"clause_text"`                  // Exact text from the document
	RiskLevel         string       `json:"risk_level"`                   // Critical/High/Medium/Low/Minimal
	RiskScore         int          `json:"risk_score"`                   // 1-5, 5 is critical
	Rationale         string       `json:"rationale"`                    // Why the clause is risky
	Mitigation        string       `json:"mitigation"`                   // Negotiation advice
	ReplacementClause string       `json:"replacement_clause,omitempty"` // Safer contract language
	Category          string       `json:"category,omitempty"`           // Risk category
	Confidence        float64      `json:"confidence,omitempty"`         // 0-1 detection confidence
	Source            ClauseSource `json:"source,omitempty"`             // heuristic or llm
	Weight            float64      `json:"weight,omitempty"`             // Pattern weight, used as sort tiebreak
	PatternSnippet    string       `json:"pattern_snippet,omitempty"`    // First 50 chars of the matched pattern
	Position          *Span        `json:"position,omitempty"`           // Location in the source text
	BalanceType       string       `json:"balance_type,omitempty"`       // mutual/reciprocal/qualified/one_sided/asymmetric
	BalanceReasons    []string     `json:"balance_reasons,omitempty"`    // Why the balance analyzer adjusted the score
	Truncated         bool         `json:"clause_text_truncated,omitempty"`

	// Refinement metadata, set when the solution refiner has run
	PatternMatched   string `json:"pattern_matched,omitempty"`   // Matched refinement pattern, title-cased
	PatternSeverity  int    `json:"pattern_severity,omitempty"`  // Severity of the matched pattern
	RefinementMethod string `json:"refinement_method,omitempty"` // pattern_plus_llm/llm_general/pattern_only
}

// Risk level labels in descending severity
const (
	LevelCritical = "Critical"
	LevelHigh     = "High"
	LevelMedium   = "Medium"
	LevelLow      = "Low"
	LevelMinimal  = "Minimal"
)

// Fingerprint returns the identity key used to spot near-duplicate
// clauses: the first 25 lowercased words longer than three characters.
// Wording tweaks and short filler words do not change the key.
func Fingerprint(text string) string {
	words := make([]string, 0, 25)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) > 3 {
			words = append(words, w)
			if len(words) == 25 {
				break
			}
		}
	}
	return strings.Join(words, " ")
}

// RiskLevelFromScore maps a numeric score to its display label.
// Out-of-range scores map to Medium.
func RiskLevelFromScore(score int) string {
	switch score {
	case 5:
		return LevelCritical
	case 4:
		return LevelHigh
	case 3:
		return LevelMedium
	case 2:
		return LevelLow
	case 1:
		return LevelMinimal
	default:
		return LevelMedium
	}
}

// CoerceScore clamps a raw score into [1,5]. Zero (unset) becomes 3.
func CoerceScore(raw int) int {
	if raw == 0 {
		return 3
	}
	if raw < 1 {
		return 1
	}
	if raw > 5 {
		return 5
	}
	return raw
}

// Normalize fills derived and defaulted fields after decoding foreign input:
// the score is clamped, a missing level is derived from the score, and empty
// rationale/mitigation strings are replaced with safe defaults. A non-empty
// level is kept even when it disagrees with the score.
func (c *Clause) Normalize() {
	c.RiskScore = CoerceScore(c.RiskScore)
	if c.RiskLevel == "" {
		c.RiskLevel = RiskLevelFromScore(c.RiskScore)
	}
	if c.Rationale == "" {
		c.Rationale = "Potential risk identified"
	}
	if c.Mitigation == "" {
		c.Mitigation = "Review with legal counsel"
	}
	if c.Category == "" {
		c.Category = CategoryGeneric
	}
}
