package model

// Analysis sources reported in the result payload. The literals are part of
// the wire format and do not change with the configured provider.
const (
	AnalysisSourceLLM      = "chunked-gemini" // at least one provider call succeeded
	AnalysisSourceFallback = "fallback"       // deterministic pipeline only
)

// Signal severities used by the document risk index.
const (
	SignalSeverityInfo     = "info"
	SignalSeverityWarning  = "warning"
	SignalSeverityCritical = "critical"
)

// RiskSignal is one diagnostic behind the document risk index.
type RiskSignal struct {
	Type        string                 `json:"type"`
	Severity    string                 `json:"severity"` // info, warning, or critical
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// RiskIndex aggregates the surviving clauses into a 0-100 document score,
// higher meaning riskier.
type RiskIndex struct {
	Index      int          `json:"index"`
	Label      string       `json:"label"`      // minimal, low, moderate, high, or severe
	Confidence string       `json:"confidence"` // low, medium, or high
	Signals    []RiskSignal `json:"signals,omitempty"`
}

// AnalysisResult is the complete output of a document analysis.
type AnalysisResult struct {
	Summary            string     `json:"summary"`                  // Merged chunk summaries, capped at 900 chars
	HighRiskClauses    []Clause   `json:"high_risk_clauses"`        // Surviving clauses in priority order
	HighlightedPreview string     `json:"highlighted_preview"`      // HTML with <mark> risk spans
	PreviewText        string     `json:"preview_text"`             // Full source text
	DocumentType       string     `json:"document_type"`            // Display name, e.g. "Non-Disclosure Agreement"
	DocumentTypeConf   float64    `json:"document_type_confidence"` // Percent, one decimal
	RiskIndex          *RiskIndex `json:"risk_index,omitempty"`     // Document-level aggregate
	Source             string     `json:"source"`                   // chunked-gemini or fallback
}
