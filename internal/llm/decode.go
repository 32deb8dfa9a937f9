package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkoval/redline/internal/model"
)

// The payload DTOs mirror the exact JSON shape the prompts demand. This is
// the single input contract for provider responses; anything else is a
// malformed response and the caller falls back to heuristics.

type clausePayload struct {
	ClauseText        string  `json:"clause_text"`
	RiskScore         float64 `json:"risk_score"`
	RiskLevel         string  `json:"risk_level"`
	Rationale         string  `json:"rationale"`
	Mitigation        string  `json:"mitigation"`
	ReplacementClause string  `json:"replacement_clause"`
}

type analysisPayload struct {
	Summary         string          `json:"summary"`
	HighRiskClauses []clausePayload `json:"high_risk_clauses"`
}

type refinementPayload struct {
	Mitigation        string `json:"mitigation"`
	ReplacementClause string `json:"replacement_clause"`
}

// decodeAnalysis parses a raw analysis response and normalizes every
// clause: trimmed fields, coerced score, derived level, llm source, and
// the default confidence models do not report.
func decodeAnalysis(raw string) (*Analysis, error) {
	var payload analysisPayload
	if err := unmarshalResponse(raw, &payload); err != nil {
		return nil, err
	}

	analysis := &Analysis{Summary: strings.TrimSpace(payload.Summary)}
	for _, pc := range payload.HighRiskClauses {
		clause := model.Clause{
			ClauseText:        strings.TrimSpace(pc.ClauseText),
			RiskScore:         int(pc.RiskScore),
			RiskLevel:         strings.TrimSpace(pc.RiskLevel),
			Rationale:         strings.TrimSpace(pc.Rationale),
			Mitigation:        strings.TrimSpace(pc.Mitigation),
			ReplacementClause: strings.TrimSpace(pc.ReplacementClause),
			Source:            model.SourceLLM,
			Confidence:        0.85,
		}
		if clause.ClauseText == "" {
			continue
		}
		clause.Normalize()
		analysis.Clauses = append(analysis.Clauses, clause)
	}
	return analysis, nil
}

// decodeRefinement parses a raw refinement response.
func decodeRefinement(raw string) (*Refinement, error) {
	var payload refinementPayload
	if err := unmarshalResponse(raw, &payload); err != nil {
		return nil, err
	}
	return &Refinement{
		Mitigation:        strings.TrimSpace(payload.Mitigation),
		ReplacementClause: strings.TrimSpace(payload.ReplacementClause),
	}, nil
}

// unmarshalResponse strips markdown fences, parses JSON, and retries once
// with repaired escape sequences before giving up.
func unmarshalResponse(raw string, v any) error {
	cleaned := stripMarkdownFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		fixed := fixInvalidJSONEscapes(cleaned)
		if err2 := json.Unmarshal([]byte(fixed), v); err2 != nil {
			return fmt.Errorf("malformed response: %w", err)
		}
	}
	return nil
}

// fenceRe matches a markdown code fence block (``` or ~~~) with an
// optional language tag and captures the content between the fences. The
// content group uses `.*?` (not `.+?`) to allow empty bodies.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3}|~{3})[^\\n]*\\n(.*?)(?:`{3}|~{3})\\s*$")

// openFenceRe matches only an opening fence line. Used to strip orphaned
// opening fences from truncated responses.
var openFenceRe = regexp.MustCompile("^(?:`{3}|~{3})[^\\n]*\\n")

// stripMarkdownFences removes leading/trailing markdown code fences that
// models sometimes wrap around JSON output (e.g. "```json\n...\n```"). If
// only an opening fence is present because the response was truncated, the
// opening line is stripped so the JSON content can still be parsed.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}
	return s
}

// invalidJSONEscapeRe matches a backslash followed by any character that
// is not a valid JSON string escape character ("\/bfnrtu). Models
// sometimes emit regex-like patterns (e.g. \d+) unescaped inside JSON
// strings; the sanitizer double-escapes them so the parser accepts the
// response.
var invalidJSONEscapeRe = regexp.MustCompile(`\\([^"\\/bfnrtu])`)

// fixInvalidJSONEscapes replaces invalid JSON escape sequences in s with
// their correctly double-escaped equivalents.
func fixInvalidJSONEscapes(s string) string {
	return invalidJSONEscapeRe.ReplaceAllString(s, `\\$1`)
}
