package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkoval/redline/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Summary: "The agreement contains a one-sided indemnity.",
		HighRiskClauses: []model.Clause{{
			ClauseText:        "Customer shall indemnify Provider against all claims.",
			RiskLevel:         model.LevelCritical,
			RiskScore:         5,
			Rationale:         "Unlimited one-sided indemnity.",
			Mitigation:        "Cap the indemnity and make it mutual.",
			ReplacementClause: "Each party shall indemnify the other for third-party claims caused by its own negligence.",
			Category:          model.CategoryIndemnity,
			PatternMatched:    "One Sided Indemnity",
			PatternSeverity:   5,
		}},
		HighlightedPreview: `Customer shall <mark class="risk-high" data-risk-score="5">indemnify Provider</mark> against all claims.`,
		PreviewText:        "Customer shall indemnify Provider against all claims.",
		DocumentType:       "Service Agreement",
		DocumentTypeConf:   87.5,
		RiskIndex:          &model.RiskIndex{Index: 60, Label: "high", Confidence: "low"},
		Source:             model.AnalysisSourceLLM,
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("json").Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded model.AnalysisResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Source != model.AnalysisSourceLLM {
		t.Errorf("source = %q, want %q", decoded.Source, model.AnalysisSourceLLM)
	}
	if len(decoded.HighRiskClauses) != 1 {
		t.Fatalf("clauses = %d, want 1", len(decoded.HighRiskClauses))
	}
	if decoded.HighRiskClauses[0].RiskScore != 5 {
		t.Errorf("risk score = %d, want 5", decoded.HighRiskClauses[0].RiskScore)
	}
	if decoded.DocumentTypeConf != 87.5 {
		t.Errorf("confidence = %v, want 87.5", decoded.DocumentTypeConf)
	}
	if decoded.RiskIndex == nil || decoded.RiskIndex.Index != 60 {
		t.Errorf("risk index = %+v, want index 60", decoded.RiskIndex)
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("text").Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Document Risk Analysis",
		"Service Agreement (87.5% confidence)",
		"Risk index:     60/100 (high, low confidence)",
		"[1] Critical (risk 5/5) [indemnity]",
		"Customer shall indemnify Provider against all claims.",
		"Cap the indemnity and make it mutual.",
		"Replacement:",
		"One Sided Indemnity (severity 5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTextDefaultsAndEmpty(t *testing.T) {
	result := &model.AnalysisResult{
		DocumentType: "General Agreement",
		Source:       model.AnalysisSourceFallback,
	}

	var buf bytes.Buffer
	// An empty format selects the text renderer.
	if err := NewRenderer("").Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "No high-risk clauses detected.") {
		t.Errorf("missing empty-state line:\n%s", buf.String())
	}
}

func TestRenderHTML(t *testing.T) {
	result := sampleResult()
	result.HighRiskClauses[0].ClauseText = `<script>alert(1)</script> indemnify`

	var buf bytes.Buffer
	if err := NewRenderer("html").Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	// The pre-escaped preview passes through unescaped, clause fields do not.
	if !strings.Contains(out, `<mark class="risk-high" data-risk-score="5">`) {
		t.Error("highlighted preview should be embedded as-is")
	}
	if strings.Contains(out, "<script>") {
		t.Error("clause text must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("escaped clause text missing")
	}
	if !strings.Contains(out, `class="clause risk-high"`) {
		t.Error("clause card should carry the risk class")
	}
	if !strings.Contains(out, "Service Agreement") {
		t.Error("document type missing")
	}
	if !strings.Contains(out, "Risk index: 60/100 (high)") {
		t.Error("risk index line missing")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer("yaml").Render(&buf, sampleResult())
	if err == nil {
		t.Fatal("unknown format should fail")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("err = %v", err)
	}
}

func TestRenderFormatCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("JSON").Render(&buf, sampleResult()); err != nil {
		t.Errorf("Render(JSON): %v", err)
	}
}

func TestRiskClass(t *testing.T) {
	cases := map[int]string{5: "risk-high", 4: "risk-high", 3: "risk-medium", 2: "risk-low", 1: "risk-low"}
	for score, want := range cases {
		if got := riskClass(score); got != want {
			t.Errorf("riskClass(%d) = %q, want %q", score, got, want)
		}
	}
}
