package model

import "testing"

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{5, "Critical"},
		{4, "High"},
		{3, "Medium"},
		{2, "Low"},
		{1, "Minimal"},
		{0, "Medium"},
		{7, "Medium"},
		{-1, "Medium"},
	}

	for _, tt := range tests {
		if got := RiskLevelFromScore(tt.score); got != tt.want {
			t.Errorf("RiskLevelFromScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCoerceScore(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{0, 3},
		{1, 1},
		{5, 5},
		{6, 5},
		{-2, 1},
		{3, 3},
	}

	for _, tt := range tests {
		if got := CoerceScore(tt.raw); got != tt.want {
			t.Errorf("CoerceScore(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestClauseNormalize(t *testing.T) {
	c := Clause{ClauseText: "some clause", RiskScore: 9}
	c.Normalize()

	if c.RiskScore != 5 {
		t.Errorf("RiskScore = %d, want 5", c.RiskScore)
	}
	if c.RiskLevel != LevelCritical {
		t.Errorf("RiskLevel = %q, want %q", c.RiskLevel, LevelCritical)
	}
	if c.Rationale == "" {
		t.Error("Rationale should be defaulted")
	}
	if c.Mitigation == "" {
		t.Error("Mitigation should be defaulted")
	}
	if c.Category != CategoryGeneric {
		t.Errorf("Category = %q, want %q", c.Category, CategoryGeneric)
	}
}

func TestClauseNormalizePreservesFields(t *testing.T) {
	c := Clause{
		ClauseText: "text",
		RiskScore:  4,
		Rationale:  "one-sided indemnity",
		Mitigation: "negotiate a cap",
		Category:   CategoryIndemnity,
	}
	c.Normalize()

	if c.Rationale != "one-sided indemnity" {
		t.Errorf("Rationale overwritten: %q", c.Rationale)
	}
	if c.Category != CategoryIndemnity {
		t.Errorf("Category overwritten: %q", c.Category)
	}
	if c.RiskLevel != LevelHigh {
		t.Errorf("RiskLevel = %q, want High", c.RiskLevel)
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		fraction float64
		want     bool
	}{
		{"disjoint", Span{0, 10}, Span{20, 30}, 0.5, false},
		{"identical", Span{0, 10}, Span{0, 10}, 0.5, true},
		{"half overlap of smaller", Span{0, 100}, Span{40, 60}, 0.5, true},
		{"tiny overlap", Span{0, 100}, Span{99, 200}, 0.5, false},
		{"adjacent", Span{0, 10}, Span{10, 20}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b, tt.fraction); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
