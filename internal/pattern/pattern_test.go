package pattern

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkoval/redline/internal/model"
)

func TestNewValidatesBuiltins(t *testing.T) {
	lib, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := len(lib.Rules()); got != 23 {
		t.Errorf("core rules = %d, want 23", got)
	}
	if got := len(lib.Keywords()); got != 61 {
		t.Errorf("keywords = %d, want 61", got)
	}

	types := []string{"nda", "employment", "service_agreement", "lease", "saas", "loan", "privacy_policy", "terms_of_service"}
	for _, dt := range types {
		groups := lib.TypeRules(dt)
		if len(groups) != 3 {
			t.Errorf("TypeRules(%q) = %d groups, want 3", dt, len(groups))
		}
	}
	if lib.TypeRules("shopping_list") != nil {
		t.Error("unknown type should have no groups")
	}
}

func TestDefaultIsStable(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() should return the same library")
	}
}

func TestBuildRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"bad regex", Rule{Pattern: `liability(`, Regex: true, Category: model.CategoryLiability, BaseScore: 3, Weight: 1, Description: "d", Mitigation: "m"}},
		{"unknown category", Rule{Pattern: "x", Category: "vibes", BaseScore: 3, Weight: 1, Description: "d", Mitigation: "m"}},
		{"score out of range", Rule{Pattern: "x", Category: model.CategoryLiability, BaseScore: 9, Weight: 1, Description: "d", Mitigation: "m"}},
		{"empty pattern", Rule{Category: model.CategoryLiability, BaseScore: 3, Weight: 1, Description: "d", Mitigation: "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := append(builtinRules(), tt.rule)
			_, err := build(rules, builtinTypeRules(), builtinMitigations(), builtinKeywords(), builtinReplacements())
			if err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuildRejectsDanglingKeywordCategory(t *testing.T) {
	keywords := append(builtinKeywords(), Keyword{Pattern: "quantum clause", Weight: 1, DefaultScore: 2, ReplacementCategory: "does_not_exist"})
	_, err := build(builtinRules(), builtinTypeRules(), builtinMitigations(), keywords, builtinReplacements())
	if err == nil {
		t.Error("expected validation error for dangling replacement category")
	}
}

func TestRuleFind(t *testing.T) {
	lib := Default()

	var indemnity *Rule
	for i := range lib.rules {
		if strings.HasPrefix(lib.rules[i].Pattern, `shall\s+indemnify`) {
			indemnity = &lib.rules[i]
			break
		}
	}
	if indemnity == nil {
		t.Fatal("indemnity rule not found")
	}

	text := "The Vendor SHALL INDEMNIFY and hold harmless the Customer from all claims."
	spans := indemnity.Find(text)
	if len(spans) != 1 {
		t.Fatalf("Find() = %d spans, want 1", len(spans))
	}
	matched := text[spans[0][0]:spans[0][1]]
	if !strings.Contains(strings.ToLower(matched), "indemnify") {
		t.Errorf("matched %q, expected indemnify span", matched)
	}
}

func TestRuleFindLiteral(t *testing.T) {
	r := Rule{Pattern: "duty to defend"}
	text := "The Duty To Defend survives. A second duty to defend appears here."
	spans := r.Find(text)
	if len(spans) != 2 {
		t.Fatalf("Find() = %d spans, want 2", len(spans))
	}
	if spans[0][0] != 4 {
		t.Errorf("first span starts at %d, want 4", spans[0][0])
	}
}

func TestKeywordScore(t *testing.T) {
	lib := Default()

	tests := []struct {
		name string
		text string
		min  int
	}{
		{"empty", "", 0},
		{"no keywords", "The quick brown fox jumps over the lazy dog.", 0},
		{"indemnity weighs heavily", "Contractor shall indemnify the Client.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.KeywordScore(tt.text)
			if tt.min == 0 && got != 0 {
				t.Errorf("KeywordScore = %d, want 0", got)
			}
			if got < tt.min {
				t.Errorf("KeywordScore = %d, want >= %d", got, tt.min)
			}
		})
	}

	// "shall indemnify" also contains the bare "indemnify" and "liability"
	// is independent, so scores accumulate across overlapping keywords.
	single := lib.KeywordScore("indemnity")
	double := lib.KeywordScore("indemnity and more indemnity")
	if double != 2*single {
		t.Errorf("occurrences should multiply: %d vs %d", double, single)
	}
}

func TestReplacementFallback(t *testing.T) {
	lib := Default()

	if got := lib.Replacement("indemnity"); !strings.Contains(got, "indemnify") {
		t.Errorf("indemnity replacement unexpected: %q", got)
	}
	generic := lib.Replacement("generic")
	if got := lib.Replacement("no_such_category"); got != generic {
		t.Error("unknown category should fall back to generic")
	}
}

func TestMitigationsFallback(t *testing.T) {
	lib := Default()

	nda := lib.Mitigations("nda")
	if _, ok := nda["general"]; !ok {
		t.Error("nda strategies missing general")
	}
	unknown := lib.Mitigations("napkin_sketch")
	if unknown["general"] == "" {
		t.Error("fallback strategies missing general")
	}
}

func TestTypeRuleMatch(t *testing.T) {
	lib := Default()

	groups := lib.TypeRules("nda")
	var broad *TypeRule
	for i := range groups {
		if groups[i].Key == "overly_broad_definition" {
			broad = &groups[i]
		}
	}
	if broad == nil {
		t.Fatal("overly_broad_definition group not found")
	}

	if !broad.Match("Recipient shall treat ALL INFORMATION as confidential.") {
		t.Error("expected match on broad definition")
	}
	if broad.Match("Recipient protects only marked documents.") {
		t.Error("unexpected match")
	}
}

func TestFillAlternative(t *testing.T) {
	got := FillAlternative("notice of [DAYS] days with [NUMBER] revisions", "service_agreement")
	if strings.Contains(got, "[DAYS]") || strings.Contains(got, "[NUMBER]") {
		t.Errorf("placeholders not filled: %q", got)
	}
	if !strings.Contains(got, "30") || !strings.Contains(got, "2") {
		t.Errorf("unexpected fill values: %q", got)
	}

	unchanged := FillAlternative("keep [DAYS]", "loan")
	if unchanged != "keep [DAYS]" {
		t.Errorf("loan templates have no substitutions, got %q", unchanged)
	}
}

func TestLoadExtendsBuiltins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	content := `rules:
  - pattern: 'evergreen\s+clause'
    regex: true
    category: renewal
    base_score: 4
    weight: 5.0
    description: "Evergreen renewal locks in the term"
    mitigation: "Add an annual opt-out window"
replacements:
  custom_cat: "Balanced replacement language."
keywords:
  - pattern: "evergreen"
    rationale: "Evergreen terms renew silently."
    weight: 2
    default_score: 3
    suggestion: "Negotiate opt-out."
    replacement_category: custom_cat
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := len(lib.Rules()); got != 24 {
		t.Errorf("rules = %d, want 24", got)
	}
	if got := lib.Replacement("custom_cat"); got != "Balanced replacement language." {
		t.Errorf("custom replacement = %q", got)
	}
	if lib.KeywordScore("an evergreen provision") == 0 {
		t.Error("custom keyword should score")
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	content := `rules:
  - pattern: 'broken('
    regex: true
    category: renewal
    base_score: 4
    weight: 5.0
    description: "d"
    mitigation: "m"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid regex in pattern file")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
