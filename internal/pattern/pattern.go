// Package pattern holds the static risk-detection tables: core clause rules,
// per-document-type refinement groups, the weighted keyword table, and the
// replacement-language library. A Library is validated at construction so a
// malformed table is a startup failure rather than a runtime miss.
package pattern

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pkoval/redline/internal/model"
)

// Rule is a core risk pattern with contextual scoring hints.
type Rule struct {
	Pattern         string   `yaml:"pattern"`                    // regex or literal to search for
	Regex           bool     `yaml:"regex,omitempty"`            // treat Pattern as a regular expression
	CaseSensitive   bool     `yaml:"case_sensitive,omitempty"`   // match case exactly
	Category        string   `yaml:"category"`                   // model risk category
	BaseScore       int      `yaml:"base_score"`                 // 1-5 before contextual adjustment
	RequiresContext []string `yaml:"requires_context,omitempty"` // nearby words that confirm the risk
	ExcludesContext []string `yaml:"excludes_context,omitempty"` // nearby words that negate the risk
	Weight          float64  `yaml:"weight"`                     // sort tiebreak, higher first
	Description     string   `yaml:"description"`                // rationale shown to the user
	Mitigation      string   `yaml:"mitigation"`                 // negotiation advice

	re *regexp.Regexp
}

// Find returns all match spans of the rule in text.
func (r *Rule) Find(text string) [][]int {
	if r.re != nil {
		return r.re.FindAllStringIndex(text, -1)
	}
	needle := r.Pattern
	haystack := text
	if !r.CaseSensitive {
		needle = strings.ToLower(needle)
		haystack = strings.ToLower(haystack)
	}
	var spans [][]int
	pos := 0
	for {
		idx := strings.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		spans = append(spans, []int{start, start + len(needle)})
		pos = start + len(needle)
	}
	return spans
}

// TypeRule is one named refinement group for a document type.
type TypeRule struct {
	Key                string   `yaml:"key"`                 // e.g. "overly_broad_definition"
	Patterns           []string `yaml:"patterns"`            // regexes, any match triggers the group
	Severity           int      `yaml:"severity"`            // 1-5
	Context            string   `yaml:"context"`             // risk description
	SolutionTemplate   string   `yaml:"solution_template"`   // mitigation text
	AlternativePattern string   `yaml:"alternative_pattern"` // replacement-clause template

	res []*regexp.Regexp
}

// Match reports whether any of the group's patterns appear in text.
func (t *TypeRule) Match(text string) bool {
	for _, re := range t.res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Keyword is a weighted literal used for chunk scoring, focus-sentence
// selection, and the legacy quick scan.
type Keyword struct {
	Pattern             string `yaml:"pattern"`
	Rationale           string `yaml:"rationale"`
	Weight              int    `yaml:"weight"`
	DefaultScore        int    `yaml:"default_score"`
	Suggestion          string `yaml:"suggestion"`
	ReplacementCategory string `yaml:"replacement_category"`
}

// Library is the validated set of all detection tables.
type Library struct {
	rules        []Rule
	typeRules    map[string][]TypeRule
	mitigations  map[string]map[string]string
	keywords     []Keyword
	replacements map[string]string
}

var knownCategories = map[string]bool{
	model.CategoryIndemnity:         true,
	model.CategoryLiability:         true,
	model.CategoryTermination:       true,
	model.CategoryRenewal:           true,
	model.CategoryIPRights:          true,
	model.CategoryDataProtection:    true,
	model.CategoryDisputeResolution: true,
	model.CategoryPayment:           true,
	model.CategoryWarranty:          true,
	model.CategoryConfidentiality:   true,
	model.CategoryNonCompete:        true,
	model.CategoryAmendment:         true,
	model.CategoryAssignment:        true,
	model.CategoryForceMajeure:      true,
	model.CategoryJurisdiction:      true,
	model.CategoryGeneric:           true,
}

// New builds a Library from the builtin tables, compiling and validating
// every entry.
func New() (*Library, error) {
	return build(builtinRules(), builtinTypeRules(), builtinMitigations(), builtinKeywords(), builtinReplacements())
}

func build(
	rules []Rule,
	typeRules map[string][]TypeRule,
	mitigations map[string]map[string]string,
	keywords []Keyword,
	replacements map[string]string,
) (*Library, error) {
	lib := &Library{
		rules:        rules,
		typeRules:    typeRules,
		mitigations:  mitigations,
		keywords:     keywords,
		replacements: replacements,
	}

	for i := range lib.rules {
		r := &lib.rules[i]
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d: empty pattern", i)
		}
		if !knownCategories[r.Category] {
			return nil, fmt.Errorf("rule %q: unknown category %q", r.Pattern, r.Category)
		}
		if r.BaseScore < 1 || r.BaseScore > 5 {
			return nil, fmt.Errorf("rule %q: base score %d out of range", r.Pattern, r.BaseScore)
		}
		if r.Regex {
			expr := r.Pattern
			if !r.CaseSensitive {
				expr = "(?i)" + expr
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Pattern, err)
			}
			r.re = re
		}
	}

	for docType, groups := range lib.typeRules {
		for gi := range groups {
			g := &groups[gi]
			if g.Key == "" {
				return nil, fmt.Errorf("type %s: group %d has no key", docType, gi)
			}
			if g.Severity < 1 || g.Severity > 5 {
				return nil, fmt.Errorf("type %s/%s: severity %d out of range", docType, g.Key, g.Severity)
			}
			if len(g.Patterns) == 0 {
				return nil, fmt.Errorf("type %s/%s: no patterns", docType, g.Key)
			}
			g.res = make([]*regexp.Regexp, 0, len(g.Patterns))
			for _, p := range g.Patterns {
				re, err := regexp.Compile("(?i)" + p)
				if err != nil {
					return nil, fmt.Errorf("type %s/%s: pattern %q: %w", docType, g.Key, p, err)
				}
				g.res = append(g.res, re)
			}
		}
		if _, ok := lib.mitigations[docType]; !ok {
			return nil, fmt.Errorf("type %s: no mitigation strategies", docType)
		}
	}

	for docType, strategies := range lib.mitigations {
		if _, ok := strategies["general"]; !ok {
			return nil, fmt.Errorf("type %s: mitigation strategies missing general entry", docType)
		}
	}
	if _, ok := lib.mitigations["generic"]; !ok {
		return nil, fmt.Errorf("mitigation strategies missing generic fallback")
	}

	if _, ok := lib.replacements["generic"]; !ok {
		return nil, fmt.Errorf("replacement library missing generic fallback")
	}
	for i, kw := range lib.keywords {
		if kw.Pattern == "" {
			return nil, fmt.Errorf("keyword %d: empty pattern", i)
		}
		if _, ok := lib.replacements[kw.ReplacementCategory]; !ok {
			return nil, fmt.Errorf("keyword %q: replacement category %q not in library", kw.Pattern, kw.ReplacementCategory)
		}
	}

	return lib, nil
}

var (
	defaultLib  *Library
	defaultOnce sync.Once
)

// Default returns the builtin library. The builtin tables are validated at
// first use; a corrupted builtin table panics since no run can proceed.
func Default() *Library {
	defaultOnce.Do(func() {
		lib, err := New()
		if err != nil {
			panic(fmt.Sprintf("builtin pattern tables invalid: %v", err))
		}
		defaultLib = lib
	})
	return defaultLib
}

// Rules returns the core risk rules. Core rules apply to every document
// type; per-type refinement lives in TypeRules.
func (l *Library) Rules() []Rule {
	return l.rules
}

// TypeRules returns the refinement groups for a document type, nil for
// unknown types.
func (l *Library) TypeRules(docType string) []TypeRule {
	return l.typeRules[docType]
}

// Mitigations returns the per-type mitigation strategies, falling back to
// the generic set.
func (l *Library) Mitigations(docType string) map[string]string {
	if m, ok := l.mitigations[docType]; ok {
		return m
	}
	return l.mitigations["generic"]
}

// Replacement returns the replacement language for a category, falling back
// to the generic entry.
func (l *Library) Replacement(category string) string {
	if r, ok := l.replacements[category]; ok {
		return r
	}
	return l.replacements["generic"]
}

// Keywords returns the weighted keyword table.
func (l *Library) Keywords() []Keyword {
	return l.keywords
}

// KeywordScore sums occurrence-count times weight over the keyword table.
func (l *Library) KeywordScore(text string) int {
	if text == "" {
		return 0
	}
	lowered := strings.ToLower(text)
	score := 0
	for _, kw := range l.keywords {
		score += strings.Count(lowered, kw.Pattern) * kw.Weight
	}
	return score
}
