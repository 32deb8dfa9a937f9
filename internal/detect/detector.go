// Package detect finds risky clauses with the deterministic rule engine,
// scores them against their surrounding context, and filters out clauses
// that turn out to be balanced between the parties.
package detect

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/pkoval/redline/internal/model"
	"github.com/pkoval/redline/internal/pattern"
)

const (
	// DefaultMaxClauses caps how many clauses a single Detect call returns.
	DefaultMaxClauses = 10

	// contextChars is how far clause extraction extends on each side of a
	// match before snapping to a sentence or paragraph boundary.
	contextChars = 300

	// minConfidence rejects matches whose context gives no support.
	minConfidence = 0.4
)

// Detector scans document text against the core rule library.
type Detector struct {
	lib *pattern.Library
}

// New returns a Detector backed by the given rule library.
func New(lib *pattern.Library) *Detector {
	return &Detector{lib: lib}
}

// Detect runs every core rule over the text and returns scored clauses,
// best first. Overlapping matches and near-duplicate clause texts are
// collapsed; at most maxClauses survive.
func (d *Detector) Detect(text string, maxClauses int) []model.Clause {
	if maxClauses <= 0 {
		maxClauses = DefaultMaxClauses
	}

	var detected []model.Clause
	seenClauses := make(map[string]bool)
	var seenSpans []model.Span

	for _, rule := range d.lib.Rules() {
		for _, loc := range rule.Find(text) {
			matchStart, matchEnd := loc[0], loc[1]

			// Skip matches that mostly cover ground an earlier rule
			// already claimed.
			if overlapsSeen(seenSpans, matchStart, matchEnd) {
				continue
			}

			clauseText := extractClause(text, matchStart, contextChars)

			fp := model.Fingerprint(clauseText)
			if seenClauses[fp] {
				continue
			}

			adjusted, confidence := contextualScore(rule.BaseScore, clauseText, rule.RequiresContext, rule.ExcludesContext)
			if confidence < minConfidence {
				continue
			}

			seenClauses[fp] = true
			seenSpans = append(seenSpans, model.Span{Start: matchStart, End: matchEnd})

			clause := model.Clause{
				ClauseText:     clauseText,
				RiskScore:      adjusted,
				RiskLevel:      model.RiskLevelFromScore(adjusted),
				Category:       rule.Category,
				Confidence:     math.Round(confidence*100) / 100,
				Rationale:      rule.Description,
				Mitigation:     rule.Mitigation,
				Weight:         rule.Weight,
				PatternSnippet: snippet(rule.Pattern, 50),
				Position:       &model.Span{Start: matchStart, End: matchEnd},
				Source:         model.SourceHeuristic,
			}

			// A clause the balance analyzer finds genuinely mutual is
			// downgraded, never upgraded, from here.
			if fpScore, fpConf, balance, reasons := AnalyzeBalance(clauseText, rule.Category, adjusted); (balance == BalanceMutual || balance == BalanceReciprocal) && fpScore < adjusted {
				clause.RiskScore = fpScore
				clause.RiskLevel = model.RiskLevelFromScore(fpScore)
				if fpConf > clause.Confidence {
					clause.Confidence = fpConf
				}
				clause.BalanceType = string(balance)
				clause.BalanceReasons = reasons
			}

			detected = append(detected, clause)
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		if detected[i].Confidence != detected[j].Confidence {
			return detected[i].Confidence > detected[j].Confidence
		}
		if detected[i].RiskScore != detected[j].RiskScore {
			return detected[i].RiskScore > detected[j].RiskScore
		}
		return detected[i].Weight > detected[j].Weight
	})

	if len(detected) > maxClauses {
		detected = detected[:maxClauses]
	}
	return detected
}

// overlapsSeen reports whether [start, end) overlaps any accepted span by
// more than half of its own length.
func overlapsSeen(seen []model.Span, start, end int) bool {
	for _, s := range seen {
		overlapStart := start
		if s.Start > overlapStart {
			overlapStart = s.Start
		}
		overlapEnd := end
		if s.End < overlapEnd {
			overlapEnd = s.End
		}
		if overlap := overlapEnd - overlapStart; overlap > 0 && float64(overlap) > float64(end-start)*0.5 {
			return true
		}
	}
	return false
}

var (
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	sectionHeader  = regexp.MustCompile(`(?i)^(Section|Article|Clause)\s+\d+(\.\d+)*[.:]?\s*`)
	numberedHeader = regexp.MustCompile(`^\d+(\.\d+)+\s+[A-Z][a-z]+\s+`)
)

func isSentenceEnding(pair string) bool {
	switch pair {
	case ". ", ".\n", "? ", "! ", ".\r":
		return true
	}
	return false
}

// extractClause pulls the clause around a match position, expanding up to
// window bytes on each side and snapping to sentence or paragraph
// boundaries, then normalizes whitespace and strips leading section
// headers like "Section 10.1" or "10.1 Assignment".
func extractClause(text string, matchPos, window int) string {
	start := matchPos - window
	if start < 0 {
		start = 0
	}
	end := matchPos + window
	if end > len(text) {
		end = len(text)
	}

	for i := matchPos; i > start; i-- {
		if i > 1 && isSentenceEnding(text[i-1:i+1]) {
			start = i + 1
			break
		}
		if i > 0 && text[i-1:i+1] == "\n\n" {
			start = i + 1
			break
		}
	}
	for i := matchPos; i < end; i++ {
		if i < len(text)-1 && isSentenceEnding(text[i:i+2]) {
			end = i + 1
			break
		}
		if i < len(text)-1 && text[i:i+2] == "\n\n" {
			end = i
			break
		}
	}
	if end < start {
		return ""
	}

	clause := strings.TrimSpace(text[start:end])
	clause = spaceRuns.ReplaceAllString(clause, " ")
	clause = newlineRuns.ReplaceAllString(clause, "\n\n")
	clause = sectionHeader.ReplaceAllString(clause, "")
	clause = numberedHeader.ReplaceAllString(clause, "")
	return strings.TrimSpace(clause)
}

// contextualScore adjusts a rule's base score using the words around the
// match. Required context raises score and confidence, excluding context
// lowers them, and the strong mutual markers ("either party", "both
// parties", "mutual") floor the score outright.
func contextualScore(baseScore int, text string, requires, excludes []string) (int, float64) {
	lowered := strings.ToLower(text)
	confidence := 0.5
	adjusted := baseScore

	if len(requires) > 0 {
		found := 0
		for _, req := range requires {
			if req != "" && strings.Contains(lowered, strings.ToLower(req)) {
				found++
			}
		}
		ratio := float64(found) / float64(len(requires))
		confidence += ratio * 0.3
		if ratio > 0.7 {
			adjusted = baseScore + 1
			if adjusted > 5 {
				adjusted = 5
			}
		}
	} else {
		confidence += 0.3
	}

	found := 0
	strongMutual := false
	for _, excl := range excludes {
		if excl == "" {
			continue
		}
		low := strings.ToLower(excl)
		if strings.Contains(lowered, low) {
			found++
			switch low {
			case "either party", "both parties", "mutual":
				strongMutual = true
			}
		}
	}
	if found > 0 {
		if strongMutual {
			adjusted = 1
			if confidence < 0.95 {
				confidence = 0.95
			}
		} else {
			reduction := found
			if reduction > 2 {
				reduction = 2
			}
			adjusted -= reduction
			if adjusted < 1 {
				adjusted = 1
			}
			confidence += 0.1 * float64(found)
		}
	}

	if confidence > 1 {
		confidence = 1
	}
	return adjusted, confidence
}

func snippet(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
