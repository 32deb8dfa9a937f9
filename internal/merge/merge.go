// Package merge combines clauses from the LLM and heuristic detectors
// into one ranked list. LLM clauses are taken first, near-duplicates are
// folded by fingerprint and significant-word overlap, and a later
// position-aware pass catches duplicates that word comparison misses.
package merge

import (
	"sort"
	"strings"

	"github.com/pkoval/redline/internal/model"
)

const (
	// DefaultMaxTotal caps a merged list when the caller passes no limit.
	DefaultMaxTotal = 8

	// DefaultDedupeLimit caps the position-dedup output when the caller
	// passes no limit.
	DefaultDedupeLimit = 8

	// wordOverlapThreshold is the fraction of the smaller significant-word
	// set two clauses must share to count as the same clause.
	wordOverlapThreshold = 0.75

	// spanOverlapFraction is the fraction of either span two positioned
	// clauses must overlap by to count as the same clause.
	spanOverlapFraction = 0.5
)

// Merge combines LLM and heuristic clauses, avoiding duplicates. LLM
// clauses take priority; heuristic clauses fill the remaining room up to
// maxTotal. A heuristic duplicate with higher confidence upgrades the
// accepted entry's confidence and category in place. The result is sorted
// by (confidence, risk score, weight) descending.
func Merge(llmClauses, heuristicClauses []model.Clause, maxTotal int) []model.Clause {
	if maxTotal <= 0 {
		maxTotal = DefaultMaxTotal
	}

	var merged []model.Clause
	seen := make(map[string]bool)

	for _, clause := range llmClauses {
		if clause.ClauseText == "" {
			continue
		}
		fp := model.Fingerprint(clause.ClauseText)
		if seen[fp] {
			continue
		}
		if indexOfDuplicate(merged, clause.ClauseText) >= 0 {
			continue
		}
		clause.Source = model.SourceLLM
		if clause.Confidence == 0 {
			clause.Confidence = 0.85
		}
		merged = append(merged, clause)
		seen[fp] = true
	}

	for _, clause := range heuristicClauses {
		if len(merged) >= maxTotal {
			break
		}
		if clause.ClauseText == "" {
			continue
		}
		if i := indexOfDuplicate(merged, clause.ClauseText); i >= 0 {
			// Upgrade the accepted entry when the heuristic is more
			// confident about this clause.
			if clause.Confidence > merged[i].Confidence {
				merged[i].Confidence = clause.Confidence
				if clause.Category != "" {
					merged[i].Category = clause.Category
				}
			}
			continue
		}
		clause.Source = model.SourceHeuristic
		merged = append(merged, clause)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Confidence != merged[j].Confidence {
			return merged[i].Confidence > merged[j].Confidence
		}
		if merged[i].RiskScore != merged[j].RiskScore {
			return merged[i].RiskScore > merged[j].RiskScore
		}
		return merged[i].Weight > merged[j].Weight
	})

	if len(merged) > maxTotal {
		merged = merged[:maxTotal]
	}
	return merged
}

// indexOfDuplicate returns the index of the first clause in merged that
// duplicates text, or -1.
func indexOfDuplicate(merged []model.Clause, text string) int {
	for i := range merged {
		if isDuplicate(text, merged[i].ClauseText) {
			return i
		}
	}
	return -1
}

// isDuplicate reports whether two clause texts are near-identical: equal
// fingerprints, or significant-word overlap above the threshold relative
// to the smaller set.
func isDuplicate(a, b string) bool {
	fpA := model.Fingerprint(a)
	fpB := model.Fingerprint(b)
	if fpA == fpB {
		return true
	}

	wordsA := wordSet(fpA)
	wordsB := wordSet(fpB)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}
	smaller := len(wordsA)
	if len(wordsB) < smaller {
		smaller = len(wordsB)
	}
	return float64(intersection)/float64(smaller) > wordOverlapThreshold
}

func wordSet(fingerprint string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(fingerprint) {
		set[w] = true
	}
	return set
}

// DedupeByPosition removes duplicate clause entries while preserving
// order. Every clause is normalized first; a fingerprint collision keeps
// the higher risk score or fills missing fields from the newcomer, and
// clauses whose document spans overlap by more than half of either span
// are treated as one clause with the higher score surviving.
func DedupeByPosition(clauses []model.Clause, limit int) []model.Clause {
	if limit <= 0 {
		limit = DefaultDedupeLimit
	}

	seen := make(map[string]int)
	var deduped []model.Clause

	for _, clause := range clauses {
		clause.ClauseText = strings.TrimSpace(clause.ClauseText)
		if clause.ClauseText == "" {
			continue
		}
		clause.Normalize()

		fp := model.Fingerprint(clause.ClauseText)
		if i, ok := seen[fp]; ok {
			if clause.RiskScore > deduped[i].RiskScore {
				deduped[i] = clause
			} else {
				fillMissing(&deduped[i], clause)
			}
			continue
		}

		if clause.Position != nil {
			if i := overlappingIndex(deduped, *clause.Position); i >= 0 {
				if clause.RiskScore > deduped[i].RiskScore {
					deduped[i] = clause
				}
				continue
			}
		}

		seen[fp] = len(deduped)
		deduped = append(deduped, clause)

		if len(deduped) >= limit {
			break
		}
	}

	return deduped
}

// overlappingIndex returns the index of the first positioned clause whose
// span overlaps the given span by more than half of either length, or -1.
func overlappingIndex(deduped []model.Clause, span model.Span) int {
	if span.End <= span.Start {
		return -1
	}
	for i := range deduped {
		if deduped[i].Position == nil {
			continue
		}
		if span.Overlaps(*deduped[i].Position, spanOverlapFraction) {
			return i
		}
	}
	return -1
}

// fillMissing copies fields the kept clause lacks from the duplicate.
func fillMissing(kept *model.Clause, dup model.Clause) {
	if kept.RiskLevel == "" {
		kept.RiskLevel = dup.RiskLevel
	}
	if kept.RiskScore == 0 {
		kept.RiskScore = dup.RiskScore
	}
	if kept.Rationale == "" {
		kept.Rationale = dup.Rationale
	}
	if kept.Mitigation == "" {
		kept.Mitigation = dup.Mitigation
	}
	if kept.ReplacementClause == "" {
		kept.ReplacementClause = dup.ReplacementClause
	}
	if kept.Confidence == 0 {
		kept.Confidence = dup.Confidence
	}
}

// OrderByPriority sorts clauses by risk score descending, then by first
// occurrence in the document. An unset score counts as 3, and clauses
// whose text cannot be found sort last within their score band.
func OrderByPriority(clauses []model.Clause, fullText string) []model.Clause {
	if len(clauses) == 0 {
		return clauses
	}

	position := func(text string) int {
		if fullText == "" {
			return 0
		}
		if idx := strings.Index(fullText, text); idx >= 0 {
			return idx
		}
		return len(fullText)
	}
	score := func(c model.Clause) int {
		if c.RiskScore == 0 {
			return 3
		}
		return c.RiskScore
	}

	positions := make([]int, len(clauses))
	for i := range clauses {
		positions[i] = position(clauses[i].ClauseText)
	}

	ordered := make([]model.Clause, len(clauses))
	idx := make([]int, len(clauses))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := clauses[idx[a]], clauses[idx[b]]
		if score(ca) != score(cb) {
			return score(ca) > score(cb)
		}
		return positions[idx[a]] < positions[idx[b]]
	})
	for i, j := range idx {
		ordered[i] = clauses[j]
	}
	return ordered
}
