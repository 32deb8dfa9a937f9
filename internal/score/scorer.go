// Package score aggregates surviving clauses into a document risk index.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkoval/redline/internal/model"
)

// Signal types emitted by the scorer.
const (
	SignalClauseSeverity = "clause_severity"
	SignalVolume         = "high_risk_volume"
	SignalBreadth        = "category_breadth"
	SignalConfidence     = "detection_confidence"
	SignalImbalance      = "one_sided_drafting"
	SignalNoFindings     = "no_findings"
)

// Scorer calculates the document risk index and generates signals
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate folds the surviving clauses into a 0-100 index, higher meaning
// riskier, with diagnostic signals explaining each component.
func (s *Scorer) Calculate(clauses []model.Clause) model.RiskIndex {
	if len(clauses) == 0 {
		return model.RiskIndex{
			Index:      0,
			Label:      "minimal",
			Confidence: "low",
			Signals: []model.RiskSignal{{
				Type:        SignalNoFindings,
				Severity:    model.SignalSeverityInfo,
				Description: "No risky clauses survived filtering",
			}},
		}
	}

	var signals []model.RiskSignal

	// 1. Clause severity (0-40 points)
	severityScore, severitySignal := s.calculateSeverity(clauses)
	signals = append(signals, severitySignal)

	// 2. High-risk volume (0-30 points)
	volumeScore, volumeSignal := s.calculateVolume(clauses)
	signals = append(signals, volumeSignal)

	// 3. Category breadth (0-20 points)
	breadthScore, breadthSignal := s.calculateBreadth(clauses)
	signals = append(signals, breadthSignal)

	// 4. Detection confidence (0-10 points)
	confidenceScore, confidenceSignal, avgConfidence := s.calculateConfidence(clauses)
	signals = append(signals, confidenceSignal)

	// 5. One-sided drafting (surcharge)
	imbalanceDetected, imbalanceSignal := s.detectImbalance(clauses)
	if imbalanceDetected {
		signals = append(signals, imbalanceSignal)
	}

	// Calculate total index
	totalIndex := severityScore + volumeScore + breadthScore + confidenceScore

	// Apply imbalance surcharge
	if imbalanceDetected {
		totalIndex += 10
		if totalIndex > 100 {
			totalIndex = 100
		}
	}

	return model.RiskIndex{
		Index:      totalIndex,
		Label:      s.label(totalIndex),
		Confidence: s.determineConfidence(avgConfidence, len(clauses)),
		Signals:    signals,
	}
}

// calculateSeverity scores the worst clauses (0-40 points)
func (s *Scorer) calculateSeverity(clauses []model.Clause) (int, model.RiskSignal) {
	scores := make([]int, 0, len(clauses))
	for _, c := range clauses {
		scores = append(scores, c.RiskScore)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	maxScore := scores[0]
	top := scores
	if len(top) > 3 {
		top = top[:3]
	}
	sum := 0
	for _, v := range top {
		sum += v
	}
	topAvg := float64(sum) / float64(len(top))

	ratio := (float64(maxScore) + topAvg) / 10.0
	score := int(math.Min(ratio*40, 40))

	severity := model.SignalSeverityInfo
	if maxScore >= 5 {
		severity = model.SignalSeverityCritical
	} else if maxScore >= 3 {
		severity = model.SignalSeverityWarning
	}

	return score, model.RiskSignal{
		Type:        SignalClauseSeverity,
		Severity:    severity,
		Description: fmt.Sprintf("Worst clause scores %d/5 (top-3 average %.1f)", maxScore, topAvg),
		Data: map[string]interface{}{
			"max_score": maxScore,
			"top_avg":   topAvg,
			"score":     score,
			"formula":   "min((max_score + top3_avg) / 10 * 40, 40)",
		},
	}
}

// calculateVolume scores how many clauses sit at risk 4+ (0-30 points)
func (s *Scorer) calculateVolume(clauses []model.Clause) (int, model.RiskSignal) {
	highCount := 0
	for _, c := range clauses {
		if c.RiskScore >= 4 {
			highCount++
		}
	}

	ratio := float64(highCount) / 5.0
	score := int(math.Min(ratio*30, 30))

	severity := model.SignalSeverityInfo
	if highCount >= 5 {
		severity = model.SignalSeverityCritical
	} else if highCount >= 2 {
		severity = model.SignalSeverityWarning
	}

	return score, model.RiskSignal{
		Type:        SignalVolume,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d clauses at risk 4 or higher", highCount, len(clauses)),
		Data: map[string]interface{}{
			"high_count": highCount,
			"total":      len(clauses),
			"score":      score,
			"formula":    "min(high_count / 5 * 30, 30)",
		},
	}
}

// calculateBreadth scores how many risk categories are touched (0-20 points)
func (s *Scorer) calculateBreadth(clauses []model.Clause) (int, model.RiskSignal) {
	seen := make(map[string]bool)
	for _, c := range clauses {
		if c.Category != "" {
			seen[c.Category] = true
		}
	}

	categories := make([]string, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	score := len(categories) * 5
	if score > 20 {
		score = 20
	}

	severity := model.SignalSeverityInfo
	if len(categories) >= 4 {
		severity = model.SignalSeverityWarning
	}

	return score, model.RiskSignal{
		Type:        SignalBreadth,
		Severity:    severity,
		Description: fmt.Sprintf("Risk spans %d categories: %s", len(categories), strings.Join(categories, ", ")),
		Data: map[string]interface{}{
			"categories": categories,
			"score":      score,
			"formula":    "min(category_count * 5, 20)",
		},
	}
}

// calculateConfidence scores the average detection confidence (0-10 points).
// Clauses without a recorded confidence count as 0.5.
func (s *Scorer) calculateConfidence(clauses []model.Clause) (int, model.RiskSignal, float64) {
	sum := 0.0
	for _, c := range clauses {
		conf := c.Confidence
		if conf == 0 {
			conf = 0.5
		}
		sum += conf
	}
	avg := sum / float64(len(clauses))
	score := int(avg * 10)

	severity := model.SignalSeverityInfo
	if avg < 0.5 {
		severity = model.SignalSeverityWarning
	}

	return score, model.RiskSignal{
		Type:        SignalConfidence,
		Severity:    severity,
		Description: fmt.Sprintf("Average detection confidence: %.2f", avg),
		Data: map[string]interface{}{
			"average": avg,
			"score":   score,
			"formula": "avg_confidence * 10",
		},
	}, avg
}

// detectImbalance flags systematically one-sided drafting
func (s *Scorer) detectImbalance(clauses []model.Clause) (bool, model.RiskSignal) {
	oneSided := 0
	for _, c := range clauses {
		if c.BalanceType == "one_sided" || c.BalanceType == "asymmetric" {
			oneSided++
		}
	}

	if oneSided < 2 {
		return false, model.RiskSignal{}
	}

	return true, model.RiskSignal{
		Type:        SignalImbalance,
		Severity:    model.SignalSeverityWarning,
		Description: fmt.Sprintf("Systematically one-sided drafting (%d clauses favor one party)", oneSided),
		Data: map[string]interface{}{
			"one_sided": oneSided,
			"surcharge": 10,
		},
	}
}

// determineConfidence determines the confidence level for the index
func (s *Scorer) determineConfidence(avgConfidence float64, clauseCount int) string {
	if clauseCount < 3 {
		return "low"
	}

	if avgConfidence >= 0.8 {
		return "high"
	} else if avgConfidence >= 0.6 {
		return "medium"
	}
	return "low"
}

// label maps an index to its display band
func (s *Scorer) label(index int) string {
	switch {
	case index >= 80:
		return "severe"
	case index >= 60:
		return "high"
	case index >= 40:
		return "moderate"
	case index >= 20:
		return "low"
	default:
		return "minimal"
	}
}
