// Probe program to demonstrate the pattern engine offline
// This shows risky-clause detection and balance filtering working without an API key
package main

import (
	"fmt"
	"strings"

	"github.com/pkoval/redline/internal/detect"
	"github.com/pkoval/redline/internal/pattern"
)

func main() {
	fmt.Printf("=== Pattern Engine Probe ===\n\n")

	lib, err := pattern.New()
	if err != nil {
		fmt.Printf("pattern library error: %v\n", err)
		return
	}
	detector := detect.New(lib)

	// Sample clauses with known risk profiles
	samples := []struct {
		label string
		text  string
	}{
		{
			label: "one-sided indemnity",
			text:  "Customer shall indemnify and hold harmless Provider from any and all claims, losses and damages arising out of this Agreement.",
		},
		{
			label: "unlimited liability",
			text:  "Contractor accepts unlimited liability for any breach of this Agreement, without limitation of any kind.",
		},
		{
			label: "mutual indemnity (balanced)",
			text:  "Each party shall indemnify and hold harmless the other party from claims arising from its own negligence or willful misconduct.",
		},
		{
			label: "plain scheduling clause",
			text:  "The parties agree to meet quarterly to review project progress and share status updates.",
		},
	}

	for _, sample := range samples {
		fmt.Printf("Testing: %s\n", sample.label)
		fmt.Println(strings.Repeat("-", 60))

		clauses := detector.Detect(sample.text, 10)
		if len(clauses) == 0 {
			fmt.Println("  ✓ No risky clauses detected")
			if score := lib.KeywordScore(sample.text); score > 0 {
				fmt.Printf("    (Keyword score: %d, filtered as balanced or low risk)\n", score)
			}
			fmt.Println()
			continue
		}

		fmt.Printf("  ⚠️  RISKY CLAUSES DETECTED: %d\n", len(clauses))
		for _, clause := range clauses {
			fmt.Printf("     - %s (score %d/5)\n", clause.RiskLevel, clause.RiskScore)
			fmt.Printf("       Category: %s\n", clause.Category)
			if clause.BalanceType != "" {
				fmt.Printf("       Balance: %s\n", clause.BalanceType)
			}
			if clause.Position != nil {
				fmt.Printf("       Position: %d-%d\n", clause.Position.Start, clause.Position.End)
			}
			fmt.Printf("       %s\n", clause.Rationale)
		}
		fmt.Println()
	}

	fmt.Println("\n=== Probe Complete ===")
	fmt.Println("\nNote: This probe runs the deterministic engine only.")
	fmt.Println("Balanced clauses are dropped by the mutuality filter.")
	fmt.Println("Run 'redline analyze --llm' for LLM-assisted analysis.")
}
