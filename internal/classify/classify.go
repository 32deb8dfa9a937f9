// Package classify assigns a document-type label to raw contract text.
// The label selects which refinement patterns and mitigation strategies
// apply downstream.
package classify

import "strings"

// Classifier labels a document. Implementations return one of the known
// type labels or "generic", with a confidence in [0,1].
type Classifier interface {
	Classify(text, title string) (label string, confidence float64)
}

// Known type labels in evaluation order. Order breaks score ties.
var labels = []string{
	"nda",
	"employment",
	"service_agreement",
	"lease",
	"saas",
	"loan",
	"privacy_policy",
	"terms_of_service",
}

var typeSignals = map[string][]string{
	"nda": {
		"non-disclosure", "nondisclosure", "confidential information",
		"disclosing party", "receiving party", "trade secret",
	},
	"employment": {
		"employee", "employer", "employment", "at-will", "salary",
		"job duties", "severance", "non-compete",
	},
	"service_agreement": {
		"statement of work", "deliverables", "service provider",
		"professional services", "sow", "consultant",
	},
	"lease": {
		"landlord", "tenant", "premises", "rent", "lease term",
		"security deposit", "sublease",
	},
	"saas": {
		"subscription", "uptime", "service level", "software as a service",
		"saas", "hosted service", "customer data",
	},
	"loan": {
		"lender", "borrower", "principal amount", "interest rate",
		"repayment", "collateral", "promissory",
	},
	"privacy_policy": {
		"privacy policy", "personal information", "data we collect",
		"cookies", "gdpr", "ccpa", "opt-out",
	},
	"terms_of_service": {
		"terms of service", "terms of use", "user account",
		"acceptable use", "your content", "our services",
	},
}

var displayNames = map[string]string{
	"nda":               "Non-Disclosure Agreement",
	"employment":        "Employment Agreement",
	"service_agreement": "Service Agreement",
	"lease":             "Lease Agreement",
	"saas":              "SaaS Agreement",
	"loan":              "Loan Agreement",
	"privacy_policy":    "Privacy Policy",
	"terms_of_service":  "Terms of Service",
}

// TypeName returns the display name for a type label, "General Agreement"
// for unknown labels.
func TypeName(label string) string {
	if name, ok := displayNames[label]; ok {
		return name
	}
	return "General Agreement"
}

// KeywordClassifier scores each known type by signal-phrase hits. Title
// hits weigh triple since titles name the document.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the default classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify returns the best-scoring type label and a confidence derived
// from the leader's share of all hits. Documents with no signal hits are
// "generic" at 0.3.
func (c *KeywordClassifier) Classify(text, title string) (string, float64) {
	loweredText := strings.ToLower(text)
	loweredTitle := strings.ToLower(title)

	best := ""
	bestScore := 0
	total := 0
	for _, label := range labels {
		score := 0
		for _, signal := range typeSignals[label] {
			score += strings.Count(loweredText, signal)
			score += 3 * strings.Count(loweredTitle, signal)
		}
		total += score
		if score > bestScore {
			best = label
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "generic", 0.3
	}

	confidence := float64(bestScore) / float64(total)
	if confidence < 0.3 {
		confidence = 0.3
	}
	if confidence > 0.95 {
		confidence = 0.95
	}
	return best, confidence
}
