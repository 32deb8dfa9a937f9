package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkoval/redline/internal/model"
)

// BalanceType describes how evenly a clause treats the parties.
type BalanceType string

const (
	BalanceMutual     BalanceType = "mutual"     // both parties have equal rights
	BalanceReciprocal BalanceType = "reciprocal" // each party has corresponding obligations
	BalanceQualified  BalanceType = "qualified"  // rights are limited or conditioned
	BalanceOneSided   BalanceType = "one_sided"  // only one party benefits
	BalanceAsymmetric BalanceType = "asymmetric" // significantly unequal treatment
)

// Default filter thresholds used by ApplyFilters.
const (
	DefaultMinRiskScore  = 3
	DefaultMinConfidence = 0.4
)

// identicalThreshold is the word-overlap fraction above which a proposed
// replacement counts as a restatement of the original clause.
const identicalThreshold = 0.90

type balanceIndicator struct {
	patterns    []*regexp.Regexp
	balance     BalanceType
	reduction   int
	boost       float64
	description string
}

func indicator(balance BalanceType, reduction int, boost float64, description string, patterns ...string) balanceIndicator {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return balanceIndicator{patterns: res, balance: balance, reduction: reduction, boost: boost, description: description}
}

// balancingIndicators lists, per risk category, the language that marks a
// clause as balanced. Patterns match against lowercased clause text.
var balancingIndicators = map[string][]balanceIndicator{
	"termination": {
		indicator(BalanceMutual, 5, 0.4, "Both parties have equal termination rights",
			`\beither party\b`, `\bboth parties\b`, `\bmutual\b`),
		indicator(BalanceQualified, 1, 0.1, "Adequate notice period (60+ days) provides protection",
			`upon.*\d{60,}\s*days`, `\d{60,}\s*days.*notice`, `ninety.*days`, `sixty.*days`),
		indicator(BalanceQualified, 2, 0.2, "Termination requires valid reason (not at-will)",
			`for\s+cause`, `material\s+breach`, `with\s+good\s+reason`),
	},
	"liability": {
		indicator(BalanceMutual, 5, 0.4, "Mutual liability/indemnification obligations",
			`mutual\s+(?:liability|indemnification)`, `each\s+party.*indemnify`, `reciprocal`),
		indicator(BalanceQualified, 2, 0.2, "Liability is capped/limited",
			`cap(?:ped)?\s+at`, `limited\s+to`, `not\s+to\s+exceed`, `maximum.*amount`),
		indicator(BalanceQualified, 1, 0.1, "Liability has explicit carve-outs/exceptions",
			`except\s+for`, `excluding`, `other\s+than`, `save\s+for`),
	},
	"ip_rights": {
		indicator(BalanceMutual, 4, 0.3, "Joint/shared IP ownership",
			`joint\s+ownership`, `co-own`, `shared\s+(?:rights|ownership)`),
		indicator(BalanceReciprocal, 3, 0.25, "Creator retains license/usage rights",
			`license\s+back`, `perpetual.*license`, `royalty-free.*license`, `right\s+to\s+use`),
		indicator(BalanceQualified, 2, 0.15, "Pre-existing IP explicitly excluded",
			`pre-existing`, `background\s+IP`, `prior.*(?:work|materials)`, `excluding.*existed`),
	},
	"amendment": {
		indicator(BalanceMutual, 5, 0.4, "Changes require mutual consent",
			`mutual\s+(?:consent|agreement)`, `both\s+parties.*agree`, `written\s+agreement.*parties`),
		indicator(BalanceQualified, 2, 0.15, "Adequate notice before changes take effect",
			`\d{30,}\s*days.*notice`, `advance\s+notice`, `prior.*notification`),
		indicator(BalanceQualified, 3, 0.25, "Party can opt-out or terminate if changes unacceptable",
			`opt[\s-]out`, `reject.*changes`, `terminate.*upon.*modification`, `right\s+to\s+cancel`),
	},
	"payment": {
		indicator(BalanceQualified, 2, 0.15, "Pricing tied to market/industry standards",
			`market\s+rate`, `commercially\s+reasonable`, `industry\s+standard`, `fair\s+market\s+value`),
		indicator(BalanceQualified, 2, 0.2, "Price increases are capped/limited",
			`not\s+to\s+exceed`, `cap(?:ped)?`, `maximum.*increase`, `\d+%.*per\s+(?:year|annum)`),
		indicator(BalanceMutual, 3, 0.25, "Price changes require mutual agreement",
			`mutual\s+agreement`, `both\s+parties.*consent`, `negotiated.*good\s+faith`),
	},
	"confidentiality": {
		indicator(BalanceMutual, 4, 0.3, "Mutual confidentiality obligations",
			`mutual\s+(?:confidentiality|NDA)`, `each\s+party.*confidential`, `reciprocal`),
		indicator(BalanceQualified, 1, 0.1, "Standard confidentiality exceptions apply",
			`standard\s+exceptions`, `publicly\s+available`, `independently\s+developed`, `required\s+by\s+law`),
	},
	"dispute_resolution": {
		indicator(BalanceMutual, 3, 0.25, "Dispute resolution is mutual/balanced",
			`mutual\s+(?:arbitration|mediation)`, `agreed\s+arbitrator`, `both\s+parties.*consent`),
		indicator(BalanceQualified, 2, 0.15, "Neutral venue protects both parties",
			`neutral\s+venue`, `mutually\s+agreed.*location`, `convenient.*both`),
		indicator(BalanceQualified, 1, 0.1, "Fair cost allocation (prevailing party or shared)",
			`prevailing\s+party`, `each.*own.*fees`, `costs\s+shared`),
	},
}

// redFlagGroups match one-sided language: named-party powers, absolute
// language, and unilateral powers. Each group contributes at most one flag.
var redFlagGroups = [][]*regexp.Regexp{
	{
		regexp.MustCompile(`\b(?:provider|vendor|supplier|company|employer|licensor)\s+(?:may|shall|can|has\s+the\s+right)`),
		regexp.MustCompile(`(?:at|in)\s+(?:provider|vendor|company)'?s?\s+(?:sole\s+)?discretion`),
		regexp.MustCompile(`(?:provider|vendor)\s+(?:reserves|retains)\s+(?:all\s+)?rights?`),
	},
	{
		regexp.MustCompile(`\ball\b.*\b(?:liability|risk|responsibility|cost)`),
		regexp.MustCompile(`\bany\s+and\s+all\b`),
		regexp.MustCompile(`\bwhatsoever\b`),
		regexp.MustCompile(`\bunlimited\b`),
		regexp.MustCompile(`\bwithout\s+(?:limit|restriction|exception)`),
	},
	{
		regexp.MustCompile(`unilateral(?:ly)?`),
		regexp.MustCompile(`at\s+any\s+time\s+(?:and\s+)?for\s+any\s+reason`),
		regexp.MustCompile(`in\s+(?:its|our)\s+sole\s+discretion`),
		regexp.MustCompile(`as\s+(?:it|we)\s+(?:deem|determine)`),
		regexp.MustCompile(`without\s+(?:notice|consent|approval)`),
	},
}

// AnalyzeBalance inspects a clause for balancing language and adjusts its
// risk score. Mutual or reciprocal language reduces the score sharply,
// qualifications reduce it moderately, and red-flag language pushes it
// back up and forces the clause one-sided. The first matching pattern per
// indicator records that indicator; the reduction and boost are the
// maximum across matches and the balance type is the last match.
func AnalyzeBalance(clauseText, category string, baseScore int) (int, float64, BalanceType, []string) {
	if clauseText == "" {
		return baseScore, 0.5, BalanceOneSided, nil
	}
	lowered := strings.ToLower(clauseText)

	reduction := 0
	boost := 0.0
	balance := BalanceOneSided
	var reasons []string

	for _, ind := range balancingIndicators[category] {
		for _, re := range ind.patterns {
			if re.MatchString(lowered) {
				if ind.reduction > reduction {
					reduction = ind.reduction
				}
				if ind.boost > boost {
					boost = ind.boost
				}
				balance = ind.balance
				reasons = append(reasons, ind.description)
				break
			}
		}
	}

	redFlags := 0
	for _, group := range redFlagGroups {
		for _, re := range group {
			if re.MatchString(lowered) {
				redFlags++
				break
			}
		}
	}

	adjusted := baseScore
	switch balance {
	case BalanceMutual, BalanceReciprocal:
		adjusted = baseScore - reduction
		if adjusted < 1 {
			adjusted = 1
		}
	case BalanceQualified:
		adjusted = baseScore - reduction
		if adjusted < 2 {
			adjusted = 2
		}
	}

	if redFlags > 0 {
		bump := redFlags
		if bump > 2 {
			bump = 2
		}
		adjusted += bump
		if adjusted > 5 {
			adjusted = 5
		}
		balance = BalanceOneSided
	}

	confidence := 0.5 + boost
	if confidence > 1 {
		confidence = 1
	}
	return adjusted, confidence, balance, reasons
}

// IdenticalReplacement reports whether a proposed replacement merely
// restates the original clause. Replacements under 50 normalized bytes are
// too short to judge and pass.
func IdenticalReplacement(original, replacement string) bool {
	if original == "" || replacement == "" {
		return false
	}
	normOrig := normalizeWords(original)
	normRepl := normalizeWords(replacement)
	if len(normRepl) < 50 {
		return false
	}
	if strings.Contains(normOrig, normRepl) || strings.Contains(normRepl, normOrig) {
		return true
	}

	origWords := wordSet(normOrig)
	replWords := wordSet(normRepl)
	if len(origWords) == 0 || len(replWords) == 0 {
		return false
	}
	common := 0
	for w := range replWords {
		if origWords[w] {
			common++
		}
	}
	smaller := len(origWords)
	if len(replWords) < smaller {
		smaller = len(replWords)
	}
	return float64(common)/float64(smaller) > identicalThreshold
}

func normalizeWords(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// ShouldFilter decides whether a clause is too weak or too suspect to
// show, returning the reason when it is.
func ShouldFilter(c model.Clause, minScore int, minConf float64) (bool, string) {
	if c.RiskScore < minScore {
		return true, fmt.Sprintf("Low risk score (%d/5)", c.RiskScore)
	}
	if c.Confidence < minConf {
		return true, fmt.Sprintf("Low confidence (%.2f)", c.Confidence)
	}
	if IdenticalReplacement(c.ClauseText, c.ReplacementClause) {
		return true, "Replacement identical to original"
	}
	if len(strings.TrimSpace(c.ClauseText)) < 30 {
		return true, "Clause text too short"
	}
	return false, ""
}

// categoryKeywords is a sanity map: a clause assigned one of these
// categories should contain at least one of its keywords.
var categoryKeywords = map[string][]string{
	"termination":        {"terminat", "cancel", "end", "expire", "discontinu"},
	"liability":          {"liab", "indemnif", "hold harmless", "damages", "loss"},
	"ip_rights":          {"intellectual property", "copyright", "patent", "trademark", "ownership", "ip"},
	"payment":            {"pay", "fee", "price", "cost", "invoice", "compensation"},
	"amendment":          {"amend", "modif", "change", "alter", "revise", "update"},
	"confidentiality":    {"confidential", "proprietary", "secret", "disclosure", "nda"},
	"dispute_resolution": {"dispute", "arbitrat", "litigation", "court", "venue", "jurisdiction"},
	"warranty":           {"warrant", "represent", "guarantee", "assurance"},
}

// ConsistentCategory reports whether a clause's text plausibly matches its
// assigned category. Categories without a keyword list always pass.
func ConsistentCategory(clauseText, category string) bool {
	keywords := categoryKeywords[strings.ToLower(category)]
	if len(keywords) == 0 {
		return true
	}
	lowered := strings.ToLower(clauseText)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Rejected pairs a filtered-out clause with the reason it was dropped.
type Rejected struct {
	Clause model.Clause
	Reason string
}

// ApplyFilters splits clauses into kept and rejected using the default
// thresholds plus the category consistency check.
func ApplyFilters(clauses []model.Clause) (kept []model.Clause, rejected []Rejected) {
	for _, c := range clauses {
		if drop, reason := ShouldFilter(c, DefaultMinRiskScore, DefaultMinConfidence); drop {
			rejected = append(rejected, Rejected{Clause: c, Reason: reason})
			continue
		}
		if !ConsistentCategory(c.ClauseText, c.Category) {
			rejected = append(rejected, Rejected{Clause: c, Reason: "Category inconsistent with content"})
			continue
		}
		kept = append(kept, c)
	}
	return kept, rejected
}
