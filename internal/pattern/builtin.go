package pattern

import "github.com/pkoval/redline/internal/model"

// builtinRules returns the core risk rules. Scores, weights, and context
// word lists are tuned together; adjust with care.
func builtinRules() []Rule {
	return []Rule{
		{
			Pattern:         `shall\s+indemnify\s+(?:and\s+)?(?:hold\s+harmless|defend)`,
			Regex:           true,
			Category:        model.CategoryIndemnity,
			BaseScore:       5,
			RequiresContext: []string{"all", "any", "losses", "damages", "claims"},
			ExcludesContext: []string{"mutual", "limited to", "except"},
			Weight:          10.0,
			Description:     "Broad unilateral indemnification obligation without limitations",
			Mitigation:      "Negotiate for mutual indemnity, cap liability, and limit to direct damages from party's own misconduct",
		},
		{
			Pattern:         `indemnify.*from\s+(?:any|all)\s+(?:and\s+all\s+)?(?:claims|losses|damages|liabilities)`,
			Regex:           true,
			Category:        model.CategoryIndemnity,
			BaseScore:       5,
			ExcludesContext: []string{"mutual", "solely", "limited"},
			Weight:          9.0,
			Description:     "Unlimited indemnity obligation covering all potential losses",
			Mitigation:      "Add caps, carve-outs for third-party claims only, and require causation by indemnifying party",
		},
		{
			Pattern:         "duty to defend",
			Category:        model.CategoryIndemnity,
			BaseScore:       4,
			RequiresContext: []string{"indemnify", "claims", "litigation"},
			ExcludesContext: []string{"reimbursement", "at cost"},
			Weight:          7.0,
			Description:     "Obligation to bear defense costs in litigation",
			Mitigation:      "Limit to reimbursement of reasonable defense costs after liability is proven",
		},
		{
			Pattern:         `liability.*(?:shall\s+)?not\s+exceed\s+(?:\$|USD|€)?[\d,]+`,
			Regex:           true,
			Category:        model.CategoryLiability,
			BaseScore:       4,
			RequiresContext: []string{"aggregate", "total", "maximum"},
			ExcludesContext: []string{"except", "excluding", "carve-out"},
			Weight:          8.0,
			Description:     "Low liability cap may be insufficient for actual damages",
			Mitigation:      "Increase cap to realistic amount (e.g., 12 months fees) and add carve-outs for critical breaches",
		},
		{
			Pattern:         `(?:excludes?|disclaim).*(?:all\s+)?(?:consequential|indirect|incidental|special|punitive)\s+damages`,
			Regex:           true,
			Category:        model.CategoryLiability,
			BaseScore:       4,
			ExcludesContext: []string{"except for", "excluding"},
			Weight:          7.0,
			Description:     "Excludes recovery of significant damage types",
			Mitigation:      "Carve out consequential damages from data loss, IP infringement, or confidentiality breaches",
		},
		{
			Pattern:         "as-is",
			Category:        model.CategoryWarranty,
			BaseScore:       3,
			RequiresContext: []string{"provided", "delivered", "sold"},
			ExcludesContext: []string{"except", "warranty", "guarantee"},
			Weight:          6.0,
			Description:     "No warranties or guarantees on performance or quality",
			Mitigation:      "Negotiate minimum performance standards, acceptance testing, or limited warranty period",
		},
		{
			Pattern:  `terminate.*(?:at\s+any\s+time|for\s+convenience|without\s+cause)`,
			Regex:    true,
			Category: model.CategoryTermination,
			// Only strong mutual indicators excuse a unilateral termination right
			ExcludesContext: []string{"either party", "both parties", "mutual"},
			BaseScore:       5,
			Weight:          9.0,
			Description:     "Unilateral termination right creates contract instability",
			Mitigation:      "Require minimum term, advance notice (60-90 days), and mutual termination rights",
		},
		{
			Pattern:         `(?:provider|vendor|supplier|company|employer)\s+may\s+terminate.*(?:for\s+convenience|without\s+cause)`,
			Regex:           true,
			Category:        model.CategoryTermination,
			BaseScore:       5,
			ExcludesContext: []string{"customer may also", "employee may also", "either party", "both parties"},
			Weight:          8.5,
			Description:     "One-sided termination favors provider",
			Mitigation:      "Add mutual termination rights or minimum commitment period",
		},
		{
			Pattern:         `early\s+termination\s+(?:fee|penalty|charge)`,
			Regex:           true,
			Category:        model.CategoryTermination,
			BaseScore:       4,
			RequiresContext: []string{"pay", "owe", "liable"},
			ExcludesContext: []string{"waived", "no", "without"},
			Weight:          7.5,
			Description:     "Financial penalty for early termination may be excessive",
			Mitigation:      "Cap termination fees, allow pro-rated calculation, or negotiate waiver clauses",
		},
		{
			Pattern:         `(?:automatic(?:ally)?|auto)(?:\s+|\-)renew`,
			Regex:           true,
			Category:        model.CategoryRenewal,
			BaseScore:       4,
			RequiresContext: []string{"term", "year", "period"},
			ExcludesContext: []string{"opt-out", "cancel", "notice"},
			Weight:          8.0,
			Description:     "Auto-renewal without easy opt-out mechanism",
			Mitigation:      "Shorten auto-renewal notice period to 30 days, require opt-in instead of opt-out",
		},
		{
			Pattern:         `successive.*terms?.*unless.*terminat`,
			Regex:           true,
			Category:        model.CategoryRenewal,
			BaseScore:       4,
			RequiresContext: []string{"renew", "extend"},
			ExcludesContext: []string{"30 days", "mutual"},
			Weight:          7.0,
			Description:     "Automatic renewal with long notice period",
			Mitigation:      "Reduce notice period and add renewal reminders before deadline",
		},
		{
			Pattern:         `(?:all|any)\s+intellectual\s+property.*(?:shall\s+)?belong\s+to`,
			Regex:           true,
			Category:        model.CategoryIPRights,
			BaseScore:       5,
			RequiresContext: []string{"created", "developed", "arising"},
			ExcludesContext: []string{"pre-existing", "background", "separately"},
			Weight:          9.0,
			Description:     "Broad assignment of IP rights without limitations",
			Mitigation:      "Limit to deliverables created specifically for project, retain background IP, get license-back rights",
		},
		{
			Pattern:         `work\s+for\s+hire`,
			Regex:           true,
			Category:        model.CategoryIPRights,
			BaseScore:       4,
			RequiresContext: []string{"intellectual property", "copyright", "ownership"},
			ExcludesContext: []string{"excluding", "except"},
			Weight:          8.0,
			Description:     "Work-for-hire arrangement transfers all IP ownership",
			Mitigation:      "Negotiate joint ownership or perpetual license with right to sublicense",
		},
		{
			Pattern:         `(?:may|reserves?\s+the\s+right\s+to)\s+(?:modify|amend|change|alter).*(?:agreement|terms)`,
			Regex:           true,
			Category:        model.CategoryAmendment,
			BaseScore:       5,
			RequiresContext: []string{"unilateral", "sole", "discretion", "at any time"},
			ExcludesContext: []string{"mutual", "consent", "agreement of both"},
			Weight:          9.0,
			Description:     "Unilateral right to change contract terms",
			Mitigation:      "Require mutual written consent for material changes, or provide opt-out right without penalty",
		},
		{
			Pattern:         `(?:mandatory|binding|exclusive)\s+arbitration`,
			Regex:           true,
			Category:        model.CategoryDisputeResolution,
			BaseScore:       3,
			RequiresContext: []string{"dispute", "claim", "controversy"},
			ExcludesContext: []string{"optional", "may", "at party's election"},
			Weight:          6.0,
			Description:     "Mandatory arbitration limits access to courts",
			Mitigation:      "Make arbitration mutual, choose neutral venue and rules, preserve injunctive relief rights in court",
		},
		{
			Pattern:     "waiver of jury trial",
			Category:    model.CategoryDisputeResolution,
			BaseScore:   3,
			Weight:      6.0,
			Description: "Waives constitutional right to jury trial",
			Mitigation:  "Remove waiver or ensure it's truly mutual and knowingly agreed",
		},
		{
			Pattern:         `(?:confidential|proprietary)\s+information.*(?:indefinitely|perpetual|in\s+perpetuity)`,
			Regex:           true,
			Category:        model.CategoryConfidentiality,
			BaseScore:       3,
			RequiresContext: []string{"obligation", "duty", "maintain"},
			ExcludesContext: []string{"terminate", "expire", "years"},
			Weight:          5.0,
			Description:     "Indefinite confidentiality obligation",
			Mitigation:      "Limit confidentiality to 3-5 years post-termination, add standard exceptions",
		},
		{
			Pattern:         `(?:shall\s+)?not\s+(?:engage\s+in|conduct|carry\s+on).*(?:competing|competitive)\s+(?:business|activities)`,
			Regex:           true,
			Category:        model.CategoryNonCompete,
			BaseScore:       4,
			RequiresContext: []string{"customer", "client", "market", "industry"},
			ExcludesContext: []string{"limited to", "specific", "narrow"},
			Weight:          7.0,
			Description:     "Broad non-compete restriction limits future opportunities",
			Mitigation:      "Narrow scope to specific products/services, limit geography and duration (6-12 months max)",
		},
		{
			Pattern:         `data\s+breach.*(?:liable|responsible|indemnify)`,
			Regex:           true,
			Category:        model.CategoryDataProtection,
			BaseScore:       4,
			RequiresContext: []string{"all", "any", "costs", "damages"},
			ExcludesContext: []string{"solely caused by", "limited to"},
			Weight:          8.0,
			Description:     "Unlimited liability for data breaches",
			Mitigation:      "Define security standards, share breach costs, cap liability, require insurance",
		},
		{
			Pattern:         `late\s+(?:payment|fee|charge).*(?:\d+%|percent)`,
			Regex:           true,
			Category:        model.CategoryPayment,
			BaseScore:       3,
			RequiresContext: []string{"per", "month", "annually"},
			ExcludesContext: []string{"maximum", "not to exceed"},
			Weight:          5.0,
			Description:     "High late payment interest rate",
			Mitigation:      "Cap late fees at statutory maximum, add grace period for payment processing",
		},
		{
			Pattern:         `set-?off`,
			Regex:           true,
			Category:        model.CategoryPayment,
			BaseScore:       3,
			RequiresContext: []string{"withhold", "deduct", "offset"},
			ExcludesContext: []string{"prohibited", "not permitted", "undisputed"},
			Weight:          6.0,
			Description:     "Set-off rights allow withholding payments",
			Mitigation:      "Limit set-off to undisputed amounts with prior written notice",
		},
		{
			Pattern:         `(?:may\s+)?assign.*without.*consent`,
			Regex:           true,
			Category:        model.CategoryAssignment,
			BaseScore:       3,
			RequiresContext: []string{"agreement", "rights", "obligations"},
			ExcludesContext: []string{"prohibited", "not", "except"},
			Weight:          6.0,
			Description:     "Allows assignment to unknown third parties without approval",
			Mitigation:      "Require prior written consent for assignment, allow only to qualified affiliates",
		},
		{
			Pattern:         `force\s+majeure`,
			Regex:           true,
			Category:        model.CategoryForceMajeure,
			BaseScore:       2,
			RequiresContext: []string{"excuse", "suspend", "delay"},
			ExcludesContext: []string{"notice", "mitigation", "terminate"},
			Weight:          4.0,
			Description:     "Force majeure clause may excuse performance too broadly",
			Mitigation:      "Add notice requirements, mitigation obligations, and termination right after extended period",
		},
	}
}
