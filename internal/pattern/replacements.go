package pattern

// builtinReplacements maps replacement categories to balanced contract
// language offered in place of the flagged clause.
func builtinReplacements() map[string]string {
	return map[string]string{
		"indemnity": "Each party shall indemnify the other solely for third-party claims arising from its own negligence or willful misconduct, " +
			"subject to the liability caps set forth in this Agreement.",
		"liability_cap": "The total aggregate liability of either party shall not exceed the fees paid under this Agreement during the twelve (12) months " +
			"preceding the claim, except for liability arising from gross negligence, willful misconduct, or expressly indemnified claims.",
		"remedies": "If the Services fail to conform, Provider shall promptly remedy the deficiency or provide a mutually agreed service credit; " +
			"if unresolved within thirty (30) days, Customer may pursue all remedies available at law or in equity.",
		"warranty": "Provider warrants that the Services will materially conform to the documentation and be performed in a professional manner, " +
			"and Provider will, at its cost, correct any non-conformance reported within the warranty period.",
		"penalties": "Upon early termination, Customer shall pay Provider undisputed fees earned through the termination date, with no additional " +
			"penalties imposed.",
		"termination": "Either party may terminate this Agreement for convenience upon ninety (90) days' prior written notice, and Provider shall refund " +
			"any prepaid, unused fees.",
		"renewal": "This Agreement shall renew for successive one-year terms only upon mutual written agreement executed at least thirty (30) days " +
			"before the current term expires.",
		"dispute_resolution": "Any dispute shall be resolved through binding arbitration administered by the American Arbitration Association in a mutually " +
			"agreed location, with each party bearing its own costs.",
		"jurisdiction": "The parties consent to the exclusive jurisdiction of the state and federal courts located in a mutually agreed venue, and this " +
			"Agreement shall be governed by the laws of that jurisdiction without regard to conflicts principles.",
		"confidentiality": "Each party shall protect the other's Confidential Information using commercially reasonable care and may disclose it only to " +
			"personnel and advisors bound by confidentiality obligations no less protective.",
		"amendment": "No amendment or modification of this Agreement is effective unless in writing and signed by authorized representatives of both " +
			"parties.",
		"discretion": "Any consent or approval required under this Agreement shall not be unreasonably withheld, conditioned, or delayed, and shall be " +
			"made in good faith.",
		"assignment": "Neither party may assign this Agreement without the other's prior written consent, which shall not be unreasonably withheld; " +
			"consent is not required for assignments to affiliates that assume all obligations.",
		"competition": "During the term, neither party shall directly solicit the other's employees engaged on the Services; general recruitment not " +
			"targeted at such employees is permitted.",
		"ip": "Each party retains ownership of its pre-existing intellectual property. Deliverables created under this Agreement shall be " +
			"jointly owned, and each party receives a perpetual, royalty-free license to use them for internal business purposes.",
		"data_security": "Provider shall implement industry-standard administrative, technical, and physical safeguards to protect Customer Data and shall " +
			"notify Customer of any confirmed security incident within forty-eight (48) hours.",
		"sla": "Provider shall use commercially reasonable efforts to maintain 99.5% monthly uptime, excluding scheduled maintenance with forty-eight " +
			"hours' notice, and service credits are capped at twenty percent (20%) of monthly fees.",
		"pricing": "If Provider offers more favorable pricing for materially similar services and volumes, Provider shall notify Customer, and the " +
			"parties will negotiate in good faith to adjust pricing accordingly.",
		"exclusivity": "Customer may engage other suppliers provided Customer meets the minimum purchase commitments set forth in Schedule A.",
		"change_control": "In the event of a change of control, the affected party shall provide thirty (30) days' prior written notice, and the Agreement " +
			"shall remain in effect unless the other party elects to terminate within sixty (60) days.",
		"disclaimer": "Except for express warranties, neither party makes additional warranties; each party disclaims implied warranties to the extent " +
			"permitted by law, without waiving liability for gross negligence or intentional misconduct.",
		"payments": "Customer may offset undisputed amounts only upon fifteen (15) days' prior written notice, and any late payments accrue interest " +
			"at the lesser of one percent (1%) per month or the maximum rate allowed by law.",
		"waivers": "No waiver of any provision is effective unless in writing and signed by the waiving party, and a waiver of one breach shall not " +
			"constitute a waiver of any subsequent breach.",
		"force_majeure": "Neither party is liable for delays caused by events beyond its reasonable control, provided it promptly notifies the other party, " +
			"uses reasonable efforts to mitigate, and resumes performance as soon as practicable.",
		"language": "This Agreement is drafted in English, which shall control in the event of any translation discrepancies.",
		"compliance": "Each party shall comply with laws applicable to its performance under this Agreement and promptly notify the other of any " +
			"material non-compliance that could impact the Services.",
		"insurance": "Provider shall maintain insurance coverage consistent with industry standards and, upon request, provide certificates evidencing " +
			"such coverage.",
		"audit": "Customer may audit Provider's relevant records once per year during normal business hours with fifteen (15) days' notice, and all " +
			"information obtained shall remain confidential.",
		"escrow": "If the parties agree to use escrow, they shall establish a mutually acceptable escrow arrangement with release conditions tied to " +
			"Provider's insolvency or failure to support the Services.",
		"generic": "Each party shall be responsible for damages caused by its breach of this Agreement, subject to the limitations and exclusions " +
			"expressly stated herein.",
	}
}
