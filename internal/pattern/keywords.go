package pattern

// builtinKeywords returns the weighted keyword table. Ordering matters: the
// legacy quick scan walks the first 20 entries in order.
func builtinKeywords() []Keyword {
	return []Keyword{
		{Pattern: "shall indemnify", Rationale: "Broad indemnity can transfer extensive liability to you.", Weight: 5, DefaultScore: 5, Suggestion: "Limit indemnity to third-party losses caused by the indemnifying party and cap recoverable damages.", ReplacementCategory: "indemnity"},
		{Pattern: "indemnify", Rationale: "Indemnification language often shifts responsibility for losses.", Weight: 4, DefaultScore: 5, Suggestion: "Seek mutual indemnities and restrict scope to negligence or breach documented by the indemnifying party.", ReplacementCategory: "indemnity"},
		{Pattern: "indemnity", Rationale: "Indemnity terms may create unlimited loss exposure.", Weight: 4, DefaultScore: 5, Suggestion: "Tie indemnity to specific, provable harms and add financial caps or insurance requirements.", ReplacementCategory: "indemnity"},
		{Pattern: "hold harmless", Rationale: "Hold harmless obligations can expand your liability exposure.", Weight: 4, DefaultScore: 5, Suggestion: "Convert hold harmless language to mutual indemnities or limit to direct damages from proven misconduct.", ReplacementCategory: "indemnity"},
		{Pattern: "defend and indemnify", Rationale: "Defense obligations add cost and litigation risk.", Weight: 4, DefaultScore: 5, Suggestion: "Remove the duty to defend or make reimbursement contingent on proven liability and reasonable costs.", ReplacementCategory: "indemnity"},
		{Pattern: "limitation of liability", Rationale: "Liability caps may be one-sided or exclude key damages.", Weight: 4, DefaultScore: 4, Suggestion: "Ensure liability caps are mutual, tied to fees, and carve out critical losses like data breaches or IP infringement.", ReplacementCategory: "liability_cap"},
		{Pattern: "limitation on liability", Rationale: "Liability caps may be one-sided or exclude key damages.", Weight: 4, DefaultScore: 4, Suggestion: "Increase the liability cap to a realistic amount and add carve-outs for gross negligence or willful misconduct.", ReplacementCategory: "liability_cap"},
		{Pattern: "liability shall not exceed", Rationale: "Dollar caps on liability can be too low for the risk.", Weight: 4, DefaultScore: 4, Suggestion: "Link the liability cap to total contract value or annual fees and carve out critical categories of harm.", ReplacementCategory: "liability_cap"},
		{Pattern: "limitation on remedies", Rationale: "Limits on remedies may prevent adequate recourse.", Weight: 3, DefaultScore: 4, Suggestion: "Add supplemental remedies or exceptions when the primary remedy fails to deliver the contracted outcome.", ReplacementCategory: "remedies"},
		{Pattern: "exclusive remedy", Rationale: "Exclusive remedy clauses restrict available recourse.", Weight: 3, DefaultScore: 4, Suggestion: "Allow alternative remedies if the exclusive remedy fails or if breaches are material or repeated.", ReplacementCategory: "remedies"},
		{Pattern: "waiver of consequential", Rationale: "Waives indirect damages that may be necessary to recover.", Weight: 3, DefaultScore: 4, Suggestion: "Carve out consequential damages arising from the other party's breach, data loss, or IP infringement.", ReplacementCategory: "remedies"},
		{Pattern: "warranty disclaimer", Rationale: "Warranty disclaimers can remove important protections.", Weight: 3, DefaultScore: 4, Suggestion: "Add baseline performance warranties or acceptance testing to ensure minimum service standards.", ReplacementCategory: "warranty"},
		{Pattern: "provided on an as-is basis", Rationale: "As-is language may waive key warranties.", Weight: 3, DefaultScore: 3, Suggestion: "Insert performance commitments or a right to terminate if the deliverable fails agreed specifications.", ReplacementCategory: "warranty"},
		{Pattern: "liquidated damages", Rationale: "Preset damages may be punitive or costly.", Weight: 4, DefaultScore: 4, Suggestion: "Verify liquidated damages align with actual anticipated loss and cap total exposure.", ReplacementCategory: "penalties"},
		{Pattern: "early termination fee", Rationale: "Termination penalties can be financially burdensome.", Weight: 3, DefaultScore: 4, Suggestion: "Negotiate prorated termination fees tied to unrecovered costs or limit the fee to a short notice period.", ReplacementCategory: "penalties"},
		{Pattern: "penalty", Rationale: "Penalty provisions may create significant financial exposure.", Weight: 3, DefaultScore: 4, Suggestion: "Replace punitive penalties with reasonable liquidated damages or cure rights before charges apply.", ReplacementCategory: "penalties"},
		{Pattern: "termination for convenience", Rationale: "Termination for convenience without notice harms contract stability.", Weight: 4, DefaultScore: 4, Suggestion: "Add reasonable notice periods, mutual termination rights, and reimbursement of non-recoverable costs.", ReplacementCategory: "termination"},
		{Pattern: "terminate at any time", Rationale: "Unqualified termination rights create uncertainty.", Weight: 3, DefaultScore: 4, Suggestion: "Require advance notice, minimum commitment, or limit termination to defined trigger events.", ReplacementCategory: "termination"},
		{Pattern: "automatic renewal", Rationale: "Automatic renewal clauses can extend obligations without explicit consent.", Weight: 4, DefaultScore: 4, Suggestion: "Shorten the renewal term, add renewal reminders, and allow opt-out with reasonable notice.", ReplacementCategory: "renewal"},
		{Pattern: "auto-renew", Rationale: "Automatic renewal clauses can extend obligations without explicit consent.", Weight: 3, DefaultScore: 4, Suggestion: "Require written confirmation for renewal and reduce advance notice requirements.", ReplacementCategory: "renewal"},
		{Pattern: "perpetual term", Rationale: "Perpetual terms lock parties into long commitments.", Weight: 3, DefaultScore: 4, Suggestion: "Add periodic renewal checkpoints or a right to terminate without penalty after an initial term.", ReplacementCategory: "renewal"},
		{Pattern: "arbitration", Rationale: "Mandatory arbitration impacts dispute resolution rights.", Weight: 3, DefaultScore: 3, Suggestion: "Ensure arbitration rules, venue, and costs are balanced and preserve access to courts for injunctive relief.", ReplacementCategory: "dispute_resolution"},
		{Pattern: "binding arbitration", Rationale: "Mandatory arbitration impacts dispute resolution rights.", Weight: 3, DefaultScore: 3, Suggestion: "Make arbitration mutual, choose a neutral forum, and allow appeals for manifest error or injunctive relief in court.", ReplacementCategory: "dispute_resolution"},
		{Pattern: "waiver of jury trial", Rationale: "Waiving jury trial limits litigation options.", Weight: 3, DefaultScore: 3, Suggestion: "Consider removing the waiver or ensure it is mutual and limited to defined dispute types.", ReplacementCategory: "dispute_resolution"},
		{Pattern: "governing law", Rationale: "Governing law in an unfavorable venue can affect outcomes.", Weight: 2, DefaultScore: 3, Suggestion: "Renegotiate governing law to a neutral or home jurisdiction that aligns with your legal protections.", ReplacementCategory: "jurisdiction"},
		{Pattern: "exclusive jurisdiction", Rationale: "Exclusive jurisdiction may create unfavorable litigation venues.", Weight: 2, DefaultScore: 3, Suggestion: "Allow litigation in your local courts or agree to a mutually convenient jurisdiction.", ReplacementCategory: "jurisdiction"},
		{Pattern: "venue shall be", Rationale: "Fixed venue may require litigating in distant courts.", Weight: 2, DefaultScore: 3, Suggestion: "Amend venue provision to include your jurisdiction or permit remote dispute resolution.", ReplacementCategory: "jurisdiction"},
		{Pattern: "limitation period", Rationale: "Reduced limitation periods can curtail legal remedies.", Weight: 2, DefaultScore: 3, Suggestion: "Extend limitation periods to statutory defaults or a timeframe that reflects the transaction risk.", ReplacementCategory: "jurisdiction"},
		{Pattern: "confidentiality", Rationale: "Strict confidentiality clauses may impose burdensome restrictions.", Weight: 2, DefaultScore: 3, Suggestion: "Ensure confidentiality is mutual, includes standard carve-outs, and limits survival to a reasonable duration.", ReplacementCategory: "confidentiality"},
		{Pattern: "non-disclosure", Rationale: "Strict confidentiality clauses may impose burdensome restrictions.", Weight: 2, DefaultScore: 3, Suggestion: "Add carve-outs for legal disclosures, advisors, and information already known or independently developed.", ReplacementCategory: "confidentiality"},
		{Pattern: "unilateral amendment", Rationale: "Unilateral amendment rights allow one party to change terms without consent.", Weight: 4, DefaultScore: 4, Suggestion: "Require mutual agreement or give the non-amending party termination rights if changes are unacceptable.", ReplacementCategory: "amendment"},
		{Pattern: "may modify this agreement", Rationale: "Allowing unilateral changes adds significant uncertainty.", Weight: 3, DefaultScore: 4, Suggestion: "Add prior notice requirements and allow rejection of material changes without penalty.", ReplacementCategory: "amendment"},
		{Pattern: "sole discretion", Rationale: "Sole discretion terms often grant broad unilateral power.", Weight: 3, DefaultScore: 3, Suggestion: "Qualify discretion so it may not be unreasonably withheld, conditioned, or delayed.", ReplacementCategory: "discretion"},
		{Pattern: "sole and absolute discretion", Rationale: "Absolute discretion eliminates checks and balances.", Weight: 4, DefaultScore: 4, Suggestion: "Replace with objective criteria or require written consent that cannot be unreasonably withheld.", ReplacementCategory: "discretion"},
		{Pattern: "assignment without consent", Rationale: "Assignments without consent can shift obligations to unknown parties.", Weight: 3, DefaultScore: 3, Suggestion: "Limit assignment to affiliates meeting financial criteria or require prior written consent.", ReplacementCategory: "assignment"},
		{Pattern: "non-compete", Rationale: "Non-compete clauses restrict future business opportunities.", Weight: 3, DefaultScore: 3, Suggestion: "Narrow the non-compete scope, geography, and term or remove it entirely if unnecessary.", ReplacementCategory: "competition"},
		{Pattern: "non-solicitation", Rationale: "Non-solicitation clauses can hinder hiring or client outreach.", Weight: 2, DefaultScore: 2, Suggestion: "Limit non-solicitation to direct poaching of employees or clients for a short duration.", ReplacementCategory: "competition"},
		{Pattern: "intellectual property shall belong", Rationale: "Transfers of IP ownership may be unfavorable.", Weight: 3, DefaultScore: 4, Suggestion: "Pursue joint ownership or retain ownership with a license grant tailored to the project.", ReplacementCategory: "ip"},
		{Pattern: "assign all intellectual property", Rationale: "Broad IP assignments can forfeit key rights.", Weight: 3, DefaultScore: 4, Suggestion: "Restrict assignments to developed deliverables and secure a perpetual license-back.", ReplacementCategory: "ip"},
		{Pattern: "license is revocable", Rationale: "Revocable licenses may undercut usage rights.", Weight: 2, DefaultScore: 3, Suggestion: "Negotiate for an irrevocable, perpetual license that survives termination if fees are paid.", ReplacementCategory: "ip"},
		{Pattern: "data breach", Rationale: "Data breach responsibilities may impose heavy obligations.", Weight: 3, DefaultScore: 4, Suggestion: "Define security standards, notification timelines, and cost sharing for breach response.", ReplacementCategory: "data_security"},
		{Pattern: "personally identifiable information", Rationale: "PII handling clauses may create compliance burdens.", Weight: 3, DefaultScore: 3, Suggestion: "Clarify data protection requirements and ensure the other party maintains compliant safeguards.", ReplacementCategory: "data_security"},
		{Pattern: "security incident", Rationale: "Security incident obligations can be costly or strict.", Weight: 3, DefaultScore: 3, Suggestion: "Set reasonable response windows, cooperation obligations, and limits on indemnified costs.", ReplacementCategory: "data_security"},
		{Pattern: "service level credit", Rationale: "SLA credits can accumulate and erode revenue.", Weight: 2, DefaultScore: 3, Suggestion: "Cap service credits, allow cure periods, and limit credits to a percentage of monthly fees.", ReplacementCategory: "sla"},
		{Pattern: "uptime commitment", Rationale: "Aggressive uptime commitments may be hard to meet.", Weight: 2, DefaultScore: 3, Suggestion: "Adjust uptime targets to achievable levels and include maintenance windows and exclusions.", ReplacementCategory: "sla"},
		{Pattern: "most favored nation", Rationale: "MFN clauses force matching best pricing offered to others.", Weight: 3, DefaultScore: 4, Suggestion: "Limit MFN to similarly situated customers, term-bound periods, and confidential comparison data.", ReplacementCategory: "pricing"},
		{Pattern: "exclusive dealing", Rationale: "Exclusive dealing can block other partnerships.", Weight: 3, DefaultScore: 3, Suggestion: "Restrict exclusivity to defined products or regions and allow exceptions for key partners.", ReplacementCategory: "exclusivity"},
		{Pattern: "change of control", Rationale: "Change-of-control triggers can terminate the agreement.", Weight: 3, DefaultScore: 3, Suggestion: "Replace automatic termination with notice and opportunity to cure or maintain assignment rights.", ReplacementCategory: "change_control"},
		{Pattern: "disclaimer of liability", Rationale: "Broad liability disclaimers remove recourse for damages.", Weight: 3, DefaultScore: 4, Suggestion: "Add carve-outs for gross negligence, willful misconduct, data loss, and confidentiality breaches.", ReplacementCategory: "disclaimer"},
		{Pattern: "no consequential damages", Rationale: "Excluding consequential damages limits recovery options.", Weight: 3, DefaultScore: 3, Suggestion: "Carve out consequential damages arising from the other party's breach or data loss.", ReplacementCategory: "disclaimer"},
		{Pattern: "set-off rights", Rationale: "Set-off allows withholding payments owed to you.", Weight: 2, DefaultScore: 3, Suggestion: "Limit set-off to undisputed amounts and require prior written notice of intent to offset.", ReplacementCategory: "payments"},
		{Pattern: "late payment interest", Rationale: "Excessive late fees create punitive financial exposure.", Weight: 2, DefaultScore: 3, Suggestion: "Cap late fees at statutory limits and include a short grace period for payment processing.", ReplacementCategory: "payments"},
		{Pattern: "costs and expenses", Rationale: "Obligations to cover all costs and expenses add liability.", Weight: 3, DefaultScore: 3, Suggestion: "Require pre-approval for expenses, limit to reasonable amounts, and demand documentation.", ReplacementCategory: "payments"},
		{Pattern: "waives all claims", Rationale: "Waiving claims may eliminate legitimate remedies.", Weight: 4, DefaultScore: 4, Suggestion: "Narrow the waiver to known claims or limit it to liabilities arising before the agreement date.", ReplacementCategory: "waivers"},
		{Pattern: "force majeure", Rationale: "Force majeure carve-outs can cause performance issues.", Weight: 2, DefaultScore: 2, Suggestion: "Clarify notice, mitigation obligations, and rights to suspend or terminate after extended events.", ReplacementCategory: "force_majeure"},
		{Pattern: "governing language", Rationale: "Language precedence may affect interpretation.", Weight: 1, DefaultScore: 2, Suggestion: "Confirm the governing language matches the negotiated version or include certified translations.", ReplacementCategory: "language"},
		{Pattern: "compliance with all laws", Rationale: "Broad compliance obligations may be difficult to satisfy.", Weight: 2, DefaultScore: 3, Suggestion: "Limit compliance covenant to laws applicable to the services and add knowledge or control qualifiers.", ReplacementCategory: "compliance"},
		{Pattern: "insurance certificates", Rationale: "Extensive insurance requirements increase costs.", Weight: 2, DefaultScore: 3, Suggestion: "Align insurance limits with industry standards and allow proof upon reasonable request.", ReplacementCategory: "insurance"},
		{Pattern: "audit rights", Rationale: "Audit rights grant access to records and facilities.", Weight: 2, DefaultScore: 3, Suggestion: "Limit audit frequency, require advance notice, and impose confidentiality on audit findings.", ReplacementCategory: "audit"},
		{Pattern: "escrow account", Rationale: "Escrow obligations tie up funds or IP.", Weight: 2, DefaultScore: 3, Suggestion: "Clarify release conditions, cost sharing, and the scope of assets placed in escrow.", ReplacementCategory: "escrow"},
		{Pattern: "liability", Rationale: "General liability language can indicate elevated risk.", Weight: 1, DefaultScore: 2, Suggestion: "Review surrounding language to ensure liability responsibilities are balanced and clearly defined.", ReplacementCategory: "generic"},
	}
}
