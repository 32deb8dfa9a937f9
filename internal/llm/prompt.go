package llm

import (
	"fmt"
	"strings"
)

// Prompt construction for the two analysis variants and the refinement
// call. The response contracts spell out field names, counts, and word
// limits; the decoder in decode.go depends on models honoring them.

const defaultChunkStrategy = "Negotiate balanced terms with clear limits and mutual obligations."
const defaultFocusStrategy = "Negotiate fair and balanced terms."

const refineClauseLimit = 500

const chunkInstructions = "Work only with the text provided. Quote risky clauses verbatim, " +
	"judge severity by the obligations the language actually creates, and prefer precision " +
	"over volume. Routine boilerplate with balanced terms is not a finding."

const focusInstructions = "The excerpts below were pre-selected for risk signals and are " +
	"separated by --- markers. Judge each excerpt on its own terms and do not infer " +
	"obligations from text that is not shown."

const chunkResponseContract = "Return a JSON object with keys 'summary' and 'high_risk_clauses'.\n" +
	"- 'summary' must be <=140 words describing the chunk risk profile.\n" +
	"- 'high_risk_clauses' must be a list of 0-4 objects, each containing 'clause_text', 'risk_score', 'risk_level', 'rationale', 'mitigation', and 'replacement_clause'.\n" +
	"- 'risk_score' is an integer 1-5 where 5 is most severe; align risk_level wording with the numeric rating.\n" +
	"\n" +
	"CRITICAL FOR 'clause_text':\n" +
	"  • Extract COMPLETE clauses starting at sentence/paragraph boundaries\n" +
	"  • Include full sentences forming ONE coherent statement about the risk\n" +
	"  • DO NOT start mid-sentence or with fragments\n" +
	"  • Minimum 20-30 words for completeness\n" +
	"  • Copy verbatim from this chunk\n" +
	"\n" +
	"- Keep rationale under 50 words.\n" +
	"- 'mitigation' must be <=45 words describing a concrete revision or negotiation ask to reduce the risk.\n" +
	"- 'replacement_clause' must be formal legal language (<=120 words) offering a safer substitute clause that addresses the risk.\n" +
	"- If no risky language, use an empty list and note the chunk appears low risk."

const focusResponseContract = "Return a JSON object with keys 'summary' and 'high_risk_clauses'.\n" +
	"- Summary <=140 words describing the overall risk.\n" +
	"- 'high_risk_clauses' is a list (0-6) of objects with 'clause_text', 'risk_score', 'risk_level', 'rationale', 'mitigation', 'replacement_clause'.\n" +
	"- 'risk_score' must be an integer from 1 (minimal) to 5 (critical); align risk_level wording with the number.\n" +
	"- Copy clause_text verbatim from the excerpts.\n" +
	"- Keep rationale under 45 words.\n" +
	"- 'mitigation' should be a concrete revision or negotiation step (<=45 words).\n" +
	"- 'replacement_clause' must be formal legal language (<=120 words) that the client can propose as a safer substitute."

// Builtin worked examples, used when the request carries none.
var (
	chunkExample = Exchange{
		Human: "Example chunk:\nThe Supplier shall indemnify and hold harmless the Client from any and all claims, damages, and expenses.",
		AI: `{"summary": "Broad indemnity shifting losses to supplier.", "high_risk_clauses": [` +
			`{"clause_text": "The Supplier shall indemnify and hold harmless the Client from any and all claims, damages, and expenses.", ` +
			`"risk_score": 5, "risk_level": "Critical", "rationale": "Broad indemnity obligates the supplier to cover all claims and expenses.", ` +
			`"mitigation": "Limit indemnity to third-party losses caused by the supplier and cap recovery to amounts paid.", ` +
			`"replacement_clause": "Each party shall indemnify the other solely for third-party claims arising from its own negligence or willful misconduct, subject to the liability caps set forth in this Agreement."}]}`,
	}

	focusExample = Exchange{
		Human: "Example excerpts:\n1) 'Vendor shall indemnify and hold harmless Customer from any and all losses.'\n2) 'This agreement renews automatically for successive one-year terms unless terminated 90 days before renewal.'",
		AI: `{"summary": "Clauses show broad indemnity and automatic renewal obligations.", "high_risk_clauses": [` +
			`{"clause_text": "Vendor shall indemnify and hold harmless Customer from any and all losses.", "risk_score": 5, "risk_level": "Critical", "rationale": "Broad indemnity shifts unlimited liability.", ` +
			`"mitigation": "Require mutual indemnity limited to losses caused by each party and cap total exposure.", ` +
			`"replacement_clause": "Each party shall indemnify the other solely for third-party claims arising from its own negligence or willful misconduct, subject to the liability caps set forth herein."}, ` +
			`{"clause_text": "This agreement renews automatically for successive one-year terms unless terminated 90 days before renewal.", "risk_score": 4, "risk_level": "High", "rationale": "Automatic renewal requires long notice to avoid extension.", ` +
			`"mitigation": "Reduce the notice period and require explicit written confirmation before renewal.", ` +
			`"replacement_clause": "This Agreement may renew for additional one-year terms only upon the parties' mutual written agreement executed at least thirty (30) days before the then-current term expires."}]}`,
	}
)

// BuildAnalysisPrompt renders the system and user prompts for an analysis
// request. Chunk and focus requests share the response schema but differ
// in instructions, guidance depth, and clause count limits.
func BuildAnalysisPrompt(req AnalysisRequest) (system, user string) {
	if req.Kind == KindFocus {
		return buildFocusPrompt(req)
	}
	return buildChunkPrompt(req)
}

func buildChunkPrompt(req AnalysisRequest) (string, string) {
	name := docTypeNameOrDefault(req.DocTypeName)
	strategy := req.Strategy
	if strategy == "" {
		strategy = defaultChunkStrategy
	}

	var sys strings.Builder
	sys.WriteString(analystIntro(name))
	sys.WriteString(chunkGuidance(req.Patterns, name, strategy))
	sys.WriteString("\n\nOutput must be a single valid JSON object that conforms to the schema. Do not wrap the JSON in code fences, prose, or commentary.")
	sys.WriteString("\n\n")
	sys.WriteString(chunkInstructions)
	fmt.Fprintf(&sys, "\n\nFor each risky clause in this %s, provide SPECIFIC, ACTIONABLE mitigation based on industry best practices. General guidance: %s Maximum 45 words per mitigation.", name, strategy)
	fmt.Fprintf(&sys, "\n\nDraft replacement clauses that: (1) address the specific risk type identified, (2) follow %s best practices, (3) include concrete terms/timeframes/limits where applicable, (4) use formal legal language suitable for contract negotiation. Maximum 120 words per clause.", name)
	writeExample(&sys, req.Example, &chunkExample)

	var usr strings.Builder
	fmt.Fprintf(&usr, "Chunk %d of length %d characters:\n%s\n\n", req.ChunkIndex, req.ChunkLength, req.Text)
	usr.WriteString(chunkResponseContract)

	return sys.String(), usr.String()
}

func buildFocusPrompt(req AnalysisRequest) (string, string) {
	name := docTypeNameOrDefault(req.DocTypeName)
	strategy := req.Strategy
	if strategy == "" {
		strategy = defaultFocusStrategy
	}

	var sys strings.Builder
	sys.WriteString(analystIntro(name))
	sys.WriteString(focusGuidance(req.Patterns, name))
	sys.WriteString("\n\nReturn a single JSON object that conforms to the schema. Do not add explanations, code fences, or any surrounding text.")
	sys.WriteString("\n\n")
	sys.WriteString(focusInstructions)
	sys.WriteString("\n\nAssign risk_score from 1 (minimal) to 5 (critical) based on actual impact.")
	fmt.Fprintf(&sys, "\n\nFor every risky clause, provide SPECIFIC mitigation tailored to %s. General strategy: %s", name, strategy)
	sys.WriteString("\n\nMitigation must be ACTIONABLE (what to negotiate, specific changes to request) not generic advice. Maximum 45 words.")
	fmt.Fprintf(&sys, "\n\nPropose replacement clauses that are: (1) specific to %s best practices, (2) address the exact risk identified, (3) use formal legal language, (4) provide concrete terms/numbers/timeframes where applicable. Maximum 120 words.", name)
	writeExample(&sys, req.Example, &focusExample)

	var usr strings.Builder
	fmt.Fprintf(&usr, "Extracted clauses to analyze:\n%s\n\n", req.Text)
	usr.WriteString(focusResponseContract)

	return sys.String(), usr.String()
}

// BuildRefinePrompt renders the second-stage refinement prompt. The clause
// text is capped to keep the request small; risk identification and the
// matched pattern templates give the model concrete material to tailor.
func BuildRefinePrompt(req RefineRequest) (system, user string) {
	name := docTypeNameOrDefault(req.DocTypeName)
	clause := req.ClauseText
	if len(clause) > refineClauseLimit {
		clause = clause[:refineClauseLimit]
	}
	category := req.PatternCategory
	if category == "" {
		category = "general_risk"
	}

	var sys strings.Builder
	fmt.Fprintf(&sys, "You are an expert contract negotiation advisor specializing in %s. ", name)
	sys.WriteString("You provide TWO DISTINCT outputs:\n" +
		"1. NEGOTIATION STRATEGY - What to request/change during negotiations\n" +
		"2. ALTERNATIVE CLAUSE - Ready-to-use contract language")
	sys.WriteString("\n\nCRITICAL DISTINCTION:\n" +
		"- 'mitigation' = NEGOTIATION ADVICE (what to ask for, how to negotiate)\n" +
		"- 'replacement_clause' = CONTRACT TEXT (actual legal language to insert)\n\n" +
		"These are COMPLETELY DIFFERENT:\n" +
		"WRONG mitigation: 'Provider shall indemnify Client...'\n" +
		"CORRECT mitigation: 'Request mutual indemnification. Propose liability cap at 12 months fees...'\n\n" +
		"WRONG replacement_clause: 'Negotiate for a shorter term'\n" +
		"CORRECT replacement_clause: 'Either party may terminate upon 30 days written notice...'")

	var usr strings.Builder
	fmt.Fprintf(&usr, "RISKY CLAUSE:\n%s\n\n", clause)
	fmt.Fprintf(&usr, "RISK IDENTIFICATION:\nRisk Level: %s (Score: %d/5)\nWhy it's risky: %s\n\n", req.RiskLevel, req.RiskScore, req.Rationale)
	fmt.Fprintf(&usr, "PATTERN-BASED TEMPLATE:\nRisk Category: %s\nTemplate Solution Approach: %s\nTemplate Alternative Pattern: %s\n\n", category, req.Solution, req.Alternative)
	usr.WriteString("GENERATE TWO DISTINCT OUTPUTS:\n\n" +
		"1. 'mitigation' - NEGOTIATION STRATEGY (50-100 words):\n" +
		"   Format as bullet points or numbered steps.\n" +
		"   Use action verbs: Request, Negotiate, Propose, Insist, Counter-propose.\n" +
		"   Reference SPECIFIC terms from the original clause.\n" +
		"   Example: 'Request reduction from 5 years to 12 months. Propose mutual termination rights. Insist on written notice requirement.'\n" +
		"   This is ADVICE on how to negotiate, NOT contract language.\n\n" +
		"2. 'replacement_clause' - ALTERNATIVE CONTRACT TEXT (80-150 words):\n" +
		"   Write in formal legal style using: shall, must, hereby, notwithstanding, provided that.\n" +
		"   Include specific numbers, timeframes, and conditions.\n" +
		"   Make it self-contained and ready to insert into contract.\n" +
		"   Example: 'Either party may terminate this Agreement upon thirty (30) days prior written notice...'\n" +
		"   This is ACTUAL CONTRACT LANGUAGE, not negotiation advice.\n\n")
	fmt.Fprintf(&usr, "CRITICAL: No placeholders like [AMOUNT]. Use concrete defaults based on %s best practices.\n\n", name)
	usr.WriteString("Return JSON with 'mitigation' and 'replacement_clause' keys.")

	return sys.String(), usr.String()
}

func analystIntro(name string) string {
	return fmt.Sprintf("You are an expert legal analyst reviewing a %s on behalf of the party asked to sign it. "+
		"Identify clauses that concentrate risk on that party, explain each risk in plain language, "+
		"and propose balanced alternatives a lawyer could take into negotiation.", name)
}

// chunkGuidance renders the detailed pattern block shown before chunk
// analysis: top patterns with solution and replacement templates, then the
// general mitigation strategy.
func chunkGuidance(patterns []PatternContext, name, strategy string) string {
	if len(patterns) == 0 {
		return ""
	}
	upper := strings.ToUpper(name)

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n=== ENHANCED %s RISK DETECTION PATTERNS ===\n", upper)
	for i, p := range patterns {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "\n%s:\n  Risk: %s\n  Severity: %d/5\n  Solution Approach: %s...\n  Replacement Pattern: %s...",
			titleWords(p.Key), p.Context, p.Severity, truncate(p.Solution, 150), truncate(p.Alternative, 150))
	}
	fmt.Fprintf(&b, "\n\n=== MITIGATION STRATEGIES FOR %s ===\nGeneral: %s\n", upper, strategy)
	return b.String()
}

// focusGuidance renders the shorter pattern block for focus analysis: the
// top three pattern contexts with solution previews.
func focusGuidance(patterns []PatternContext, name string) string {
	if len(patterns) == 0 {
		return ""
	}

	var lines []string
	for i, p := range patterns {
		if i >= 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("• %s (Severity: %d/5)\n  Solution: %s...", p.Context, p.Severity, truncate(p.Solution, 100)))
	}
	return fmt.Sprintf("\n\nCOMMON %s RISKS TO WATCH FOR:\n%s", strings.ToUpper(name), strings.Join(lines, "\n"))
}

func writeExample(sys *strings.Builder, override, builtin *Exchange) {
	example := override
	if example == nil {
		example = builtin
	}
	fmt.Fprintf(sys, "\n\nWorked example.\nUser:\n%s\nAssistant:\n%s", example.Human, example.AI)
}

func docTypeNameOrDefault(name string) string {
	if name == "" {
		return "General Agreement"
	}
	return name
}

// titleWords renders a snake_case key as a display title.
func titleWords(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
