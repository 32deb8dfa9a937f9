package highlight

import (
	"strings"
	"testing"

	"github.com/pkoval/redline/internal/model"
)

func TestStripSectionHeader(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"10.1 Payment is due on receipt", "Payment is due on receipt"},
		{"5.2.3  Late fees accrue daily", "Late fees accrue daily"},
		{"Section 5: Liability is unlimited", "Liability is unlimited"},
		{"Article III. Confidentiality survives", "Confidentiality survives"},
		{"clause 12) Assignment is restricted", "Assignment is restricted"},
		{"Paragraph 7 governs notices", "governs notices"},
		{"No header at all", "No header at all"},
	}
	for _, tc := range cases {
		if got := stripSectionHeader(tc.in); got != tc.want {
			t.Errorf("stripSectionHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLocateExact(t *testing.T) {
	doc := "Preamble first. The Vendor may suspend service at any time. Closing."
	snippet := "The Vendor may suspend service at any time."

	start, end := Locate(doc, snippet)
	if start == -1 {
		t.Fatal("exact snippet was not located")
	}
	if doc[start:end] != snippet {
		t.Errorf("located %q, want %q", doc[start:end], snippet)
	}
}

func TestLocateCaseInsensitive(t *testing.T) {
	doc := "Preamble first. THE VENDOR MAY SUSPEND SERVICE AT ANY TIME. Closing."
	snippet := "The Vendor may suspend service at any time."

	start, end := Locate(doc, snippet)
	if start == -1 {
		t.Fatal("case-variant snippet was not located")
	}
	if !strings.EqualFold(doc[start:end], snippet) {
		t.Errorf("located %q, want case-variant of %q", doc[start:end], snippet)
	}
}

func TestLocateStrippedHeader(t *testing.T) {
	doc := "Agreement preamble text goes here first. The Contractor shall indemnify the Client against all losses."
	snippet := "10.1 The Contractor shall indemnify the Client against all losses."

	start, end := Locate(doc, snippet)
	if start == -1 {
		t.Fatal("header-prefixed snippet was not located")
	}
	// The match is rewound up to 50 characters to cover a header the
	// document may carry.
	if start != 0 {
		t.Errorf("start = %d, want 0 after rewind", start)
	}
	if end != len(doc) {
		t.Errorf("end = %d, want %d", end, len(doc))
	}
	if !strings.Contains(doc[start:end], "The Contractor shall indemnify") {
		t.Errorf("located span %q misses the clause", doc[start:end])
	}
}

func TestLocateNormalizedWhitespace(t *testing.T) {
	doc := "The  Vendor may  terminate this agreement at any\ntime without cause or notice. More text follows."
	snippet := "The Vendor may terminate this agreement at any time without cause or notice."

	start, end := Locate(doc, snippet)
	if start != 0 {
		t.Fatalf("start = %d, want 0", start)
	}
	if want := strings.Index(doc, " More"); end != want {
		t.Errorf("end = %d, want %d", end, want)
	}
	if !strings.HasSuffix(doc[start:end], "notice.") {
		t.Errorf("located span %q should end at the clause", doc[start:end])
	}
}

func TestLocateCorePhrase(t *testing.T) {
	// The provider paraphrased everything past the opening words, so only
	// the shrinking core phrase can anchor the clause.
	doc := "Preliminary recitals appear first. Client agrees unlimited liability damages arising from any breach. Final section ends here."
	snippet := "Client agrees unlimited liability damages arising from gross negligence and every conceivable harm caused"

	start, end := Locate(doc, snippet)
	if start == -1 {
		t.Fatal("core phrase was not located")
	}
	if !strings.Contains(doc[start:end], "Client agrees unlimited liability") {
		t.Errorf("located span %q misses the anchor phrase", doc[start:end])
	}
	if end > len(doc) {
		t.Errorf("end = %d exceeds document length %d", end, len(doc))
	}
}

func TestLocateMiss(t *testing.T) {
	doc := "Nothing in this document resembles the snippet in any way at all."
	snippet := "zxqv wvutp ytrew qazwsx edcrfv tgbyhn ujmikol absent entirely"

	if start, end := Locate(doc, snippet); start != -1 || end != -1 {
		t.Errorf("Locate = (%d, %d), want (-1, -1)", start, end)
	}
}

func TestLocateShortSnippetMiss(t *testing.T) {
	doc := "A document of reasonable length that lacks the snippet."
	if start, end := Locate(doc, "zxqv wvutp"); start != -1 || end != -1 {
		t.Errorf("Locate = (%d, %d), want (-1, -1) for a short unmatched snippet", start, end)
	}
}

func TestLocateEmptyInputs(t *testing.T) {
	if start, end := Locate("", "anything"); start != -1 || end != -1 {
		t.Errorf("Locate on empty document = (%d, %d), want (-1, -1)", start, end)
	}
	if start, end := Locate("document", ""); start != -1 || end != -1 {
		t.Errorf("Locate with empty snippet = (%d, %d), want (-1, -1)", start, end)
	}
}

func TestExpandSentence(t *testing.T) {
	text := "First sentence ends here. Second sentence continues until done. Third one."
	start := strings.Index(text, "continues")
	end := start + len("continues")

	s, e := ExpandSentence(text, start, end)
	if want := strings.Index(text, "Second"); s != want {
		t.Errorf("start = %d, want %d", s, want)
	}
	if want := strings.Index(text, "Third"); e != want {
		t.Errorf("end = %d, want %d (terminator plus trailing space)", e, want)
	}
}

func TestExpandSentenceSectionStart(t *testing.T) {
	text := "Intro paragraph goes here\n12 Obligations of the parties persist beyond termination stay binding."
	start := strings.Index(text, "Obligations")
	end := start + len("Obligations")

	s, e := ExpandSentence(text, start, end)
	if want := strings.Index(text, "12 Obligations"); s != want {
		t.Errorf("start = %d, want %d (newline-led section number)", s, want)
	}
	if e != len(text) {
		t.Errorf("end = %d, want %d", e, len(text))
	}
}

func TestExpandSentenceParagraphBreak(t *testing.T) {
	text := "Heading line\n\nBody sentence without terminator\n\nNext paragraph."
	start := strings.Index(text, "Body")
	end := strings.Index(text, "terminator") + len("terminator")

	s, e := ExpandSentence(text, start, end)
	if s != start {
		t.Errorf("start = %d, want %d", s, start)
	}
	if e != end {
		t.Errorf("end = %d, want %d (stops at paragraph break)", e, end)
	}
}

func TestBuildPreviewMarks(t *testing.T) {
	doc := "Vendor may terminate at will.\nClient pays all costs & fees.\nTail text here."
	clauses := []model.Clause{
		{ClauseText: "Vendor may terminate at will", RiskScore: 5},
		{ClauseText: "Client pays all costs & fees", RiskScore: 3},
	}

	p := BuildPreview(doc, clauses)

	want := `<mark class="risk-high" data-risk-score="5">Vendor may terminate at will.</mark>` +
		`<br /><mark class="risk-medium" data-risk-score="3">Client pays all costs &amp; fees.</mark>` +
		`<br />Tail text here.`
	if p.HTML != want {
		t.Errorf("HTML =\n%s\nwant\n%s", p.HTML, want)
	}
	if len(p.Highlighted) != 2 || p.Highlighted[0] != 0 || p.Highlighted[1] != 1 {
		t.Errorf("Highlighted = %v, want [0 1]", p.Highlighted)
	}
	if p.Expanded[0] != "Vendor may terminate at will." {
		t.Errorf("Expanded[0] = %q", p.Expanded[0])
	}
	if p.Expanded[1] != "Client pays all costs & fees." {
		t.Errorf("Expanded[1] = %q", p.Expanded[1])
	}
}

func TestBuildPreviewDuplicateKeepsHigherScore(t *testing.T) {
	doc := "Payment is due within seven days of invoice receipt.\nMore words follow in this tail."
	clauses := []model.Clause{
		{ClauseText: "Payment is due within seven days of invoice receipt", RiskScore: 2},
		{ClauseText: "Payment is due within seven days  of invoice receipt", RiskScore: 4},
	}

	p := BuildPreview(doc, clauses)

	if n := strings.Count(p.HTML, "<mark"); n != 1 {
		t.Fatalf("HTML has %d marks, want 1", n)
	}
	if !strings.Contains(p.HTML, `class="risk-high"`) || !strings.Contains(p.HTML, `data-risk-score="4"`) {
		t.Errorf("HTML kept the lower-scored duplicate: %s", p.HTML)
	}
	if len(p.Highlighted) != 1 || p.Highlighted[0] != 1 {
		t.Errorf("Highlighted = %v, want [1]", p.Highlighted)
	}
	if _, ok := p.Expanded[0]; ok {
		t.Error("Expanded still holds the replaced clause")
	}
	if _, ok := p.Expanded[1]; !ok {
		t.Error("Expanded lacks the surviving clause")
	}
}

func TestBuildPreviewDuplicateKeepsExisting(t *testing.T) {
	doc := "Payment is due within seven days of invoice receipt.\nMore words follow in this tail."
	clauses := []model.Clause{
		{ClauseText: "Payment is due within seven days of invoice receipt", RiskScore: 4},
		{ClauseText: "Payment is due within seven days  of invoice receipt", RiskScore: 2},
	}

	p := BuildPreview(doc, clauses)

	if n := strings.Count(p.HTML, "<mark"); n != 1 {
		t.Fatalf("HTML has %d marks, want 1", n)
	}
	if len(p.Highlighted) != 1 || p.Highlighted[0] != 0 {
		t.Errorf("Highlighted = %v, want [0]", p.Highlighted)
	}
	if _, ok := p.Expanded[1]; ok {
		t.Error("Expanded holds the dropped duplicate")
	}
}

func TestBuildPreviewTailFallback(t *testing.T) {
	doc := "Preamble words. The entire liability of the vendor under this agreement is capped at one hundred dollars in aggregate. Closing."
	// Opening words are pure invention; only the tail matches the document.
	snippet := "Qqqqz wwwwz eeeez rrrrz ttttz yyyyz uuuuz iiiiz ooooz ppppz the entire liability of the vendor under this agreement is capped at one hundred dollars in aggregate"

	p := BuildPreview(doc, []model.Clause{{ClauseText: snippet, RiskScore: 4}})

	if len(p.Highlighted) != 1 || p.Highlighted[0] != 0 {
		t.Fatalf("Highlighted = %v, want [0]", p.Highlighted)
	}
	expanded := p.Expanded[0]
	if !strings.HasPrefix(expanded, "The entire liability") || !strings.HasSuffix(expanded, "aggregate.") {
		t.Errorf("Expanded[0] = %q, want the full document sentence", expanded)
	}
	if !strings.Contains(p.HTML, "<mark") {
		t.Error("HTML has no mark for the tail-matched clause")
	}
}

func TestBuildPreviewUnlocatable(t *testing.T) {
	doc := "Only this sentence exists in the document."
	clauses := []model.Clause{
		{ClauseText: "Only this sentence exists in the document", RiskScore: 3},
		{ClauseText: "zxqv wvutp ytrew qazwsx edcrfv tgbyhn ujmikol", RiskScore: 5},
	}

	p := BuildPreview(doc, clauses)

	if len(p.Highlighted) != 1 || p.Highlighted[0] != 0 {
		t.Errorf("Highlighted = %v, want [0]", p.Highlighted)
	}
	if _, ok := p.Expanded[1]; ok {
		t.Error("Expanded holds an unlocatable clause")
	}
	if n := strings.Count(p.HTML, "<mark"); n != 1 {
		t.Errorf("HTML has %d marks, want 1", n)
	}
}

func TestBuildPreviewNoClauses(t *testing.T) {
	doc := "Line one & entities.\nLine two."
	p := BuildPreview(doc, nil)

	want := "Line one &amp; entities.<br />Line two."
	if p.HTML != want {
		t.Errorf("HTML = %q, want %q", p.HTML, want)
	}
	if len(p.Highlighted) != 0 {
		t.Errorf("Highlighted = %v, want empty", p.Highlighted)
	}
}

func TestBuildPreviewEmptyDocument(t *testing.T) {
	p := BuildPreview("", []model.Clause{{ClauseText: "anything", RiskScore: 3}})
	if p.HTML != "" || len(p.Highlighted) != 0 || len(p.Expanded) != 0 {
		t.Errorf("BuildPreview on empty document = %+v, want zero values", p)
	}
}
