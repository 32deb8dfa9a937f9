// Package highlight locates risky clause text inside the source document
// and renders an HTML preview with the located spans marked. Provider
// output rarely quotes the document verbatim, so location runs through a
// chain of increasingly tolerant strategies before giving up.
package highlight

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/pkoval/redline/internal/model"
)

// minMatchLength is the shortest snippet the tolerant strategies accept.
// Anything shorter matches too many places to be trustworthy.
const minMatchLength = 30

var (
	leadingNumberRe = regexp.MustCompile(`^\s*\d+(\.\d+)*\s*`)
	sectionLabelRe  = regexp.MustCompile(`(?i)^\s*(section|article|clause|paragraph)\s+[ivxlcdm\d]+[.:)]*\s*`)
	titleNumberRe   = regexp.MustCompile(`^[A-Z][a-z]+\s+\d+(\.\d+)*\s+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// stripSectionHeader removes leading numbering like "10.1", "Section 5:"
// or "Article III" that providers often include but documents render
// differently.
func stripSectionHeader(text string) string {
	text = leadingNumberRe.ReplaceAllString(text, "")
	text = sectionLabelRe.ReplaceAllString(text, "")
	text = titleNumberRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Locate finds snippet inside fullText and returns its [start, end) byte
// range, or (-1, -1). Strategies run from strict to loose: exact match,
// case-insensitive, header-stripped, whitespace-normalized with offset
// mapping, header-stripped normalized, and finally a shrinking core
// phrase built from the snippet's first significant words.
func Locate(fullText, snippet string) (int, int) {
	if snippet == "" || fullText == "" {
		return -1, -1
	}
	snippet = strings.TrimSpace(snippet)

	if idx := strings.Index(fullText, snippet); idx != -1 {
		return idx, idx + len(snippet)
	}

	lowerText := strings.ToLower(fullText)
	if idx := strings.Index(lowerText, strings.ToLower(snippet)); idx != -1 {
		return idx, idx + len(snippet)
	}

	// The document may carry the section header the snippet dropped, so a
	// found stripped match is rewound to include it.
	stripped := stripSectionHeader(snippet)
	if stripped != "" && len(stripped) >= minMatchLength {
		if idx := strings.Index(fullText, stripped); idx != -1 {
			return max(0, idx-50), idx + len(stripped)
		}
		if idx := strings.Index(lowerText, strings.ToLower(stripped)); idx != -1 {
			return max(0, idx-50), idx + len(stripped)
		}
	}

	normSnippet := normalizeWhitespace(snippet)
	if len(normSnippet) < minMatchLength {
		return -1, -1
	}
	normFull := normalizeWhitespace(fullText)
	lowerNormFull := strings.ToLower(normFull)

	if normStart := strings.Index(lowerNormFull, strings.ToLower(normSnippet)); normStart != -1 {
		start := offsetForNormalized(fullText, normStart)
		want := compactLower(normSnippet)
		matched := 0
		end := start
		for i := start; i < len(fullText); i++ {
			if matched >= len(want) {
				end = i
				break
			}
			if isSpaceByte(fullText[i]) {
				continue
			}
			if lowerText[i] != want[matched] {
				break
			}
			matched++
		}
		if float64(matched) >= float64(len(want))*0.9 {
			return start, end
		}
	}

	if stripped != "" && len(stripped) >= minMatchLength {
		normStripped := normalizeWhitespace(stripped)
		if normStart := strings.Index(lowerNormFull, strings.ToLower(normStripped)); normStart != -1 {
			start := max(0, offsetForNormalized(fullText, normStart)-50)
			want := compactLower(normStripped)
			matched := 0
			end := start
			// The rewound start may cover a header the stripped snippet
			// lacks, so mismatching characters are skipped rather than
			// aborting the scan.
			for i := start; i < len(fullText); i++ {
				if matched >= len(want) {
					end = i
					break
				}
				if !isSpaceByte(fullText[i]) && lowerText[i] == want[matched] {
					matched++
				}
			}
			if float64(matched) >= float64(len(want))*0.85 {
				return start, end
			}
		}
	}

	words := make([]string, 0, 10)
	for _, w := range strings.Fields(stripped) {
		if len(w) > 3 {
			words = append(words, w)
			if len(words) == 10 {
				break
			}
		}
	}
	if len(words) >= 3 {
		for _, phraseLength := range []int{7, 5, 4, 3} {
			if len(words) < phraseLength {
				continue
			}
			core := strings.ToLower(strings.Join(words[:phraseLength], " "))
			idx := strings.Index(lowerText, core)
			if idx == -1 {
				continue
			}
			end := idx + min(len(snippet), 500)
			if end > len(fullText) {
				end = len(fullText)
			}
			limit := min(end+150, len(fullText))
			for i := end; i < limit; i++ {
				if c := fullText[i]; c == '.' || c == '!' || c == '?' || c == '\n' {
					end = i + 1
					break
				}
			}
			return max(0, idx-30), end
		}
	}

	return -1, -1
}

// offsetForNormalized maps an index into the whitespace-normalized text
// back to an offset in the raw text by counting non-space characters.
func offsetForNormalized(fullText string, normStart int) int {
	count := 0
	for i := 0; i < len(fullText); i++ {
		if !isSpaceByte(fullText[i]) {
			count++
		}
		if count >= normStart {
			return i
		}
	}
	return 0
}

func compactLower(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// ExpandSentence widens [start, end) to sentence boundaries: backwards up
// to 200 characters to the previous terminator or a newline-led section
// number, forwards up to 300 characters to a terminator or paragraph
// break.
func ExpandSentence(text string, start, end int) (int, int) {
	sentenceStart := start
	stop := max(0, start-200)
	for i := start - 1; i > stop; i-- {
		c := text[i]
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			sentenceStart = i + 1
			for sentenceStart < start && isSpaceByte(text[sentenceStart]) {
				sentenceStart++
			}
			break
		}
		if i > 0 && isDigitByte(c) && text[i-1] == '\n' {
			sentenceStart = i
			break
		}
	}

	sentenceEnd := end
	limit := min(len(text), end+300)
	for i := end; i < limit; i++ {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			sentenceEnd = i + 1
			for sentenceEnd < len(text) && (text[sentenceEnd] == ' ' || text[sentenceEnd] == '\t') {
				sentenceEnd++
			}
			break
		}
		if i < len(text)-1 && c == '\n' && text[i+1] == '\n' {
			sentenceEnd = i
			break
		}
	}

	return sentenceStart, sentenceEnd
}

// Preview is the rendered document with located risky spans marked.
type Preview struct {
	// HTML is the escaped document text with <mark> wrappers and <br />
	// line breaks.
	HTML string
	// Highlighted lists the indices of clauses that were located.
	Highlighted []int
	// Expanded maps a located clause's index to its sentence-expanded
	// text as it appears in the document.
	Expanded map[int]string
}

type span struct {
	start, end int
	score      int
	clauseIdx  int
}

// BuildPreview locates every clause in fullText and renders the marked
// preview. Clauses that cannot be located are left out of Highlighted and
// Expanded. Spans overlapping by more than 70% of both lengths count as
// one clause and the higher score wins; lesser overlaps coexist.
func BuildPreview(fullText string, clauses []model.Clause) Preview {
	if fullText == "" {
		return Preview{Expanded: map[int]string{}}
	}
	if len(clauses) == 0 {
		return Preview{HTML: escapeText(fullText), Expanded: map[int]string{}}
	}

	lowerText := strings.ToLower(fullText)
	var matches []span
	var highlighted []int
	expanded := make(map[int]string)

	for clauseIdx, clause := range clauses {
		snippet := strings.TrimSpace(clause.ClauseText)
		if snippet == "" {
			continue
		}
		score := clause.RiskScore
		if score == 0 {
			score = 3
		}

		start, end := Locate(fullText, snippet)
		if start == -1 {
			start, end = locateFragment(lowerText, snippet)
		}
		if start == -1 {
			continue
		}

		start, end = ExpandSentence(fullText, start, end)
		expanded[clauseIdx] = strings.TrimSpace(fullText[start:end])

		overlapped := false
		for i := range matches {
			m := &matches[i]
			overlap := min(end, m.end) - max(start, m.start)
			if overlap <= 0 {
				continue
			}
			curLen := end - start
			exLen := m.end - m.start
			var ofCurrent, ofExisting float64
			if curLen > 0 {
				ofCurrent = float64(overlap) / float64(curLen)
			}
			if exLen > 0 {
				ofExisting = float64(overlap) / float64(exLen)
			}
			if ofCurrent > 0.7 && ofExisting > 0.7 {
				if score > m.score {
					highlighted = removeInt(highlighted, m.clauseIdx)
					delete(expanded, m.clauseIdx)
					*m = span{start: start, end: end, score: score, clauseIdx: clauseIdx}
					highlighted = append(highlighted, clauseIdx)
				} else {
					delete(expanded, clauseIdx)
				}
				overlapped = true
				break
			}
		}
		if !overlapped {
			matches = append(matches, span{start: start, end: end, score: score, clauseIdx: clauseIdx})
			highlighted = append(highlighted, clauseIdx)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	if len(matches) == 0 {
		return Preview{HTML: escapeText(fullText), Expanded: expanded}
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		if m.start > prev {
			b.WriteString(html.EscapeString(fullText[prev:m.start]))
		}
		level := "low"
		switch {
		case m.score >= 4:
			level = "high"
		case m.score >= 3:
			level = "medium"
		}
		fmt.Fprintf(&b, `<mark class="risk-%s" data-risk-score="%d">%s</mark>`,
			level, m.score, html.EscapeString(fullText[m.start:m.end]))
		prev = m.end
	}
	b.WriteString(html.EscapeString(fullText[prev:]))

	return Preview{
		HTML:        strings.ReplaceAll(b.String(), "\n", "<br />"),
		Highlighted: highlighted,
		Expanded:    expanded,
	}
}

// locateFragment is the last resort for snippets the strategy chain
// cannot place: the tail 100 characters, then the middle 100, matched
// case-insensitively.
func locateFragment(lowerText, snippet string) (int, int) {
	if len(snippet) <= 50 {
		return -1, -1
	}

	tail := snippet
	if len(tail) > 100 {
		tail = tail[len(tail)-100:]
	}
	tail = strings.TrimSpace(tail)
	if len(tail) <= 40 {
		return -1, -1
	}
	if idx := strings.Index(lowerText, strings.ToLower(tail)); idx != -1 {
		return idx, idx + len(tail)
	}

	midStart := len(snippet) / 4
	middle := strings.TrimSpace(snippet[midStart:min(midStart+100, len(snippet))])
	if len(middle) <= 40 {
		return -1, -1
	}
	if idx := strings.Index(lowerText, strings.ToLower(middle)); idx != -1 {
		return idx, idx + len(middle)
	}
	return -1, -1
}

func escapeText(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br />")
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
