// Package chunk splits document text into overlapping windows and picks
// the windows and sentences worth spending model calls on.
package chunk

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pkoval/redline/internal/pattern"
)

// Defaults for chunking and selection. Callers normally take these from
// configuration; zero values fall back to them.
const (
	DefaultSize     = 2500
	DefaultOverlap  = 300
	DefaultMaxLLM   = 6
	DefaultMaxFocus = 12

	// minStep keeps pathological size/overlap combinations from
	// producing hundreds of nearly identical chunks.
	minStep = 900

	// maxFocusChars caps the joined focus excerpt so the prompt stays
	// within budget.
	maxFocusChars = 6000
)

// Chunk is one window of the source document. Start and End are byte
// offsets into the original text, so spans located inside a chunk can be
// mapped back to the document.
type Chunk struct {
	Text  string
	Start int
	End   int
}

// Split cuts text into overlapping chunks of roughly size bytes. Text that
// fits in a single chunk is returned as one chunk covering the whole
// document, and the final chunk always ends at the end of the text.
func Split(text string, size, overlap int) []Chunk {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if len(text) <= size {
		return []Chunk{{Text: text, Start: 0, End: len(text)}}
	}

	step := size - overlap
	if step < minStep {
		step = minStep
	}

	var chunks []Chunk
	pos := 0
	for pos < len(text) {
		end := pos + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, Chunk{Text: text[pos:end], Start: pos, End: end})
		if end == len(text) {
			break
		}
		pos += step
	}
	return chunks
}

// SelectLLM returns the set of chunk indices to send to the model, ranked
// by risk-keyword density. At most limit chunks are selected and chunks
// that score zero are skipped; when nothing scores, the first chunk is
// selected so the model still sees the opening of the document.
func SelectLLM(chunks []Chunk, lib *pattern.Library, limit int) map[int]bool {
	selected := make(map[int]bool)
	if len(chunks) == 0 {
		return selected
	}
	if limit <= 0 {
		limit = DefaultMaxLLM
	}

	type ranked struct {
		score int
		idx   int
	}
	scores := make([]ranked, len(chunks))
	for i, c := range chunks {
		scores[i] = ranked{score: lib.KeywordScore(c.Text), idx: i}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].idx < scores[j].idx
	})

	for _, r := range scores {
		if len(selected) == limit {
			break
		}
		if r.score > 0 {
			selected[r.idx] = true
		}
	}
	if len(selected) == 0 {
		selected[0] = true
	}
	return selected
}

var sentenceBreak = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits on whitespace that follows sentence punctuation,
// keeping the punctuation with the preceding sentence.
func splitSentences(text string) []string {
	locs := sentenceBreak.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	out := make([]string, 0, len(locs)+1)
	start := 0
	for _, loc := range locs {
		out = append(out, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(out, text[start:])
}

// FocusSentences pulls the highest-scoring sentences out of the document,
// ordered by keyword weight and then by position. Sentences without any
// risk keywords are dropped.
func FocusSentences(text string, lib *pattern.Library, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultMaxFocus
	}

	type scored struct {
		score int
		idx   int
		text  string
	}
	var hits []scored
	for idx, sentence := range splitSentences(text) {
		cleaned := strings.TrimSpace(sentence)
		if cleaned == "" {
			continue
		}
		if score := lib.KeywordScore(cleaned); score > 0 {
			hits = append(hits, scored{score: score, idx: idx, text: cleaned})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].idx < hits[j].idx
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.text
	}
	return out
}

// JoinFocus glues focus snippets into a single excerpt separated by
// divider lines, capped at the focus budget.
func JoinFocus(snippets []string) string {
	joined := strings.Join(snippets, "\n---\n")
	if len(joined) > maxFocusChars {
		joined = joined[:maxFocusChars]
	}
	return joined
}

// Shorten collapses runs of whitespace and truncates text to at most width
// bytes, cutting at a word boundary and appending an ellipsis. Used for
// the one-line summaries produced when a chunk is analyzed without the
// model.
func Shorten(text string, width int) string {
	const placeholder = "…"
	collapsed := strings.Join(strings.Fields(text), " ")
	if len(collapsed) <= width {
		return collapsed
	}
	cut := width - len(placeholder)
	if cut <= 0 {
		return placeholder
	}
	truncated := collapsed[:cut]
	if i := strings.LastIndexByte(truncated, ' '); i > 0 {
		truncated = truncated[:i]
	}
	return truncated + placeholder
}
