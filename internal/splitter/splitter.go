// Package splitter carves an extracted content block sequence into
// discrete, ordered exam questions.
//
// Question numbering conventions vary across exam sheets: "1.", "1)",
// "[1]", "문제 1", "제1문", "Q1" and so on. A fixed, prioritized matcher
// list recognizes them; the first style seen in a document is locked in
// and stays the only style honored for the rest of it, so enumerated
// option lists inside a question body ("1) ...", "2) ...") cannot open
// new questions under a different convention.
package splitter

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
)

// Options controls splitting behavior.
type Options struct {
	// KeepPreamble retains content before the first detected boundary as
	// a question with ordinal 0. When false that content is discarded.
	KeepPreamble bool

	Log *slog.Logger
}

// DefaultOptions returns the default splitting policy.
func DefaultOptions() Options {
	return Options{KeepPreamble: true}
}

// matcher recognizes one question-numbering convention at the start of a
// paragraph's text view.
type matcher struct {
	style string
	re    *regexp.Regexp
}

func (m *matcher) match(text string) (string, bool) {
	sub := m.re.FindStringSubmatch(text)
	if sub == nil {
		return "", false
	}
	for _, g := range sub[1:] {
		if g != "" {
			return g, true
		}
	}
	return "", false
}

// matchers in fixed priority order. All patterns are anchored; boundary
// candidates are only ever evaluated at paragraph starts.
var matchers = []*matcher{
	{style: "numeric-dot", re: regexp.MustCompile(`^(\d+)\.\s`)},
	{style: "numeric-paren", re: regexp.MustCompile(`^(\d+)\)\s`)},
	{style: "bracketed", re: regexp.MustCompile(`^\[(\d+)\]`)},
	// Sheets numbered "문제 1." often continue with bare "2.", "3." later
	// on, so the question-word style accepts both forms once locked.
	{style: "question-word", re: regexp.MustCompile(`^(?:(?:문제|Question|Problem)\s*(\d+)[.):]?(?:\s|$)|(\d+)[.)]\s)`)},
	{style: "hangul-ordinal", re: regexp.MustCompile(`^제\s*(\d+)\s*문`)},
	{style: "letter-q", re: regexp.MustCompile(`^Q(\d+)[.):\s]`)},
}

// eqPlaceholder stands in for equations in the boundary-detection text
// view. An equation rendering to "1/2" must never look like a question
// number, so the view never contains rendered LaTeX.
const eqPlaceholder = "￼"

// lockState is the two-state style lock threaded through the scan.
type lockState int

const (
	noStyleChosen lockState = iota
	styleLocked
)

type styleLock struct {
	state lockState
	style *matcher
}

// tryMatch applies the lock: before a style is chosen every matcher is
// tried in priority order; afterwards only the locked style counts.
func (l *styleLock) tryMatch(text string) (string, bool) {
	if l.state == styleLocked {
		return l.style.match(text)
	}
	for _, m := range matchers {
		if num, ok := m.match(text); ok {
			l.state = styleLocked
			l.style = m
			return num, true
		}
	}
	return "", false
}

type boundary struct {
	blockIdx int
	number   string
	ordinal  int
}

// Split scans the block sequence for question boundaries and returns the
// ordered question list with rendered markdown bodies. Zero boundaries
// make the whole document a single preamble unit; empty input yields an
// empty list.
func Split(blocks []document.ContentBlock, opts Options) []document.Question {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if len(blocks) == 0 {
		return nil
	}

	lock := styleLock{}
	var bounds []boundary
	prevOrdinal := 0

	for _, start := range paragraphStarts(blocks) {
		view := paragraphView(blocks, start)
		num, ok := lock.tryMatch(view)
		if !ok {
			continue
		}
		ordinal, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		if ordinal <= prevOrdinal {
			// Ordinals must strictly increase; a repeated or smaller
			// number mid-document is a reference, not a new question.
			log.Warn("ignoring non-increasing question number", "number", num, "previous", prevOrdinal)
			continue
		}
		if len(bounds) > 0 && ordinal != prevOrdinal+1 {
			log.Warn("gap in question numbering", "previous", prevOrdinal, "next", ordinal)
		}
		bounds = append(bounds, boundary{blockIdx: start, number: num, ordinal: ordinal})
		prevOrdinal = ordinal
	}

	if len(bounds) > 0 {
		log.Info("question boundaries detected", "style", lock.style.style, "count", len(bounds))
	}

	var questions []document.Question

	if len(bounds) == 0 {
		// No boundaries: the entire document is one preamble unit.
		q := document.Question{Number: "0", Ordinal: 0, Blocks: blocks}
		q.Markdown = renderMarkdown(q.Blocks)
		return []document.Question{q}
	}

	if bounds[0].blockIdx > 0 && opts.KeepPreamble {
		pre := document.Question{Number: "0", Ordinal: 0, Blocks: blocks[:bounds[0].blockIdx]}
		pre.Markdown = renderMarkdown(pre.Blocks)
		if pre.Markdown != "" {
			questions = append(questions, pre)
		}
	}

	for i, b := range bounds {
		end := len(blocks)
		if i+1 < len(bounds) {
			end = bounds[i+1].blockIdx
		}
		q := document.Question{
			Number:  b.number,
			Ordinal: b.ordinal,
			Blocks:  blocks[b.blockIdx:end],
		}
		q.Markdown = renderMarkdown(q.Blocks)
		questions = append(questions, q)
	}

	return questions
}

// paragraphStarts returns the indexes of blocks that open a paragraph.
func paragraphStarts(blocks []document.ContentBlock) []int {
	var starts []int
	atStart := true
	for i, b := range blocks {
		if b.Kind == document.BlockBreak {
			atStart = true
			continue
		}
		if atStart {
			starts = append(starts, i)
			atStart = false
		}
	}
	return starts
}

// paragraphView renders one paragraph's text for boundary matching, with
// equations replaced by an opaque placeholder.
func paragraphView(blocks []document.ContentBlock, start int) string {
	var sb strings.Builder
	for i := start; i < len(blocks); i++ {
		switch blocks[i].Kind {
		case document.BlockBreak:
			return sb.String()
		case document.BlockText:
			sb.WriteString(blocks[i].Text)
		case document.BlockEquation:
			sb.WriteString(eqPlaceholder)
		}
	}
	return sb.String()
}
