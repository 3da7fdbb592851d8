package document

import "github.com/exam2nb/exam2nb/internal/omml"

// Body is the ordered content of a source document: paragraphs and tables
// in reading order, as produced by a reader.
type Body struct {
	Title    string     // Document title (from metadata or filename)
	Items    []BodyItem // Top-level paragraphs and tables, in source order
	Warnings []string   // non-fatal reader warnings (unsupported equation parts)
}

// BodyItem is either a *Paragraph or a *Table.
type BodyItem interface {
	isBodyItem()
}

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []Run
}

func (*Paragraph) isBodyItem() {}

// Table is a grid of cells; each cell holds its own paragraphs.
type Table struct {
	Rows [][]Cell
}

func (*Table) isBodyItem() {}

// Cell is one table cell.
type Cell struct {
	Paragraphs []*Paragraph
}

// Run is one span inside a paragraph: either plain text or an embedded
// equation subtree awaiting LaTeX conversion.
type Run struct {
	Text     string      // plain text, when IsMath is false
	Equation []omml.Node // parsed equation tree, when IsMath is true
	IsMath   bool
	Display  bool // equation occupies its own paragraph (display math)
}

// BlockKind discriminates ContentBlock variants.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockEquation
	BlockBreak
)

// ContentBlock is the smallest ordered unit of extracted content. The
// ordered sequence of blocks is the canonical linear form of a document;
// block order is the invariant question splitting depends on.
type ContentBlock struct {
	Kind    BlockKind
	Text    string // BlockText
	LaTeX   string // BlockEquation
	Display bool   // BlockEquation: equation stands in its own paragraph
}

// TextBlock returns a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockText, Text: text}
}

// EquationBlock returns an equation content block.
func EquationBlock(latex string, display bool) ContentBlock {
	return ContentBlock{Kind: BlockEquation, LaTeX: latex, Display: display}
}

// BreakBlock returns a paragraph break block.
func BreakBlock() ContentBlock {
	return ContentBlock{Kind: BlockBreak}
}

// Question is one exam question carved out of the block sequence.
// Ordinals are strictly increasing in detection order; Number is the label
// exactly as it appeared in the source and need not be contiguous.
type Question struct {
	Number   string         // label as matched, e.g. "3"; "0" for a preamble unit
	Ordinal  int            // numeric position in detection order
	Blocks   []ContentBlock // ordered block subsequence belonging to this question
	Markdown string         // rendered markdown body
}
