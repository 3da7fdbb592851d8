// Package extractor flattens a document body into the ordered content
// block sequence that question splitting operates on.
package extractor

import (
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
	"github.com/exam2nb/exam2nb/internal/omml"
)

// Extract walks paragraphs then runs in source order and produces the
// linear block sequence. Equations are converted to LaTeX at their exact
// position — never hoisted out of the surrounding text — and a paragraph
// break follows every paragraph. The second return is the accumulated
// conversion warnings.
func Extract(body *document.Body) ([]document.ContentBlock, []string) {
	var blocks []document.ContentBlock
	warnings := append([]string(nil), body.Warnings...)

	for _, item := range body.Items {
		switch it := item.(type) {
		case *document.Paragraph:
			blocks = appendParagraph(blocks, it)
		case *document.Table:
			if md := renderTable(it); md != "" {
				blocks = append(blocks, document.TextBlock(md), document.BreakBlock())
			}
		}
	}
	return blocks, warnings
}

// appendParagraph emits the blocks of one paragraph followed by a break.
// Adjacent text runs merge into one block; a break is never crossed.
func appendParagraph(blocks []document.ContentBlock, para *document.Paragraph) []document.ContentBlock {
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			blocks = append(blocks, document.TextBlock(text.String()))
			text.Reset()
		}
	}

	for _, run := range para.Runs {
		if run.IsMath {
			flush()
			blocks = append(blocks, document.EquationBlock(omml.Render(run.Equation), run.Display))
			continue
		}
		text.WriteString(run.Text)
	}
	flush()

	return append(blocks, document.BreakBlock())
}

// renderTable converts a table to a GitHub-style markdown table. Cell
// equations become inline $...$ math inside the cell text.
func renderTable(tbl *document.Table) string {
	var rows [][]string
	for _, row := range tbl.Rows {
		var cells []string
		for _, cell := range row {
			var parts []string
			for _, para := range cell.Paragraphs {
				if t := strings.TrimSpace(cellParagraphText(para)); t != "" {
					parts = append(parts, t)
				}
			}
			cells = append(cells, strings.Join(parts, " "))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return ""
	}

	width := len(rows[0])
	var lines []string
	lines = append(lines, "| "+strings.Join(rows[0], " | ")+" |")
	seps := make([]string, width)
	for i := range seps {
		seps[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
	for _, row := range rows[1:] {
		for len(row) < width {
			row = append(row, "")
		}
		lines = append(lines, "| "+strings.Join(row[:width], " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

func cellParagraphText(para *document.Paragraph) string {
	var sb strings.Builder
	for _, run := range para.Runs {
		if run.IsMath {
			sb.WriteString("$" + omml.Render(run.Equation) + "$")
			continue
		}
		sb.WriteString(run.Text)
	}
	return sb.String()
}
