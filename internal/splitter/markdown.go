package splitter

import (
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
)

// renderMarkdown turns a question's block subsequence into markdown.
// Equations in their own paragraph become $$...$$ blocks; equations inside
// text become inline $...$ math.
func renderMarkdown(blocks []document.ContentBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch b.Kind {
		case document.BlockText:
			sb.WriteString(b.Text)
		case document.BlockEquation:
			if b.Display {
				sb.WriteString("\n$$" + b.LaTeX + "$$\n")
			} else {
				sb.WriteString(" $" + b.LaTeX + "$ ")
			}
		case document.BlockBreak:
			sb.WriteString("\n\n")
		}
	}

	s := sb.String()
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(s)
}
