package reader

import (
	"bytes"
	"io"
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader handles Markdown exam sheets using goldmark. Each
// top-level block becomes one paragraph; inline math written as $...$
// passes through inside the text.
type MarkdownReader struct{}

func (p *MarkdownReader) Read(r io.Reader, filename string) (*document.Body, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	body := &document.Body{Title: titleFor(filename)}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		t := blockText(n, src)
		if t == "" {
			continue
		}
		body.Items = append(body.Items, &document.Paragraph{
			Runs: []document.Run{{Text: t}},
		})
	}
	return body, nil
}

// blockText gets the text content of a goldmark AST block node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(blockText(c, src))
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
