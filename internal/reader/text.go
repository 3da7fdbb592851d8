package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
)

// TextReader handles plain text exam sheets. Paragraphs are separated by
// blank lines; any LaTeX already present in the text passes through.
type TextReader struct{}

func (p *TextReader) Read(r io.Reader, filename string) (*document.Body, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	body := &document.Body{Title: titleFor(filename)}
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			body.Items = append(body.Items, &document.Paragraph{
				Runs: []document.Run{{Text: current.String()}},
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return body, nil
}
