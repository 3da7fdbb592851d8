// Package reader turns raw document files into the shared document model.
// Each supported container format has its own Reader; ForFile picks one by
// file extension.
package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/exam2nb/exam2nb/internal/document"
)

// Reader converts raw document bytes into a document body.
type Reader interface {
	Read(r io.Reader, filename string) (*document.Body, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".pdf":  true,
	".md":   true,
	".txt":  true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXReader{}, nil
	case ".pdf":
		return &PDFReader{FallbackPdftotext: true}, nil
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".txt":
		return &TextReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// titleFor strips the extension from a filename to make a document title.
func titleFor(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// textBody builds a body of text-only paragraphs, one per non-empty
// blank-line-separated block.
func textBody(title, text string) *document.Body {
	body := &document.Body{Title: title}
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		body.Items = append(body.Items, &document.Paragraph{
			Runs: []document.Run{{Text: block}},
		})
	}
	return body
}
