package reader

import (
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	if r, err := ForFile("exam.docx"); err != nil {
		t.Errorf("docx: unexpected error: %v", err)
	} else if _, ok := r.(*DOCXReader); !ok {
		t.Errorf("docx: expected DOCXReader, got %T", r)
	}

	if r, err := ForFile("exam.PDF"); err != nil {
		t.Errorf("pdf: unexpected error: %v", err)
	} else if _, ok := r.(*PDFReader); !ok {
		t.Errorf("pdf: expected PDFReader, got %T", r)
	}

	if r, err := ForFile("exam.md"); err != nil {
		t.Errorf("md: unexpected error: %v", err)
	} else if _, ok := r.(*MarkdownReader); !ok {
		t.Errorf("md: expected MarkdownReader, got %T", r)
	}

	if r, err := ForFile("exam.txt"); err != nil {
		t.Errorf("txt: unexpected error: %v", err)
	} else if _, ok := r.(*TextReader); !ok {
		t.Errorf("txt: expected TextReader, got %T", r)
	}

	if _, err := ForFile("exam.doc"); err == nil {
		t.Error("doc: expected error for legacy format")
	}
	if _, err := ForFile("exam"); err == nil {
		t.Error("expected error for missing extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.docx") || !IsSupportedExtension("b.TXT") {
		t.Error("expected supported extensions")
	}
	if IsSupportedExtension("c.xlsx") {
		t.Error("xlsx should not be supported")
	}
}

func TestTextReader(t *testing.T) {
	input := "1. First question\nwith a second line.\n\n2. Second question."
	p := &TextReader{}
	body, err := p.Read(strings.NewReader(input), "sheet.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Title != "sheet" {
		t.Errorf("expected title %q, got %q", "sheet", body.Title)
	}
	if len(body.Items) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(body.Items))
	}
}

func TestTextReader_Empty(t *testing.T) {
	p := &TextReader{}
	body, err := p.Read(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Items) != 0 {
		t.Errorf("expected no paragraphs, got %d", len(body.Items))
	}
}
