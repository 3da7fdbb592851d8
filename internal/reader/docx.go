package reader

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/exam2nb/exam2nb/internal/document"
	"github.com/exam2nb/exam2nb/internal/omml"
)

// DOCXReader handles .docx files. It decodes word/document.xml directly so
// equation markup (<m:oMath>) survives; docx convenience libraries drop it.
type DOCXReader struct{}

func (p *DOCXReader) Read(r io.Reader, filename string) (*document.Body, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx container: %w", err)
	}

	docXML, err := readZipFile(zr, "word/document.xml")
	if err != nil {
		return nil, err
	}

	var root omml.Element
	if err := xml.Unmarshal(docXML, &root); err != nil {
		return nil, fmt.Errorf("decode document.xml: %w", err)
	}

	bodyEl := childOf(&root, omml.WordNS, "body")
	if bodyEl == nil {
		return nil, fmt.Errorf("document.xml has no body element")
	}

	body := &document.Body{Title: titleFor(filename)}
	for i := range bodyEl.Children {
		item := &bodyEl.Children[i]
		if item.XMLName.Space != omml.WordNS {
			continue
		}
		switch item.XMLName.Local {
		case "p":
			body.Items = append(body.Items, buildParagraph(item, &body.Warnings))
		case "tbl":
			body.Items = append(body.Items, buildTable(item, &body.Warnings))
		}
	}
	return body, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("docx container has no %s", name)
}

// buildParagraph walks a <w:p> in source order. Text runs and equations
// stay exactly where they appear; question detection downstream relies on
// that interleaving.
func buildParagraph(el *omml.Element, warnings *[]string) *document.Paragraph {
	para := &document.Paragraph{}
	collectRuns(el, para, warnings)
	return para
}

func collectRuns(el *omml.Element, para *document.Paragraph, warnings *[]string) {
	for i := range el.Children {
		child := &el.Children[i]
		switch {
		case child.XMLName.Space == omml.WordNS && child.XMLName.Local == "r":
			if t := wordRunText(child); t != "" {
				para.Runs = append(para.Runs, document.Run{Text: t})
			}
		case child.XMLName.Space == omml.WordNS && child.XMLName.Local == "hyperlink":
			collectRuns(child, para, warnings)
		case child.XMLName.Space == omml.MathNS && child.XMLName.Local == "oMath":
			appendEquation(child, para, warnings, false)
		case child.XMLName.Space == omml.MathNS && child.XMLName.Local == "oMathPara":
			for j := range child.Children {
				inner := &child.Children[j]
				if inner.XMLName.Space == omml.MathNS && inner.XMLName.Local == "oMath" {
					appendEquation(inner, para, warnings, true)
				}
			}
		}
	}
}

func appendEquation(el *omml.Element, para *document.Paragraph, warnings *[]string, display bool) {
	nodes, warns := omml.Build(*el)
	*warnings = append(*warnings, warns...)
	para.Runs = append(para.Runs, document.Run{Equation: nodes, IsMath: true, Display: display})
}

// wordRunText extracts the text of a <w:r>: w:t carries characters, w:br
// and w:tab become whitespace.
func wordRunText(el *omml.Element) string {
	var sb bytes.Buffer
	for i := range el.Children {
		c := &el.Children[i]
		if c.XMLName.Space != omml.WordNS {
			continue
		}
		switch c.XMLName.Local {
		case "t":
			sb.WriteString(c.Text)
		case "br":
			sb.WriteByte('\n')
		case "tab":
			sb.WriteByte('\t')
		}
	}
	return sb.String()
}

func buildTable(el *omml.Element, warnings *[]string) *document.Table {
	tbl := &document.Table{}
	for i := range el.Children {
		tr := &el.Children[i]
		if tr.XMLName.Space != omml.WordNS || tr.XMLName.Local != "tr" {
			continue
		}
		var row []document.Cell
		for j := range tr.Children {
			tc := &tr.Children[j]
			if tc.XMLName.Space != omml.WordNS || tc.XMLName.Local != "tc" {
				continue
			}
			var cell document.Cell
			for k := range tc.Children {
				cp := &tc.Children[k]
				if cp.XMLName.Space == omml.WordNS && cp.XMLName.Local == "p" {
					cell.Paragraphs = append(cell.Paragraphs, buildParagraph(cp, warnings))
				}
			}
			row = append(row, cell)
		}
		if len(row) > 0 {
			tbl.Rows = append(tbl.Rows, row)
		}
	}
	return tbl
}

func childOf(el *omml.Element, space, local string) *omml.Element {
	for i := range el.Children {
		if el.Children[i].XMLName.Space == space && el.Children[i].XMLName.Local == local {
			return &el.Children[i]
		}
	}
	return nil
}
