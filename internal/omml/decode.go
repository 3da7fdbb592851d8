package omml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespaces used by WordprocessingML math.
const (
	MathNS = "http://schemas.openxmlformats.org/officeDocument/2006/math"
	WordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// Element is a generic XML element tree. Readers decode document XML into
// this shape and hand equation subtrees (<m:oMath>) to Build.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// Decode parses a raw <m:oMath> (or <m:oMathPara>) fragment and builds the
// equation tree. Unknown constructs degrade to Unsupported nodes with a
// warning; only malformed XML is an error.
func Decode(data []byte) ([]Node, []string, error) {
	var el Element
	if err := xml.Unmarshal(data, &el); err != nil {
		return nil, nil, fmt.Errorf("decode omml: %w", err)
	}
	nodes, warnings := Build(el)
	return nodes, warnings, nil
}

// Build converts a generic equation element into typed nodes. The second
// return lists warnings for constructs replaced by placeholders.
func Build(el Element) ([]Node, []string) {
	b := &builder{}
	nodes := b.seq(el.Children)
	return nodes, b.warnings
}

type builder struct {
	warnings []string
}

// seq builds the node sequence for a slice of sibling elements. Property
// elements carry only formatting and are skipped.
func (b *builder) seq(elems []Element) []Node {
	var nodes []Node
	for i := range elems {
		if n := b.node(&elems[i]); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (b *builder) node(el *Element) Node {
	if el.XMLName.Space != MathNS {
		// Word-namespace elements inside equations (bookmarks, proofing
		// marks) carry no math content.
		return nil
	}

	switch el.XMLName.Local {
	case "r":
		if t := runText(el); t != "" {
			return &Text{Value: t}
		}
		return nil
	case "f":
		return &Fraction{
			Num:    b.slot(el, "num"),
			Den:    b.slot(el, "den"),
			Linear: propVal(el, "fPr", "type") == "lin",
		}
	case "sSup":
		return &Superscript{Base: b.slot(el, "e"), Sup: b.slot(el, "sup")}
	case "sSub":
		return &Subscript{Base: b.slot(el, "e"), Sub: b.slot(el, "sub")}
	case "sSubSup":
		return &SubSup{Base: b.slot(el, "e"), Sub: b.slot(el, "sub"), Sup: b.slot(el, "sup")}
	case "rad":
		n := &Radical{Expr: b.slot(el, "e")}
		hide := propVal(el, "radPr", "degHide")
		if hide != "1" && hide != "on" && hide != "true" {
			n.Degree = b.slot(el, "deg")
		}
		return n
	case "nary":
		ch := "∑"
		if pr := find(el, "naryPr"); pr != nil {
			if c := find(pr, "chr"); c != nil {
				ch = attrVal(c)
			}
		}
		return &Nary{
			Char: ch,
			Sub:  b.slot(el, "sub"),
			Sup:  b.slot(el, "sup"),
			Expr: b.slot(el, "e"),
		}
	case "d":
		n := &Delimiter{Open: "(", Close: ")", Sep: "|"}
		if pr := find(el, "dPr"); pr != nil {
			if c := find(pr, "begChr"); c != nil {
				n.Open = attrVal(c)
			}
			if c := find(pr, "endChr"); c != nil {
				n.Close = attrVal(c)
			}
			if c := find(pr, "sepChr"); c != nil {
				n.Sep = attrVal(c)
			}
		}
		for i := range el.Children {
			if el.Children[i].XMLName.Space == MathNS && el.Children[i].XMLName.Local == "e" {
				n.Items = append(n.Items, b.seq(el.Children[i].Children))
			}
		}
		return n
	case "func":
		return &Func{Name: b.slot(el, "fName"), Arg: b.slot(el, "e")}
	case "acc":
		ch := "̂"
		if c := findIn(el, "accPr", "chr"); c != nil {
			ch = attrVal(c)
		}
		return &Accent{Char: ch, Expr: b.slot(el, "e")}
	case "bar":
		return &Bar{Under: propVal(el, "barPr", "pos") == "bot", Expr: b.slot(el, "e")}
	case "m":
		n := &Matrix{}
		for i := range el.Children {
			row := &el.Children[i]
			if row.XMLName.Space != MathNS || row.XMLName.Local != "mr" {
				continue
			}
			var cells [][]Node
			for j := range row.Children {
				cell := &row.Children[j]
				if cell.XMLName.Space == MathNS && cell.XMLName.Local == "e" {
					cells = append(cells, b.seq(cell.Children))
				}
			}
			n.Rows = append(n.Rows, cells)
		}
		return n
	case "eqArr":
		n := &EqArray{}
		for i := range el.Children {
			if el.Children[i].XMLName.Space == MathNS && el.Children[i].XMLName.Local == "e" {
				n.Rows = append(n.Rows, b.seq(el.Children[i].Children))
			}
		}
		return n
	case "limLow":
		return &LimLow{Base: b.slot(el, "e"), Lim: b.slot(el, "lim")}
	case "limUpp":
		return &LimUpp{Base: b.slot(el, "e"), Lim: b.slot(el, "lim")}
	case "groupChr":
		ch := "⏟"
		pos := "bot"
		if pr := find(el, "groupChrPr"); pr != nil {
			if c := find(pr, "chr"); c != nil {
				ch = attrVal(c)
			}
			if c := find(pr, "pos"); c != nil {
				pos = attrVal(c)
			}
		}
		return &GroupChr{Char: ch, Top: ch == "⏞" || pos == "top", Expr: b.slot(el, "e")}
	case "borderBox":
		return &BorderBox{Expr: b.slot(el, "e")}
	case "box":
		return &Box{Expr: b.slot(el, "e")}
	case "sPre":
		return &PreScript{Sub: b.slot(el, "sub"), Sup: b.slot(el, "sup"), Base: b.slot(el, "e")}
	case "oMath", "oMathPara", "e":
		// Transparent containers.
		if nodes := b.seq(el.Children); len(nodes) == 1 {
			return nodes[0]
		} else if len(nodes) > 1 {
			return &Box{Expr: nodes}
		}
		return nil
	}

	if strings.HasSuffix(el.XMLName.Local, "Pr") {
		// Property elements: formatting only.
		return nil
	}

	b.warnings = append(b.warnings, fmt.Sprintf("unsupported equation element m:%s", el.XMLName.Local))
	return &Unsupported{Tag: el.XMLName.Local}
}

// slot builds the content of the first child element with the given local
// name, e.g. the m:num slot of a fraction.
func (b *builder) slot(el *Element, local string) []Node {
	if c := find(el, local); c != nil {
		return b.seq(c.Children)
	}
	return nil
}

// runText extracts the text of an m:r run: m:t and w:t carry characters,
// w:br and w:tab become whitespace.
func runText(el *Element) string {
	var sb strings.Builder
	for i := range el.Children {
		c := &el.Children[i]
		switch {
		case c.XMLName.Local == "t":
			sb.WriteString(c.Text)
		case c.XMLName.Space == WordNS && c.XMLName.Local == "br":
			sb.WriteByte('\n')
		case c.XMLName.Space == WordNS && c.XMLName.Local == "tab":
			sb.WriteByte('\t')
		}
	}
	return sb.String()
}

func find(el *Element, local string) *Element {
	for i := range el.Children {
		if el.Children[i].XMLName.Space == MathNS && el.Children[i].XMLName.Local == local {
			return &el.Children[i]
		}
	}
	return nil
}

func findIn(el *Element, prLocal, local string) *Element {
	if pr := find(el, prLocal); pr != nil {
		return find(pr, local)
	}
	return nil
}

// attrVal returns the m:val attribute of a property element.
func attrVal(el *Element) string {
	for _, a := range el.Attrs {
		if a.Name.Local == "val" {
			return a.Value
		}
	}
	return ""
}

// propVal reads the m:val of a nested property, e.g. m:fPr → m:type.
func propVal(el *Element, prLocal, local string) string {
	if c := findIn(el, prLocal, local); c != nil {
		return attrVal(c)
	}
	return ""
}
