package omml

import (
	"fmt"
	"strings"
)

// matrixEnvs picks the matrix environment for a delimiter glyph enclosing
// a lone matrix.
var matrixEnvs = map[string]string{
	"(": "pmatrix",
	"[": "bmatrix",
	"{": "Bmatrix",
	"|": "vmatrix",
}

// Render converts an equation tree to LaTeX. Identical trees always render
// to byte-identical strings; nothing here consults external state.
func Render(nodes []Node) string {
	return strings.TrimSpace(renderSeq(nodes))
}

func renderSeq(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(renderNode(n))
	}
	return sb.String()
}

func renderNode(n Node) string {
	switch v := n.(type) {
	case *Text:
		return Escape(v.Value)

	case *Fraction:
		num := renderSeq(v.Num)
		den := renderSeq(v.Den)
		if v.Linear {
			return num + "/" + den
		}
		return fmt.Sprintf(`\frac{%s}{%s}`, num, den)

	case *Superscript:
		return fmt.Sprintf("%s^{%s}", base(v.Base), renderSeq(v.Sup))

	case *Subscript:
		return fmt.Sprintf("%s_{%s}", base(v.Base), renderSeq(v.Sub))

	case *SubSup:
		return fmt.Sprintf("%s_{%s}^{%s}", base(v.Base), renderSeq(v.Sub), renderSeq(v.Sup))

	case *Radical:
		expr := renderSeq(v.Expr)
		if deg := strings.TrimSpace(renderSeq(v.Degree)); deg != "" {
			return fmt.Sprintf(`\sqrt[%s]{%s}`, deg, expr)
		}
		return fmt.Sprintf(`\sqrt{%s}`, expr)

	case *Nary:
		macro, ok := naryMacros[v.Char]
		if !ok {
			macro = `\sum`
		}
		var sb strings.Builder
		sb.WriteString(macro)
		if sub := strings.TrimSpace(renderSeq(v.Sub)); sub != "" {
			sb.WriteString("_{" + sub + "}")
		}
		if sup := strings.TrimSpace(renderSeq(v.Sup)); sup != "" {
			sb.WriteString("^{" + sup + "}")
		}
		sb.WriteString(" " + renderSeq(v.Expr))
		return sb.String()

	case *Matrix:
		return renderMatrix(v, "matrix")

	case *Delimiter:
		// A lone matrix inside parentheses or brackets becomes the
		// corresponding matrix environment instead of \left(...\right).
		if len(v.Items) == 1 && len(v.Items[0]) == 1 {
			if m, ok := v.Items[0][0].(*Matrix); ok {
				if env, ok := matrixEnvs[v.Open]; ok {
					return renderMatrix(m, env)
				}
			}
		}
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, renderSeq(item))
		}
		sep := ""
		if len(parts) > 1 {
			sep = " " + v.Sep + " "
		}
		return fmt.Sprintf(`\left%s %s \right%s`, delimGlyph(v.Open), strings.Join(parts, sep), delimGlyph(v.Close))

	case *Func:
		name := strings.TrimSpace(renderSeq(v.Name))
		arg := renderSeq(v.Arg)
		clean := strings.TrimSpace(strings.ReplaceAll(name, `\`, ""))
		if knownFuncs[clean] {
			return fmt.Sprintf(`\%s{%s}`, clean, arg)
		}
		return fmt.Sprintf(`\text{%s}(%s)`, name, arg)

	case *Accent:
		macro, ok := accentMacros[v.Char]
		if !ok {
			macro = `\hat`
		}
		return fmt.Sprintf("%s{%s}", macro, renderSeq(v.Expr))

	case *Bar:
		if v.Under {
			return fmt.Sprintf(`\underline{%s}`, renderSeq(v.Expr))
		}
		return fmt.Sprintf(`\overline{%s}`, renderSeq(v.Expr))

	case *EqArray:
		rows := make([]string, 0, len(v.Rows))
		for _, row := range v.Rows {
			rows = append(rows, renderSeq(row))
		}
		return fmt.Sprintf(`\begin{aligned} %s \end{aligned}`, strings.Join(rows, ` \\ `))

	case *LimLow:
		return fmt.Sprintf("%s_{%s}", base(v.Base), renderSeq(v.Lim))

	case *LimUpp:
		return fmt.Sprintf("%s^{%s}", base(v.Base), renderSeq(v.Lim))

	case *GroupChr:
		if v.Top {
			return fmt.Sprintf(`\overbrace{%s}`, renderSeq(v.Expr))
		}
		return fmt.Sprintf(`\underbrace{%s}`, renderSeq(v.Expr))

	case *BorderBox:
		return fmt.Sprintf(`\boxed{%s}`, renderSeq(v.Expr))

	case *Box:
		return renderSeq(v.Expr)

	case *PreScript:
		var sb strings.Builder
		if sub := renderSeq(v.Sub); sub != "" {
			sb.WriteString("{}_{" + sub + "}")
		}
		if sup := renderSeq(v.Sup); sup != "" {
			sb.WriteString("{}^{" + sup + "}")
		}
		sb.WriteString(" " + renderSeq(v.Base))
		return sb.String()

	case *Unsupported:
		return fmt.Sprintf(`\text{[%s]}`, v.Tag)
	}

	return ""
}

// base renders a script base; an empty base still produces an empty group
// so the script structure survives.
func base(nodes []Node) string {
	s := renderSeq(nodes)
	if s == "" {
		return "{}"
	}
	return s
}

func delimGlyph(ch string) string {
	if g, ok := delimGlyphs[ch]; ok {
		return g
	}
	return ch
}

func renderMatrix(m *Matrix, env string) string {
	rows := make([]string, 0, len(m.Rows))
	for _, row := range m.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, renderSeq(cell))
		}
		rows = append(rows, strings.Join(cells, " & "))
	}
	return fmt.Sprintf(`\begin{%s} %s \end{%s}`, env, strings.Join(rows, ` \\ `), env)
}
