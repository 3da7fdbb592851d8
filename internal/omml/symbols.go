package omml

import "strings"

// unicodeToLatex maps codepoints produced by the Word equation editor to
// LaTeX commands. Built once; read-only.
var unicodeToLatex = map[rune]string{
	// Greek lowercase
	'α': `\alpha`,
	'β': `\beta`,
	'γ': `\gamma`,
	'δ': `\delta`,
	'ε': `\epsilon`,
	'ζ': `\zeta`,
	'η': `\eta`,
	'θ': `\theta`,
	'ι': `\iota`,
	'κ': `\kappa`,
	'λ': `\lambda`,
	'μ': `\mu`,
	'ν': `\nu`,
	'ξ': `\xi`,
	'π': `\pi`,
	'ρ': `\rho`,
	'σ': `\sigma`,
	'τ': `\tau`,
	'υ': `\upsilon`,
	'φ': `\phi`,
	'χ': `\chi`,
	'ψ': `\psi`,
	'ω': `\omega`,
	// Greek uppercase
	'Γ': `\Gamma`,
	'Δ': `\Delta`,
	'Θ': `\Theta`,
	'Λ': `\Lambda`,
	'Ξ': `\Xi`,
	'Π': `\Pi`,
	'Σ': `\Sigma`,
	'Φ': `\Phi`,
	'Ψ': `\Psi`,
	'Ω': `\Omega`,
	// Operators and relations
	'±': `\pm`,
	'×': `\times`,
	'÷': `\div`,
	'∂': `\partial`,
	'∇': `\nabla`,
	'√': `\sqrt`,
	'∞': `\infty`,
	'∑': `\sum`,
	'∏': `\prod`,
	'∫': `\int`,
	'∬': `\iint`,
	'∭': `\iiint`,
	'≠': `\neq`,
	'≤': `\leq`,
	'≥': `\geq`,
	'≈': `\approx`,
	'≡': `\equiv`,
	'∈': `\in`,
	'∉': `\notin`,
	'⊂': `\subset`,
	'⊃': `\supset`,
	'⊆': `\subseteq`,
	'⊇': `\supseteq`,
	'∪': `\cup`,
	'∩': `\cap`,
	'∅': `\emptyset`,
	'∀': `\forall`,
	'∃': `\exists`,
	'¬': `\neg`,
	'∧': `\wedge`,
	'∨': `\vee`,
	'⋅': `\cdot`,
	'…': `\ldots`,
	'⋯': `\cdots`,
	'⋮': `\vdots`,
	'⋱': `\ddots`,
	// Arrows
	'→': `\rightarrow`,
	'←': `\leftarrow`,
	'⇒': `\Rightarrow`,
	'⇐': `\Leftarrow`,
	'⇔': `\Leftrightarrow`,
	// Superscript digits (appear in text runs occasionally)
	'⁰': "^{0}",
	'¹': "^{1}",
	'²': "^{2}",
	'³': "^{3}",
	'⁴': "^{4}",
	'⁵': "^{5}",
	'⁶': "^{6}",
	'⁷': "^{7}",
	'⁸': "^{8}",
	'⁹': "^{9}",
	// Combining accents
	'̂': `\hat`,
	'̃': `\tilde`,
	'̄': `\bar`,
	'̇': `\dot`,
	'̈': `\ddot`,
	'⃗': `\vec`,
}

// naryMacros maps the m:nary operator glyph to its LaTeX macro.
var naryMacros = map[string]string{
	"∑": `\sum`,
	"∏": `\prod`,
	"∫": `\int`,
	"∬": `\iint`,
	"∭": `\iiint`,
	"∮": `\oint`,
	"⋃": `\bigcup`,
	"⋂": `\bigcap`,
}

// accentMacros maps the m:acc combining character to its LaTeX macro.
var accentMacros = map[string]string{
	"̂": `\hat`,
	"̃": `\tilde`,
	"̄": `\bar`,
	"̅": `\overline`,
	"̇": `\dot`,
	"̈": `\ddot`,
	"⃗": `\vec`,
	"⏞": `\overbrace`,
	"⏟": `\underbrace`,
}

// delimGlyphs maps delimiter characters to LaTeX forms usable after
// \left / \right. The empty string is an invisible delimiter.
var delimGlyphs = map[string]string{
	"(": "(",
	")": ")",
	"[": "[",
	"]": "]",
	"{": `\{`,
	"}": `\}`,
	"":  ".",
	"|": "|",
	"‖": `\|`,
	"⌈": `\lceil`,
	"⌉": `\rceil`,
	"⌊": `\lfloor`,
	"⌋": `\rfloor`,
	"⟨": `\langle`,
	"⟩": `\rangle`,
}

// knownFuncs are function names with a native LaTeX macro.
var knownFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"log": true, "ln": true, "exp": true, "lim": true, "max": true, "min": true,
	"sup": true, "inf": true, "det": true, "dim": true, "gcd": true,
}

// asciiEscapes covers ASCII characters with meaning to LaTeX.
var asciiEscapes = map[rune]string{
	'#':  `\#`,
	'$':  `\$`,
	'%':  `\%`,
	'&':  `\&`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'\\': `\backslash `,
	'~':  `\sim `,
	'^':  `\wedge `,
}

// Escape converts a text run to LaTeX. Mapped codepoints become commands,
// LaTeX-special ASCII is escaped, safe ASCII passes through literally, and
// any remaining codepoint is emitted as-is.
func Escape(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	i := 0
	runes := []rune(text)
	for i < len(runes) {
		ch := runes[i]
		// Contiguous safe-ASCII runs are copied without per-rune lookup.
		if isSafeASCII(ch) {
			j := i
			for j < len(runes) && isSafeASCII(runes[j]) {
				j++
			}
			sb.WriteString(string(runes[i:j]))
			i = j
			continue
		}
		if esc, ok := asciiEscapes[ch]; ok {
			sb.WriteString(esc)
		} else if latex, ok := unicodeToLatex[ch]; ok {
			sb.WriteString(latex)
			// Commands need a trailing space so the following character
			// does not extend the command name.
			if strings.HasPrefix(latex, `\`) {
				sb.WriteByte(' ')
			}
		} else {
			sb.WriteRune(ch)
		}
		i++
	}
	return sb.String()
}

func isSafeASCII(ch rune) bool {
	if ch > 0x7f {
		return false
	}
	if _, special := asciiEscapes[ch]; special {
		return false
	}
	return ch >= 0x20 || ch == '\n' || ch == '\t'
}

// Symbol returns the LaTeX command for a codepoint, if one is mapped.
func Symbol(ch rune) (string, bool) {
	latex, ok := unicodeToLatex[ch]
	return latex, ok
}
