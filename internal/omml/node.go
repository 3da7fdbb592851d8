// Package omml converts Office Math Markup Language (OMML) equation trees
// to LaTeX. Word's equation editor stores math as <m:oMath> XML inside the
// document body; that XML is decoded into a closed node tree and rendered
// with an exhaustive dispatch, so every supported construct is covered at
// compile time.
package omml

// Node is one variant of the equation tree. Each variant exclusively owns
// its child slots; the structure is a tree with no sharing.
type Node interface {
	isNode()
}

// Text is a leaf run of characters.
type Text struct {
	Value string
}

// Fraction is m:f. Linear fractions render as num/den instead of \frac.
type Fraction struct {
	Num, Den []Node
	Linear   bool
}

// Superscript is m:sSup.
type Superscript struct {
	Base, Sup []Node
}

// Subscript is m:sSub.
type Subscript struct {
	Base, Sub []Node
}

// SubSup is m:sSubSup.
type SubSup struct {
	Base, Sub, Sup []Node
}

// Radical is m:rad. Degree is nil when absent or hidden.
type Radical struct {
	Degree, Expr []Node
}

// Nary is m:nary: sums, products, integrals and friends. Char is the
// operator glyph from m:naryPr.
type Nary struct {
	Char           string
	Sub, Sup, Expr []Node
}

// Matrix is m:m, row-major.
type Matrix struct {
	Rows [][][]Node // rows → cells → cell content
}

// Delimiter is m:d, a bracketed group. Items holds the m:e children;
// more than one is joined with Sep.
type Delimiter struct {
	Open, Close, Sep string
	Items            [][]Node
}

// Func is m:func, a function application like sin or log.
type Func struct {
	Name, Arg []Node
}

// Accent is m:acc. Char is the combining accent character.
type Accent struct {
	Char string
	Expr []Node
}

// Bar is m:bar, an overline or underline.
type Bar struct {
	Under bool
	Expr  []Node
}

// EqArray is m:eqArr, a vertical stack of equations.
type EqArray struct {
	Rows [][]Node
}

// LimLow is m:limLow, a limit placed under the base.
type LimLow struct {
	Base, Lim []Node
}

// LimUpp is m:limUpp, a limit placed over the base.
type LimUpp struct {
	Base, Lim []Node
}

// GroupChr is m:groupChr, an over- or underbrace.
type GroupChr struct {
	Char string
	Top  bool
	Expr []Node
}

// BorderBox is m:borderBox, a framed expression.
type BorderBox struct {
	Expr []Node
}

// Box is m:box, a transparent grouping.
type Box struct {
	Expr []Node
}

// PreScript is m:sPre, scripts placed before the base.
type PreScript struct {
	Sub, Sup, Base []Node
}

// Unsupported stands in for an element kind the converter does not handle.
// It renders as a placeholder so the surrounding equation survives.
type Unsupported struct {
	Tag string
}

func (*Text) isNode()        {}
func (*Fraction) isNode()    {}
func (*Superscript) isNode() {}
func (*Subscript) isNode()   {}
func (*SubSup) isNode()      {}
func (*Radical) isNode()     {}
func (*Nary) isNode()        {}
func (*Matrix) isNode()      {}
func (*Delimiter) isNode()   {}
func (*Func) isNode()        {}
func (*Accent) isNode()      {}
func (*Bar) isNode()         {}
func (*EqArray) isNode()     {}
func (*LimLow) isNode()      {}
func (*LimUpp) isNode()      {}
func (*GroupChr) isNode()    {}
func (*BorderBox) isNode()   {}
func (*Box) isNode()         {}
func (*PreScript) isNode()   {}
func (*Unsupported) isNode() {}
