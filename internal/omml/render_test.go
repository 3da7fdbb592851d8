package omml

import "testing"

func TestRender_Fraction(t *testing.T) {
	nodes := []Node{
		&Fraction{Num: []Node{&Text{Value: "a"}}, Den: []Node{&Text{Value: "b"}}},
	}
	if got := Render(nodes); got != `\frac{a}{b}` {
		t.Errorf("expected %q, got %q", `\frac{a}{b}`, got)
	}
}

func TestRender_NestedFraction(t *testing.T) {
	inner := &Fraction{Num: []Node{&Text{Value: "x"}}, Den: []Node{&Text{Value: "y"}}}
	outer := &Fraction{Num: []Node{&Text{Value: "1"}}, Den: []Node{inner}}
	want := `\frac{1}{\frac{x}{y}}`
	if got := Render([]Node{outer}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_LinearFraction(t *testing.T) {
	nodes := []Node{
		&Fraction{Num: []Node{&Text{Value: "a"}}, Den: []Node{&Text{Value: "b"}}, Linear: true},
	}
	if got := Render(nodes); got != "a/b" {
		t.Errorf("expected %q, got %q", "a/b", got)
	}
}

func TestRender_Scripts(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "superscript",
			node: &Superscript{Base: []Node{&Text{Value: "x"}}, Sup: []Node{&Text{Value: "2"}}},
			want: "x^{2}",
		},
		{
			name: "subscript",
			node: &Subscript{Base: []Node{&Text{Value: "a"}}, Sub: []Node{&Text{Value: "n"}}},
			want: "a_{n}",
		},
		{
			name: "subsup",
			node: &SubSup{Base: []Node{&Text{Value: "x"}}, Sub: []Node{&Text{Value: "i"}}, Sup: []Node{&Text{Value: "2"}}},
			want: "x_{i}^{2}",
		},
		{
			name: "empty base keeps script structure",
			node: &Superscript{Sup: []Node{&Text{Value: "2"}}},
			want: "{}^{2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render([]Node{tt.node}); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_Radical(t *testing.T) {
	sqrt := &Radical{Expr: []Node{&Text{Value: "x"}}}
	if got := Render([]Node{sqrt}); got != `\sqrt{x}` {
		t.Errorf("expected %q, got %q", `\sqrt{x}`, got)
	}

	cbrt := &Radical{Degree: []Node{&Text{Value: "3"}}, Expr: []Node{&Text{Value: "x"}}}
	if got := Render([]Node{cbrt}); got != `\sqrt[3]{x}` {
		t.Errorf("expected %q, got %q", `\sqrt[3]{x}`, got)
	}
}

func TestRender_Nary(t *testing.T) {
	sum := &Nary{
		Char: "∑",
		Sub:  []Node{&Text{Value: "i=1"}},
		Sup:  []Node{&Text{Value: "n"}},
		Expr: []Node{&Text{Value: "i"}},
	}
	want := `\sum_{i=1}^{n} i`
	if got := Render([]Node{sum}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_NaryWithoutLimits(t *testing.T) {
	integral := &Nary{Char: "∫", Expr: []Node{&Text{Value: "f(x)dx"}}}
	want := `\int f(x)dx`
	if got := Render([]Node{integral}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_DelimiterDefaults(t *testing.T) {
	d := &Delimiter{Open: "(", Close: ")", Sep: "|", Items: [][]Node{{&Text{Value: "x"}}}}
	want := `\left( x \right)`
	if got := Render([]Node{d}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_DelimiterMultipleItems(t *testing.T) {
	d := &Delimiter{
		Open: "(", Close: ")", Sep: "|",
		Items: [][]Node{{&Text{Value: "a"}}, {&Text{Value: "b"}}},
	}
	want := `\left( a | b \right)`
	if got := Render([]Node{d}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_DelimiterInvisible(t *testing.T) {
	d := &Delimiter{Open: "", Close: "", Sep: "|", Items: [][]Node{{&Text{Value: "x"}}}}
	want := `\left. x \right.`
	if got := Render([]Node{d}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_MatrixEnvironments(t *testing.T) {
	matrix := &Matrix{Rows: [][][]Node{
		{{&Text{Value: "a"}}, {&Text{Value: "b"}}},
		{{&Text{Value: "c"}}, {&Text{Value: "d"}}},
	}}

	tests := []struct {
		open, close string
		want        string
	}{
		{"(", ")", `\begin{pmatrix} a & b \\ c & d \end{pmatrix}`},
		{"[", "]", `\begin{bmatrix} a & b \\ c & d \end{bmatrix}`},
		{"|", "|", `\begin{vmatrix} a & b \\ c & d \end{vmatrix}`},
	}

	for _, tt := range tests {
		d := &Delimiter{Open: tt.open, Close: tt.close, Sep: "|", Items: [][]Node{{matrix}}}
		if got := Render([]Node{d}); got != tt.want {
			t.Errorf("open %q: expected %q, got %q", tt.open, tt.want, got)
		}
	}
}

func TestRender_BareMatrix(t *testing.T) {
	matrix := &Matrix{Rows: [][][]Node{
		{{&Text{Value: "1"}}, {&Text{Value: "0"}}},
	}}
	want := `\begin{matrix} 1 & 0 \end{matrix}`
	if got := Render([]Node{matrix}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_Func(t *testing.T) {
	known := &Func{Name: []Node{&Text{Value: "sin"}}, Arg: []Node{&Text{Value: "x"}}}
	if got := Render([]Node{known}); got != `\sin{x}` {
		t.Errorf("expected %q, got %q", `\sin{x}`, got)
	}

	unknown := &Func{Name: []Node{&Text{Value: "sinc"}}, Arg: []Node{&Text{Value: "x"}}}
	if got := Render([]Node{unknown}); got != `\text{sinc}(x)` {
		t.Errorf("expected %q, got %q", `\text{sinc}(x)`, got)
	}
}

func TestRender_AccentAndBar(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"vector accent", &Accent{Char: "⃗", Expr: []Node{&Text{Value: "v"}}}, `\vec{v}`},
		{"default accent", &Accent{Char: "unknown", Expr: []Node{&Text{Value: "x"}}}, `\hat{x}`},
		{"overbar", &Bar{Expr: []Node{&Text{Value: "x"}}}, `\overline{x}`},
		{"underbar", &Bar{Under: true, Expr: []Node{&Text{Value: "x"}}}, `\underline{x}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render([]Node{tt.node}); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_EqArray(t *testing.T) {
	arr := &EqArray{Rows: [][]Node{
		{&Text{Value: "x+y=1"}},
		{&Text{Value: "x-y=3"}},
	}}
	want := `\begin{aligned} x+y=1 \\ x-y=3 \end{aligned}`
	if got := Render([]Node{arr}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_Limits(t *testing.T) {
	low := &LimLow{Base: []Node{&Text{Value: "lim"}}, Lim: []Node{&Text{Value: "n"}}}
	if got := Render([]Node{low}); got != "lim_{n}" {
		t.Errorf("expected %q, got %q", "lim_{n}", got)
	}

	upp := &LimUpp{Base: []Node{&Text{Value: "max"}}, Lim: []Node{&Text{Value: "k"}}}
	if got := Render([]Node{upp}); got != "max^{k}" {
		t.Errorf("expected %q, got %q", "max^{k}", got)
	}
}

func TestRender_PreScript(t *testing.T) {
	pre := &PreScript{
		Sub:  []Node{&Text{Value: "a"}},
		Sup:  []Node{&Text{Value: "b"}},
		Base: []Node{&Text{Value: "X"}},
	}
	want := "{}_{a}{}^{b} X"
	if got := Render([]Node{pre}); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_Unsupported(t *testing.T) {
	if got := Render([]Node{&Unsupported{Tag: "phant"}}); got != `\text{[phant]}` {
		t.Errorf("expected %q, got %q", `\text{[phant]}`, got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	tree := []Node{
		&Fraction{
			Num: []Node{&Nary{Char: "∑", Sub: []Node{&Text{Value: "i=1"}}, Sup: []Node{&Text{Value: "n"}}, Expr: []Node{&Text{Value: "i"}}}},
			Den: []Node{&Radical{Expr: []Node{&Text{Value: "x+α"}}}},
		},
	}
	first := Render(tree)
	for i := 0; i < 10; i++ {
		if got := Render(tree); got != first {
			t.Fatalf("render not deterministic: %q vs %q", first, got)
		}
	}
}
