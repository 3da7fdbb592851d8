package omml

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii passes through", "x = 2y + 1", "x = 2y + 1"},
		{"greek letters", "αβ", `\alpha \beta `},
		{"percent escaped", "50%", `50\%`},
		{"underscore escaped", "a_b", `a\_b`},
		{"braces escaped", "{x}", `\{x\}`},
		{"backslash", `a\b`, `a\backslash b`},
		{"tilde", "~", `\sim `},
		{"caret", "^", `\wedge `},
		{"superscript digit", "x²", "x^{2}"},
		{"inequality", "a≤b", `a\leq b`},
		{"arrow", "x→0", `x\rightarrow 0`},
		{"infinity", "∞", `\infty `},
		{"unmapped unicode preserved", "한글", "한글"},
		{"mixed", "θ=π/2", `\theta =\pi /2`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q): expected %q, got %q", tt.input, tt.want, got)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	if got, ok := Symbol('Σ'); !ok || got != `\Sigma` {
		t.Errorf("expected \\Sigma, got %q (ok=%v)", got, ok)
	}
	if _, ok := Symbol('x'); ok {
		t.Error("plain ascii should not be mapped")
	}
}
