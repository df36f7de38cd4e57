package mathtex

import (
	"errors"
	"testing"
)

func TestTermTypesetter_Accepts(t *testing.T) {
	ts := NewTermTypesetter()

	tests := []struct {
		source string
		want   string
	}{
		{"x^2", "x²"},
		{"x^{10}", "x¹⁰"},
		{"x_1", "x₁"},
		{"a_{12}", "a₁₂"},
		{"\\sin^2x + \\cos^2x = 1", "sin²x + cos²x = 1"},
		{"\\frac{1}{2}", "1/2"},
		{"\\frac{-b \\pm \\sqrt{b^2 - 4ac}}{2a}", "(-b ± √(b² - 4ac))/2a"},
		{"\\sqrt{2}", "√(2)"},
		{"a \\cdot b", "a · b"},
		{"x \\to \\infty", "x → ∞"},
		{"\\pi r^2", "π r²"},
		{"\\log_a(bc) = \\log_ab + \\log_ac", "logₐ(bc) = logₐb + logₐc"},
		{"\\int x^n dx", "∫ xⁿ dx"},
		{"(x^n)' = n \\cdot x^{n-1}", "(xⁿ)' = n · xⁿ⁻¹"},
		{"\\lim_{x \\to 0} \\frac{\\sin x}{x} = 1", "lim[x → 0] (sin x)/x = 1"},
		{"\\left( a+b \\right)^2", "( a+b )²"},
		{"{x}", "x"},
	}

	for _, tt := range tests {
		got, err := ts.Typeset(tt.source, false)
		if err != nil {
			t.Errorf("Typeset(%q) unexpected error: %v", tt.source, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Typeset(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestTermTypesetter_Rejects(t *testing.T) {
	ts := NewTermTypesetter()

	sources := []string{
		"\\frac{1}{",    // unterminated argument
		"{unclosed",     // unbalanced brace
		"closed}",       // unbalanced brace
		"\\notacommand", // outside the supported subset
		"x^",            // dangling script
		"\\frac",        // missing arguments
	}

	for _, src := range sources {
		_, err := ts.Typeset(src, false)
		if err == nil {
			t.Errorf("Typeset(%q) succeeded, want rejection", src)
			continue
		}
		var rej *ErrRenderRejected
		if !errors.As(err, &rej) {
			t.Errorf("Typeset(%q) error = %T, want *ErrRenderRejected", src, err)
		}
	}
}

func TestTermTypesetter_DisplayModeDoesNotChangeParsing(t *testing.T) {
	ts := NewTermTypesetter()
	inline, err := ts.Typeset("x^2 + 1", false)
	if err != nil {
		t.Fatalf("inline: %v", err)
	}
	display, err := ts.Typeset("x^2 + 1", true)
	if err != nil {
		t.Fatalf("display: %v", err)
	}
	if inline != display {
		t.Errorf("display mode changed output: %q vs %q", inline, display)
	}
}
