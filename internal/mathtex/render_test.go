package mathtex

import (
	"fmt"
	"strings"
	"testing"
)

// rejectAll is a typesetter that rejects every source.
type rejectAll struct{}

func (rejectAll) Typeset(source string, display bool) (string, error) {
	return "", &ErrRenderRejected{Source: source, Err: fmt.Errorf("nope")}
}

func TestRenderer_DegradedModeIsBlank(t *testing.T) {
	r := NewRenderer(nil)
	if r.Available() {
		t.Error("Available() = true with nil typesetter")
	}
	if got := r.Render("x^2", true); got != "" {
		t.Errorf("Render in degraded mode = %q, want empty", got)
	}
}

func TestRenderer_RejectedFallsBackToLiteral(t *testing.T) {
	r := NewRenderer(rejectAll{})

	var logged []string
	r.Logf = func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	if got := r.Render("\\bogus", false); got != "\\bogus" {
		t.Errorf("Render = %q, want literal fallback", got)
	}
	if len(logged) != 1 {
		t.Errorf("expected 1 diagnostic log entry, got %d", len(logged))
	}
}

func TestRenderer_RenderText(t *testing.T) {
	r := NewRenderer(NewTermTypesetter())

	got := r.RenderText("Nghiệm là $x^2$ và $\\pi$.")
	want := "Nghiệm là x² và π."
	if got != want {
		t.Errorf("RenderText = %q, want %q", got, want)
	}
}

func TestRenderer_RenderTextDegradedKeepsSource(t *testing.T) {
	r := NewRenderer(nil)
	got := r.RenderText("a $x^2$ b")
	if !strings.Contains(got, "x^2") {
		t.Errorf("RenderText degraded = %q, want literal math source kept", got)
	}
}

func TestRenderer_ReplacesContentOnRerender(t *testing.T) {
	r := NewRenderer(NewTermTypesetter())
	if got := r.Render("x^2", false); got != "x²" {
		t.Fatalf("first render = %q", got)
	}
	if got := r.Render("x^3", false); got != "x³" {
		t.Errorf("second render = %q, want full replacement with x³", got)
	}
}
