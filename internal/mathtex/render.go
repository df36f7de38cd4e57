package mathtex

import "strings"

// Renderer turns math source into display text, falling back gracefully
// when typesetting is unavailable or the source is rejected.
//
// The typesetter is passed in at construction rather than looked up
// ambiently, so tests can substitute a fake.
type Renderer struct {
	ts Typesetter

	// Logf receives diagnostics for rejected sources. Nil discards them.
	Logf func(format string, args ...any)
}

// NewRenderer creates a Renderer backed by the given typesetter.
// A nil typesetter puts the renderer in degraded mode: Render returns
// an empty string and RenderText passes math spans through untouched.
func NewRenderer(ts Typesetter) *Renderer {
	return &Renderer{ts: ts}
}

// Available reports whether a typesetting capability is present.
func (r *Renderer) Available() bool {
	return r.ts != nil
}

// Render typesets a single math source string. display=true requests
// standalone-equation presentation, false inline flow.
//
// Degraded mode (no typesetter) yields an empty string. A rejected
// source is logged and returned as literal text so the surface is
// never blank on bad input. Neither case is an error to the caller.
func (r *Renderer) Render(source string, display bool) string {
	if r.ts == nil {
		return ""
	}
	out, err := r.ts.Typeset(source, display)
	if err != nil {
		if r.Logf != nil {
			r.Logf("typeset rejected %q: %v", source, err)
		}
		return source
	}
	return out
}

// RenderText segments mixed text on $...$ delimiters and renders each
// math span, concatenating the pieces in original order. In degraded
// mode math spans keep their literal source so the text stays readable.
func (r *Renderer) RenderText(text string) string {
	var b strings.Builder
	for _, p := range Segment(text) {
		if p.Kind != PieceMath {
			b.WriteString(p.Value)
			continue
		}
		if r.ts == nil {
			b.WriteString(p.Value)
			continue
		}
		b.WriteString(r.Render(p.Value, false))
	}
	return b.String()
}
