package mathtex

import (
	"fmt"
	"strings"
)

// Typesetter converts a math source string into displayable text.
// display selects standalone-equation presentation over inline flow.
type Typesetter interface {
	Typeset(source string, display bool) (string, error)
}

// ErrRenderRejected indicates the typesetter rejected the source as
// invalid math syntax.
type ErrRenderRejected struct {
	Source string
	Err    error
}

func (e *ErrRenderRejected) Error() string {
	return fmt.Sprintf("math source rejected: %v", e.Err)
}

func (e *ErrRenderRejected) Unwrap() error { return e.Err }

// symbols maps LaTeX commands to their Unicode equivalents.
var symbols = map[string]string{
	"pm":      "±",
	"mp":      "∓",
	"cdot":    "·",
	"times":   "×",
	"div":     "÷",
	"leq":     "≤",
	"le":      "≤",
	"geq":     "≥",
	"ge":      "≥",
	"neq":     "≠",
	"ne":      "≠",
	"approx":  "≈",
	"equiv":   "≡",
	"infty":   "∞",
	"to":      "→",
	"in":      "∈",
	"subset":  "⊂",
	"cup":     "∪",
	"cap":     "∩",
	"forall":  "∀",
	"exists":  "∃",
	"int":     "∫",
	"sum":     "Σ",
	"prod":    "Π",
	"partial": "∂",
	"degree":  "°",
	"circ":    "∘",
	"ldots":   "…",
	"dots":    "…",
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"Delta":   "Δ",
	"epsilon": "ε",
	"theta":   "θ",
	"lambda":  "λ",
	"mu":      "μ",
	"pi":      "π",
	"sigma":   "σ",
	"phi":     "φ",
	"varphi":  "φ",
	"omega":   "ω",
	"Omega":   "Ω",
}

// names are commands rendered as their own literal name (function names
// and operators that KaTeX sets in roman type).
var names = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true,
	"log": true, "ln": true, "lim": true, "exp": true,
	"min": true, "max": true, "mod": true,
}

// layoutCommands are accepted and dropped: they only affect spacing or
// delimiter sizing, which plain terminal text cannot express.
var layoutCommands = map[string]bool{
	"left": true, "right": true, "big": true, "Big": true,
	"displaystyle": true,
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'n': 'ₙ', 'x': 'ₓ',
}

// TermTypesetter renders a practical subset of LaTeX as terminal Unicode.
// Sources using commands outside the subset, or with unbalanced braces,
// are rejected with *ErrRenderRejected.
type TermTypesetter struct{}

// NewTermTypesetter creates a terminal typesetter.
func NewTermTypesetter() *TermTypesetter {
	return &TermTypesetter{}
}

func (t *TermTypesetter) Typeset(source string, display bool) (string, error) {
	p := &texParser{src: []rune(source)}
	out, err := p.parseUntil(nil)
	if err != nil {
		return "", &ErrRenderRejected{Source: source, Err: err}
	}
	_ = display // presentation only; the terminal form is identical
	return out, nil
}

// texParser walks the rune slice once, expanding commands as it goes.
type texParser struct {
	src []rune
	pos int
}

// parseUntil consumes input until EOF or the given terminator rune.
func (p *texParser) parseUntil(stop func(rune) bool) (string, error) {
	var b strings.Builder
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if stop != nil && stop(r) {
			return b.String(), nil
		}
		switch r {
		case '\\':
			s, err := p.parseCommand()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case '{':
			p.pos++
			s, err := p.parseUntil(func(r rune) bool { return r == '}' })
			if err != nil {
				return "", err
			}
			if p.pos >= len(p.src) {
				return "", fmt.Errorf("unbalanced brace")
			}
			p.pos++ // consume '}'
			b.WriteString(s)
		case '}':
			return "", fmt.Errorf("unbalanced brace")
		case '^':
			p.pos++
			s, err := p.parseScript(superscripts, "^")
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case '_':
			p.pos++
			s, err := p.parseScript(subscripts, "_")
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			b.WriteRune(r)
			p.pos++
		}
	}
	if stop != nil {
		return b.String(), nil
	}
	return b.String(), nil
}

// parseCommand handles a backslash escape at the current position.
func (p *texParser) parseCommand() (string, error) {
	p.pos++ // consume '\'
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("trailing backslash")
	}

	// Single-char escapes: \{ \} \$ \\ \, \; \  etc.
	r := p.src[p.pos]
	if !isLetter(r) {
		p.pos++
		switch r {
		case ',', ';', '!', ' ':
			return " ", nil
		case '\\':
			return "\n", nil
		default:
			return string(r), nil
		}
	}

	start := p.pos
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	switch {
	case name == "frac":
		num, err := p.parseGroup(name)
		if err != nil {
			return "", err
		}
		den, err := p.parseGroup(name)
		if err != nil {
			return "", err
		}
		return fracString(num, den), nil

	case name == "sqrt":
		arg, err := p.parseGroup(name)
		if err != nil {
			return "", err
		}
		return "√(" + arg + ")", nil

	case name == "lim" && p.peekRune() == '_':
		// \lim_{x \to 0} reads better with the bound behind the operator.
		p.pos++
		bound, err := p.parseScriptGroup()
		if err != nil {
			return "", err
		}
		return "lim[" + bound + "]", nil

	case name == "mathrm" || name == "text":
		return p.parseGroup(name)

	case symbols[name] != "":
		return symbols[name], nil

	case names[name]:
		return name, nil

	case layoutCommands[name]:
		return "", nil
	}

	return "", fmt.Errorf("unsupported command \\%s", name)
}

// parseGroup consumes a braced argument for the named command.
func (p *texParser) parseGroup(cmd string) (string, error) {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		// Single-token argument, e.g. \sqrt2 or \frac12.
		if p.pos < len(p.src) {
			if p.src[p.pos] == '\\' {
				return p.parseCommand()
			}
			r := p.src[p.pos]
			p.pos++
			return string(r), nil
		}
		return "", fmt.Errorf("\\%s missing argument", cmd)
	}
	p.pos++ // consume '{'
	s, err := p.parseUntil(func(r rune) bool { return r == '}' })
	if err != nil {
		return "", err
	}
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("\\%s argument not closed", cmd)
	}
	p.pos++ // consume '}'
	return s, nil
}

// parseScript handles the argument of ^ or _, converting to the Unicode
// script alphabet when every rune has a form there.
func (p *texParser) parseScript(alphabet map[rune]rune, op string) (string, error) {
	arg, err := p.parseScriptGroup()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range arg {
		sr, ok := alphabet[r]
		if !ok {
			return op + "(" + arg + ")", nil
		}
		b.WriteRune(sr)
	}
	if b.Len() == 0 {
		return "", nil
	}
	return b.String(), nil
}

// parseScriptGroup reads either a braced group or a single token.
func (p *texParser) parseScriptGroup() (string, error) {
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("dangling script operator")
	}
	if p.src[p.pos] == '{' {
		p.pos++
		s, err := p.parseUntil(func(r rune) bool { return r == '}' })
		if err != nil {
			return "", err
		}
		if p.pos >= len(p.src) {
			return "", fmt.Errorf("unbalanced brace")
		}
		p.pos++
		return s, nil
	}
	if p.src[p.pos] == '\\' {
		return p.parseCommand()
	}
	r := p.src[p.pos]
	p.pos++
	return string(r), nil
}

func (p *texParser) peekRune() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// fracString renders a fraction, parenthesizing multi-token operands.
func fracString(num, den string) string {
	if needsParens(num) {
		num = "(" + num + ")"
	}
	if needsParens(den) {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

func needsParens(s string) bool {
	if len([]rune(s)) <= 1 {
		return false
	}
	for _, r := range s {
		if r == '+' || r == '-' || r == ' ' || r == '/' {
			return true
		}
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
