package mathtex

import "strings"

// PieceKind distinguishes plain text from math source in a segmented string.
type PieceKind int

const (
	PieceText PieceKind = iota
	PieceMath
)

// Piece is one contiguous run of either plain text or math source.
type Piece struct {
	Kind  PieceKind
	Value string
}

// Segment splits text on single-dollar $...$ spans, non-greedy, single level.
// The output alternates text and math pieces in original order, always
// starting and ending with a text piece; empty text pieces between adjacent
// spans are preserved so callers can render them as no-ops. A lone unpaired
// dollar sign is ordinary text. Math piece values exclude the delimiters.
func Segment(text string) []Piece {
	var pieces []Piece
	var buf strings.Builder

	i := 0
	for i < len(text) {
		if text[i] != '$' {
			buf.WriteByte(text[i])
			i++
			continue
		}

		close := strings.IndexByte(text[i+1:], '$')
		if close < 0 {
			// No closing delimiter, the rest is plain text.
			buf.WriteString(text[i:])
			i = len(text)
			break
		}

		pieces = append(pieces, Piece{Kind: PieceText, Value: buf.String()})
		buf.Reset()

		pieces = append(pieces, Piece{Kind: PieceMath, Value: text[i+1 : i+1+close]})
		i += close + 2
	}

	pieces = append(pieces, Piece{Kind: PieceText, Value: buf.String()})
	return pieces
}

// Join is the inverse of Segment: it concatenates piece values in order,
// re-wrapping math pieces in dollar signs.
func Join(pieces []Piece) string {
	var b strings.Builder
	for _, p := range pieces {
		if p.Kind == PieceMath {
			b.WriteByte('$')
			b.WriteString(p.Value)
			b.WriteByte('$')
		} else {
			b.WriteString(p.Value)
		}
	}
	return b.String()
}
