package mathtex

import (
	"reflect"
	"testing"
)

func TestSegment_NoDelimiters(t *testing.T) {
	got := Segment("just plain text")
	want := []Piece{{PieceText, "just plain text"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_SingleSpan(t *testing.T) {
	got := Segment("a$x^2$b")
	want := []Piece{
		{PieceText, "a"},
		{PieceMath, "x^2"},
		{PieceText, "b"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_AdjacentSpansKeepEmptyText(t *testing.T) {
	got := Segment("$a$$b$")
	want := []Piece{
		{PieceText, ""},
		{PieceMath, "a"},
		{PieceText, ""},
		{PieceMath, "b"},
		{PieceText, ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_UnpairedDollarIsText(t *testing.T) {
	got := Segment("price is $5")
	want := []Piece{{PieceText, "price is $5"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_NonGreedy(t *testing.T) {
	got := Segment("$a$ and $b$")
	want := []Piece{
		{PieceText, ""},
		{PieceMath, "a"},
		{PieceText, " and "},
		{PieceMath, "b"},
		{PieceText, ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	got := Segment("")
	want := []Piece{{PieceText, ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment = %v, want %v", got, want)
	}
}

func TestSegment_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a$x^2$b",
		"$a$$b$",
		"Giải phương trình $x^2 - 5x + 6 = 0$ trên $\\mathbb{R}$",
		"unpaired $ stays",
		"$\\frac{1}{2}$ tail",
		"$$",
	}
	for _, in := range inputs {
		if got := Join(Segment(in)); got != in {
			t.Errorf("Join(Segment(%q)) = %q, want input back", in, got)
		}
	}
}
