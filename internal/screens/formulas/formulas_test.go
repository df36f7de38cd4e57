package formulas

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpal/internal/mathtex"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testFormulaScreen() *FormulaScreen {
	return New(mathtex.NewRenderer(nil))
}

func TestFormulaScreen_Title(t *testing.T) {
	s := testFormulaScreen()
	if s.Title() != "Công thức" {
		t.Errorf("Title = %q, want %q", s.Title(), "Công thức")
	}
}

func TestFormulaScreen_ShowsFullCatalog(t *testing.T) {
	s := testFormulaScreen()
	view := s.View(80, 24)

	for _, cat := range []string{"Đại số", "Lượng giác", "Giải tích"} {
		if !strings.Contains(view, cat) {
			t.Errorf("expected category %q in view", cat)
		}
	}
}

func TestFormulaScreen_SearchFilters(t *testing.T) {
	s := testFormulaScreen()
	for _, r := range "đạo hàm" {
		s.Update(keyPress(r))
	}

	if len(s.results) != 1 {
		t.Fatalf("got %d categories, want 1", len(s.results))
	}
	if s.results[0].Name != "Giải tích" {
		t.Errorf("category = %q, want %q", s.results[0].Name, "Giải tích")
	}
}

func TestFormulaScreen_NoMatches(t *testing.T) {
	s := testFormulaScreen()
	for _, r := range "ma trận" {
		s.Update(keyPress(r))
	}

	if len(s.results) != 0 {
		t.Fatalf("got %d categories, want 0", len(s.results))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Không tìm thấy") {
		t.Error("expected empty-state message")
	}
}

func TestFormulaScreen_DegradedModeShowsSource(t *testing.T) {
	s := testFormulaScreen()
	view := s.View(80, 24)
	if !strings.Contains(view, "\\frac{-b \\pm \\sqrt{b^2 - 4ac}}{2a}") {
		t.Error("expected literal formula source without a typesetter")
	}
}
