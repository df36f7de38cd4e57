package solvermode

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/mathtex"
	solve "github.com/abhisek/mathpal/internal/solver"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testSolverScreen() *SolverScreen {
	provider := llm.NewMockProvider()
	return New(solve.New(provider, nil), mathtex.NewRenderer(nil))
}

func TestSolverScreen_Title(t *testing.T) {
	s := testSolverScreen()
	if s.Title() != "Giải bài tập" {
		t.Errorf("Title = %q, want %q", s.Title(), "Giải bài tập")
	}
}

func TestSolverScreen_EmptyInputDoesNotSolve(t *testing.T) {
	s := testSolverScreen()
	_, cmd := s.Update(enterKey())
	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if s.solving {
		t.Error("expected screen to stay idle")
	}
}

func TestSolverScreen_EnterStartsSolve(t *testing.T) {
	s := testSolverScreen()
	for _, r := range "2+2" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a solve command")
	}
	if !s.solving {
		t.Error("expected solving state")
	}
}

func TestSolverScreen_TabTogglesImageInput(t *testing.T) {
	s := testSolverScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !s.imgFocus {
		t.Fatal("expected image input to have focus after tab")
	}

	for _, r := range "bai.png" {
		s.Update(keyPress(r))
	}
	if s.imgInput.Value() != "bai.png" {
		t.Errorf("imgInput = %q, want %q", s.imgInput.Value(), "bai.png")
	}
	if s.input.Value() != "" {
		t.Errorf("problem input = %q, want empty", s.input.Value())
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.imgFocus {
		t.Error("expected focus back on the problem input")
	}
}

func TestSolverScreen_ImageOnlyStartsSolve(t *testing.T) {
	s := testSolverScreen()

	path := filepath.Join(t.TempDir(), "bai.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range path {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a solve command for image-only input")
	}
	if !s.solving {
		t.Error("expected solving state")
	}
}

func TestSolverScreen_BadImagePathFailsSolve(t *testing.T) {
	s := testSolverScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "/khong/ton/tai.png" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a solve command")
	}

	msg, ok := cmd().(solveDoneMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want solveDoneMsg", msg)
	}
	if msg.err == nil {
		t.Error("expected an error for a missing image file")
	}
}

func TestSolverScreen_BusyGuardDropsKeys(t *testing.T) {
	s := testSolverScreen()
	s.solving = true

	before := s.input.Value()
	s.Update(keyPress('x'))
	_, cmd := s.Update(enterKey())
	if cmd != nil {
		t.Error("expected no command while a solve is in flight")
	}
	if s.input.Value() != before {
		t.Error("expected input to be untouched while solving")
	}
}

func TestSolverScreen_ResultShown(t *testing.T) {
	s := testSolverScreen()
	s.solving = true

	s.Update(solveDoneMsg{result: &solve.Result{
		Solution:        "Phương trình có hai nghiệm.",
		Steps:           []string{"Tính $\\Delta = 1$", "Suy ra $x = 2$ hoặc $x = 3$"},
		FinalAnswer:     "$x = 2$ hoặc $x = 3$",
		RelatedFormulas: []string{"x = \\frac{-b \\pm \\sqrt{b^2 - 4ac}}{2a}"},
	}})

	if s.solving {
		t.Error("expected solving to be cleared")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "hai nghiệm") {
		t.Error("expected solution text in view")
	}
	if !strings.Contains(view, "Đáp số") {
		t.Error("expected final answer section in view")
	}
}

func TestSolverScreen_ErrorShown(t *testing.T) {
	s := testSolverScreen()
	s.solving = true

	s.Update(solveDoneMsg{err: errors.New("request timed out")})

	if s.errMsg == "" {
		t.Fatal("expected error message")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "request timed out") {
		t.Error("expected error text in view")
	}
}

func TestSolverScreen_NewProblemResets(t *testing.T) {
	s := testSolverScreen()
	s.result = &solve.Result{Solution: "xong", FinalAnswer: "$1$"}

	s.Update(keyPress('n'))

	if s.result != nil {
		t.Error("expected result to be cleared")
	}
	if s.input.Value() != "" {
		t.Error("expected input to be reset")
	}
	if s.imgInput.Value() != "" {
		t.Error("expected image input to be reset")
	}
	if s.imgFocus {
		t.Error("expected focus back on the problem input")
	}
}
