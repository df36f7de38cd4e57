package solvermode

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/screen"
	solve "github.com/abhisek/mathpal/internal/solver"
	"github.com/abhisek/mathpal/internal/ui/components"
	"github.com/abhisek/mathpal/internal/ui/layout"
	"github.com/abhisek/mathpal/internal/ui/theme"
)

// solveDoneMsg delivers the outcome of an async solve call.
type solveDoneMsg struct {
	result *solve.Result
	err    error
}

// SolverScreen lets the student type a problem, optionally attach an
// image of it, and shows the step-by-step solution.
type SolverScreen struct {
	solver   *solve.Solver
	renderer *mathtex.Renderer

	input    components.TextInput
	imgInput components.TextInput
	imgFocus bool
	solving  bool
	result   *solve.Result
	errMsg   string
}

var _ screen.Screen = (*SolverScreen)(nil)
var _ screen.KeyHintProvider = (*SolverScreen)(nil)

// New creates the solver screen.
func New(sv *solve.Solver, renderer *mathtex.Renderer) *SolverScreen {
	s := &SolverScreen{
		solver:   sv,
		renderer: renderer,
		input:    components.NewTextInput("Nhập bài toán, ví dụ: giải $x^2 - 5x + 6 = 0$", 500),
		imgInput: components.NewTextInput("Đường dẫn ảnh PNG (tuỳ chọn)", 260),
	}
	s.imgInput.Blur()
	return s
}

func (s *SolverScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SolverScreen) Title() string {
	return "Giải bài tập"
}

func (s *SolverScreen) KeyHints() []layout.KeyHint {
	if s.solving {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.result != nil || s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "N", Description: "New problem"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Attach image"},
		{Key: "Enter", Description: "Solve"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SolverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case solveDoneMsg:
		s.solving = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.result = msg.result
		return s, nil

	case tea.KeyMsg:
		// One request at a time; keystrokes during a solve are dropped.
		if s.solving {
			return s, nil
		}

		if s.result != nil || s.errMsg != "" {
			if msg.String() == "n" {
				s.result = nil
				s.errMsg = ""
				s.input.Reset()
				s.imgInput.Reset()
				s.imgInput.Blur()
				s.imgFocus = false
				return s, s.input.Focus()
			}
			return s, nil
		}

		switch msg.String() {
		case "tab":
			s.imgFocus = !s.imgFocus
			if s.imgFocus {
				s.input.Blur()
				return s, s.imgInput.Focus()
			}
			s.imgInput.Blur()
			return s, s.input.Focus()
		case "enter":
			problem := strings.TrimSpace(s.input.Value())
			imagePath := strings.TrimSpace(s.imgInput.Value())
			if problem == "" && imagePath == "" {
				return s, nil
			}
			s.solving = true
			return s, s.startSolve(problem, imagePath)
		}
	}

	if !s.solving && s.result == nil && s.errMsg == "" {
		var cmd tea.Cmd
		if s.imgFocus {
			s.imgInput, cmd = s.imgInput.Update(msg)
		} else {
			s.input, cmd = s.input.Update(msg)
		}
		return s, cmd
	}

	return s, nil
}

// startSolve reads the optional image and issues the solve call off the
// update loop. A bad image path fails the attempt without calling out.
func (s *SolverScreen) startSolve(problem, imagePath string) tea.Cmd {
	return func() tea.Msg {
		var image []byte
		if imagePath != "" {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return solveDoneMsg{err: fmt.Errorf("đọc ảnh: %w", err)}
			}
			image = data
		}
		result, err := s.solver.Solve(context.Background(), problem, image)
		return solveDoneMsg{result: result, err: err}
	}
}

func (s *SolverScreen) View(width, height int) string {
	if s.solving {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Đang giải...")
	}

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Lỗi: %s\n\n  Nhấn N để thử lại.", s.errMsg))
	}

	if s.result != nil {
		return s.renderResult(width)
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Bài toán:"))
	b.WriteString("\n\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("  Ảnh:"))
	b.WriteString("\n\n  ")
	b.WriteString(s.imgInput.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Dùng $...$ cho công thức toán. Tab chuyển ô nhập."))
	return b.String()
}

func (s *SolverScreen) renderResult(width int) string {
	r := s.result
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("  Lời giải"))
	b.WriteString("\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render("  " + s.renderer.RenderText(r.Solution)))
	b.WriteString("\n\n")

	for i, step := range r.Steps {
		line := fmt.Sprintf("  %d. %s", i+1, s.renderer.RenderText(step))
		b.WriteString(wrap.Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Correct.Render("  Đáp số: " + s.renderer.RenderText(r.FinalAnswer)))
	b.WriteString("\n")

	if len(r.RelatedFormulas) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Công thức liên quan:"))
		b.WriteString("\n")
		for _, f := range r.RelatedFormulas {
			shown := f
			if s.renderer.Available() {
				shown = s.renderer.Render(f, false)
			}
			b.WriteString(theme.Math.Render("    " + shown))
			b.WriteString("\n")
		}
	}

	return b.String()
}
