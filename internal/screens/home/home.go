package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/quizgen"
	"github.com/abhisek/mathpal/internal/router"
	"github.com/abhisek/mathpal/internal/screen"
	formulascreen "github.com/abhisek/mathpal/internal/screens/formulas"
	quizscreen "github.com/abhisek/mathpal/internal/screens/quizmode"
	solvescreen "github.com/abhisek/mathpal/internal/screens/solvermode"
	solve "github.com/abhisek/mathpal/internal/solver"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/abhisek/mathpal/internal/ui/components"
	"github.com/abhisek/mathpal/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	solveCount int
	quizCount  int
	noLLM      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The LLM-backed entries are disabled when
// their services are nil (no provider configured).
func New(sv *solve.Solver, gen *quizgen.Generator, events store.EventRepo, renderer *mathtex.Renderer) *HomeScreen {
	var solveCount, quizCount int
	if events != nil {
		ctx := context.Background()
		solveCount, _ = events.CountSolves(ctx)
		if history, err := events.QuizHistory(ctx, store.QueryOpts{}); err == nil {
			quizCount = len(history)
		}
	}

	items := []components.MenuItem{
		{Label: "GIẢI BÀI TẬP", Disabled: sv == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: solvescreen.New(sv, renderer)}
			}
		}},
		{Label: "KIỂM TRA", Disabled: gen == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(gen, events, renderer)}
			}
		}},
		{Label: "CÔNG THỨC", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: formulascreen.New(renderer)}
			}
		}},
		{Label: "THOÁT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		solveCount: solveCount,
		quizCount:  quizCount,
		noLLM:      sv == nil && gen == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("MathPal"),
		theme.Subtitle.Width(width).Render("Trợ lý toán học của bạn"),
	)

	stats := fmt.Sprintf("%d bài đã giải   %d bài kiểm tra", h.solveCount, h.quizCount)
	sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(stats))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	if h.noLLM {
		notice := "Chưa cấu hình API key. Giải bài tập và kiểm tra đang bị tắt."
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(notice))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Trang chủ"
}
