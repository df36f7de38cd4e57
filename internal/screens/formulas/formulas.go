package formulas

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpal/internal/formulas"
	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/screen"
	"github.com/abhisek/mathpal/internal/ui/components"
	"github.com/abhisek/mathpal/internal/ui/layout"
	"github.com/abhisek/mathpal/internal/ui/theme"
)

// FormulaScreen shows the formula reference with live search.
type FormulaScreen struct {
	renderer *mathtex.Renderer
	search   components.TextInput
	results  []formulas.Category
}

var _ screen.Screen = (*FormulaScreen)(nil)
var _ screen.KeyHintProvider = (*FormulaScreen)(nil)

// New creates the formula reference screen showing the full catalog.
func New(renderer *mathtex.Renderer) *FormulaScreen {
	return &FormulaScreen{
		renderer: renderer,
		search:   components.NewTextInput("Tìm công thức...", 100),
		results:  formulas.All(),
	}
}

func (s *FormulaScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *FormulaScreen) Title() string {
	return "Công thức"
}

func (s *FormulaScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FormulaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.results = formulas.Search(s.search.Value())
	return s, cmd
}

// displayFormula typesets a catalog formula, keeping the literal source
// visible when no typesetter is available.
func (s *FormulaScreen) displayFormula(source string) string {
	if !s.renderer.Available() {
		return source
	}
	return s.renderer.Render(source, true)
}

func (s *FormulaScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("  " + s.search.View())
	b.WriteString("\n\n")

	if len(s.results) == 0 {
		b.WriteString(theme.Hint.Render("  Không tìm thấy công thức nào."))
		b.WriteString("\n")
		return b.String()
	}

	for i, cat := range s.results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  " + cat.Name))
		b.WriteString("\n\n")
		for _, f := range cat.Items {
			b.WriteString(theme.Body.Render("  • " + f.Name))
			b.WriteString("\n")
			b.WriteString(theme.Math.Render("      " + s.displayFormula(f.Formula)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
