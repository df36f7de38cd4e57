package quizmode

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/quiz"
	"github.com/abhisek/mathpal/internal/quizgen"
	"github.com/abhisek/mathpal/internal/screen"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/abhisek/mathpal/internal/ui/components"
	"github.com/abhisek/mathpal/internal/ui/layout"
	"github.com/abhisek/mathpal/internal/ui/theme"
)

// quizReadyMsg delivers a generated question set. The token ties it to the
// Begin call that requested it so a superseded fetch is discarded.
type quizReadyMsg struct {
	token     uint64
	questions []quiz.Question
	err       error
}

// Topics offered in the topic picker.
var topics = []string{
	"Hàm số",
	"Đạo hàm",
	"Tích phân",
	"Hình học không gian",
	"Số phức",
	"Xác suất",
}

// QuizScreen runs a multiple-choice quiz on a chosen topic.
type QuizScreen struct {
	gen      *quizgen.Generator
	events   store.EventRepo
	renderer *mathtex.Renderer

	session     *quiz.Session
	menu        components.Menu
	custom      components.TextInput
	customFocus bool
	options     components.OptionList
	choosing    bool
	saved       bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen, starting at the topic picker.
func New(gen *quizgen.Generator, events store.EventRepo, renderer *mathtex.Renderer) *QuizScreen {
	s := &QuizScreen{
		gen:      gen,
		events:   events,
		renderer: renderer,
		session:  quiz.NewSession(topics[0]),
		choosing: true,
	}
	s.menu = components.NewMenu(s.topicItems())
	s.custom = components.NewTextInput("Hoặc nhập chủ đề khác...", 100)
	s.custom.Blur()
	return s
}

func (s *QuizScreen) topicItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(topics))
	for _, topic := range topics {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				return s.startQuiz(topic)
			},
		})
	}
	return items
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Kiểm tra"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.session.Phase() == quiz.PhaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.choosing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Tab", Description: "Custom topic"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.session.Phase() == quiz.PhaseFinished:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "T", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	case s.session.Revealed():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// startQuiz kicks off generation for the given topic. The token from Begin
// rides along with the async fetch so the result can be matched back.
func (s *QuizScreen) startQuiz(topic string) tea.Cmd {
	if err := s.session.SelectTopic(topic); err != nil {
		return nil
	}
	token, err := s.session.Begin()
	if err != nil {
		return nil
	}
	s.choosing = false
	s.saved = false
	s.errMsg = ""
	s.custom.Reset()
	s.custom.Blur()
	s.customFocus = false
	return s.fetchQuestions(token, topic)
}

func (s *QuizScreen) fetchQuestions(token uint64, topic string) tea.Cmd {
	return func() tea.Msg {
		questions, err := s.gen.Generate(context.Background(), topic)
		return quizReadyMsg{token: token, questions: questions, err: err}
	}
}

// saveResult persists a finished attempt. Best effort: a storage failure
// never interrupts the quiz.
func (s *QuizScreen) saveResult() tea.Cmd {
	data := store.QuizEventData{
		Topic: s.session.Topic(),
		Total: s.session.Len(),
		Score: s.session.Score(),
		Model: s.gen.ModelID(),
	}
	return func() tea.Msg {
		if err := s.events.AppendQuizResult(context.Background(), data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save quiz result: %v\n", err)
		}
		return nil
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.err != nil {
			// A stale failure must not touch screen state either.
			if !s.session.Fail(msg.token) {
				return s, nil
			}
			s.errMsg = msg.err.Error()
			s.choosing = true
			return s, nil
		}
		consumed, err := s.session.Apply(msg.token, msg.questions)
		if !consumed {
			return s, nil
		}
		if err != nil {
			s.errMsg = err.Error()
			s.choosing = true
			return s, nil
		}
		if q := s.session.CurrentQuestion(); q != nil {
			s.options = components.NewOptionList(q.Options)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.session.Phase() == quiz.PhaseLoading {
		return s, nil
	}

	if s.choosing {
		if msg.String() == "tab" {
			s.customFocus = !s.customFocus
			if s.customFocus {
				return s, s.custom.Focus()
			}
			s.custom.Blur()
			return s, nil
		}
		if s.customFocus {
			if msg.String() == "enter" {
				topic := strings.TrimSpace(s.custom.Value())
				if topic == "" {
					return s, nil
				}
				return s, s.startQuiz(topic)
			}
			var cmd tea.Cmd
			s.custom, cmd = s.custom.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	switch s.session.Phase() {
	case quiz.PhaseActive:
		if s.session.Revealed() {
			if msg.String() == "enter" {
				s.session.Advance()
				if s.session.Phase() == quiz.PhaseFinished {
					if s.saved {
						return s, nil
					}
					s.saved = true
					return s, s.saveResult()
				}
				if q := s.session.CurrentQuestion(); q != nil {
					s.options = components.NewOptionList(q.Options)
				}
			}
			return s, nil
		}
		if msg.String() == "enter" {
			s.session.Answer(s.options.Current())
			return s, nil
		}
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd

	case quiz.PhaseFinished:
		switch msg.String() {
		case "r":
			token, err := s.session.Restart()
			if err != nil {
				return s, nil
			}
			s.saved = false
			s.errMsg = ""
			return s, s.fetchQuestions(token, s.session.Topic())
		case "t":
			s.choosing = true
			return s, nil
		}
	}

	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.session.Phase() == quiz.PhaseLoading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Đang soạn câu hỏi...")
	}

	if s.choosing {
		return s.renderTopicPicker()
	}

	switch s.session.Phase() {
	case quiz.PhaseActive:
		return s.renderQuestion(width)
	case quiz.PhaseFinished:
		return s.renderSummary(width)
	}

	return s.renderTopicPicker()
}

func (s *QuizScreen) renderTopicPicker() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("  Chọn chủ đề:"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	b.WriteString("\n  ")
	b.WriteString(s.custom.View())
	b.WriteString("\n")
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  Lỗi: " + s.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Câu %d/%d", s.session.Index()+1, s.session.Len()),
		float64(s.session.Index())/float64(s.session.Len()),
		false, 30)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(wrap.Foreground(theme.Text).Bold(true).Render("  " + s.renderer.RenderText(q.Question)))
	b.WriteString("\n\n")

	chosen, _ := s.session.Selected()
	b.WriteString(s.options.View(s.session.Revealed(), q.CorrectAnswer, chosen, s.renderer.RenderText))

	if s.session.Revealed() {
		b.WriteString("\n")
		if s.session.AnsweredCorrectly() {
			b.WriteString(theme.Correct.Render("  Chính xác!"))
		} else {
			b.WriteString(theme.Incorrect.Render("  Chưa đúng."))
		}
		if q.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(wrap.Foreground(theme.TextDim).Render("  " + s.renderer.RenderText(q.Explanation)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) renderSummary(width int) string {
	score := s.session.Score()
	total := s.session.Len()

	var verdict string
	switch {
	case total > 0 && score == total:
		verdict = "Xuất sắc!"
	case total > 0 && score*2 >= total:
		verdict = "Làm tốt lắm!"
	default:
		verdict = "Cố gắng lần sau nhé!"
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Kết quả: %d/%d", score, total)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(verdict))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Chủ đề: " + s.session.Topic()))
	return b.String()
}
