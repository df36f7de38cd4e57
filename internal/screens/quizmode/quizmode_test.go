package quizmode

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/mathtex"
	"github.com/abhisek/mathpal/internal/quiz"
	"github.com/abhisek/mathpal/internal/quizgen"
	"github.com/abhisek/mathpal/internal/screen"
	"github.com/abhisek/mathpal/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendSolve(_ context.Context, _ store.SolveEventData) error {
	return nil
}
func (m *mockEventRepo) CountSolves(_ context.Context) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendQuizResult(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) QuizHistory(_ context.Context, _ store.QueryOpts) ([]store.QuizRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizStatsByTopic(_ context.Context) ([]store.TopicStats, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testQuizScreen() (*QuizScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	gen := quizgen.New(llm.NewMockProvider())
	s := New(gen, events, mathtex.NewRenderer(nil))
	return s, events
}

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID:            "q1",
			Question:      "Tính $2 + 2$",
			Options:       []string{"$4$", "$3$", "$5$", "$22$"},
			CorrectAnswer: "$4$",
			Explanation:   "$2 + 2 = 4$",
		},
		{
			ID:            "q2",
			Question:      "Tính $3 \\cdot 3$",
			Options:       []string{"$6$", "$9$", "$12$", "$33$"},
			CorrectAnswer: "$9$",
			Explanation:   "$3 \\cdot 3 = 9$",
		},
	}
}

// loadQuiz drives the screen from the topic picker into an active quiz
// without going through the generator.
func loadQuiz(t *testing.T, s *QuizScreen, questions []quiz.Question) {
	t.Helper()
	scr, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected a fetch command after topic selection")
	}
	ss := scr.(*QuizScreen)
	if ss.session.Phase() != quiz.PhaseLoading {
		t.Fatalf("Phase = %v, want loading", ss.session.Phase())
	}
	ss.Update(quizReadyMsg{token: 1, questions: questions})
	if ss.session.Phase() != quiz.PhaseActive {
		t.Fatalf("Phase = %v, want active after apply", ss.session.Phase())
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testQuizScreen()
	if s.Title() != "Kiểm tra" {
		t.Errorf("Title = %q, want %q", s.Title(), "Kiểm tra")
	}
}

func TestQuizScreen_StartsAtTopicPicker(t *testing.T) {
	s, _ := testQuizScreen()
	if !s.choosing {
		t.Error("expected the topic picker on a fresh screen")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty topic picker view")
	}
}

func TestQuizScreen_CustomTopicStartsQuiz(t *testing.T) {
	s, _ := testQuizScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "Logarit" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())

	if cmd == nil {
		t.Fatal("expected a fetch command for a custom topic")
	}
	if s.session.Phase() != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading", s.session.Phase())
	}
	if s.session.Topic() != "Logarit" {
		t.Errorf("Topic = %q, want %q", s.session.Topic(), "Logarit")
	}
}

func TestQuizScreen_EmptyCustomTopicIgnored(t *testing.T) {
	s, _ := testQuizScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd := s.Update(enterKey())

	if cmd != nil {
		t.Error("expected no command for an empty custom topic")
	}
	if !s.choosing {
		t.Error("expected to stay on the topic picker")
	}
}

func TestQuizScreen_GenerationFailureReturnsToPicker(t *testing.T) {
	s, _ := testQuizScreen()
	s.Update(enterKey())
	s.Update(quizReadyMsg{token: 1, err: context.DeadlineExceeded})

	if s.session.Phase() != quiz.PhaseIdle {
		t.Errorf("Phase = %v, want idle after failed fetch", s.session.Phase())
	}
	if !s.choosing {
		t.Error("expected topic picker after failure")
	}
	if s.errMsg == "" {
		t.Error("expected error message to be shown")
	}
}

func TestQuizScreen_StaleResultIgnored(t *testing.T) {
	s, _ := testQuizScreen()
	s.Update(enterKey())

	s.Update(quizReadyMsg{token: 99, questions: testQuestions()})
	if s.session.Phase() != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading after stale apply", s.session.Phase())
	}
}

func TestQuizScreen_StaleFailureIgnored(t *testing.T) {
	s, _ := testQuizScreen()
	s.Update(enterKey())

	s.Update(quizReadyMsg{token: 99, err: context.DeadlineExceeded})
	if s.session.Phase() != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading after stale failure", s.session.Phase())
	}
	if s.choosing {
		t.Error("stale failure flipped the screen back to the topic picker")
	}
	if s.errMsg != "" {
		t.Errorf("stale failure set errMsg = %q", s.errMsg)
	}
}

func TestQuizScreen_StaleResultKeepsOptionCursor(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	s.Update(keyPress('j'))
	if s.options.Cursor != 1 {
		t.Fatalf("options cursor = %d, want 1", s.options.Cursor)
	}

	// A superseded fetch result arriving mid-question must not rebuild
	// the option list.
	s.Update(quizReadyMsg{token: 99, questions: testQuestions()})
	if s.options.Cursor != 1 {
		t.Errorf("options cursor = %d after stale result, want 1", s.options.Cursor)
	}
	if s.session.Index() != 0 {
		t.Errorf("Index = %d after stale result, want 0", s.session.Index())
	}
}

func TestQuizScreen_AnswerAndAdvance(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	// Answer the first question with the option under the cursor.
	s.Update(enterKey())
	if !s.session.Revealed() {
		t.Fatal("expected reveal after answering")
	}
	if !s.session.AnsweredCorrectly() {
		t.Error("expected first option to be correct")
	}
	if s.session.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.session.Score())
	}

	// Enter moves on; a second question appears with a fresh option list.
	s.Update(enterKey())
	if s.session.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.session.Index())
	}
	if s.session.Revealed() {
		t.Error("expected reveal reset on the next question")
	}
	if s.options.Cursor != 0 {
		t.Errorf("options cursor = %d, want 0", s.options.Cursor)
	}
}

func TestQuizScreen_RepeatAnswerIgnored(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	s.Update(enterKey())
	score := s.session.Score()

	// Cursor movement and re-answering after reveal must not change score.
	s.Update(keyPress('j'))
	if s.session.Score() != score {
		t.Errorf("Score changed after reveal: %d, want %d", s.session.Score(), score)
	}
}

func TestQuizScreen_FinishSavesResult(t *testing.T) {
	s, events := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	// First question: correct.
	s.Update(enterKey())
	s.Update(enterKey())

	// Second question: move to the correct option, answer, advance.
	s.Update(keyPress('j'))
	s.Update(enterKey())
	_, cmd := s.Update(enterKey())

	if s.session.Phase() != quiz.PhaseFinished {
		t.Fatalf("Phase = %v, want finished", s.session.Phase())
	}
	if cmd == nil {
		t.Fatal("expected a save command on finish")
	}
	cmd()

	if len(events.quizEvents) != 1 {
		t.Fatalf("saved %d quiz events, want 1", len(events.quizEvents))
	}
	got := events.quizEvents[0]
	if got.Topic != topics[0] {
		t.Errorf("Topic = %q, want %q", got.Topic, topics[0])
	}
	if got.Score != 2 || got.Total != 2 {
		t.Errorf("Score/Total = %d/%d, want 2/2", got.Score, got.Total)
	}
	if got.Model != "mock" {
		t.Errorf("Model = %q, want %q", got.Model, "mock")
	}
}

func TestQuizScreen_RestartAfterFinish(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())

	if s.session.Phase() != quiz.PhaseFinished {
		t.Fatalf("Phase = %v, want finished", s.session.Phase())
	}

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('r'))
	ss := scr.(*QuizScreen)
	if ss.session.Phase() != quiz.PhaseLoading {
		t.Errorf("Phase = %v, want loading after restart", ss.session.Phase())
	}
	if cmd == nil {
		t.Error("expected a fetch command after restart")
	}
}

func TestQuizScreen_NewTopicAfterFinish(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())
	s.Update(enterKey())

	s.Update(keyPress('t'))
	if !s.choosing {
		t.Error("expected topic picker after pressing t")
	}
}

func TestQuizScreen_View_ActiveQuestion(t *testing.T) {
	s, _ := testQuizScreen()
	loadQuiz(t, s, testQuestions())

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}
