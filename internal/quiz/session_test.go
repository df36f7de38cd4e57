package quiz

import (
	"errors"
	"testing"
)

func fiveQuestions() []Question {
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{
			Question:      "Tính $2+2$?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: "4",
			Explanation:   "Vì $2+2=4$.",
		}
	}
	return qs
}

func activeSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("Đạo hàm")
	token, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := s.Apply(token, fiveQuestions()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return s
}

func TestSession_StartTransitions(t *testing.T) {
	s := NewSession("Đại số 10")
	if s.Phase() != PhaseIdle {
		t.Fatalf("new session phase = %v, want idle", s.Phase())
	}

	token, err := s.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("phase after Begin = %v, want loading", s.Phase())
	}

	consumed, err := s.Apply(token, fiveQuestions())
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !consumed {
		t.Error("fresh Apply not consumed")
	}
	if s.Phase() != PhaseActive {
		t.Errorf("phase = %v, want active", s.Phase())
	}
	if s.Index() != 0 || s.Score() != 0 || s.Revealed() {
		t.Errorf("fresh attempt not reset: index=%d score=%d revealed=%v",
			s.Index(), s.Score(), s.Revealed())
	}
	if _, answered := s.Selected(); answered {
		t.Error("fresh attempt has a selected option")
	}
}

func TestSession_BeginWhileLoadingIsBusy(t *testing.T) {
	s := NewSession("Tích phân")
	if _, err := s.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := s.Begin(); !errors.Is(err, ErrBusy) {
		t.Errorf("second Begin err = %v, want ErrBusy", err)
	}
	if err := s.SelectTopic("Số phức"); !errors.Is(err, ErrBusy) {
		t.Errorf("SelectTopic while loading err = %v, want ErrBusy", err)
	}
}

func TestSession_FailRestoresPriorPhase(t *testing.T) {
	s := NewSession("Hàm số")
	token, _ := s.Begin()
	if !s.Fail(token) {
		t.Error("fresh Fail not consumed")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase after failed start = %v, want idle", s.Phase())
	}
	if s.Len() != 0 {
		t.Errorf("question set present after failure: len=%d", s.Len())
	}
}

func TestSession_FailAfterFinishKeepsFinished(t *testing.T) {
	s := activeSession(t)
	for i := 0; i < 5; i++ {
		s.Answer("3")
		s.Advance()
	}
	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.Phase())
	}

	token, err := s.Restart()
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	s.Fail(token)
	if s.Phase() != PhaseFinished {
		t.Errorf("phase after failed restart = %v, want finished", s.Phase())
	}
	if s.Score() != 0 || s.Len() != 5 {
		t.Errorf("finished attempt corrupted: score=%d len=%d", s.Score(), s.Len())
	}
}

func TestSession_EmptyResultRestoresPhase(t *testing.T) {
	s := NewSession("Xác suất")
	token, _ := s.Begin()
	consumed, err := s.Apply(token, nil)
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("Apply(empty) err = %v, want ErrEmptyQuiz", err)
	}
	if !consumed {
		t.Error("empty Apply not consumed")
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", s.Phase())
	}
}

func TestSession_StaleResponseDiscarded(t *testing.T) {
	s := NewSession("Hình học không gian")
	stale, _ := s.Begin()
	s.Fail(stale)

	fresh, _ := s.Begin()
	consumed, err := s.Apply(stale, fiveQuestions())
	if err != nil {
		t.Fatalf("stale Apply err = %v, want silent discard", err)
	}
	if consumed {
		t.Error("stale Apply reported as consumed")
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("stale response applied: phase = %v", s.Phase())
	}
	if s.Fail(stale) {
		t.Error("stale Fail reported as consumed")
	}

	if _, err := s.Apply(fresh, fiveQuestions()); err != nil {
		t.Fatalf("fresh Apply: %v", err)
	}
	if s.Phase() != PhaseActive {
		t.Errorf("phase = %v, want active", s.Phase())
	}
}

func TestSession_ScoringCountsFirstCorrectAnswersOnly(t *testing.T) {
	s := activeSession(t)

	// Question 1 correct, questions 2-5 wrong.
	s.Answer("4")
	s.Advance()
	for i := 0; i < 4; i++ {
		s.Answer("3")
		s.Advance()
	}

	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.Phase())
	}
	if s.Score() != 1 {
		t.Errorf("score = %d/%d, want 1/5", s.Score(), s.Len())
	}
}

func TestSession_AnswerIsIdempotent(t *testing.T) {
	s := activeSession(t)

	if !s.Answer("3") {
		t.Fatal("first answer not registered")
	}
	// Second answer, even the correct one, must not register or score.
	if s.Answer("4") {
		t.Error("second answer registered")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	if sel, _ := s.Selected(); sel != "3" {
		t.Errorf("selected = %q, want first answer kept", sel)
	}

	// And a correct first answer scores exactly once.
	s.Advance()
	s.Answer("4")
	s.Answer("4")
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestSession_AdvanceResetsSelection(t *testing.T) {
	s := activeSession(t)

	// Advance before answering is a no-op.
	s.Advance()
	if s.Index() != 0 {
		t.Fatal("Advance moved on without a revealed answer")
	}

	s.Answer("4")
	if !s.Revealed() {
		t.Fatal("answer did not reveal")
	}
	s.Advance()

	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if _, answered := s.Selected(); answered || s.Revealed() {
		t.Error("selection/reveal not reset on advance")
	}
}

func TestSession_ScoreNeverExceedsQuestionCount(t *testing.T) {
	s := activeSession(t)
	for s.Phase() == PhaseActive {
		s.Answer("4")
		s.Answer("4")
		s.Advance()
	}
	if s.Score() != 5 {
		t.Errorf("score = %d, want 5", s.Score())
	}
}

func TestSession_RestartDestroysFinishedAttempt(t *testing.T) {
	s := activeSession(t)
	for s.Phase() == PhaseActive {
		s.Answer("4")
		s.Advance()
	}

	token, err := s.Restart()
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Topic() != "Đạo hàm" {
		t.Errorf("topic = %q, want last-used topic kept", s.Topic())
	}
	if _, err := s.Apply(token, fiveQuestions()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Score() != 0 || s.Index() != 0 {
		t.Errorf("restart did not reset attempt: score=%d index=%d", s.Score(), s.Index())
	}
}
