package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-3-flash-preview",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 400,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  "[user]\ngenerate a quiz",
		ResponseBody: `[{"question":"..."}]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-3-pro-preview",
		Purpose:      "solve",
		Success:      false,
		ErrorMessage: "LLM provider unavailable",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "solve" {
		t.Fatalf("expected newest event first, got purpose %q", events[0].Purpose)
	}
	if events[1].ResponseBody == "" {
		t.Fatal("expected response body to round-trip")
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-3-flash-preview",
			Purpose:      "quiz-gen",
			InputTokens:  100,
			OutputTokens: 200,
			LatencyMs:    600,
			Success:      true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("expected 1 purpose row, got %d", len(byPurpose))
	}
	if byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 || byPurpose[0].OutputTokens != 600 {
		t.Fatalf("unexpected aggregate: %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gemini-3-flash-preview" {
		t.Fatalf("unexpected model aggregate: %+v", byModel)
	}
}

func TestAppendSolveAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSolve(ctx, SolveEventData{
		Problem:     "Giải phương trình x^2 - 5x + 6 = 0",
		FinalAnswer: "x = 2 hoặc x = 3",
		StepCount:   4,
		Model:       "gemini-3-pro-preview",
	})
	if err != nil {
		t.Fatalf("append solve: %v", err)
	}
	err = repo.AppendSolve(ctx, SolveEventData{
		HasImage:    true,
		FinalAnswer: "12",
		Model:       "gemini-3-pro-preview",
	})
	if err != nil {
		t.Fatalf("append image solve: %v", err)
	}

	n, err := repo.CountSolves(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 solves, got %d", n)
	}
}

func TestQuizHistoryAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []QuizEventData{
		{Topic: "Đạo hàm", Total: 5, Score: 2, Model: "gemini-3-flash-preview"},
		{Topic: "Đạo hàm", Total: 5, Score: 4, Model: "gemini-3-flash-preview"},
		{Topic: "Tích phân", Total: 5, Score: 5, Model: "gemini-3-flash-preview"},
	}
	for _, a := range attempts {
		if err := repo.AppendQuizResult(ctx, a); err != nil {
			t.Fatalf("append quiz: %v", err)
		}
	}

	history, err := repo.QuizHistory(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if history[0].Topic != "Tích phân" {
		t.Fatalf("expected newest attempt first, got %q", history[0].Topic)
	}

	stats, err := repo.QuizStatsByTopic(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(stats))
	}
	for _, st := range stats {
		if st.Topic == "Đạo hàm" {
			if st.Attempts != 2 || st.BestScore != 4 || st.AvgScore != 3.0 {
				t.Fatalf("unexpected stats: %+v", st)
			}
		}
	}
}
