package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathpal/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`[
		{"id":"q1","question":"Tính $\\frac{d}{dx}(x^2)$","options":["$2x$","$x$","$x^2$","$2$"],"correctAnswer":"$2x$","explanation":"Quy tắc lũy thừa."},
		{"id":"q2","question":"Tính $\\int 2x\\,dx$","options":["$x^2 + C$","$2x + C$","$x + C$","$2 + C$"],"correctAnswer":"$x^2 + C$","explanation":"Nguyên hàm."},
		{"question":"$\\sin^2 x + \\cos^2 x = ?$","options":["$1$","$0$","$2$","$\\sin 2x$"],"correctAnswer":"$1$","explanation":"Hằng đẳng thức."},
		{"id":"q4","question":"$2^3 = ?$","options":["$8$","$6$","$9$","$4$"],"correctAnswer":"$8$","explanation":"Lũy thừa."},
		{"id":"q5","question":"$\\log_{10} 100 = ?$","options":["$2$","$10$","$1$","$100$"],"correctAnswer":"$2$","explanation":"Logarit."}
	]`)
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	g := New(mock)

	questions, err := g.Generate(context.Background(), "Đạo hàm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d has empty ID", i)
		}
		if !q.HasValidAnswer() {
			t.Errorf("question %d failed answer check", i)
		}
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-questions" {
		t.Fatalf("expected quiz-questions schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Đạo hàm") {
		t.Fatalf("topic missing from prompt: %q", req.Messages[0].Content)
	}
}

func TestGenerate_AssignsIDWhenMissing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	g := New(mock)

	questions, err := g.Generate(context.Background(), "Lượng giác")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Third question in the canned response has no id.
	if questions[2].ID == "" {
		t.Fatal("expected generated ID for question without one")
	}
}

func TestGenerate_FiltersDefectiveQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"ok","question":"$1+1=?$","options":["$2$","$3$"],"correctAnswer":"$2$","explanation":"x"},
		{"id":"bad-answer","question":"$2+2=?$","options":["$3$","$5$"],"correctAnswer":"$4$","explanation":"x"},
		{"id":"no-question","question":"","options":["a","b"],"correctAnswer":"a","explanation":"x"}
	]`)})
	g := New(mock)

	questions, err := g.Generate(context.Background(), "Đại số")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(questions))
	}
	if questions[0].ID != "ok" {
		t.Fatalf("wrong question survived: %q", questions[0].ID)
	}
}

func TestGenerate_AllDefective(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"q1","question":"$2+2=?$","options":["$3$","$5$"],"correctAnswer":"$4$","explanation":"x"}
	]`)})
	g := New(mock)

	_, err := g.Generate(context.Background(), "Đại số")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := New(mock)

	_, err := g.Generate(context.Background(), "Xác suất")
	if err == nil {
		t.Fatal("expected error")
	}
	if !llm.IsTransport(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"not":"an array"}`)})
	g := New(mock)

	_, err := g.Generate(context.Background(), "Hàm số")
	if err == nil {
		t.Fatal("expected error for non-array response")
	}
}
