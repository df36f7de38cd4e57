package solver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/mathpal/internal/llm"
)

func TestSolve_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"solution": "Factor the quadratic.",
			"steps": ["$x^2 - 5x + 6 = 0$", "$(x-2)(x-3) = 0$", "$x = 2$ or $x = 3$"],
			"finalAnswer": "$x = 2$ or $x = 3$",
			"relatedFormulas": ["$ax^2 + bx + c = 0$"]
		}`),
	})
	s := New(mock, nil)

	result, err := s.Solve(context.Background(), "Giải phương trình $x^2 - 5x + 6 = 0$", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalAnswer != "$x = 2$ or $x = 3$" {
		t.Fatalf("unexpected final answer: %q", result.FinalAnswer)
	}
	if len(result.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(result.Steps))
	}
	if len(result.RelatedFormulas) != 1 {
		t.Fatalf("expected 1 related formula, got %d", len(result.RelatedFormulas))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "solve-result" {
		t.Fatalf("expected solve-result schema, got %+v", req.Schema)
	}
	if len(req.Attachments) != 0 {
		t.Fatalf("expected no attachments, got %d", len(req.Attachments))
	}
}

func TestSolve_AttachesImage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"solution":"s","steps":["a"],"finalAnswer":"12"}`),
	})
	s := New(mock, nil)

	img := []byte{0x89, 0x50, 0x4e, 0x47}
	result, err := s.Solve(context.Background(), "", img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalAnswer != "12" {
		t.Fatalf("unexpected final answer: %q", result.FinalAnswer)
	}

	req := mock.Calls[0]
	if len(req.Attachments) != 1 || req.Attachments[0].MIMEType != "image/png" {
		t.Fatalf("expected one image/png attachment, got %+v", req.Attachments)
	}
}

func TestSolve_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(mock, nil)

	_, err := s.Solve(context.Background(), "   ", nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if mock.CallCount() != 0 {
		t.Fatal("empty input must not reach the provider")
	}
}

func TestSolve_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	s := New(mock, nil)

	_, err := s.Solve(context.Background(), "$1 + 1$", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !llm.IsTransport(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}

func TestSolve_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")},
	})
	s := New(mock, nil)

	_, err := s.Solve(context.Background(), "$1 + 1$", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !llm.IsMalformed(err) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}
