package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mathpal/internal/llm"
)

func TestExplain_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The derivative $f'(x)$ measures the rate of change."),
	})
	e := New(mock)

	got, err := e.Explain(context.Background(), "Đạo hàm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "$f'(x)$") {
		t.Fatalf("unexpected explanation: %q", got)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Fatal("explanations should not request a schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Đạo hàm") {
		t.Fatalf("concept missing from prompt: %q", req.Messages[0].Content)
	}
}

func TestExplain_EmptyConcept(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)

	_, err := e.Explain(context.Background(), "  ")
	if err == nil {
		t.Fatal("expected error for empty concept")
	}
	if mock.CallCount() != 0 {
		t.Fatal("empty concept must not reach the provider")
	}
}

func TestExplain_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := New(mock)

	_, err := e.Explain(context.Background(), "Tích phân")
	if err == nil {
		t.Fatal("expected error")
	}
	if !llm.IsTransport(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}
