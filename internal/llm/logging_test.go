package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mathpal/internal/store"
)

// appendRecorder captures AppendLLMRequest calls. The embedded interface
// covers the methods logging never touches.
type appendRecorder struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *appendRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 11, OutputTokens: 7},
		},
	)
	repo := &appendRecorder{}
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "solve")
	_, err := p.Generate(ctx, Request{
		System:   "tutor",
		Messages: []Message{{Role: RoleUser, Content: "solve x = 1"}},
		Attachments: []Attachment{
			{MIMEType: "image/png", Data: []byte{1}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "mock" || e.Purpose != "solve" || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.InputTokens != 11 || e.OutputTokens != 7 {
		t.Fatalf("token counts not recorded: %+v", e)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Fatalf("response body not recorded: %q", e.ResponseBody)
	}
	if !strings.Contains(e.RequestBody, "solve x = 1") {
		t.Fatalf("request body missing message: %q", e.RequestBody)
	}
	if !strings.Contains(e.RequestBody, "image/png") {
		t.Fatalf("request body missing attachment note: %q", e.RequestBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	repo := &appendRecorder{}
	p := WithLogging(mock, "mock", repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Fatal("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Fatal("expected error message recorded")
	}
}
