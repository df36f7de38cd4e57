package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/store"
)

const systemPrompt = `You are a math tutor for high school students.
Solve the given problem step by step. Use LaTeX for all mathematical
expressions, delimited by $...$. Show every step of the reasoning, then
state the final answer in its simplest form.`

const defaultMaxTokens = 4096

// Result is a step-by-step solution to a single problem.
type Result struct {
	Solution        string
	Steps           []string
	FinalAnswer     string
	RelatedFormulas []string
}

// Solver produces step-by-step solutions using the quality model.
type Solver struct {
	provider llm.Provider
	events   store.EventRepo
}

// New creates a Solver. events may be nil to skip solve history recording.
func New(provider llm.Provider, events store.EventRepo) *Solver {
	return &Solver{provider: provider, events: events}
}

// solveOutput is the raw LLM response before mapping.
type solveOutput struct {
	Solution        string   `json:"solution"`
	Steps           []string `json:"steps"`
	FinalAnswer     string   `json:"finalAnswer"`
	RelatedFormulas []string `json:"relatedFormulas"`
}

// Solve sends the problem to the quality model and returns the solution.
// image, when non-nil, is attached as an inline PNG so photographed
// problems can be solved; problem may then be empty or carry extra context.
func (s *Solver) Solve(ctx context.Context, problem string, image []byte) (*Result, error) {
	if strings.TrimSpace(problem) == "" && image == nil {
		return nil, fmt.Errorf("nothing to solve: no problem text or image")
	}

	ctx = llm.WithPurpose(ctx, "solve")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(problem, image != nil)},
		},
		Schema:    SolveSchema,
		MaxTokens: defaultMaxTokens,
	}
	if image != nil {
		req.Attachments = []llm.Attachment{
			{MIMEType: "image/png", Data: image},
		}
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}

	var raw solveOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse solve response: %w", err)
	}

	result := &Result{
		Solution:        raw.Solution,
		Steps:           raw.Steps,
		FinalAnswer:     raw.FinalAnswer,
		RelatedFormulas: raw.RelatedFormulas,
	}

	s.recordSolve(ctx, problem, image != nil, result, resp.Model)

	return result, nil
}

// recordSolve appends a solve event. History is best-effort: a storage
// failure never fails the solve itself.
func (s *Solver) recordSolve(ctx context.Context, problem string, hasImage bool, r *Result, model string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendSolve(ctx, store.SolveEventData{
		Problem:     problem,
		HasImage:    hasImage,
		FinalAnswer: r.FinalAnswer,
		StepCount:   len(r.Steps),
		Model:       model,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record solve event: %v\n", err)
	}
}

func buildUserMessage(problem string, hasImage bool) string {
	if strings.TrimSpace(problem) == "" {
		return "Solve the problem shown in the attached image."
	}
	if hasImage {
		return "Solve this problem (an image of it is attached):\n\n" + problem
	}
	return "Solve this problem:\n\n" + problem
}
