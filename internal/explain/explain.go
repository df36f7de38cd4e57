// Package explain generates free-text concept explanations with the fast
// model. Unlike the solver and quiz generator it requests no schema, so the
// response is plain prose with $...$ math spans.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/mathpal/internal/llm"
)

const systemPrompt = `You are a math tutor for high school students. Explain
concepts clearly and concisely, building from intuition to the formal
definition. Use LaTeX for all mathematical expressions, delimited by $...$.`

const defaultMaxTokens = 2048

// Explainer produces concept explanations.
type Explainer struct {
	provider llm.Provider
}

// New creates an Explainer backed by the given provider.
func New(provider llm.Provider) *Explainer {
	return &Explainer{provider: provider}
}

// Explain returns a prose explanation of the given concept.
func (e *Explainer) Explain(ctx context.Context, concept string) (string, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return "", fmt.Errorf("no concept to explain")
	}

	ctx = llm.WithPurpose(ctx, "explain")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(
				"Explain the math concept '%s' clearly for a high school student.", concept)},
		},
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("explain failed: %w", err)
	}

	return string(resp.Content), nil
}
