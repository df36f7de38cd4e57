package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/quiz"
)

const systemPrompt = `You are a math teacher creating multiple choice quizzes
for high school students. Use LaTeX for all mathematical expressions,
delimited by $...$. Each question has exactly 4 options with exactly one
correct answer, and the correctAnswer field must be copied verbatim from
the options. Distractors should reflect common mistakes, not random values.`

// QuestionCount is the number of questions in a generated quiz.
const QuestionCount = 5

const defaultMaxTokens = 4096

// ErrNoValidQuestions means the model responded but every question failed
// ingestion validation.
var ErrNoValidQuestions = errors.New("quiz generation produced no valid questions")

// Generator produces quizzes using the fast model.
type Generator struct {
	provider llm.Provider
	validate *validator.Validate
}

// New creates a Generator backed by the given provider.
func New(provider llm.Provider) *Generator {
	return &Generator{
		provider: provider,
		validate: validator.New(),
	}
}

// ModelID returns the identifier of the model backing this generator.
func (g *Generator) ModelID() string {
	return g.provider.ModelID()
}

// questionOutput is one raw generated question before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a quiz for the given topic. Defective questions (missing
// fields, or a correct answer that matches none of the options) are filtered
// out with a warning; if nothing survives, ErrNoValidQuestions is returned.
func (g *Generator) Generate(ctx context.Context, topic string) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf(
				"Generate %d multiple choice questions for high school math on the topic: %s",
				QuestionCount, topic)},
		},
		Schema:      QuizSchema,
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw []questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}

	questions := make([]quiz.Question, 0, len(raw))
	for i, out := range raw {
		q, err := g.ingest(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: dropping generated question %d: %v\n", i+1, err)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}

// ingest validates one raw question and converts it to the domain type.
func (g *Generator) ingest(out questionOutput) (quiz.Question, error) {
	if err := g.validate.Struct(out); err != nil {
		return quiz.Question{}, fmt.Errorf("invalid question: %w", err)
	}

	q := quiz.Question{
		ID:            out.ID,
		Question:      out.Question,
		Options:       out.Options,
		CorrectAnswer: out.CorrectAnswer,
		Explanation:   out.Explanation,
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	if !q.HasValidAnswer() {
		return quiz.Question{}, fmt.Errorf("correct answer %q not among options", q.CorrectAnswer)
	}
	return q, nil
}
