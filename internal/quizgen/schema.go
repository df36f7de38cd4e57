package quizgen

import "github.com/abhisek/mathpal/internal/llm"

// QuizSchema defines the JSON schema for generated quizzes: an array of
// multiple-choice questions.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple choice math questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Short unique identifier for the question",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question text, math in LaTeX between $...$",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 answer options",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"description": "The correct option, copied verbatim from options",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Why the correct answer is right",
				},
			},
			"required": []any{"question", "options", "correctAnswer", "explanation"},
		},
	},
}
