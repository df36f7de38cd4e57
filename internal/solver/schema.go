package solver

import "github.com/abhisek/mathpal/internal/llm"

// SolveSchema defines the JSON schema for step-by-step solution responses.
var SolveSchema = &llm.Schema{
	Name:        "solve-result",
	Description: "A step-by-step solution to a math problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"solution": map[string]any{
				"type":        "string",
				"description": "Summary of the solution",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Detailed steps with LaTeX",
			},
			"finalAnswer": map[string]any{
				"type":        "string",
				"description": "The final simplified answer",
			},
			"relatedFormulas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key formulas used",
			},
		},
		"required": []any{"solution", "steps", "finalAnswer"},
	},
}
