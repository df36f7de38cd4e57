package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"quality", "gemini-3-pro-preview"},
		{"fast", "gemini-3-flash-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiContents_AttachesImagesToLastMessage(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "earlier"},
			{Role: RoleUser, Content: "solve the attached problem"},
		},
		Attachments: []Attachment{
			{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		},
	}

	contents := buildGeminiContents(req)

	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if len(contents[0].Parts) != 1 {
		t.Fatalf("earlier message should carry no attachment parts, got %d", len(contents[0].Parts))
	}
	last := contents[1]
	if len(last.Parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(last.Parts))
	}
	blob := last.Parts[1].InlineData
	if blob == nil || blob.MIMEType != "image/png" {
		t.Fatalf("expected inline image/png blob, got %+v", last.Parts[1])
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"solution":    map[string]any{"type": "string"},
			"finalAnswer": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
		},
		"required": []any{"solution", "finalAnswer"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["solution"].Type != "STRING" {
		t.Fatalf("expected STRING for solution, got %s", schema.Properties["solution"].Type)
	}
	if schema.Properties["steps"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for steps, got %s", schema.Properties["steps"].Type)
	}
	if schema.Properties["steps"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for steps items, got %s", schema.Properties["steps"].Items.Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
