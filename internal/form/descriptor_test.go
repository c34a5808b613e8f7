package form

import (
	"testing"

	"go-internship-automation/internal/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	data := map[string]any{
		"fields": []any{
			map[string]any{"type": "text input", "identifier": "full_name", "category": "Name", "required": true},
			map[string]any{"field_type": "Dropdown", "id": "city", "content_type": "city", "required": "yes"},
			map[string]any{"kind": "file upload", "selector": "input[type=file]", "expected_content": "resume"},
			"garbage",
			map[string]any{"type": "radio button", "name": "relocate", "required": "false"},
		},
	}

	got := ParseFields(data)

	require.Len(t, got, 4)
	assert.Equal(t, FieldDescriptor{Kind: KindText, Identifier: "full_name", Category: "name", Required: true}, got[0])
	assert.Equal(t, FieldDescriptor{Kind: KindSelect, Identifier: "city", Category: "city", Required: true}, got[1])
	assert.Equal(t, FieldDescriptor{Kind: KindFile, Identifier: "input[type=file]", Category: "resume"}, got[2])
	assert.Equal(t, FieldDescriptor{Kind: KindRadio, Identifier: "relocate"}, got[3])
}

func TestParseFields_Sentinels(t *testing.T) {
	assert.Empty(t, ParseFields(map[string]any{"raw_response": "no form here"}))
	assert.Empty(t, ParseFields(map[string]any{"error": "quota"}))
	assert.Empty(t, ParseFields(map[string]any{"fields": "not a list"}))
}

func TestNormalizeKind(t *testing.T) {
	tests := map[string]string{
		"text":         KindText,
		"Text Input":   KindText,
		"input field":  KindText,
		"Text Area":    KindTextarea,
		"textarea":     KindTextarea,
		"select box":   KindSelect,
		"dropdown":     KindSelect,
		"Radio Button": KindRadio,
		"check box":    KindCheckbox,
		"file upload":  KindFile,
		"email input":  KindEmail,
		"telephone":    KindTel,
		"url":          KindURL,
		"number input": KindNumber,
		"date picker":  "date picker",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, normalizeKind(in))
		})
	}
}

func TestParseJobAnalysis(t *testing.T) {
	got := ParseJobAnalysis(map[string]any{
		"skills_required":    "React, Node.js , ",
		"responsibilities":   []any{"Build UI", 3, ""},
		"suggested_response": "  I love shipping.  ",
	})

	assert.Equal(t, []string{"React", "Node.js"}, got.Skills)
	assert.Equal(t, []string{"Build UI"}, got.Responsibilities)
	assert.Equal(t, "I love shipping.", got.SuggestedResponse)

	assert.Equal(t, JobAnalysis{}, ParseJobAnalysis(map[string]any{"raw_response": "text"}))
}

func TestParseJobAnalysis_ObjectResponse(t *testing.T) {
	reply := "```json\n{\"suggested_response\": {\"Why should we hire you?\": \"Because I ship.\"}}\n```"

	got := ParseJobAnalysis(ai.ParseReply(reply).Map())

	assert.Equal(t, "Because I ship.", got.SuggestedResponse)
}

func TestParseJobAnalysis_NonTextResponse(t *testing.T) {
	tests := map[string]any{
		"number":       42.0,
		"bool":         true,
		"list":         []any{"a", "b"},
		"empty object": map[string]any{},
		"nested":       map[string]any{"q": map[string]any{"a": "deep"}, "n": 3.0},
	}
	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseJobAnalysis(map[string]any{"suggested_response": v})
			assert.Empty(t, got.SuggestedResponse)
		})
	}
}
