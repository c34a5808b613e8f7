package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		wantData map[string]any
		wantRaw  string
	}{
		{
			name:     "json fence",
			reply:    "Here you go:\n```json\n{\"skills\": [\"go\"]}\n```\nGood luck",
			wantData: map[string]any{"skills": []any{"go"}},
		},
		{
			name:     "json fence wins over an earlier plain fence",
			reply:    "```\nnot this\n```\n```json\n{\"a\": 1}\n```",
			wantData: map[string]any{"a": float64(1)},
		},
		{
			name:     "plain fence",
			reply:    "```\n{\"a\": true}\n```",
			wantData: map[string]any{"a": true},
		},
		{
			name:     "bare json",
			reply:    `  {"a": "b"} `,
			wantData: map[string]any{"a": "b"},
		},
		{
			name:     "array wrapped as fields",
			reply:    `[{"identifier": "email"}]`,
			wantData: map[string]any{"fields": []any{map[string]any{"identifier": "email"}}},
		},
		{
			name:    "prose",
			reply:   "I could not find a form.",
			wantRaw: "I could not find a form.",
		},
		{
			name:    "broken fenced json keeps the payload",
			reply:   "```json\n{\"a\": \n```",
			wantRaw: `{"a":`,
		},
		{
			name:    "scalar",
			reply:   "42",
			wantRaw: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseReply(tt.reply)
			if tt.wantData != nil {
				require.True(t, res.Structured())
				assert.Equal(t, tt.wantData, res.Data)
				return
			}
			assert.False(t, res.Structured())
			assert.Equal(t, tt.wantRaw, res.Raw)
			assert.Equal(t, map[string]any{KeyRawResponse: tt.wantRaw}, res.Map())
		})
	}
}

func TestResult_Failed(t *testing.T) {
	res := Failed(errors.New("quota exceeded"))

	assert.False(t, res.Structured())
	assert.Equal(t, map[string]any{KeyError: "quota exceeded"}, res.Map())
}
