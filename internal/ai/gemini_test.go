package ai

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(` 1}`)}},
		}},
	}
	got, err := replyText(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestReplyText_Failures(t *testing.T) {
	_, err := replyText(nil)
	assert.ErrorIs(t, err, ErrEmptyReply)

	_, err = replyText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrEmptyReply)

	_, err = replyText(&genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	})
	assert.ErrorIs(t, err, ErrBlocked)

	_, err = replyText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	})
	assert.ErrorIs(t, err, ErrBlocked)

	_, err = replyText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.ErrorIs(t, err, ErrEmptyReply)
}
