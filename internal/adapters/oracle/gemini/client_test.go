package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{APIKey: "   "})
	assert.ErrorIs(t, err, domain.ErrCredentialMissing)
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		wantCredential bool
	}{
		{
			name:           "invalid key marker",
			err:            errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."),
			wantCredential: true,
		},
		{
			name:           "unauthorized api error",
			err:            genai.APIError{Code: 401, Message: "unauthorized"},
			wantCredential: true,
		},
		{
			name:           "forbidden api error",
			err:            genai.APIError{Code: 403, Message: "forbidden"},
			wantCredential: true,
		},
		{
			name:           "plain transport failure",
			err:            errors.New("connection reset by peer"),
			wantCredential: false,
		},
		{
			name:           "server side api error",
			err:            genai.APIError{Code: 500, Message: "internal"},
			wantCredential: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyError(tt.err)
			if tt.wantCredential {
				assert.ErrorIs(t, got, domain.ErrCredentialInvalid)
			} else {
				assert.NotErrorIs(t, got, domain.ErrCredentialInvalid)
			}
		})
	}
}

func TestFirstInlineImage(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "un preludio textual"},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{0x89, 0x50}}},
					},
				},
			},
		},
	}

	illustration, ok := firstInlineImage(resp)
	assert.True(t, ok)
	assert.Equal(t, "image/png", illustration.MIMEType)
	assert.Equal(t, []byte{0x89, 0x50}, illustration.Data)
}

func TestFirstInlineImageMissing(t *testing.T) {
	t.Parallel()

	_, ok := firstInlineImage(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "solo texto"}}}},
		},
	})
	assert.False(t, ok)

	_, ok = firstInlineImage(nil)
	assert.False(t, ok)
}

func TestFirstInlineImageDefaultsMIMEType(t *testing.T) {
	t.Parallel()

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{Data: []byte{1}}},
			}}},
		},
	}

	illustration, ok := firstInlineImage(resp)
	assert.True(t, ok)
	assert.Equal(t, "image/png", illustration.MIMEType)
}
