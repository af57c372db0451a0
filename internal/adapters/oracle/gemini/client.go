// Package gemini implements the oracle port against the hosted Gemini
// endpoint through the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hanguiano/activador/internal/domain"
	"github.com/hanguiano/activador/internal/ports"
	"google.golang.org/genai"
)

const (
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "gemini-2.5-flash-image"
)

// invalidKeyMarker is the error text the endpoint returns for a rejected
// credential; it is the reactive half of the credential gate.
const invalidKeyMarker = "API key not valid"

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

var _ ports.Oracle = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.ErrCredentialMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	textModel := cfg.TextModel
	if textModel == "" {
		textModel = defaultTextModel
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = defaultImageModel
	}

	return &Client{client: client, textModel: textModel, imageModel: imageModel}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("model returned an empty completion")
	}

	return text, nil
}

func (c *Client) Illustrate(ctx context.Context, prompt string) (domain.Illustration, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), config)
	if err != nil {
		return domain.Illustration{}, classifyError(err)
	}

	illustration, ok := firstInlineImage(resp)
	if !ok {
		return domain.Illustration{}, errors.New("model response carried no image part")
	}

	return illustration, nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) (domain.Illustration, bool) {
	if resp == nil {
		return domain.Illustration{}, false
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return domain.Illustration{MIMEType: mimeType, Data: part.InlineData.Data}, true
		}
	}

	return domain.Illustration{}, false
}

func classifyError(err error) error {
	if strings.Contains(err.Error(), invalidKeyMarker) {
		return fmt.Errorf("%w: %v", domain.ErrCredentialInvalid, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return fmt.Errorf("%w: %v", domain.ErrCredentialInvalid, err)
	}

	return fmt.Errorf("call model endpoint: %w", err)
}
