package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient generates content through Google Gemini.
type GeminiClient struct {
	apiKey string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	return &GeminiClient{apiKey: apiKey}, nil
}

// Generate maps the request's content blocks to Gemini parts and returns the
// first text part of the reply.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(req.Model)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	parts := make([]genai.Part, 0, len(req.Blocks))
	for _, block := range req.Blocks {
		switch block.Kind {
		case BlockImage:
			data, err := base64.StdEncoding.DecodeString(block.Data)
			if err != nil {
				return "", fmt.Errorf("decode image payload: %w", err)
			}
			// genai wants the bare subtype, e.g. "png" from "image/png".
			format := strings.TrimPrefix(block.MediaType, "image/")
			parts = append(parts, genai.ImageData(format, data))
		default:
			parts = append(parts, genai.Text(block.Text))
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", Classify(fmt.Errorf("failed to generate content: %w", err))
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt), nil
		}
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}

var _ Client = (*GeminiClient)(nil)
