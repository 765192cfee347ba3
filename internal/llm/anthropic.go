package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// AnthropicClient generates content through the Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
}

// NewAnthropicClient creates an Anthropic-backed client.
func NewAnthropicClient(apiKey string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	return &AnthropicClient{client: anthropic.NewClient(apiKey)}, nil
}

// Generate sends a single user message built from the request's content blocks
// and returns the first text block of the reply.
func (c *AnthropicClient) Generate(ctx context.Context, req Request) (string, error) {
	content := make([]anthropic.MessageContent, 0, len(req.Blocks))
	for _, block := range req.Blocks {
		switch block.Kind {
		case BlockImage:
			content = append(content, anthropic.NewImageMessageContent(
				anthropic.NewMessageContentSource(
					anthropic.MessagesContentSourceTypeBase64,
					block.MediaType,
					block.Data,
				),
			))
		default:
			content = append(content, anthropic.NewTextMessageContent(block.Text))
		}
	}

	start := time.Now()
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(req.Model),
		MaxTokens: req.MaxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		slog.Error("Anthropic request failed", "model", req.Model, "elapsed", time.Since(start), "err", err)
		return "", Classify(err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != nil {
			slog.Debug("Anthropic request completed", "model", req.Model, "elapsed", time.Since(start))
			return *block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}

var _ Client = (*AnthropicClient)(nil)
