package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaClient generates content through a local Ollama instance.
type OllamaClient struct {
	baseURL string
}

// NewOllamaClient creates an Ollama-backed client.
func NewOllamaClient(baseURL string) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaClient{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Generate concatenates text blocks into a single prompt and passes image
// blocks through Ollama's images field.
func (c *OllamaClient) Generate(ctx context.Context, req Request) (string, error) {
	var prompt strings.Builder
	var images []string
	for _, block := range req.Blocks {
		switch block.Kind {
		case BlockImage:
			images = append(images, block.Data)
		default:
			if prompt.Len() > 0 {
				prompt.WriteString("\n\n")
			}
			prompt.WriteString(block.Text)
		}
	}

	body := map[string]interface{}{
		"model":  req.Model,
		"prompt": prompt.String(),
		"stream": false,
	}
	if len(images) > 0 {
		body["images"] = images
	}

	requestBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/generate", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &Error{
			Kind:       kindForStatus(resp.StatusCode),
			Message:    fmt.Sprintf("ollama returned status %d: %s", resp.StatusCode, string(respBody)),
			StatusCode: resp.StatusCode,
		}
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return response.Response, nil
}

var _ Client = (*OllamaClient)(nil)
