package llm

import "fmt"

// NewClientForProvider builds the Client for the named provider. Credentials
// are passed explicitly so the caller decides where they come from; the
// returned handle is constructed once at process start and injected, never
// referenced as ambient global state.
func NewClientForProvider(provider, anthropicKey, geminiKey, ollamaURL string) (Client, error) {
	switch provider {
	case "anthropic", "":
		return NewAnthropicClient(anthropicKey)
	case "gemini":
		return NewGeminiClient(geminiKey)
	case "ollama":
		return NewOllamaClient(ollamaURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
