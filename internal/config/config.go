// Package config loads brandkit configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for brandkit.
// Values come from environment variables (a .env file is loaded by the root
// command before any subcommand runs). Secrets must only come from the
// environment, never from flags.
type Config struct {
	// Generative provider selection: "anthropic", "gemini", or "ollama".
	Provider string `env:"BRANDKIT_PROVIDER" env-default:"anthropic"`

	// Model overrides the provider's default model when set.
	Model string `env:"BRANDKIT_MODEL" env-default:""`

	// MaxTokens caps the output size of a single generation call.
	MaxTokens int `env:"BRANDKIT_MAX_TOKENS" env-default:"4000"`

	// Provider credentials and endpoints.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" env-default:""`
	GeminiAPIKey    string `env:"GEMINI_API_KEY" env-default:""`
	OllamaURL       string `env:"OLLAMA_URL" env-default:"http://localhost:11434"`

	// FormatsFile optionally points at a YAML file overriding the built-in
	// per-format instruction templates.
	FormatsFile string `env:"BRANDKIT_FORMATS_FILE" env-default:""`

	// Port is the default serve port; the --port flag wins when set.
	Port string `env:"BRANDKIT_PORT" env-default:"8787"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment config: %w", err)
	}
	return &cfg, nil
}

// DefaultModel returns the model to use for the configured provider when no
// explicit model override is set.
func (c *Config) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case "gemini":
		return "gemini-1.5-pro"
	case "ollama":
		return "mistral-small3.2:24b"
	default:
		return "claude-sonnet-4-5-20250929"
	}
}
