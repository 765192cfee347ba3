package generation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

// Artifact is one generated content unit: the content for a requested format,
// or the single generated image.
type Artifact struct {
	Format           string `json:"format"`
	Title            string `json:"title,omitempty"`
	Content          string `json:"content"`
	ConsistencyScore *int   `json:"consistencyScore,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
}

// Generator produces one artifact per requested format.
type Generator struct {
	client    llm.Client
	model     string
	maxTokens int
	registry  *Registry
}

// NewGenerator creates a generator bound to an injected generative client.
func NewGenerator(client llm.Client, model string, maxTokens int, registry *Registry) *Generator {
	return &Generator{client: client, model: model, maxTokens: maxTokens, registry: registry}
}

// Generate produces the artifact for one format. It always returns an
// artifact: a generation failure becomes a user-visible error message in the
// artifact body rather than an error.
func (g *Generator) Generate(ctx context.Context, topic, industry, format string, analysis *brandvoice.Analysis) Artifact {
	spec := g.registry.Lookup(format)
	artifact := Artifact{Format: format, Title: spec.Title}

	prompt := buildContentPrompt(topic, industry, spec, analysis)

	reply, err := g.client.Generate(ctx, llm.Request{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Blocks:    []llm.ContentBlock{llm.TextBlock(prompt)},
	})
	if err != nil {
		slog.Warn("Content generation failed", "format", format, "err", err)
		artifact.Content = errorBody(err)
		return artifact
	}

	artifact.Content = reply
	artifact.ConsistencyScore = consistencyScore(reply, analysis)

	slog.Info("Generated content", "format", format, "length", len(reply))
	return artifact
}

func buildContentPrompt(topic, industry string, spec FormatSpec, analysis *brandvoice.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a marketing copywriter for a business in the %s industry.\n\n", industry)
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	b.WriteString(spec.Instructions)
	b.WriteString("\n\n")

	if analysis != nil {
		b.WriteString("Match this brand voice exactly:\n")
		fmt.Fprintf(&b, "- Tone: %s\n", analysis.Tone)
		fmt.Fprintf(&b, "- Style: %s\n", analysis.Style)
		if len(analysis.Terminology) > 0 {
			fmt.Fprintf(&b, "- Key terminology to use: %s\n", strings.Join(analysis.Terminology, ", "))
		}
		fmt.Fprintf(&b, "- Structure: %s\n", analysis.Structure)
	} else {
		b.WriteString("Use a professional, approachable tone.\n")
	}

	b.WriteString("\nRespond with the content only, no preamble.")
	return b.String()
}

// consistencyScore measures terminology overlap between the generated content
// and the brand voice: min(95, 70 + 25*matched/total), rounded. An analysis
// with no terminology scores a flat 75; no analysis means no score.
func consistencyScore(content string, analysis *brandvoice.Analysis) *int {
	if analysis == nil {
		return nil
	}
	if len(analysis.Terminology) == 0 {
		score := 75
		return &score
	}

	lower := strings.ToLower(content)
	matched := 0
	for _, term := range analysis.Terminology {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched++
		}
	}

	score := int(math.Round(70 + 25*float64(matched)/float64(len(analysis.Terminology))))
	if score > 95 {
		score = 95
	}
	return &score
}

func errorBody(err error) string {
	switch {
	case llm.IsAuthError(err):
		return "Content generation failed: the AI service rejected our credentials. " +
			"Please verify the configured API key and try again."
	case llm.IsBadRequestError(err):
		return "Content generation failed: the AI service rejected the request as invalid. " +
			"Try simplifying the topic or removing unusual characters."
	default:
		return fmt.Sprintf("Content generation failed: %v. Please try again.", err)
	}
}
