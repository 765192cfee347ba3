package imagery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

// Synthesizer produces a single SVG graphic for a topic.
type Synthesizer struct {
	client    llm.Client
	model     string
	maxTokens int
}

// NewSynthesizer creates a synthesizer bound to an injected generative client.
func NewSynthesizer(client llm.Client, model string, maxTokens int) *Synthesizer {
	return &Synthesizer{client: client, model: model, maxTokens: maxTokens}
}

// Synthesize generates an SVG document for the topic. It never fails outward:
// on any error it returns the deterministic placeholder graphic.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, analysis *brandvoice.Analysis, styleDescriptor string, examples []brandvoice.CalibrationExample) string {
	if s.client == nil {
		slog.Warn("No generative client configured, using placeholder graphic")
		return PlaceholderSVG(topic)
	}

	prompt := buildImagePrompt(topic, analysis, styleDescriptor, examples)

	reply, err := s.client.Generate(ctx, llm.Request{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Blocks:    []llm.ContentBlock{llm.TextBlock(prompt)},
	})
	if err != nil {
		slog.Warn("Image synthesis failed, using placeholder graphic", "err", err)
		return PlaceholderSVG(topic)
	}

	svg, ok := ExtractSVG(reply)
	if !ok {
		slog.Warn("Model reply contained no SVG document, using placeholder graphic")
		return PlaceholderSVG(topic)
	}

	sanitized := SanitizeSVG(svg)
	if !strings.Contains(sanitized, "<svg") {
		slog.Warn("SVG did not survive sanitization, using placeholder graphic")
		return PlaceholderSVG(topic)
	}

	slog.Info("Synthesized graphic", "topic", topic, "length", len(sanitized))
	return sanitized
}

func buildImagePrompt(topic string, analysis *brandvoice.Analysis, styleDescriptor string, examples []brandvoice.CalibrationExample) string {
	var b strings.Builder

	b.WriteString("Create a marketing graphic as an SVG document for this topic:\n\n")
	b.WriteString(topic)
	b.WriteString("\n\n")

	if note := exampleContext(examples); note != "" {
		b.WriteString("Context from the brand's existing content:\n")
		b.WriteString(note)
		b.WriteString("\n\n")
	}

	b.WriteString(`First decide which rendering philosophy fits the topic:

ILLUSTRATIVE - for concrete subjects (scenes, people, places, objects).
Compose a scene from SVG shapes only, with minimal or no text.
Example: "coffee shop opening" -> a storefront built from rects and paths,
a steaming cup from circles and curves, warm sky gradient. No labels.

INFOGRAPHIC - for abstract subjects (concepts, processes, comparisons).
Compose a labeled diagram: titled sections, boxes or circles for each element,
connecting lines or arrows between them, short text labels.
Example: "3 steps to better SEO" -> a title, three numbered rounded rects in a
row joined by arrows, one short label per step.

Technical constraints:
- Canvas exactly 1200x630: <svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
- Default to a warm palette (oranges, ambers, soft yellows) unless the topic or style guidance suggests otherwise
- Build imagery from rect, circle, ellipse, path, polygon, line and gradients; text elements only for infographic labels
- Keep every label short and legible at full size
`)

	switch {
	case styleDescriptor != "":
		b.WriteString("\nStyle override: render in this visual style: " + styleDescriptor + "\n")
	case analysis != nil:
		b.WriteString("\nStyle guidance: match a " + analysis.Tone + " tone with a " + analysis.Style + " feel.\n")
	}

	b.WriteString("\nRespond with ONLY the SVG markup. No explanation, no markdown fences, no prose before or after.")

	return b.String()
}

// exampleContext collects free-text captions and content from the calibration
// examples into a contextual note.
func exampleContext(examples []brandvoice.CalibrationExample) string {
	var notes []string
	for _, e := range examples {
		text := e.Content
		if e.IsImage() {
			text = e.CaptionText
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			notes = append(notes, "- "+trimmed)
		}
	}
	return strings.Join(notes, "\n")
}
