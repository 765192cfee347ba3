package brandvoice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brandkit-studio/brandkit/internal/llm"
)

// Analysis is the inferred brand-voice profile.
// Absent fields default to the neutral profile from DefaultAnalysis.
type Analysis struct {
	Tone        string   `json:"tone"`
	Style       string   `json:"style"`
	Terminology []string `json:"terminology"`
	Structure   string   `json:"structure"`
	VisualStyle string   `json:"visualStyle,omitempty"`
}

// DefaultAnalysis returns the fixed neutral profile used whenever analysis is
// impossible or fails.
func DefaultAnalysis() Analysis {
	return Analysis{
		Tone:        "professional",
		Style:       "clear and concise",
		Terminology: []string{},
		Structure:   "standard",
	}
}

// Analyzer infers a brand voice from calibration examples.
type Analyzer struct {
	client    llm.Client
	model     string
	maxTokens int
}

// NewAnalyzer creates an analyzer bound to an injected generative client.
func NewAnalyzer(client llm.Client, model string, maxTokens int) *Analyzer {
	return &Analyzer{client: client, model: model, maxTokens: maxTokens}
}

// Analyze infers a brand voice from the given examples. It never fails: on
// empty input, service failure, or an unparseable reply it returns the
// default profile and only logs the cause.
func (a *Analyzer) Analyze(ctx context.Context, examples []CalibrationExample) Analysis {
	if len(examples) == 0 {
		return DefaultAnalysis()
	}
	if a.client == nil {
		slog.Warn("No generative client configured, using default brand voice")
		return DefaultAnalysis()
	}

	hasImages := HasImageExample(examples)

	blocks := []llm.ContentBlock{llm.TextBlock(analysisHeader(hasImages))}
	for _, e := range examples {
		if e.IsImage() {
			blocks = append(blocks, llm.ImageBlock(e.MediaType, e.Content))
			if strings.TrimSpace(e.CaptionText) != "" {
				blocks = append(blocks, llm.TextBlock("Caption for the image above: "+e.CaptionText))
			}
			continue
		}
		blocks = append(blocks, llm.TextBlock("Example content:\n"+e.Content))
	}
	blocks = append(blocks, llm.TextBlock(analysisFooter(hasImages)))

	reply, err := a.client.Generate(ctx, llm.Request{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Blocks:    blocks,
	})
	if err != nil {
		slog.Warn("Brand voice analysis failed, using default profile", "err", err)
		return DefaultAnalysis()
	}

	analysis, err := llm.ParseJSONResponse[Analysis](reply)
	if err != nil {
		slog.Warn("Failed to parse brand voice analysis, using default profile", "err", err)
		return DefaultAnalysis()
	}

	analysis.Terminology = dedupeTerms(analysis.Terminology)
	return analysis
}

func analysisHeader(hasImages bool) string {
	var b strings.Builder
	b.WriteString("You are a brand voice analyst. Analyze the following content examples ")
	b.WriteString("and characterize the brand voice they share.")
	if hasImages {
		b.WriteString(" Some examples are images: analyze their visual style as well as any text they contain.")
	}
	return b.String()
}

func analysisFooter(hasImages bool) string {
	var b strings.Builder
	b.WriteString("Respond with ONLY a JSON object with these keys:\n")
	b.WriteString(`  "tone": overall emotional register (e.g. "friendly", "authoritative")` + "\n")
	b.WriteString(`  "style": writing style descriptors` + "\n")
	b.WriteString(`  "terminology": array of distinctive terms and phrases the brand uses` + "\n")
	b.WriteString(`  "structure": how the content is typically organized` + "\n")
	if hasImages {
		b.WriteString(`  "visualStyle": visual design language of the image examples` + "\n")
	}
	b.WriteString("Do not include any text outside the JSON object.")
	return b.String()
}

// dedupeTerms drops empty entries and duplicates, preserving order.
func dedupeTerms(terms []string) []string {
	if terms == nil {
		return []string{}
	}
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
