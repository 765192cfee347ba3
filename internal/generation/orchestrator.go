package generation

import (
	"context"
	"strings"
	"sync"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/imagery"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

// Request is one inbound generation request.
//
// When BrandVoiceExamples are present they are analyzed fresh and that
// analysis silently takes precedence over a precomputed BrandVoice.
type Request struct {
	Topic              string                  `json:"topic"`
	Industry           string                  `json:"industry"`
	Formats            []string                `json:"formats"`
	BrandVoiceExamples []brandvoice.RawExample `json:"brandVoiceExamples,omitempty"`
	BrandVoice         *brandvoice.Analysis    `json:"brandVoice,omitempty"`
}

// Result is the merged outcome of a generation request.
type Result struct {
	Contents           []Artifact           `json:"contents"`
	BrandVoiceAnalysis *brandvoice.Analysis `json:"brandVoiceAnalysis,omitempty"`
}

// ValidationError marks a request-shape problem the caller must fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Orchestrator sequences brand-voice analysis, image intent classification,
// image synthesis, and the concurrent per-format generation fan-out.
// It is stateless between requests.
type Orchestrator struct {
	analyzer    *brandvoice.Analyzer
	synthesizer *imagery.Synthesizer
	generator   *Generator
}

// NewOrchestrator wires the pipeline around one injected generative client.
func NewOrchestrator(client llm.Client, model string, maxTokens int, registry *Registry) *Orchestrator {
	return &Orchestrator{
		analyzer:    brandvoice.NewAnalyzer(client, model, maxTokens),
		synthesizer: imagery.NewSynthesizer(client, model, maxTokens),
		generator:   NewGenerator(client, model, maxTokens, registry),
	}
}

// Run executes a full generation request.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	examples := brandvoice.NormalizeExamples(req.BrandVoiceExamples)

	// Calibration-only: examples but no formats means the caller just wants
	// the brand voice analyzed.
	if len(examples) > 0 && len(req.Formats) == 0 {
		analysis := o.analyzer.Analyze(ctx, examples)
		return &Result{Contents: []Artifact{}, BrandVoiceAnalysis: &analysis}, nil
	}

	if strings.TrimSpace(req.Topic) == "" || strings.TrimSpace(req.Industry) == "" || len(req.Formats) == 0 {
		return nil, &ValidationError{Message: "topic, industry, and at least one content format are required"}
	}

	// Fresh examples win over a precomputed brand voice.
	var analysis *brandvoice.Analysis
	switch {
	case len(examples) > 0:
		a := o.analyzer.Analyze(ctx, examples)
		analysis = &a
	case req.BrandVoice != nil:
		analysis = req.BrandVoice
	}

	intent := imagery.ClassifyIntent(req.Topic, examples)

	var imageDataURI string
	if intent.WantsImage {
		style := imagery.ExtractVisualStyle(analysis, examples)
		svg := o.synthesizer.Synthesize(ctx, req.Topic, analysis, style, examples)
		imageDataURI = imagery.EncodeSVGDataURI(svg)
	}

	if intent.ImageOnly && imageDataURI != "" {
		return &Result{
			Contents: []Artifact{{
				Format:   "image",
				Title:    req.Topic,
				ImageURL: imageDataURI,
			}},
			BrandVoiceAnalysis: analysis,
		}, nil
	}

	// Fan out one generation call per format. Each call converts its own
	// failures into an artifact body, so the join never short-circuits and
	// one format's failure cannot discard another's result.
	artifacts := make([]Artifact, len(req.Formats))
	var wg sync.WaitGroup
	for i, format := range req.Formats {
		wg.Add(1)
		go func(i int, format string) {
			defer wg.Done()
			artifacts[i] = o.generator.Generate(ctx, req.Topic, req.Industry, format, analysis)
		}(i, format)
	}
	wg.Wait()

	if imageDataURI != "" && len(artifacts) > 0 {
		artifacts[0].ImageURL = imageDataURI
	}

	return &Result{Contents: artifacts, BrandVoiceAnalysis: analysis}, nil
}
