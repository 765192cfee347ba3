package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

func newTestOrchestrator(mock *llm.MockClient) *Orchestrator {
	return NewOrchestrator(mock, "test-model", 1000, NewRegistry())
}

func TestCalibrationOnlyRequest(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"tone":"bold","style":"punchy","terminology":["x"],"structure":"short"}`, nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		BrandVoiceExamples: []brandvoice.RawExample{{Text: "our sample copy"}},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Contents)
	require.NotNil(t, result.BrandVoiceAnalysis)
	assert.Equal(t, "bold", result.BrandVoiceAnalysis.Tone)
}

func TestValidationErrors(t *testing.T) {
	o := newTestOrchestrator(llm.NewMockClient())

	tests := []struct {
		name string
		req  Request
	}{
		{"missing everything", Request{}},
		{"missing topic", Request{Industry: "retail", Formats: []string{"blog"}}},
		{"missing industry", Request{Topic: "t", Formats: []string{"blog"}}},
		{"missing formats", Request{Topic: "t", Industry: "retail"}},
		{"whitespace topic", Request{Topic: "   ", Industry: "retail", Formats: []string{"blog"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.Run(context.Background(), tt.req)
			var vErr *ValidationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &vErr), "expected a validation error, got %v", err)
		})
	}
}

func TestFanOutFailureIsolation(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		if strings.Contains(req.Blocks[0].Text, "newsletter") {
			return "", errors.New("upstream exploded")
		}
		return "fine content with synergy", nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:    "spring sale",
		Industry: "retail",
		Formats:  []string{"blog", "twitter", "email", "newsletter", "linkedin"},
		BrandVoice: &brandvoice.Analysis{
			Tone: "bold", Style: "punchy", Terminology: []string{"synergy"}, Structure: "short",
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Contents, 5)

	failures := 0
	for _, artifact := range result.Contents {
		if strings.Contains(artifact.Content, "upstream exploded") {
			failures++
			assert.Equal(t, "newsletter", artifact.Format)
			assert.Nil(t, artifact.ConsistencyScore)
		} else {
			require.NotNil(t, artifact.ConsistencyScore, "format %s", artifact.Format)
			assert.Equal(t, 95, *artifact.ConsistencyScore)
		}
	}
	assert.Equal(t, 1, failures)

	// Results stay in request order.
	assert.Equal(t, "blog", result.Contents[0].Format)
	assert.Equal(t, "linkedin", result.Contents[4].Format)
}

func TestImageOnlyRequest(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630"><rect width="10" height="10"/></svg>`, nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:    "just an image, no text please, of a coffee shop",
		Industry: "hospitality",
		Formats:  []string{"blog", "twitter"},
	})
	require.NoError(t, err)

	require.Len(t, result.Contents, 1)
	artifact := result.Contents[0]
	assert.Equal(t, "image", artifact.Format)
	assert.True(t, strings.HasPrefix(artifact.ImageURL, "data:image/svg+xml,"))
	assert.Empty(t, artifact.Content)

	// Only the synthesis call went out; no per-format generation.
	assert.Equal(t, 1, mock.Calls())
}

func TestWantsImageAttachesGraphicToFirstArtifact(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		if strings.Contains(req.Blocks[0].Text, "SVG") {
			return `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630"></svg>`, nil
		}
		return "content", nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:    "Generate a poster for our spring sale",
		Industry: "retail",
		Formats:  []string{"blog", "twitter"},
	})
	require.NoError(t, err)

	require.Len(t, result.Contents, 2)
	assert.True(t, strings.HasPrefix(result.Contents[0].ImageURL, "data:image/svg+xml,"))
	assert.Empty(t, result.Contents[1].ImageURL)
}

func TestNoImageForPlainTopic(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return "content", nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:    "Announce our new pricing tiers",
		Industry: "saas",
		Formats:  []string{"blog"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Contents[0].ImageURL)
	// One call per format, no synthesis call.
	assert.Equal(t, 1, mock.Calls())
}

func TestFreshExamplesWinOverPrecomputedVoice(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		if strings.Contains(req.Blocks[0].Text, "brand voice analyst") {
			return `{"tone":"fresh","style":"s","terminology":[],"structure":"st"}`, nil
		}
		return "content", nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:              "topic",
		Industry:           "retail",
		Formats:            []string{"blog"},
		BrandVoiceExamples: []brandvoice.RawExample{{Text: "an example"}},
		BrandVoice:         &brandvoice.Analysis{Tone: "stale"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.BrandVoiceAnalysis)
	assert.Equal(t, "fresh", result.BrandVoiceAnalysis.Tone)
}

func TestPrecomputedVoiceUsedWithoutExamples(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return "content", nil
	}
	o := newTestOrchestrator(mock)

	result, err := o.Run(context.Background(), Request{
		Topic:      "topic",
		Industry:   "retail",
		Formats:    []string{"blog"},
		BrandVoice: &brandvoice.Analysis{Tone: "precomputed"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.BrandVoiceAnalysis)
	assert.Equal(t, "precomputed", result.BrandVoiceAnalysis.Tone)
}
