package brandvoice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandkit-studio/brandkit/internal/llm"
)

func TestAnalyzeEmptyExamplesReturnsDefault(t *testing.T) {
	mock := llm.NewMockClient()
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	got := analyzer.Analyze(context.Background(), nil)

	assert.Equal(t, DefaultAnalysis(), got)
	assert.Equal(t, 0, mock.Calls(), "no service call for empty input")
}

func TestDefaultAnalysisProfile(t *testing.T) {
	got := DefaultAnalysis()
	assert.Equal(t, "professional", got.Tone)
	assert.Equal(t, "clear and concise", got.Style)
	assert.Equal(t, []string{}, got.Terminology)
	assert.Equal(t, "standard", got.Structure)
}

func TestAnalyzeParsesFencedReply(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return "```json\n{\"tone\":\"bold\",\"style\":\"punchy\",\"terminology\":[\"x\"],\"structure\":\"short\"}\n```", nil
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	got := analyzer.Analyze(context.Background(), []CalibrationExample{
		{Kind: KindText, Content: "sample copy"},
	})

	assert.Equal(t, "bold", got.Tone)
	assert.Equal(t, "punchy", got.Style)
	assert.Equal(t, []string{"x"}, got.Terminology)
	assert.Equal(t, "short", got.Structure)
}

func TestAnalyzeServiceErrorFallsBackToDefault(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return "", errors.New("service unavailable")
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	got := analyzer.Analyze(context.Background(), []CalibrationExample{
		{Kind: KindText, Content: "sample"},
	})

	assert.Equal(t, DefaultAnalysis(), got)
}

func TestAnalyzeUnparseableReplyFallsBackToDefault(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return "I'd rather describe the vibe in prose.", nil
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	got := analyzer.Analyze(context.Background(), []CalibrationExample{
		{Kind: KindText, Content: "sample"},
	})

	assert.Equal(t, DefaultAnalysis(), got)
}

func TestAnalyzeRequestShape(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"tone":"t","style":"s","terminology":[],"structure":"st"}`, nil
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	examples := []CalibrationExample{
		{Kind: KindText, Content: "first text"},
		{Kind: KindImage, Content: "aGk=", CaptionText: "the caption", MediaType: "image/jpeg"},
	}
	analyzer.Analyze(context.Background(), examples)

	requests := mock.Requests()
	require.Len(t, requests, 1)
	blocks := requests[0].Blocks

	// header, text example, image, caption, footer
	require.Len(t, blocks, 5)
	assert.Equal(t, llm.BlockText, blocks[0].Kind)
	assert.Contains(t, blocks[0].Text, "visual style")
	assert.Equal(t, llm.BlockText, blocks[1].Kind)
	assert.Contains(t, blocks[1].Text, "first text")
	assert.Equal(t, llm.BlockImage, blocks[2].Kind)
	assert.Equal(t, "image/jpeg", blocks[2].MediaType)
	assert.Equal(t, "aGk=", blocks[2].Data)
	assert.Contains(t, blocks[3].Text, "the caption")
	assert.Contains(t, blocks[4].Text, "visualStyle")
	assert.Contains(t, blocks[4].Text, "terminology")
}

func TestAnalyzeTextOnlyRequestOmitsVisualStyle(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"tone":"t","style":"s","terminology":[],"structure":"st"}`, nil
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	analyzer.Analyze(context.Background(), []CalibrationExample{
		{Kind: KindText, Content: "only text"},
	})

	requests := mock.Requests()
	require.Len(t, requests, 1)
	footer := requests[0].Blocks[len(requests[0].Blocks)-1]
	assert.NotContains(t, footer.Text, "visualStyle")
}

func TestAnalyzeDedupesTerminology(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, req llm.Request) (string, error) {
		return `{"tone":"t","style":"s","terminology":["Synergy","synergy","","  ","growth"],"structure":"st"}`, nil
	}
	analyzer := NewAnalyzer(mock, "test-model", 1000)

	got := analyzer.Analyze(context.Background(), []CalibrationExample{
		{Kind: KindText, Content: "sample"},
	})

	assert.Equal(t, []string{"Synergy", "growth"}, got.Terminology)
}
