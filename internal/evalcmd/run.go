// Package evalcmd implements the eval subcommands.
package evalcmd

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/config"
	"github.com/brandkit-studio/brandkit/internal/eval/dataset"
	"github.com/brandkit-studio/brandkit/internal/eval/results"
	"github.com/brandkit-studio/brandkit/internal/generation"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

// NewRunCmd returns the "eval run" command.
func NewRunCmd() *cobra.Command {
	var (
		datasetPath string
		concurrency int
		sampleSize  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run content generation against a brief dataset and score consistency",
		Long: `Loads a dataset of marketing briefs (Parquet or JSONL), generates content
for each brief with the configured provider, scores terminology consistency
against the brief's brand voice, and writes a YAML report under evals/.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, datasetPath, concurrency, sampleSize)
		},
	}

	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "Path to the brief dataset (.parquet or .jsonl)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 2, "Number of briefs processed in parallel")
	cmd.Flags().IntVarP(&sampleSize, "sample", "s", 0, "Evaluate only the first N briefs (0 = all)")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func executeRun(cmd *cobra.Command, datasetPath string, concurrency, sampleSize int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.Info("Starting evaluation run", "dataset", datasetPath, "provider", cfg.Provider, "model", cfg.DefaultModel())

	briefs, err := dataset.NewLoader(datasetPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if sampleSize > 0 && sampleSize < len(briefs) {
		briefs = briefs[:sampleSize]
	}

	slog.Info("Dataset loaded", "briefs", len(briefs))

	client, err := llm.NewClientForProvider(cfg.Provider, cfg.AnthropicAPIKey, cfg.GeminiAPIKey, cfg.OllamaURL)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}

	registry := generation.NewRegistry()
	if cfg.FormatsFile != "" {
		if err := registry.LoadOverrides(cfg.FormatsFile); err != nil {
			return err
		}
	}
	orchestrator := generation.NewOrchestrator(client, cfg.DefaultModel(), cfg.MaxTokens, registry)

	slog.Info("Processing briefs", "concurrency", concurrency)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)
	resultsChan := make(chan results.EvalResult, len(briefs))

	for _, brief := range briefs {
		wg.Add(1)
		go func(brief dataset.Brief) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			resultsChan <- evaluateBrief(cmd.Context(), orchestrator, brief)
		}(brief)
	}

	wg.Wait()
	close(resultsChan)

	evalResults := make([]results.EvalResult, 0, len(briefs))
	for r := range resultsChan {
		evalResults = append(evalResults, r)
	}
	sort.Slice(evalResults, func(i, j int) bool {
		return evalResults[i].Identifier < evalResults[j].Identifier
	})

	path, err := results.SaveToYAML(cfg.Provider, cfg.DefaultModel(), datasetPath, evalResults)
	if err != nil {
		return err
	}

	slog.Info("Evaluation complete", "briefs", len(evalResults), "report", path)
	return nil
}

func evaluateBrief(ctx context.Context, orchestrator *generation.Orchestrator, brief dataset.Brief) results.EvalResult {
	result := results.EvalResult{
		Identifier: brief.ID,
		Topic:      brief.Topic,
		Industry:   brief.Industry,
	}

	voice := brandvoice.DefaultAnalysis()
	if brief.Tone != "" {
		voice.Tone = brief.Tone
	}
	if brief.Style != "" {
		voice.Style = brief.Style
	}
	voice.Terminology = brief.Terminology

	res, err := orchestrator.Run(ctx, generation.Request{
		Topic:      brief.Topic,
		Industry:   brief.Industry,
		Formats:    brief.Formats,
		BrandVoice: &voice,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	var scoreSum, scored int
	for _, artifact := range res.Contents {
		fr := results.FormatResult{
			Format:        artifact.Format,
			ContentLength: len(artifact.Content),
		}
		if artifact.ConsistencyScore != nil {
			fr.ConsistencyScore = *artifact.ConsistencyScore
			scoreSum += *artifact.ConsistencyScore
			scored++
		} else {
			fr.Failed = true
			fr.ErrorBody = artifact.Content
		}
		result.FormatResults = append(result.FormatResults, fr)
	}
	if scored > 0 {
		result.AverageScore = float64(scoreSum) / float64(scored)
	}

	return result
}
