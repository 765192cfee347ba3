// Package results writes evaluation reports.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EvalConfig represents the configuration section of the eval YAML.
type EvalConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	DatasetPath string `yaml:"datasetpath"`
	SampleSize  int    `yaml:"samplesize"`
	Timestamp   string `yaml:"timestamp"`
}

// FormatResult is the outcome for one format of one brief.
type FormatResult struct {
	Format           string `yaml:"format"`
	ConsistencyScore int    `yaml:"consistencyscore"`
	ContentLength    int    `yaml:"contentlength"`
	Failed           bool   `yaml:"failed,omitempty"`
	ErrorBody        string `yaml:"errorbody,omitempty"`
}

// EvalResult represents a single brief's evaluation result.
type EvalResult struct {
	Identifier    string         `yaml:"identifier"`
	Topic         string         `yaml:"topic"`
	Industry      string         `yaml:"industry"`
	AverageScore  float64        `yaml:"averagescore"`
	FormatResults []FormatResult `yaml:"formatresults"`
	Error         string         `yaml:"error,omitempty"`
}

// EvalSpec represents the complete evaluation report.
type EvalSpec struct {
	Config  EvalConfig   `yaml:"config"`
	Results []EvalResult `yaml:"results"`
}

// SaveToYAML saves evaluation results to a YAML file in the evals/ directory
// and returns the file path.
func SaveToYAML(provider, model, datasetPath string, results []EvalResult) (string, error) {
	if err := os.MkdirAll("evals", 0755); err != nil {
		return "", fmt.Errorf("failed to create evals directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	spec := EvalSpec{
		Config: EvalConfig{
			Provider:    provider,
			Model:       model,
			DatasetPath: datasetPath,
			SampleSize:  len(results),
			Timestamp:   timestamp,
		},
		Results: results,
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}

	path := filepath.Join("evals", fmt.Sprintf("eval_%s_%s.yaml", provider, timestamp))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	return path, nil
}
