package models

import (
	"time"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
	"github.com/brandkit-studio/brandkit/internal/generation"
)

// GenerationSession records one completed generation request so past results
// can be listed and re-fetched while the server runs.
type GenerationSession struct {
	ID                 string                `json:"id"`
	Topic              string                `json:"topic"`
	Industry           string                `json:"industry"`
	Formats            []string              `json:"formats"`
	Contents           []generation.Artifact `json:"contents"`
	BrandVoiceAnalysis *brandvoice.Analysis  `json:"brand_voice_analysis,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
}
