// Package imagery decides when a request calls for a generated graphic and
// synthesizes one as an SVG document.
package imagery

import (
	"strings"

	"github.com/brandkit-studio/brandkit/internal/brandvoice"
)

// imageKeywords are topic phrases associated with a request for visual output.
var imageKeywords = []string{
	"image",
	"picture",
	"graphic",
	"visual",
	"poster",
	"banner",
	"illustration",
	"infographic",
	"diagram",
	"logo",
	"visualize",
	"visualise",
	"show me",
	"draw",
}

// imageOnlyPhrases signal that the user wants a graphic and explicitly no
// textual artifacts. These are matched against the topic only, never against
// example text.
var imageOnlyPhrases = []string{
	"just an image",
	"just the image",
	"only an image",
	"image only",
	"only visual",
	"visual only",
	"no text",
	"without text",
	"without any text",
}

// IntentResult is the outcome of image intent classification.
type IntentResult struct {
	WantsImage bool   `json:"wantsImage"`
	ImageOnly  bool   `json:"imageOnly"`
	Reasoning  string `json:"reasoning"`
}

// ClassifyIntent decides whether the user wants a generated image and whether
// they want image-only output. Pure rule-based classification, no external
// calls.
func ClassifyIntent(topic string, examples []brandvoice.CalibrationExample) IntentResult {
	lowerTopic := strings.ToLower(topic)

	topicKeyword := containsAny(lowerTopic, imageKeywords)
	imageInExamples := brandvoice.HasImageExample(examples)
	exampleTextKeyword := exampleTextMentionsImage(examples)
	imageOnly := containsAny(lowerTopic, imageOnlyPhrases)

	result := IntentResult{
		WantsImage: topicKeyword || imageInExamples || exampleTextKeyword,
		ImageOnly:  imageOnly,
	}

	switch {
	case imageOnly:
		result.Reasoning = "Topic explicitly requests visual-only output"
	case topicKeyword:
		result.Reasoning = "Topic mentions a visual content keyword"
	case exampleTextKeyword:
		result.Reasoning = "Brand voice example text mentions visual content"
	case imageInExamples:
		result.Reasoning = "Brand voice examples include images"
	}

	return result
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func exampleTextMentionsImage(examples []brandvoice.CalibrationExample) bool {
	for _, e := range examples {
		text := e.CaptionText
		if !e.IsImage() {
			text = e.Content
		}
		if containsAny(strings.ToLower(text), imageKeywords) {
			return true
		}
	}
	return false
}
