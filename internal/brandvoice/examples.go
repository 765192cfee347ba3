// Package brandvoice infers a tone/style/terminology profile from
// user-supplied calibration examples.
package brandvoice

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// ExampleKind discriminates calibration example types.
type ExampleKind string

const (
	KindText  ExampleKind = "text"
	KindImage ExampleKind = "image"
	KindMixed ExampleKind = "mixed"
)

// CalibrationExample is the canonical tagged form of one brand-voice sample.
// Text examples carry Content; image and mixed examples carry a base64 image
// payload in Content plus an optional CaptionText.
type CalibrationExample struct {
	Kind        ExampleKind `json:"kind"`
	Content     string      `json:"content"`
	CaptionText string      `json:"captionText,omitempty"`
	MediaType   string      `json:"mediaType,omitempty"`
}

// IsImage reports whether the example carries an image payload.
func (e CalibrationExample) IsImage() bool {
	return e.Kind == KindImage || e.Kind == KindMixed
}

// RawExample accepts the two wire shapes callers send: a legacy plain string
// or the tagged object form.
type RawExample struct {
	Text   string
	Tagged *CalibrationExample
}

// UnmarshalJSON accepts either a JSON string or a tagged object.
func (r *RawExample) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Text = s
		return nil
	}

	var tagged CalibrationExample
	if err := json.Unmarshal(data, &tagged); err != nil {
		// Malformed entries are dropped during normalization, not rejected.
		return nil
	}
	r.Tagged = &tagged
	return nil
}

// NormalizeExamples converts heterogeneous calibration input into the tagged
// canonical form. A plain string becomes a text example; a tagged value is
// passed through once its content checks out. Malformed or empty entries are
// silently filtered since calibration is advisory.
func NormalizeExamples(raw []RawExample) []CalibrationExample {
	examples := make([]CalibrationExample, 0, len(raw))
	for _, r := range raw {
		if r.Tagged == nil {
			if strings.TrimSpace(r.Text) == "" {
				continue
			}
			examples = append(examples, CalibrationExample{Kind: KindText, Content: r.Text})
			continue
		}

		e := *r.Tagged
		switch e.Kind {
		case KindText:
			if strings.TrimSpace(e.Content) == "" && strings.TrimSpace(e.CaptionText) == "" {
				continue
			}
		case KindImage, KindMixed:
			if _, err := base64.StdEncoding.DecodeString(e.Content); err != nil || e.Content == "" {
				continue
			}
			if e.MediaType == "" {
				e.MediaType = "image/png"
			}
		default:
			continue
		}
		examples = append(examples, e)
	}
	return examples
}

// HasImageExample reports whether any example carries an image payload.
func HasImageExample(examples []CalibrationExample) bool {
	for _, e := range examples {
		if e.IsImage() {
			return true
		}
	}
	return false
}
