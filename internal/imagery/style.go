package imagery

import "github.com/brandkit-studio/brandkit/internal/brandvoice"

// ExtractVisualStyle derives a style descriptor from an analyzed brand voice
// or from the presence of image examples. An empty return means no style
// guidance is available.
func ExtractVisualStyle(analysis *brandvoice.Analysis, examples []brandvoice.CalibrationExample) string {
	if analysis != nil && analysis.VisualStyle != "" {
		return analysis.VisualStyle
	}

	if brandvoice.HasImageExample(examples) {
		tone := "professional"
		if analysis != nil && analysis.Tone != "" {
			tone = analysis.Tone
		}
		return tone + " style with clean, modern design"
	}

	return ""
}
