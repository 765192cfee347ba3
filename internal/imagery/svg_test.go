package imagery

import (
	"strings"
	"testing"
)

func TestExtractSVG(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630"><rect width="10" height="10"/></svg>`

	tests := []struct {
		name     string
		response string
		expected string
		ok       bool
	}{
		{
			name:     "bare document",
			response: doc,
			expected: doc,
			ok:       true,
		},
		{
			name:     "fenced document",
			response: "```svg\n" + doc + "\n```",
			expected: doc,
			ok:       true,
		},
		{
			name:     "xml fence",
			response: "```xml\n" + doc + "\n```",
			expected: doc,
			ok:       true,
		},
		{
			name:     "prose wrapper",
			response: "Here is your graphic:\n\n" + doc + "\n\nEnjoy!",
			expected: doc,
			ok:       true,
		},
		{
			name:     "no svg at all",
			response: "I cannot draw that.",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractSVG(tt.response)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestPlaceholderSVGContract(t *testing.T) {
	topic := "Spring sale at <Bob's> \"shop\""
	got := PlaceholderSVG(topic)

	if !strings.HasPrefix(got, "<svg") {
		t.Error("Placeholder must start with the svg opening tag")
	}
	if !strings.HasSuffix(got, "</svg>") {
		t.Error("Placeholder must end with the svg closing tag")
	}
	if !strings.Contains(got, "Spring sale at") {
		t.Error("Placeholder must contain the topic text")
	}
	if strings.Contains(got, "<Bob's>") {
		t.Error("Topic text must be XML-escaped")
	}
}

func TestSanitizeSVGStripsScripts(t *testing.T) {
	dirty := `<svg width="1200" height="630" viewBox="0 0 1200 630" onload="alert(1)">` +
		`<script>alert(2)</script>` +
		`<rect width="10" height="10" fill="#f97316"/>` +
		`</svg>`

	clean := SanitizeSVG(dirty)

	if strings.Contains(clean, "script") {
		t.Errorf("Script element survived sanitization: %s", clean)
	}
	if strings.Contains(clean, "onload") {
		t.Errorf("Event handler survived sanitization: %s", clean)
	}
	if !strings.Contains(clean, "<rect") {
		t.Errorf("Legitimate shape was stripped: %s", clean)
	}
	if !strings.Contains(clean, "viewBox=") {
		t.Errorf("viewBox casing not restored: %s", clean)
	}
}

func TestSanitizeSVGKeepsGradients(t *testing.T) {
	doc := `<svg width="1200" height="630"><defs><linearGradient id="g"><stop offset="0%" stop-color="#fff"/></linearGradient></defs><rect fill="url(#g)" width="10" height="10"/></svg>`

	clean := SanitizeSVG(doc)

	if !strings.Contains(clean, "linearGradient") {
		t.Errorf("Gradient was stripped or left lowercased: %s", clean)
	}
	if !strings.Contains(clean, "stop-color") {
		t.Errorf("Gradient stop attributes stripped: %s", clean)
	}
}

func TestEncodeSVGDataURI(t *testing.T) {
	got := EncodeSVGDataURI(`<svg width="10" height='10'></svg>`)

	if !strings.HasPrefix(got, "data:image/svg+xml,") {
		t.Fatalf("Unexpected prefix: %s", got)
	}
	if strings.ContainsAny(got, `"'`) {
		t.Errorf("Data URI contains raw quotes: %s", got)
	}
	if !strings.Contains(got, "%22") {
		t.Errorf("Double quote not encoded as %%22: %s", got)
	}
	if !strings.Contains(got, "%27") {
		t.Errorf("Single quote not encoded as %%27: %s", got)
	}
	// The media type in the prefix carries a literal "+"; only the encoded
	// payload must be free of plus-encoding.
	payload := strings.TrimPrefix(got, "data:image/svg+xml,")
	if strings.Contains(payload, "+") {
		t.Errorf("Spaces must be percent-encoded, not plus-encoded: %s", payload)
	}
	if !strings.Contains(payload, "%20") {
		t.Errorf("Expected %%20 for spaces: %s", payload)
	}
}
