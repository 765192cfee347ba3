package imagery

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var svgPattern = regexp.MustCompile(`(?s)<svg[\s>].*?</svg>`)

// svgPolicy allows the shape, text, and gradient vocabulary our prompts ask
// for and strips everything else, in particular scripts and event handlers.
var svgPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"svg", "g", "defs", "rect", "circle", "ellipse", "line", "polyline",
		"polygon", "path", "text", "tspan", "title", "desc",
		"lineargradient", "radialgradient", "stop",
	)
	p.AllowAttrs(
		"id", "width", "height", "viewbox", "xmlns", "fill", "stroke",
		"stroke-width", "stroke-linecap", "stroke-linejoin", "stroke-dasharray",
		"opacity", "fill-opacity", "stroke-opacity",
		"x", "y", "x1", "y1", "x2", "y2", "cx", "cy", "r", "rx", "ry",
		"d", "points", "transform", "dx", "dy",
		"font-family", "font-size", "font-weight", "text-anchor",
		"dominant-baseline", "offset", "stop-color", "stop-opacity",
		"gradientunits", "gradienttransform", "preserveaspectratio",
	).Globally()
	return p
}()

// The sanitizer's HTML tokenizer lowercases element and attribute names,
// which is invalid for camelCase SVG names when the document is served as
// image/svg+xml. Restore the ones our policy allows.
var svgCaseRestorer = strings.NewReplacer(
	"lineargradient", "linearGradient",
	"radialgradient", "radialGradient",
	"viewbox=", "viewBox=",
	"gradientunits=", "gradientUnits=",
	"gradienttransform=", "gradientTransform=",
	"preserveaspectratio=", "preserveAspectRatio=",
)

// SanitizeSVG strips unsafe markup from a model-produced SVG document.
func SanitizeSVG(svg string) string {
	return svgCaseRestorer.Replace(svgPolicy.Sanitize(svg))
}

// ExtractSVG pulls an SVG document out of free-form model output: strip fence
// markers, and if the result does not already start with the opening tag,
// take the first well-formed <svg>...</svg> span.
func ExtractSVG(response string) (string, bool) {
	s := strings.TrimSpace(response)
	for _, prefix := range []string{"```svg", "```xml", "```html", "```"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "<svg") {
		return s, true
	}
	if m := svgPattern.FindString(s); m != "" {
		return m, true
	}
	return "", false
}

// PlaceholderSVG is the deterministic fallback graphic: a fixed gradient
// background with the topic text centered. Always minimal well-formed markup.
func PlaceholderSVG(topic string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
  <defs>
    <linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="#f97316"/>
      <stop offset="100%%" stop-color="#fbbf24"/>
    </linearGradient>
  </defs>
  <rect width="1200" height="630" fill="url(#bg)"/>
  <text x="600" y="315" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="48" fill="#ffffff">%s</text>
</svg>`, escapeXML(topic))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// EncodeSVGDataURI embeds an SVG document as a data URI. Quotes must come out
// percent-encoded (%27/%22) so the URI is safe inline as an attribute value.
func EncodeSVGDataURI(svg string) string {
	encoded := url.QueryEscape(svg)
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	return "data:image/svg+xml," + encoded
}
