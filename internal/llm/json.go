package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencePattern matches a markdown code fence, with or without a language tag.
var fencePattern = regexp.MustCompile("(?s)```(?:[a-zA-Z]+)?\\s*(.*?)```")

// ExtractJSON pulls a JSON candidate out of free-form model output.
// Fallback order: fenced code block contents, then the first balanced
// brace-delimited substring, then the raw text. The balanced scan is
// string/escape aware but can still be defeated by pathological nesting;
// callers are expected to fall back to defaults when decoding fails.
func ExtractJSON(response string) string {
	if m := fencePattern.FindStringSubmatch(response); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}

	if jsonStr, ok := extractBalancedJSON(response, '{', '}'); ok {
		return jsonStr
	}

	return strings.TrimSpace(response)
}

// extractBalancedJSON finds the first balanced structure starting with openChar.
// It handles nested structures by counting bracket depth, skipping brackets
// inside string literals.
func extractBalancedJSON(s string, openChar, closeChar byte) (string, bool) {
	start := strings.IndexByte(s, openChar)
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		if c == openChar {
			depth++
		} else if c == closeChar {
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// ParseJSONResponse extracts JSON from a model reply and unmarshals it into T.
func ParseJSONResponse[T any](response string) (T, error) {
	var result T

	jsonStr := ExtractJSON(response)
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return result, fmt.Errorf("unmarshal JSON: %w", err)
	}

	return result, nil
}
