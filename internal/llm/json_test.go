package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type voiceProfile struct {
	Tone        string   `json:"tone"`
	Style       string   `json:"style"`
	Terminology []string `json:"terminology"`
	Structure   string   `json:"structure"`
}

func TestExtractJSONFencedBlock(t *testing.T) {
	raw := `{"tone":"bold","style":"punchy","terminology":["x"],"structure":"short"}`
	fenced := "```json\n" + raw + "\n```"

	fromFenced, err := ParseJSONResponse[voiceProfile](fenced)
	require.NoError(t, err)

	fromRaw, err := ParseJSONResponse[voiceProfile](raw)
	require.NoError(t, err)

	assert.Equal(t, fromRaw, fromFenced)
	assert.Equal(t, "bold", fromFenced.Tone)
	assert.Equal(t, []string{"x"}, fromFenced.Terminology)
}

func TestExtractJSONBalancedBraces(t *testing.T) {
	response := `Sure! Here is the analysis you asked for:

{"tone":"warm","style":"casual","terminology":[],"structure":"loose"}

Let me know if you need anything else.`

	got := ExtractJSON(response)
	assert.Equal(t, `{"tone":"warm","style":"casual","terminology":[],"structure":"loose"}`, got)
}

func TestExtractJSONNestedObjects(t *testing.T) {
	response := `prefix {"a":{"b":{"c":1}},"d":"x"} suffix`
	assert.Equal(t, `{"a":{"b":{"c":1}},"d":"x"}`, ExtractJSON(response))
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	response := `{"tone":"a } inside a string","style":"s"}`
	assert.Equal(t, response, ExtractJSON(response))
}

func TestExtractJSONRawFallback(t *testing.T) {
	response := "  just plain text, no braces  "
	assert.Equal(t, "just plain text, no braces", ExtractJSON(response))
}

func TestExtractJSONFenceWinsOverLooseBraces(t *testing.T) {
	response := "```\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, ExtractJSON(response))
}

func TestParseJSONResponseGarbage(t *testing.T) {
	_, err := ParseJSONResponse[voiceProfile]("the model refused to answer")
	assert.Error(t, err)
}
