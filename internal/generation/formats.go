// Package generation builds per-format marketing content and orchestrates a
// full generation request.
package generation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatSpec is the fixed instruction template for one content format.
type FormatSpec struct {
	Title        string `yaml:"title"`
	Instructions string `yaml:"instructions"`
}

var builtinFormats = map[string]FormatSpec{
	"blog": {
		Title: "Blog Article",
		Instructions: "Write a long-form blog article of 800-1200 words. Open with a hook, " +
			"use descriptive section headings, and close with a call to action.",
	},
	"linkedin": {
		Title: "LinkedIn Posts",
		Instructions: "Write 3 professional LinkedIn posts of 100-200 words each, numbered " +
			"1-3. Each should open with a strong first line, share one insight, and end " +
			"with a question or call to action. Include 3-5 relevant hashtags per post.",
	},
	"twitter": {
		Title: "X/Twitter Posts",
		Instructions: "Write 5 punchy posts of at most 280 characters each, numbered 1-5. " +
			"Vary the angle across posts: a stat, a question, a hot take, a tip, and a " +
			"teaser. At most 2 hashtags per post.",
	},
	"ads": {
		Title: "Ad Copy",
		Instructions: "Write 3 paid ad variants, numbered 1-3. Each variant is a pair: a " +
			"headline of at most 30 characters and a description of at most 90 characters.",
	},
	"instagram": {
		Title: "Instagram Captions",
		Instructions: "Write 3 Instagram captions, numbered 1-3, each 50-125 words with a " +
			"visual hook in the first line, line breaks for readability, and 5-10 hashtags.",
	},
	"facebook": {
		Title: "Facebook Posts",
		Instructions: "Write 3 engagement-focused Facebook posts, numbered 1-3, each 40-80 " +
			"words, conversational, each ending with a question that invites comments.",
	},
	"email": {
		Title: "Email Campaign",
		Instructions: "Write one marketing email: a subject line of at most 50 characters, " +
			"a preview line, and a 150-300 word body with a single clear call to action.",
	},
	"newsletter": {
		Title: "Newsletter",
		Instructions: "Write one newsletter issue of 400-600 words: a short personal intro, " +
			"2-3 titled sections, and a sign-off with a call to action.",
	},
}

// Registry resolves format tags to instruction templates.
type Registry struct {
	formats map[string]FormatSpec
}

// NewRegistry returns a registry with the built-in formats.
func NewRegistry() *Registry {
	formats := make(map[string]FormatSpec, len(builtinFormats))
	for k, v := range builtinFormats {
		formats[k] = v
	}
	return &Registry{formats: formats}
}

// LoadOverrides merges format templates from a YAML file over the built-ins.
func (r *Registry) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read formats file: %w", err)
	}

	var overrides map[string]FormatSpec
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse formats file: %w", err)
	}

	for k, v := range overrides {
		r.formats[k] = v
	}
	return nil
}

// Lookup returns the template for a format tag. Unknown tags get a generic
// template named after the tag so a typo still yields usable content.
func (r *Registry) Lookup(format string) FormatSpec {
	if spec, ok := r.formats[format]; ok {
		return spec
	}
	return FormatSpec{
		Title:        format,
		Instructions: fmt.Sprintf("Write marketing content in the %q format, 100-300 words.", format),
	}
}
