// Package llm defines the generative-service contract used by every
// content-producing component: an ordered list of text/image content blocks in,
// the first text block of the reply out.
package llm

import "context"

// BlockKind discriminates content block types.
type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockImage BlockKind = "image"
)

// ContentBlock is one element of a multi-part request. Text blocks carry Text;
// image blocks carry base64 Data plus a MediaType such as "image/png".
type ContentBlock struct {
	Kind      BlockKind
	Text      string
	Data      string
	MediaType string
}

// TextBlock returns a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockText, Text: text}
}

// ImageBlock returns a base64 image content block.
func ImageBlock(mediaType, data string) ContentBlock {
	return ContentBlock{Kind: BlockImage, MediaType: mediaType, Data: data}
}

// Request is a single generation call.
type Request struct {
	Model     string
	MaxTokens int
	Blocks    []ContentBlock
}

// Client is the interface every generative provider implements.
// Generate returns the text of the first text block in the provider's reply.
// Use this interface for dependency injection to enable stubbing in tests.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}
