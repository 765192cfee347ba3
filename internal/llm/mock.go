package llm

import (
	"context"
	"sync"
)

// MockClient is a configurable mock for testing generation pipelines.
// Set GenerateFunc to control behavior; every request is recorded.
type MockClient struct {
	// GenerateFunc is called when Generate is invoked.
	// If nil, returns an empty string and nil error.
	GenerateFunc func(ctx context.Context, req Request) (string, error)

	mu       sync.Mutex
	requests []Request
}

// NewMockClient creates a new mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Generate implements Client.
func (m *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return "", nil
}

// Requests returns a copy of every request seen so far.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Calls returns how many times Generate was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

var _ Client = (*MockClient)(nil)
