package mock

import (
	"context"
	"sync"
)

// Prompt is one recorded Complete call.
type Prompt struct {
	System string
	User   string
}

// MockGenerator is a test double for ai.Generator.
type MockGenerator struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete echoes a fixed reply.
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	mu      sync.Mutex
	prompts []Prompt
}

// DefaultReply is returned by Complete when no behavior is injected.
const DefaultReply = "mock answer"

// NewMockGenerator creates a generator that answers DefaultReply.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// WithReply makes Complete return reply and err.
func (m *MockGenerator) WithReply(reply string, err error) *MockGenerator {
	m.CompleteFunc = func(context.Context, string, string) (string, error) {
		return reply, err
	}
	return m
}

// Complete records the prompts and returns the injected reply.
func (m *MockGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, Prompt{System: systemPrompt, User: userPrompt})
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt)
	}
	return DefaultReply, nil
}

// CallCount returns the number of Complete calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the most recent prompts, or a zero Prompt.
func (m *MockGenerator) LastPrompt() Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return Prompt{}
	}
	return m.prompts[len(m.prompts)-1]
}

// Reset clears recorded calls and injected behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
	m.CompleteFunc = nil
}
