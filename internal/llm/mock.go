package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content string
	Err     error
}

// MockProvider is a deterministic Provider for testing. Generation and
// transcription responses are served in FIFO order; all calls are recorded.
type MockProvider struct {
	mu             sync.Mutex
	responses      []MockResponse
	transcriptions []MockResponse

	GenerateCalls   []GenerateCall
	TranscribeCalls []string
}

// GenerateCall records one GenerateText invocation.
type GenerateCall struct {
	Prompt string
	Schema SchemaKind
}

// NewMockProvider creates a MockProvider with the given canned generation
// responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// QueueTranscription adds canned transcription responses.
func (m *MockProvider) QueueTranscription(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcriptions = append(m.transcriptions, responses...)
}

func (m *MockProvider) GenerateText(_ context.Context, prompt string, schema SchemaKind) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateCalls = append(m.GenerateCalls, GenerateCall{Prompt: prompt, Schema: schema})

	if len(m.responses) == 0 {
		return "", &ErrProviderUnavailable{}
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Content, nil
}

func (m *MockProvider) TranscribeAudio(_ context.Context, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TranscribeCalls = append(m.TranscribeCalls, path)

	if len(m.transcriptions) == 0 {
		return "", &ErrProviderUnavailable{}
	}
	resp := m.transcriptions[0]
	m.transcriptions = m.transcriptions[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Content, nil
}
