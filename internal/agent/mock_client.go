package agent

import "context"

// MockClient provides canned AI responses for testing.
type MockClient struct {
	Response string
	Err      error
	Calls    int
}

// NewMockClient creates a mock that always returns response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
