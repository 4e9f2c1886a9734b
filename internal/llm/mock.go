package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	// Capturados del ultimo request, para asserts en tests.
	LastSystemPrompt string
	LastUserPrompt   string
	LastParams       Params
	Calls            int
}

func (m *MockClient) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string, params Params) (string, error) {
	m.Calls++
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt
	m.LastParams = params
	return m.Response, m.Err
}
