package openrouter

import (
	"context"
	"fmt"
)

// CompletionCall records the arguments of one [MockClient.Complete] call.
type CompletionCall struct {
	Messages    []Message
	Temperature float64
}

// Prompt returns the content of the last message, which is where the
// workflow puts its prompt.
func (c CompletionCall) Prompt() string {
	if len(c.Messages) == 0 {
		return ""
	}
	return c.Messages[len(c.Messages)-1].Content
}

// MockClient implements [Client] without network access.
//
// Responses are returned in order, one per call. Set Err to make every
// call fail, or CompleteFunc to script behavior per call. Every invocation
// is recorded in Calls regardless of outcome.
type MockClient struct {
	Responses    []string
	Err          error
	CompleteFunc func(ctx context.Context, messages []Message, temperature float64) (string, error)
	Calls        []CompletionCall
}

func (m *MockClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	m.Calls = append(m.Calls, CompletionCall{Messages: messages, Temperature: temperature})
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, temperature)
	}
	if m.Err != nil {
		return "", m.Err
	}
	i := len(m.Calls) - 1
	if i >= len(m.Responses) {
		return "", fmt.Errorf("openrouter: mock exhausted after %d responses", len(m.Responses))
	}
	return m.Responses[i], nil
}

var _ Client = (*MockClient)(nil)
