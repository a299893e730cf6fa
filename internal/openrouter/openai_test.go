package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_RejectsMalformedKey(t *testing.T) {
	client, err := NewOpenAIClient("plainly-wrong", "", "")

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestOpenAIClient_Complete(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "SDK says hello."}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient("sk-test", "test-model", server.URL)
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), []Message{UserMessage("hello there")}, 0.4)

	require.NoError(t, err)
	assert.Equal(t, "SDK says hello.", content)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, 0.4, gotBody["temperature"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	first, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "hello there", first["content"])
}

func TestOpenAIClient_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	client, err := NewOpenAIClient("sk-test", "", server.URL)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []Message{UserMessage("hello there")}, 0.3)

	assert.ErrorIs(t, err, ErrNoChoices)
}
