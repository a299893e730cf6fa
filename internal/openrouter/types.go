// Package openrouter provides the chat-completion client used by the blog
// workflow.
//
// This package handles the single operation the workflow needs: sending an
// ordered list of role/content messages to a completions endpoint at a given
// sampling temperature and returning the text of the first choice. It also
// owns extraction of JSON payloads from model replies, since models wrap
// their JSON in prose more often than not.
//
// Key types:
//   - [Client]: Interface for requesting completions
//   - [HTTPClient]: Implementation speaking the OpenRouter wire format
//   - [OpenAIClient]: Implementation backed by the official OpenAI SDK
//   - [APIError], [NetworkError]: The two fatal failure classes
//
// For testing, use [MockClient] which implements [Client] with scripted
// responses and records every call it receives.
package openrouter

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat message in a completion request.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// ChatRequest is the request body for the completions endpoint.
//
// This is the low-level structure that maps directly to the OpenRouter
// chat-completions format. Most users should call [Client.Complete] instead;
// ChatRequest is assembled internally by [HTTPClient].
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse is the subset of the completions response the workflow reads.
// Only the first choice's message content is ever used.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice is a single completion candidate in a [ChatResponse].
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage carries the generated text of a [Choice].
type ResponseMessage struct {
	Content string `json:"content"`
}
