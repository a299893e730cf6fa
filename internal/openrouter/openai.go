package openrouter

import (
	"context"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements [Client] on the official OpenAI Go SDK. It is
// selected by the "openai" provider setting and serves any
// OpenAI-compatible endpoint; baseURL, when non-empty, points the SDK at
// an alternative API root.
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIClient builds an SDK-backed client. The key is validated by
// shape, same as [NewHTTPClient]. An empty model selects [DefaultModel].
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{model: model, opts: opts}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Client = (*OpenAIClient)(nil)
