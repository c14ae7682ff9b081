package groq

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"newschat-server/internal/domain/chat"
	"newschat-server/internal/infrastructure/metrics"
	"newschat-server/internal/utils/platformerrors"
)

// Client invokes chat completions against Groq's OpenAI-compatible API.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ chat.LLMClient = (*Client)(nil)

// NewClient creates a new Groq client. baseURL is overridable for tests.
func NewClient(apiKey, baseURL, model string, temperature float32, timeout time.Duration) *Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: temperature,
	}
}

// Complete performs one chat completion and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, turns []chat.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages:    messages,
	})
	metrics.RecordProviderLatency("groq", "chat_completion", time.Since(start).Seconds())

	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "groq chat completion failed", err, "")
	}
	if len(resp.Choices) == 0 {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "groq returned no completion choices", nil, "")
	}

	return resp.Choices[0].Message.Content, nil
}
