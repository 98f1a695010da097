package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// Low temperature biases the model toward deterministic structured output,
// which every endpoint here depends on.
const defaultTemperature = 0.2

type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAI(apiKey, baseURL, model string, maxTokens int) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	var oaMsgs []openai.ChatCompletionMessage
	for _, m := range messages {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: defaultTemperature,
		MaxTokens:   c.maxTokens,
	}

	return withRetry(ctx, func() (Response, error) {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return Response{}, err
		}
		if len(resp.Choices) == 0 {
			return Response{}, ErrProviderError
		}
		out := Response{
			Content: resp.Choices[0].Message.Content,
			Model:   c.model,
		}
		out.PromptTokens = resp.Usage.PromptTokens
		out.CompletionTokens = resp.Usage.CompletionTokens
		out.TotalTokens = resp.Usage.TotalTokens
		return out, nil
	})
}
