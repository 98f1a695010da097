package llm

import (
	"context"
	"fmt"
	"strings"

	"creative-studio/internal/config"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
)

// disabledClient stands in when no provider credential is configured.
// Every Generate call fails with ErrProviderUnavailable so call sites take
// their deterministic fallback path.
type disabledClient struct{}

func (disabledClient) Generate(context.Context, []Message) (Response, error) {
	return Response{}, ErrProviderUnavailable
}

func Disabled() Client {
	return disabledClient{}
}

// Factory creates LLM clients with consistent logic
type Factory struct {
	OpenaiAPIKey     string
	OpenaiBaseURL    string
	OpenaiModel      string
	YandexOAuthToken string
	YandexFolderID   string
	MaxTokens        int
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		OpenaiModel:      cfg.OpenAIModel,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
		MaxTokens:        2000,
	}
}

// CreateClient returns a client for the given provider, or the disabled
// client when the provider's credential is missing.
func (f *Factory) CreateClient(provider string) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		if f.OpenaiAPIKey == "" {
			return Disabled(), nil
		}
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, f.OpenaiModel, f.MaxTokens), nil
	case ProviderYandex:
		if f.YandexOAuthToken == "" {
			return Disabled(), nil
		}
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
