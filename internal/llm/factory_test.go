package llm

import (
	"context"
	"errors"
	"testing"

	"creative-studio/internal/config"
)

func TestFactoryWithoutCredentialReturnsDisabled(t *testing.T) {
	f := NewFactory(&config.Config{})

	for _, provider := range []string{ProviderOpenAI, ProviderYandex} {
		client, err := f.CreateClient(provider)
		if err != nil {
			t.Fatalf("CreateClient(%s): %v", provider, err)
		}
		if _, err := client.Generate(context.Background(), nil); !errors.Is(err, ErrProviderUnavailable) {
			t.Fatalf("%s without credential: err = %v, want ErrProviderUnavailable", provider, err)
		}
	}
}

func TestFactoryUnknownProvider(t *testing.T) {
	f := NewFactory(&config.Config{})
	if _, err := f.CreateClient("bard"); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestFactoryOpenAIWithKey(t *testing.T) {
	f := NewFactory(&config.Config{OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4o-mini"})
	client, err := f.CreateClient(ProviderOpenAI)
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if _, ok := client.(disabledClient); ok {
		t.Fatal("configured key still produced the disabled client")
	}
}
