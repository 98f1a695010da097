package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Gateway error taxonomy. Call sites are expected to treat any of these as
// "use the deterministic fallback"; none of them should reach a client as a
// raw error.
var (
	ErrProviderUnavailable = errors.New("llm provider not configured")
	ErrTransientExhausted  = errors.New("llm retries exhausted")
	ErrProviderError       = errors.New("llm provider error")
)

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
