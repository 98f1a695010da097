package llm

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	maxAttempts  = 3
	initialDelay = 1 * time.Second
	maxDelay     = 8 * time.Second
	jitterWindow = 500 * time.Millisecond
)

// isTransient reports whether an error is worth retrying: rate limits,
// timeouts and provider overload. Auth failures and malformed requests are
// not transient and must propagate immediately.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"429",
		"timeout",
		"overloaded",
		"temporarily unavailable",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// withRetry runs fn with exponential backoff and jitter on transient errors.
func withRetry(ctx context.Context, fn func() (Response, error)) (Response, error) {
	delay := initialDelay
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := fn()
		if err == nil {
			return resp, nil
		}
		if !isTransient(err) {
			return Response{}, fmt.Errorf("%w: %v", ErrProviderError, err)
		}
		lastErr = err
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return Response{}, fmt.Errorf("%w: %v", ErrProviderError, ctx.Err())
		case <-time.After(delay + time.Duration(rand.Int63n(int64(jitterWindow)))):
		}
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
		}
	}
	return Response{}, fmt.Errorf("%w: %v", ErrTransientExhausted, lastErr)
}
