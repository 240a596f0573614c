package llm

import (
	"context"
	"time"
)

// retryingClient decorates a Client with the fixed retry budget. Every
// failure kind is retried identically; classification only matters for
// the final UpstreamError. There is no retry after success.
type retryingClient struct {
	inner Client
	cfg   RetryConfig
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps client with retry/backoff per cfg.
func WithRetry(client Client, cfg RetryConfig) Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryingClient{inner: client, cfg: cfg, sleep: sleepContext}
}

func (c *retryingClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.retry(ctx, func(attemptCtx context.Context) (string, error) {
		return c.inner.GenerateContent(attemptCtx, prompt, tier)
	})
}

func (c *retryingClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.retry(ctx, func(attemptCtx context.Context) (string, error) {
		return c.inner.GenerateJSON(attemptCtx, prompt, tier)
	})
}

func (c *retryingClient) Close() error {
	return c.inner.Close()
}

func (c *retryingClient) retry(ctx context.Context, call func(ctx context.Context) (string, error)) (string, error) {
	backoff := c.cfg.InitialBackoff
	var lastErr error
	attempts := 0

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		attempts = attempt
		attemptCtx := ctx
		cancel := func() {}
		if c.cfg.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, c.cfg.AttemptTimeout)
		}

		text, err := call(attemptCtx)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == c.cfg.MaxAttempts {
			break
		}
		if err := c.sleep(ctx, backoff); err != nil {
			// The request itself was cancelled; stop retrying.
			lastErr = err
			break
		}
		backoff *= 2
		if c.cfg.MaxBackoff > 0 && backoff > c.cfg.MaxBackoff {
			backoff = c.cfg.MaxBackoff
		}
	}

	return "", &UpstreamError{
		Kind:     Classify(lastErr),
		Attempts: attempts,
		Cause:    lastErr,
	}
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
