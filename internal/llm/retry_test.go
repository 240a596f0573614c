package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient fails a fixed number of times before succeeding.
type scriptedClient struct {
	failures int
	err      error
	response string
	calls    int
}

func (c *scriptedClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	c.calls++
	if c.calls <= c.failures {
		return "", c.err
	}
	return c.response, nil
}

func (c *scriptedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.GenerateContent(ctx, prompt, tier)
}

func (c *scriptedClient) Close() error { return nil }

func instantSleep(recorded *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*recorded = append(*recorded, d)
		return nil
	}
}

func newTestRetryClient(inner Client, cfg RetryConfig, recorded *[]time.Duration) Client {
	client := WithRetry(inner, cfg).(*retryingClient)
	client.sleep = instantSleep(recorded)
	return client
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	inner := &scriptedClient{response: "ok"}
	var sleeps []time.Duration
	client := newTestRetryClient(inner, DefaultRetryConfig(), &sleeps)

	got, err := client.GenerateContent(context.Background(), "p", TierStandard)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, inner.calls)
	assert.Empty(t, sleeps)
}

func TestRetry_RecoversAfterFailures(t *testing.T) {
	inner := &scriptedClient{failures: 2, err: errors.New("transient"), response: "ok"}
	var sleeps []time.Duration
	client := newTestRetryClient(inner, DefaultRetryConfig(), &sleeps)

	got, err := client.GenerateContent(context.Background(), "p", TierStandard)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, inner.calls)
	// Backoff doubles: 1s then 2s.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps)
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	inner := &scriptedClient{failures: 10, err: errors.New("quota exceeded")}
	var sleeps []time.Duration
	client := newTestRetryClient(inner, DefaultRetryConfig(), &sleeps)

	_, err := client.GenerateContent(context.Background(), "p", TierStandard)

	require.Error(t, err)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, KindQuota, upstream.Kind)
	assert.Equal(t, 3, upstream.Attempts)
	assert.Equal(t, 3, inner.calls)
}

func TestRetry_BackoffCapped(t *testing.T) {
	inner := &scriptedClient{failures: 10, err: errors.New("boom")}
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 6, InitialBackoff: time.Second, MaxBackoff: 8 * time.Second}
	client := newTestRetryClient(inner, cfg, &sleeps)

	_, err := client.GenerateContent(context.Background(), "p", TierStandard)

	require.Error(t, err)
	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 8 * time.Second,
	}, sleeps)
}

func TestRetry_AllKindsRetried(t *testing.T) {
	for _, msg := range []string{"quota exceeded", "400 malformed request", "500 internal error", "connection reset"} {
		inner := &scriptedClient{failures: 10, err: errors.New(msg)}
		var sleeps []time.Duration
		client := newTestRetryClient(inner, DefaultRetryConfig(), &sleeps)

		_, err := client.GenerateContent(context.Background(), "p", TierStandard)

		require.Error(t, err, msg)
		assert.Equal(t, 3, inner.calls, "all error kinds share the retry budget: %s", msg)
	}
}

func TestRetry_CancelledContextStopsRetrying(t *testing.T) {
	inner := &scriptedClient{failures: 10, err: errors.New("boom")}
	client := WithRetry(inner, DefaultRetryConfig()).(*retryingClient)
	client.sleep = sleepContext

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GenerateContent(ctx, "p", TierStandard)

	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want Kind
	}{
		{"quota exceeded for project", KindQuota},
		{"googleapi: Error 429: rate limit", KindQuota},
		{"invalid argument: bad prompt", KindMalformedRequest},
		{"googleapi: Error 500: internal error", KindUpstreamInternal},
		{"request timeout waiting on upstream", KindTimeout},
		{"context deadline exceeded", KindTimeout},
		{"dial tcp: connection refused", KindNetwork},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(errors.New(tc.msg)), tc.msg)
	}
}

func TestClassify_WrappedDeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("failed to generate content: %w", context.DeadlineExceeded)

	assert.Equal(t, KindTimeout, Classify(err))
}

// deadlineClient blocks until the attempt context expires, the way a
// stalled upstream call does.
type deadlineClient struct {
	calls int
}

func (c *deadlineClient) GenerateContent(ctx context.Context, _ string, _ ModelTier) (string, error) {
	c.calls++
	<-ctx.Done()
	return "", fmt.Errorf("failed to generate content: %w", ctx.Err())
}

func (c *deadlineClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.GenerateContent(ctx, prompt, tier)
}

func (c *deadlineClient) Close() error { return nil }

func TestRetry_AttemptTimeoutClassifiedAsTimeout(t *testing.T) {
	inner := &deadlineClient{}
	var sleeps []time.Duration
	cfg := RetryConfig{MaxAttempts: 2, InitialBackoff: time.Millisecond, AttemptTimeout: 5 * time.Millisecond}
	client := newTestRetryClient(inner, cfg, &sleeps)

	_, err := client.GenerateContent(context.Background(), "p", TierStandard)

	require.Error(t, err)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, KindTimeout, upstream.Kind)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 2, inner.calls)
}
