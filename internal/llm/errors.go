package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an upstream generation failure for reporting. All
// kinds are retried identically before giving up; classification only
// affects how the boundary reports the final failure.
type Kind string

const (
	// KindQuota indicates the upstream quota was exceeded.
	KindQuota Kind = "quota"
	// KindMalformedRequest indicates the upstream rejected the request.
	KindMalformedRequest Kind = "malformed_request"
	// KindUpstreamInternal indicates an upstream internal error.
	KindUpstreamInternal Kind = "upstream_internal"
	// KindTimeout indicates the attempt deadline expired before the
	// upstream answered.
	KindTimeout Kind = "timeout"
	// KindNetwork is the generic transport failure class.
	KindNetwork Kind = "network"
)

// ErrNotConfigured indicates the generation capability has no credentials.
type ErrNotConfigured struct{}

func (e *ErrNotConfigured) Error() string {
	return "AI service not configured: API key is required"
}

// UpstreamError wraps the final failure of a generation call after the
// retry budget is exhausted.
type UpstreamError struct {
	Kind     Kind
	Attempts int
	Cause    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation failed after %d attempts (%s): %v", e.Attempts, e.Kind, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// Classify maps an upstream error onto a reporting Kind. Expired
// attempt deadlines are recognized through the error chain; everything
// else is classified by message inspection.
func Classify(err error) Kind {
	if err == nil {
		return KindNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "429") || strings.Contains(msg, "resource exhausted") || strings.Contains(msg, "rate limit"):
		return KindQuota
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return KindTimeout
	case strings.Contains(msg, "invalid argument") || strings.Contains(msg, "400") || strings.Contains(msg, "malformed"):
		return KindMalformedRequest
	case strings.Contains(msg, "internal error") || strings.Contains(msg, "500") || strings.Contains(msg, "unavailable"):
		return KindUpstreamInternal
	default:
		return KindNetwork
	}
}
