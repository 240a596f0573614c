package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/llm"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

func TestClassifyFailureStatus(t *testing.T) {
	tests := []struct {
		message string
		status  int
	}{
		{"quota exceeded for project", http.StatusTooManyRequests},
		{"Quota limit reached", http.StatusTooManyRequests},
		{"request timeout after 3 attempts", http.StatusRequestTimeout},
		{"API key not valid", http.StatusInternalServerError},
		{"something else entirely", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, classifyFailureStatus(tt.message), "message %q", tt.message)
	}
}

func TestHTTPStatus_TypedErrors(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&llm.ErrNotConfigured{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&llm.ErrParseResponse{Cause: errors.New("bad json")}))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(&ErrOriginForbidden{Origin: "https://evil.example.com"}))
}

func TestHTTPStatus_WrappedUpstreamError(t *testing.T) {
	err := &llm.UpstreamError{
		Kind:     llm.KindQuota,
		Attempts: 3,
		Cause:    errors.New("resource exhausted: quota"),
	}
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(err))
}

func TestHTTPStatus_AttemptDeadlineExceeded(t *testing.T) {
	// An expired per-attempt deadline surfaces as
	// "context deadline exceeded" in the cause chain, not as a message
	// containing "timeout".
	err := &llm.UpstreamError{
		Kind:     llm.KindTimeout,
		Attempts: 3,
		Cause:    fmt.Errorf("failed to generate content: %w", context.DeadlineExceeded),
	}
	assert.Equal(t, http.StatusRequestTimeout, HTTPStatus(err))
}

func TestValidationDetails_ListsEveryViolation(t *testing.T) {
	req := types.RecommendRequest{
		Profile: types.Profile{
			Education:  "PhD",
			WeeklyTime: 90,
			Budget:     "expensive",
			Language:   "fr",
		},
	}

	err := req.Validate()
	require.Error(t, err)

	details := validationDetails(err)
	assert.GreaterOrEqual(t, len(details), 6)
}

func TestValidationDetails_TextTooShort(t *testing.T) {
	req := types.ExtractSkillsRequest{Text: "short"}

	err := req.Validate()
	require.Error(t, err)

	details := validationDetails(err)
	require.Len(t, details, 1)
	assert.Contains(t, details[0], "10")
}

func TestValidationDetails_NonValidatorError(t *testing.T) {
	details := validationDetails(errors.New("boom"))
	assert.Equal(t, []string{"invalid request body"}, details)
}
