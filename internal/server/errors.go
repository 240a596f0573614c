// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/llm"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// ErrOriginForbidden indicates a cross-origin request from a
// disallowed origin.
type ErrOriginForbidden struct {
	Origin string
}

func (e *ErrOriginForbidden) Error() string {
	return fmt.Sprintf("origin not allowed: %s", e.Origin)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notConfigured *llm.ErrNotConfigured
	var parseErr *llm.ErrParseResponse
	var originErr *ErrOriginForbidden
	switch {
	case errors.As(err, &notConfigured):
		return http.StatusInternalServerError
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError
	case errors.As(err, &originErr):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return classifyFailureStatus(err.Error())
	}
}

// classifyFailureStatus maps a generation failure message to a status
// code: quota exhaustion reports 429, timeouts 408, a key problem and
// everything else 500.
func classifyFailureStatus(message string) int {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "quota"):
		return http.StatusTooManyRequests
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		return http.StatusRequestTimeout
	case strings.Contains(lower, "api key"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// validationDetails lists every violation found by the validator, one
// human-readable string per failed rule.
func validationDetails(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var tooShort *types.ErrTextTooShort
		if errors.As(err, &tooShort) {
			return []string{err.Error()}
		}
		return []string{"invalid request body"}
	}

	details := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		details = append(details, describeViolation(ve))
	}
	return details
}

func describeViolation(ve validator.FieldError) string {
	field := strings.ToLower(ve.Namespace())
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s", field, ve.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s", field, ve.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, ve.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, ve.Tag())
	}
}
