package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinExtractTextLen is the minimum trimmed length for skill extraction input.
const MinExtractTextLen = 10

// RecommendRequest is the request body for POST /api/recommend.
type RecommendRequest struct {
	UID     string  `json:"uid" validate:"required,min=1"`
	Profile Profile `json:"profile"`
}

// ExtractSkillsRequest is the request body for POST /api/extract_skills.
type ExtractSkillsRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en hi"`
}

// Validate validates the RecommendRequest using the validator.
// The returned error is a validator.ValidationErrors carrying every
// violation found, not just the first.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExtractSkillsRequest using the validator.
func (r *ExtractSkillsRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.Text)) < MinExtractTextLen {
		return &ErrTextTooShort{MinLen: MinExtractTextLen}
	}
	return nil
}

// ErrTextTooShort indicates extraction input below the minimum length.
type ErrTextTooShort struct {
	MinLen int
}

func (e *ErrTextTooShort) Error() string {
	return "text must be at least 10 characters after trimming"
}
