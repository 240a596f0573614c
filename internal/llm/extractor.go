// Package llm - extractor.go provides LLM-based skill extraction from
// free text (resumes, self-descriptions).
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// PII patterns redacted from extraction input before it leaves the
// process. Placeholders keep sentence structure intact for the model.
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d[\d\s\-()]{7,}\d)`)
)

// RedactPII replaces email addresses and phone-like digit runs with
// placeholder tokens.
func RedactPII(text string) string {
	text = emailPattern.ReplaceAllString(text, "[EMAIL]")
	return phonePattern.ReplaceAllString(text, "[PHONE]")
}

// ErrParseResponse indicates the model returned JSON that could not be
// decoded into the extraction schema.
type ErrParseResponse struct {
	Cause error
}

func (e *ErrParseResponse) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Cause)
}

func (e *ErrParseResponse) Unwrap() error {
	return e.Cause
}

// ExtractSkills asks the model to pull hard and soft skills out of the
// given text. Input is PII-redacted before the call; returned skill
// names are canonicalized and empties dropped. Malformed model JSON is
// a hard failure (no repair path here, unlike plan parsing).
func ExtractSkills(ctx context.Context, client Client, canon *skills.Canonicalizer, text, language string) (*types.ExtractedSkills, error) {
	redacted := RedactPII(text)
	prompt := buildExtractionPrompt(redacted, language)

	raw, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, err
	}

	var extracted types.ExtractedSkills
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &extracted); err != nil {
		return nil, &ErrParseResponse{Cause: err}
	}

	extracted.HardSkills = canonicalizeFindings(extracted.HardSkills, canon)
	extracted.SoftSkills = canonicalizeFindings(extracted.SoftSkills, canon)
	return &extracted, nil
}

// canonicalizeFindings maps every finding's name through the
// canonicalizer and drops findings whose name degrades to empty.
func canonicalizeFindings(findings []types.SkillFinding, canon *skills.Canonicalizer) []types.SkillFinding {
	out := make([]types.SkillFinding, 0, len(findings))
	for _, f := range findings {
		name := canon.Sanitize(f.Name)
		if name == "" {
			continue
		}
		f.Name = name
		out = append(out, f)
	}
	return out
}

func buildExtractionPrompt(text, language string) string {
	langHint := ""
	if language == types.LanguageHindi {
		langHint = "The input may be written in Hindi or a Hindi-English mix; extract skill names in English.\n"
	}

	return fmt.Sprintf(`You are a precise skill extraction assistant. Extract skills explicitly evidenced in the text below.
%s
Return ONLY valid JSON matching this exact structure:
{
  "hardSkills": [{"name": "skill", "confidence": 0.0-1.0, "evidence": "short quote from the text"}],
  "softSkills": [{"name": "skill", "confidence": 0.0-1.0, "evidence": "short quote from the text"}]
}

IMPORTANT:
- Extract only skills the text actually supports; do not invent.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Input text:
"""
%s
"""
`, langHint, text)
}
