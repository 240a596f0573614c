package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
)

// staticClient returns a fixed response for every call.
type staticClient struct {
	response string
	prompts  []string
}

func (c *staticClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, nil
}

func (c *staticClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.GenerateContent(ctx, prompt, tier)
}

func (c *staticClient) Close() error { return nil }

func TestRedactPII(t *testing.T) {
	input := "Contact me at jane.doe@example.com or +91 98765 43210 about Python work."

	got := RedactPII(input)

	assert.NotContains(t, got, "jane.doe@example.com")
	assert.NotContains(t, got, "98765")
	assert.Contains(t, got, "[EMAIL]")
	assert.Contains(t, got, "[PHONE]")
	assert.Contains(t, got, "Python work")
}

func TestRedactPII_NoPII(t *testing.T) {
	input := "I have worked with SQL and Excel for 3 years."

	assert.Equal(t, input, RedactPII(input))
}

func TestExtractSkills_CanonicalizesNames(t *testing.T) {
	client := &staticClient{response: `{
		"hardSkills": [
			{"name": "JS", "confidence": 0.9, "evidence": "built web apps"},
			{"name": "  Python!!  ", "confidence": 0.8, "evidence": "data scripts"},
			{"name": "!!!", "confidence": 0.5, "evidence": "noise"}
		],
		"softSkills": [
			{"name": "Team Work", "confidence": 0.7, "evidence": "led a team"}
		]
	}`}

	got, err := ExtractSkills(context.Background(), client, skills.Default(), "I built web apps in JS and wrote Python data scripts.", "en")

	require.NoError(t, err)
	require.Len(t, got.HardSkills, 2)
	assert.Equal(t, "javascript", got.HardSkills[0].Name)
	assert.Equal(t, "python", got.HardSkills[1].Name)
	require.Len(t, got.SoftSkills, 1)
	assert.Equal(t, "teamwork", got.SoftSkills[0].Name)
}

func TestExtractSkills_RedactsBeforeSending(t *testing.T) {
	client := &staticClient{response: `{"hardSkills": [], "softSkills": []}`}

	_, err := ExtractSkills(context.Background(), client, skills.Default(), "Reach me at dev@example.com, I know Go.", "en")

	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.NotContains(t, client.prompts[0], "dev@example.com")
	assert.Contains(t, client.prompts[0], "[EMAIL]")
}

func TestExtractSkills_MalformedJSON(t *testing.T) {
	client := &staticClient{response: "sorry, I cannot help with that"}

	_, err := ExtractSkills(context.Background(), client, skills.Default(), "ten chars or more", "en")

	require.Error(t, err)
	var parseErr *ErrParseResponse
	assert.ErrorAs(t, err, &parseErr)
}
