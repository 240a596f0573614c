package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"weeks\": []}\n```"

	assert.Equal(t, `{"weeks": []}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"weeks\": []}\n```"

	assert.Equal(t, `{"weeks": []}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"a": 1}`

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestExtractJSON_FenceWithLeadingProse(t *testing.T) {
	input := "Here is your plan:\n```json\n{\"weeks\": [1]}\n```\nGood luck!"

	assert.Equal(t, `{"weeks": [1]}`, ExtractJSON(input))
}

func TestExtractJSON_BraceFallback(t *testing.T) {
	input := `Sure! The plan is {"weeks": [{"week": 1}]} and that is all.`

	assert.Equal(t, `{"weeks": [{"week": 1}]}`, ExtractJSON(input))
}

func TestExtractJSON_NoJSON(t *testing.T) {
	assert.Equal(t, "", ExtractJSON("no structured data here"))
	assert.Equal(t, "", ExtractJSON(""))
	assert.Equal(t, "", ExtractJSON("   "))
}

func TestExtractJSON_FirstToLastBrace(t *testing.T) {
	input := `prefix {"a": {"b": 1}} suffix`

	assert.Equal(t, `{"a": {"b": 1}}`, ExtractJSON(input))
}
