// Package skills provides canonicalization of free-text skill and
// interest strings into a stable vocabulary.
package skills

import (
	"embed"
	"encoding/json"
	"regexp"
	"strings"
	"sync"
)

//go:embed aliases.json
var aliasFiles embed.FS

// MaxTokenLen caps sanitized skill tokens.
const MaxTokenLen = 50

var (
	defaultAliases     map[string]string
	defaultAliasesOnce sync.Once

	// Strip everything except word characters, whitespace, slash and hyphen.
	stripPattern   = regexp.MustCompile(`[^\w\s/-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// DefaultAliases returns the alias table embedded at compile time.
// The map is parsed once and must be treated as read-only.
func DefaultAliases() map[string]string {
	defaultAliasesOnce.Do(func() {
		data, err := aliasFiles.ReadFile("aliases.json")
		if err != nil {
			panic("skills: failed to read embedded alias table: " + err.Error())
		}
		if err := json.Unmarshal(data, &defaultAliases); err != nil {
			panic("skills: failed to parse embedded alias table: " + err.Error())
		}
	})
	return defaultAliases
}

// Canonicalizer resolves raw skill strings against an immutable alias
// table. The table is injected rather than read from global state so
// tests can substitute their own mappings.
type Canonicalizer struct {
	aliases map[string]string
}

// NewCanonicalizer creates a canonicalizer over the given alias table.
// A nil table means no alias substitution is performed.
func NewCanonicalizer(aliases map[string]string) *Canonicalizer {
	return &Canonicalizer{aliases: aliases}
}

// Default returns a canonicalizer backed by the embedded alias table.
func Default() *Canonicalizer {
	return NewCanonicalizer(DefaultAliases())
}

// Canonicalize normalizes a raw skill string into a canonical token:
// trim, lowercase, strip punctuation (keeping slash, hyphen and internal
// spaces), collapse whitespace, then resolve through the alias table.
// Empty or unusable input degrades to the empty string; callers must
// filter empties before using tokens as map keys.
func (c *Canonicalizer) Canonicalize(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = stripPattern.ReplaceAllString(token, "")
	token = whitespaceRuns.ReplaceAllString(token, " ")
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if canonical, ok := c.aliases[token]; ok {
		return canonical
	}
	return token
}

// Sanitize canonicalizes raw and caps the result at MaxTokenLen
// characters. The cap counts runes, not bytes, so multibyte alias
// values are never cut mid-rune.
func (c *Canonicalizer) Sanitize(raw string) string {
	token := c.Canonicalize(raw)
	if runes := []rune(token); len(runes) > MaxTokenLen {
		token = string(runes[:MaxTokenLen])
	}
	return token
}

// CanonicalizeAll maps every entry through Canonicalize and drops
// entries that degrade to the empty string, preserving input order.
// Duplicates are kept; the profile cap is applied after this mapping.
func (c *Canonicalizer) CanonicalizeAll(raw []string) []string {
	tokens := make([]string, 0, len(raw))
	for _, r := range raw {
		if token := c.Sanitize(r); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// NormalizeInterest lowercases and collapses whitespace in a raw
// interest string. Interests skip alias resolution; they are matched
// as substrings against role sector/title text.
func NormalizeInterest(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return whitespaceRuns.ReplaceAllString(s, " ")
}
