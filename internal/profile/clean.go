// Package profile provides lenient cleaning of user profile data.
//
// Cleaning is the second stage of the two-stage input discipline: strict
// validation rejects bad requests at the HTTP boundary, while cleaning
// coerces already-accepted data into documented bounds and defaults.
// The two stages are never interchangeable.
package profile

import (
	"strings"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// Clean returns a copy of p with every field coerced into its
// documented bounds: unknown enums fall back to defaults, weeklyTime
// clamps to [1,40], skills are canonicalized (empties dropped) and
// capped at 20, interests normalized and capped at 10. It never fails.
func Clean(p *types.Profile, canon *skills.Canonicalizer) *types.Profile {
	cleaned := &types.Profile{
		Name:       strings.TrimSpace(p.Name),
		Education:  p.Education,
		WeeklyTime: p.WeeklyTime,
		Budget:     p.Budget,
		Language:   p.Language,
	}

	if !types.ValidEducation(cleaned.Education) {
		cleaned.Education = types.DefaultEducation()
	}
	if !types.ValidBudget(cleaned.Budget) {
		cleaned.Budget = types.DefaultBudget()
	}
	if !types.ValidLanguage(cleaned.Language) {
		cleaned.Language = types.DefaultLanguage()
	}

	if cleaned.WeeklyTime < types.MinWeeklyTime {
		cleaned.WeeklyTime = types.MinWeeklyTime
	}
	if cleaned.WeeklyTime > types.MaxWeeklyTime {
		cleaned.WeeklyTime = types.MaxWeeklyTime
	}

	// Map every skill through the canonicalizer before the cap so that
	// dropped empties free up slots; duplicates are not collapsed.
	cleaned.Skills = canon.CanonicalizeAll(p.Skills)
	if len(cleaned.Skills) > types.MaxSkills {
		cleaned.Skills = cleaned.Skills[:types.MaxSkills]
	}

	cleaned.Interests = make([]string, 0, len(p.Interests))
	for _, raw := range p.Interests {
		if interest := skills.NormalizeInterest(raw); interest != "" {
			cleaned.Interests = append(cleaned.Interests, interest)
		}
	}
	if len(cleaned.Interests) > types.MaxInterests {
		cleaned.Interests = cleaned.Interests[:types.MaxInterests]
	}

	return cleaned
}
