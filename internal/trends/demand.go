// Package trends computes demand scores from precomputed market
// snapshots. Snapshots are produced offline and consumed read-only.
package trends

import (
	"math"
	"time"
)

// Blend weights for the demand score.
const (
	postingFrequencyWeight = 0.45
	trendSlopeWeight       = 0.35
	salaryIndexWeight      = 0.20
)

// Snapshot is one precomputed market-trend document, keyed by
// "skill_<canonical>" or "role_<roleId>" in the trends collection.
type Snapshot struct {
	Skill                string    `json:"skill,omitempty"`
	RoleID               string    `json:"roleId,omitempty"`
	PostingFrequencyNorm float64   `json:"postingFrequencyNorm"`
	TrendSlopeNorm       float64   `json:"trendSlopeNorm"`
	SalaryIndexNorm      float64   `json:"salaryIndexNorm"`
	SampleSize           int       `json:"sampleSize,omitempty"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}

// SkillKey builds the trends-collection key for a canonical skill token.
func SkillKey(canonicalSkill string) string {
	return "skill_" + canonicalSkill
}

// RoleKey builds the trends-collection key for a role ID.
func RoleKey(roleID string) string {
	return "role_" + roleID
}

// DemandScore blends the snapshot's normalized signals into a 0-100
// integer: 45% posting frequency, 35% trend slope, 20% salary index.
// Out-of-range normalized inputs are clamped rather than rejected.
func DemandScore(s *Snapshot) int {
	score := 100 * (postingFrequencyWeight*clamp01(s.PostingFrequencyNorm) +
		trendSlopeWeight*clamp01(s.TrendSlopeNorm) +
		salaryIndexWeight*clamp01(s.SalaryIndexNorm))
	return int(math.Round(score))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
