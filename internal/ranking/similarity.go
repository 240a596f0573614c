// Package ranking scores catalog roles against user skill profiles
// using cosine similarity over sparse skill vectors plus a blended
// overlap/interest weighting.
package ranking

import (
	"math"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// CosineSimilarity computes the cosine of two sparse vectors over the
// union of their keys. Returns 0 when either magnitude is zero, never
// an error or NaN.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dot, magA, magB float64

	for key, av := range a {
		magA += av * av
		if bv, ok := b[key]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		magB += bv * bv
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// userVector maps each canonical user skill to a uniform weight of 1.0.
func userVector(userSkills []string, canon *skills.Canonicalizer) map[string]float64 {
	vec := make(map[string]float64, len(userSkills))
	for _, s := range userSkills {
		if token := canon.Canonicalize(s); token != "" {
			vec[token] = 1.0
		}
	}
	return vec
}

// roleVector maps each canonical role skill to its catalog weight.
// Non-positive weights default to 1.0.
func roleVector(roleSkills []types.RoleSkill, canon *skills.Canonicalizer) map[string]float64 {
	vec := make(map[string]float64, len(roleSkills))
	for _, rs := range roleSkills {
		token := canon.Canonicalize(rs.Name)
		if token == "" {
			continue
		}
		weight := rs.Weight
		if weight <= 0 {
			weight = 1.0
		}
		vec[token] = weight
	}
	return vec
}

// FitScore is the cosine similarity of the user and role skill vectors
// scaled to an integer in [0,100]. Empty input on either side scores 0.
func FitScore(userSkills []string, roleSkills []types.RoleSkill, canon *skills.Canonicalizer) int {
	similarity := CosineSimilarity(userVector(userSkills, canon), roleVector(roleSkills, canon))
	return int(math.Round(similarity * 100))
}
