package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// Weights for the blended role score.
const (
	fitWeight      = 0.6
	overlapWeight  = 0.2
	interestWeight = 0.2
)

// Ranker scores catalog roles against profiles. The canonicalizer is
// injected so tests can substitute alias tables.
type Ranker struct {
	canon *skills.Canonicalizer
}

// NewRanker creates a Ranker over the given canonicalizer.
func NewRanker(canon *skills.Canonicalizer) *Ranker {
	return &Ranker{canon: canon}
}

// RankRoles scores every catalog role against the profile and returns
// the top-K matches in descending score order. Ties keep catalog
// iteration order. An empty catalog yields an empty result.
func (r *Ranker) RankRoles(profile *types.Profile, catalog []types.Role, topK int) []types.RoleMatch {
	matches := make([]types.RoleMatch, 0, len(catalog))
	for i := range catalog {
		role := &catalog[i]

		fit := FitScore(profile.Skills, role.Skills, r.canon)
		overlap := r.OverlapRatio(profile.Skills, role.SkillNames())
		interest := r.interestMatch(profile.Interests, role)

		score := int(math.Round(fitWeight*float64(fit) + overlapWeight*overlap*100 + interestWeight*interest*100))

		matches = append(matches, types.RoleMatch{
			Role:          role,
			Score:         score,
			OverlapSkills: r.OverlapSkills(profile.Skills, role.SkillNames()),
			GapSkills:     r.GapSkills(profile.Skills, role.SkillNames()),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK >= 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// OverlapRatio is |canonical user skills ∩ canonical role skills| over
// |canonical role skills|, or 0 when the role has no skills.
func (r *Ranker) OverlapRatio(userSkills, roleSkills []string) float64 {
	roleSet := r.canonicalSet(roleSkills)
	if len(roleSet) == 0 {
		return 0
	}

	userSet := r.canonicalSet(userSkills)
	overlap := 0
	for token := range roleSet {
		if _, ok := userSet[token]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(roleSet))
}

// OverlapSkills returns the canonical role-required skills the user
// already has, preserving user-skill order. Duplicates collapse to the
// first occurrence.
func (r *Ranker) OverlapSkills(userSkills, roleSkills []string) []string {
	roleSet := r.canonicalSet(roleSkills)
	seen := make(map[string]struct{}, len(userSkills))
	overlap := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		token := r.canon.Canonicalize(s)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := roleSet[token]; ok {
			overlap = append(overlap, token)
		}
	}
	return overlap
}

// GapSkills returns the canonical role-required skills absent from the
// user's skill set, preserving role-skill order.
func (r *Ranker) GapSkills(userSkills, roleSkills []string) []string {
	userSet := r.canonicalSet(userSkills)
	seen := make(map[string]struct{}, len(roleSkills))
	gap := make([]string, 0, len(roleSkills))
	for _, s := range roleSkills {
		token := r.canon.Canonicalize(s)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := userSet[token]; !ok {
			gap = append(gap, token)
		}
	}
	return gap
}

// interestMatch is a crude substring test of each normalized interest
// against the lowercased "{sector} {title}" string. Returns 1.0 on any
// hit, else 0.0. Kept deliberately weak for compatibility with pinned
// scoring expectations.
func (r *Ranker) interestMatch(interests []string, role *types.Role) float64 {
	if len(interests) == 0 {
		return 0
	}
	haystack := strings.ToLower(role.Sector + " " + role.Title)
	for _, interest := range interests {
		needle := skills.NormalizeInterest(interest)
		if needle == "" {
			continue
		}
		if strings.Contains(haystack, needle) {
			return 1.0
		}
	}
	return 0
}

// canonicalSet canonicalizes tokens into a membership set, dropping empties.
func (r *Ranker) canonicalSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		if token := r.canon.Canonicalize(s); token != "" {
			set[token] = struct{}{}
		}
	}
	return set
}
