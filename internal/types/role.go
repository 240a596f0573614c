package types

// RoleSkill is a single skill requirement on a catalog role.
// Weight expresses importance and defaults to 1.0 when omitted.
type RoleSkill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight,omitempty"`
}

// Role is a read-only catalog entry. The catalog is loaded once at
// process start and never mutates; ranking iterates the full catalog.
type Role struct {
	RoleID string      `json:"roleId"`
	Title  string      `json:"title"`
	Sector string      `json:"sector"`
	Skills []RoleSkill `json:"skills"`
}

// SkillNames returns the role's skill names in catalog order.
func (r *Role) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// RoleMatch pairs a role with its blended score and the overlap/gap
// skill sets derived during ranking. Created fresh per ranking call.
type RoleMatch struct {
	Role          *Role    `json:"role"`
	Score         int      `json:"score"`
	OverlapSkills []string `json:"overlapSkills"`
	GapSkills     []string `json:"gapSkills"`
}
