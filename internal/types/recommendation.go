package types

// Recommendation is one assembled career recommendation. It is created
// once per ranking response and immutable thereafter; ownership passes
// to the persistence collaborator for storage and to the caller for
// response serialization.
type Recommendation struct {
	RoleID        string       `json:"roleId"`
	Title         string       `json:"title"`
	FitScore      int          `json:"fitScore"`
	DemandScore   *int         `json:"demandScore,omitempty"`
	Why           string       `json:"why"`
	OverlapSkills []string     `json:"overlapSkills"`
	GapSkills     []string     `json:"gapSkills"`
	Plan          LearningPlan `json:"plan"`
}

// SkillFinding is a single extracted skill with model confidence and
// the evidence snippet it was derived from.
type SkillFinding struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// ExtractedSkills is the result of LLM skill extraction from free text.
type ExtractedSkills struct {
	HardSkills []SkillFinding `json:"hardSkills"`
	SoftSkills []SkillFinding `json:"softSkills"`
}
