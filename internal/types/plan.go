package types

// PlanWeeks is the fixed number of weeks in a validated learning plan.
// Shorter AI plans are padded and longer ones truncated to this length.
const PlanWeeks = 4

// Resource is an optional learning resource attached to a plan week.
type Resource struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// PlanWeek is a single week of a learning plan. After repair, Week
// always matches the entry's 1-based position and Topics/Practice are
// non-empty.
type PlanWeek struct {
	Week       int        `json:"week"`
	Topics     []string   `json:"topics"`
	Practice   []string   `json:"practice"`
	Assessment string     `json:"assessment"`
	Project    string     `json:"project"`
	Resources  []Resource `json:"resources,omitempty"`
}

// LearningPlan is a structured 4-week curriculum attached to a
// recommendation. Invariant: len(Weeks) == PlanWeeks after validation.
type LearningPlan struct {
	Prerequisites []string   `json:"prerequisites"`
	Weeks         []PlanWeek `json:"weeks"`
}
