// Package plan parses and repairs semi-structured AI learning-plan
// output into the validated 4-week schema. Parsing never fails: broken
// input degrades to a deterministic generic plan.
package plan

import "github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"

// Placeholder content for repaired and fallback weeks.
const (
	placeholderTopic      = "Core concepts for this week"
	placeholderPractice   = "Hands-on practice exercises"
	placeholderAssessment = "Self-review quiz covering this week's topics"
	placeholderProject    = "Apply this week's skills in a small project"
)

// Fallback returns the canonical generic 4-week plan used when AI
// output cannot be parsed at all. This is a designed degradation path.
func Fallback() types.LearningPlan {
	return types.LearningPlan{
		Prerequisites: []string{"Basic computer literacy", "Commitment to weekly practice"},
		Weeks: []types.PlanWeek{
			{
				Week:       1,
				Topics:     []string{"Fundamentals and terminology"},
				Practice:   []string{"Set up tools and complete a guided tutorial"},
				Assessment: "Short quiz on fundamentals",
				Project:    "Reproduce a worked example end to end",
			},
			{
				Week:       2,
				Topics:     []string{"Core techniques and common workflows"},
				Practice:   []string{"Solve graded exercises without guidance"},
				Assessment: "Timed exercise set",
				Project:    "Extend the week 1 example with a new feature",
			},
			{
				Week:       3,
				Topics:     []string{"Applied problem solving"},
				Practice:   []string{"Work through a realistic case study"},
				Assessment: "Case study write-up",
				Project:    "Build a small self-directed project",
			},
			{
				Week:       4,
				Topics:     []string{"Consolidation and portfolio"},
				Practice:   []string{"Review weak areas and polish the project"},
				Assessment: "Mock interview or final quiz",
				Project:    "Publish the project with a short summary",
			},
		},
	}
}

// placeholderWeek returns a minimal repaired week at 1-based position n.
func placeholderWeek(n int) types.PlanWeek {
	return types.PlanWeek{
		Week:       n,
		Topics:     []string{placeholderTopic},
		Practice:   []string{placeholderPractice},
		Assessment: placeholderAssessment,
		Project:    placeholderProject,
	}
}
