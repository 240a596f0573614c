package plan

import (
	"encoding/json"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/llm"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// Parse extracts a learning plan from free-form AI text. It never
// fails: if no JSON can be located, the JSON does not parse, or the
// structure lacks a weeks sequence, the canonical generic plan is
// returned. Otherwise the plan is repaired to exactly 4 weeks with
// week numbers forced to their 1-based positions.
func Parse(rawText string) types.LearningPlan {
	payload := llm.ExtractJSON(rawText)
	if payload == "" || !validEnvelope(payload) {
		return Fallback()
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return Fallback()
	}
	rawWeeks, ok := doc["weeks"].([]any)
	if !ok {
		return Fallback()
	}

	plan := types.LearningPlan{
		Prerequisites: stringSlice(doc["prerequisites"]),
		Weeks:         make([]types.PlanWeek, 0, types.PlanWeeks),
	}
	if plan.Prerequisites == nil {
		plan.Prerequisites = []string{}
	}

	// Truncate extras; pad short plans with placeholder weeks.
	for i := 0; i < types.PlanWeeks; i++ {
		if i >= len(rawWeeks) {
			plan.Weeks = append(plan.Weeks, placeholderWeek(i+1))
			continue
		}
		plan.Weeks = append(plan.Weeks, repairWeek(rawWeeks[i], i+1))
	}

	return plan
}

// repairWeek coerces one raw week entry into the validated shape at
// 1-based position n. Non-object entries become full placeholders.
func repairWeek(raw any, n int) types.PlanWeek {
	fields, ok := raw.(map[string]any)
	if !ok {
		return placeholderWeek(n)
	}

	week := types.PlanWeek{
		Week:       n, // always forced to position, whatever the model said
		Topics:     stringSliceOr(fields["topics"], placeholderTopic),
		Practice:   stringSliceOr(fields["practice"], placeholderPractice),
		Assessment: stringOr(fields["assessment"], placeholderAssessment),
		Project:    stringOr(fields["project"], placeholderProject),
	}

	if rawResources, ok := fields["resources"].([]any); ok {
		week.Resources = parseResources(rawResources)
	}
	return week
}

func parseResources(raw []any) []types.Resource {
	resources := make([]types.Resource, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		res := types.Resource{
			Title: stringOr(fields["title"], ""),
			Type:  stringOr(fields["type"], ""),
			URL:   stringOr(fields["url"], ""),
		}
		if res.Title == "" && res.URL == "" {
			continue
		}
		resources = append(resources, res)
	}
	if len(resources) == 0 {
		return nil
	}
	return resources
}

// stringSlice converts a raw JSON value into a []string, keeping only
// string elements. Returns nil when the value is not a sequence.
func stringSlice(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringSliceOr converts raw into a non-empty []string, substituting a
// single-element placeholder when raw is not a sequence or degrades to
// empty.
func stringSliceOr(raw any, placeholder string) []string {
	out := stringSlice(raw)
	if len(out) == 0 {
		return []string{placeholder}
	}
	return out
}

// stringOr returns raw as a string, or fallback when raw is missing,
// not a string, or empty.
func stringOr(raw any, fallback string) string {
	if s, ok := raw.(string); ok && s != "" {
		return s
	}
	return fallback
}
