// Package recommend orchestrates the full recommendation flow: clean
// the profile, rank the role catalog, then generate an explanation and
// a four-week learning plan for each top role.
package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/llm"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/plan"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/prompts"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/ranking"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/skills"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/trends"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// DefaultTopK is the number of roles recommended per request.
const DefaultTopK = 3

const promptFile = "advisor.json"

// TrendReader supplies precomputed market snapshots. A nil reader or a
// failed read leaves the demand score unset rather than failing the run.
type TrendReader interface {
	GetTrend(ctx context.Context, key string) (*trends.Snapshot, error)
}

// Orchestrator generates recommendations for a cleaned profile against
// the role catalog.
type Orchestrator struct {
	client  llm.Client
	ranker  *ranking.Ranker
	canon   *skills.Canonicalizer
	trends  TrendReader
	catalog []types.Role
	topK    int
}

// New creates an Orchestrator. trendReader may be nil when no trend
// store is configured.
func New(client llm.Client, canon *skills.Canonicalizer, catalog []types.Role, trendReader TrendReader) *Orchestrator {
	return &Orchestrator{
		client:  client,
		ranker:  ranking.NewRanker(canon),
		canon:   canon,
		trends:  trendReader,
		catalog: catalog,
		topK:    DefaultTopK,
	}
}

// Generate ranks the catalog for the profile and produces one
// recommendation per top role. Roles are processed sequentially; a
// generation failure for one role skips that role and continues with
// the rest. When every ranked role fails, the last failure is returned
// so the caller can report the underlying cause.
func (o *Orchestrator) Generate(ctx context.Context, profile *types.Profile) ([]types.Recommendation, error) {
	matches := o.ranker.RankRoles(profile, o.catalog, o.topK)

	var lastErr error
	recommendations := make([]types.Recommendation, 0, len(matches))
	for _, match := range matches {
		rec, err := o.buildRecommendation(ctx, profile, match)
		if err != nil {
			log.Printf("recommend: skipping role %s: %v", match.Role.RoleID, err)
			lastErr = err
			continue
		}
		recommendations = append(recommendations, *rec)
	}
	if len(recommendations) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return recommendations, nil
}

func (o *Orchestrator) buildRecommendation(ctx context.Context, profile *types.Profile, match types.RoleMatch) (*types.Recommendation, error) {
	why, err := o.generateExplanation(ctx, profile, match)
	if err != nil {
		return nil, fmt.Errorf("explanation: %w", err)
	}

	learningPlan, err := o.generatePlan(ctx, profile, match)
	if err != nil {
		return nil, fmt.Errorf("learning plan: %w", err)
	}

	return &types.Recommendation{
		RoleID:        match.Role.RoleID,
		Title:         match.Role.Title,
		FitScore:      match.Score,
		DemandScore:   o.demandScore(ctx, match.Role.RoleID),
		Why:           why,
		OverlapSkills: match.OverlapSkills,
		GapSkills:     match.GapSkills,
		Plan:          learningPlan,
	}, nil
}

// generateExplanation asks the model for a short "why this role" text.
// A successful call that yields only whitespace falls back to a
// templated sentence naming the user's own skills.
func (o *Orchestrator) generateExplanation(ctx context.Context, profile *types.Profile, match types.RoleMatch) (string, error) {
	template, err := prompts.Get(promptFile, "explanation")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Name":       profile.Name,
		"Education":  profile.Education,
		"Skills":     strings.Join(profile.Skills, ", "),
		"Interests":  strings.Join(profile.Interests, ", "),
		"WeeklyTime": fmt.Sprintf("%d", profile.WeeklyTime),
		"Budget":     profile.Budget,
		"RoleTitle":  match.Role.Title,
		"Sector":     match.Role.Sector,
		"RoleSkills": strings.Join(match.Role.SkillNames(), ", "),
		"Language":   languageName(profile.Language),
	})

	text, err := o.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = fallbackExplanation(profile, match.Role)
	}
	return text, nil
}

// generatePlan asks the model for a plan and repairs whatever comes
// back into exactly four weeks.
func (o *Orchestrator) generatePlan(ctx context.Context, profile *types.Profile, match types.RoleMatch) (types.LearningPlan, error) {
	template, err := prompts.Get(promptFile, "learning_plan")
	if err != nil {
		return types.LearningPlan{}, err
	}
	prompt := prompts.Format(template, map[string]string{
		"RoleTitle":  match.Role.Title,
		"GapSkills":  strings.Join(match.GapSkills, ", "),
		"WeeklyTime": fmt.Sprintf("%d", profile.WeeklyTime),
		"Budget":     profile.Budget,
		"BudgetHint": budgetHint(profile.Budget),
		"Language":   languageName(profile.Language),
	})

	raw, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.LearningPlan{}, err
	}

	return plan.Parse(raw), nil
}

// demandScore reads the role's trend snapshot and blends it into a
// 0-100 score. Missing snapshot, read failure, or no reader all yield
// nil so the recommendation simply omits the field.
func (o *Orchestrator) demandScore(ctx context.Context, roleID string) *int {
	if o.trends == nil {
		return nil
	}
	snapshot, err := o.trends.GetTrend(ctx, trends.RoleKey(roleID))
	if err != nil {
		log.Printf("recommend: trend lookup for %s failed: %v", roleID, err)
		return nil
	}
	if snapshot == nil {
		return nil
	}
	score := trends.DemandScore(snapshot)
	return &score
}

func fallbackExplanation(profile *types.Profile, role *types.Role) string {
	return fmt.Sprintf("%s builds on your experience with %s, and the gaps are learnable within your weekly schedule.",
		role.Title, strings.Join(profile.Skills, ", "))
}

func budgetHint(budget string) string {
	switch budget {
	case types.BudgetFree:
		return "only free"
	case types.BudgetLow:
		return "free or low-cost"
	default:
		return "free or paid"
	}
}

func languageName(code string) string {
	if code == types.LanguageHindi {
		return "Hindi"
	}
	return "English"
}
