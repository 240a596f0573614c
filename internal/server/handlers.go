package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/llm"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/profile"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/server/middleware"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/trends"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// ServiceName identifies this service in health responses.
const ServiceName = "career-advisor"

// handleRecommend runs the full recommendation flow: strict validation,
// lenient cleaning, ranking, and per-role generation.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": []string{"request body is not valid JSON"},
		})
		return
	}

	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": validationDetails(err),
		})
		return
	}

	if s.llmClient == nil {
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "AI service not configured",
			"message": (&llm.ErrNotConfigured{}).Error(),
		})
		return
	}

	cleaned := profile.Clean(&req.Profile, s.canon)

	recommendations, err := s.orchestrator.Generate(r.Context(), cleaned)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]string{
			"error":   "Failed to generate recommendations",
			"message": err.Error(),
		})
		return
	}

	generatedAt := time.Now().UTC()

	// Persistence is best-effort: the generation already succeeded, so
	// a failed save is logged and swallowed.
	if s.store != nil {
		go s.persistResults(req.UID, cleaned, recommendations, generatedAt)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": recommendations,
		"generatedAt":     generatedAt.Format(time.RFC3339),
	})
}

func (s *Server) persistResults(uid string, cleaned *types.Profile, recs []types.Recommendation, generatedAt time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.SaveProfile(ctx, uid, cleaned); err != nil {
		log.Printf("[store] failed to save profile for %s: %v", uid, err)
	}
	if _, err := s.store.SaveRecommendations(ctx, uid, recs, generatedAt); err != nil {
		log.Printf("[store] failed to save recommendations for %s: %v", uid, err)
	}
}

// handleExtractSkills extracts skills from free text, redacting PII
// before anything leaves the process.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": []string{"request body is not valid JSON"},
		})
		return
	}

	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": validationDetails(err),
		})
		return
	}

	if s.llmClient == nil {
		s.jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "AI service not configured",
			"message": (&llm.ErrNotConfigured{}).Error(),
		})
		return
	}

	extracted, err := llm.ExtractSkills(r.Context(), s.llmClient, s.canon, req.Text, req.Language)
	if err != nil {
		var parseErr *llm.ErrParseResponse
		if errors.As(err, &parseErr) {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to parse AI response")
			return
		}
		s.jsonResponse(w, HTTPStatus(err), map[string]string{
			"error":   "Failed to extract skills",
			"message": err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, extracted)
}

// trendResponse is a stored snapshot augmented with the computed score.
type trendResponse struct {
	trends.Snapshot
	DemandScore int `json:"demandScore"`
}

// handleTrends serves a precomputed market snapshot for exactly one of
// skill= or role=.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	role := r.URL.Query().Get("role")

	if (skill == "") == (role == "") {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": []string{"exactly one of skill or role query parameters is required"},
		})
		return
	}

	var key string
	if skill != "" {
		key = trends.SkillKey(s.canon.Canonicalize(skill))
	} else {
		key = trends.RoleKey(role)
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "Trend data not found")
		return
	}

	snapshot, err := s.store.GetTrend(r.Context(), key)
	if err != nil {
		log.Printf("[trends] lookup %s failed: %v", key, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load trend data")
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "Trend data not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, trendResponse{
		Snapshot:    *snapshot,
		DemandScore: trends.DemandScore(snapshot),
	})
}

// handleLatestRecommendations returns the most recent stored
// recommendation set for a user. When the route runs behind the auth
// middleware, the verified token subject decides whose history is
// served; a uid parameter naming anyone else is rejected.
func (s *Server) handleLatestRecommendations(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if subject, err := middleware.GetUserID(r); err == nil {
		if uid != "" && uid != subject {
			s.errorResponse(w, http.StatusForbidden, "Cannot read another user's recommendations")
			return
		}
		uid = subject
	}
	if uid == "" {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid request",
			"details": []string{"uid query parameter is required"},
		})
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "No recommendations found")
		return
	}

	set, err := s.store.GetLatestRecommendations(r.Context(), uid)
	if err != nil {
		log.Printf("[store] latest recommendations for %s failed: %v", uid, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load recommendations")
		return
	}
	if set == nil {
		s.errorResponse(w, http.StatusNotFound, "No recommendations found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": set.Recommendations,
		"generatedAt":     set.GeneratedAt.UTC().Format(time.RFC3339),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
		"version":   s.version,
	})
}
