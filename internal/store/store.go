// Package store provides PostgreSQL persistence for profiles,
// recommendation history, and market-trend snapshots.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/trends"
	"github.com/yuvaraj-dudukuru/gensparc-career-advisor/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveProfile upserts the latest cleaned profile for a user.
func (s *Store) SaveProfile(ctx context.Context, uid string, profile *types.Profile) error {
	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (uid, profile, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (uid) DO UPDATE SET profile = $2, updated_at = NOW()`,
		uid, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile for a user, or nil if absent.
func (s *Store) GetProfile(ctx context.Context, uid string) (*types.Profile, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM profiles WHERE uid = $1`,
		uid,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(jsonBytes, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// RecommendationSet is one stored recommendation batch for a user.
// Batches are append-only so earlier sets remain retrievable as history.
type RecommendationSet struct {
	ID              uuid.UUID              `json:"id"`
	UID             string                 `json:"uid"`
	Recommendations []types.Recommendation `json:"recommendations"`
	GeneratedAt     time.Time              `json:"generatedAt"`
}

// SaveRecommendations appends a new recommendation set and returns its ID.
func (s *Store) SaveRecommendations(ctx context.Context, uid string, recs []types.Recommendation, generatedAt time.Time) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(recs)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO recommendation_sets (uid, recommendations, generated_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		uid, jsonBytes, generatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save recommendations: %w", err)
	}
	return id, nil
}

// GetLatestRecommendations retrieves the most recent recommendation set
// for a user, or nil if the user has none.
func (s *Store) GetLatestRecommendations(ctx context.Context, uid string) (*RecommendationSet, error) {
	var set RecommendationSet
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, uid, recommendations, generated_at
		 FROM recommendation_sets WHERE uid = $1
		 ORDER BY generated_at DESC LIMIT 1`,
		uid,
	).Scan(&set.ID, &set.UID, &jsonBytes, &set.GeneratedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &set.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendations: %w", err)
	}
	return &set, nil
}

// ListRecommendationSets retrieves recent recommendation sets for a user,
// newest first, without the recommendation payloads.
func (s *Store) ListRecommendationSets(ctx context.Context, uid string, limit int) ([]RecommendationSet, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, uid, generated_at
		 FROM recommendation_sets WHERE uid = $1
		 ORDER BY generated_at DESC LIMIT $2`,
		uid, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendation sets: %w", err)
	}
	defer rows.Close()

	var sets []RecommendationSet
	for rows.Next() {
		var set RecommendationSet
		if err := rows.Scan(&set.ID, &set.UID, &set.GeneratedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation set: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// GetTrend retrieves a trend snapshot by its collection key
// ("skill_<canonical>" or "role_<roleId>"), or nil if absent.
func (s *Store) GetTrend(ctx context.Context, key string) (*trends.Snapshot, error) {
	var jsonBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM trend_snapshots WHERE key = $1`,
		key,
	).Scan(&jsonBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trend %s: %w", key, err)
	}

	var snapshot trends.Snapshot
	if err := json.Unmarshal(jsonBytes, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trend %s: %w", key, err)
	}
	return &snapshot, nil
}

// SaveTrend upserts a trend snapshot under its collection key. Used by
// the offline refresh tooling, not by request handlers.
func (s *Store) SaveTrend(ctx context.Context, key string, snapshot *trends.Snapshot) error {
	jsonBytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal trend %s: %w", key, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO trend_snapshots (key, snapshot, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET snapshot = $2, updated_at = NOW()`,
		key, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save trend %s: %w", key, err)
	}
	return nil
}
