package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/legame/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionResultRepository handles database operations for session results
type SessionResultRepository struct {
	db *sqlx.DB
}

// NewSessionResultRepository creates a new repository instance
func NewSessionResultRepository(db *sqlx.DB) *SessionResultRepository {
	return &SessionResultRepository{db: db}
}

// Create inserts a session result, assigning an ID and play time when missing
func (r *SessionResultRepository) Create(ctx context.Context, result *models.SessionResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.PlayedAt.IsZero() {
		result.PlayedAt = time.Now().UTC()
	}

	query := r.db.Rebind(`
		INSERT INTO session_results (
			id, player_id, category, replay, score, answered,
			correct, missed, duration_seconds, played_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query,
		result.ID,
		result.PlayerID,
		result.Category,
		result.Replay,
		result.Score,
		result.Answered,
		result.Correct,
		result.Missed,
		result.DurationSeconds,
		result.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session result: %w", err)
	}
	return nil
}

// GetRecent returns a player's latest session results, newest first
func (r *SessionResultRepository) GetRecent(ctx context.Context, playerID int64, limit int) ([]models.SessionResult, error) {
	var results []models.SessionResult
	query := r.db.Rebind(`
		SELECT id, player_id, category, replay, score, answered,
		       correct, missed, duration_seconds, played_at
		FROM session_results
		WHERE player_id = ?
		ORDER BY played_at DESC
		LIMIT ?
	`)
	if err := r.db.SelectContext(ctx, &results, query, playerID, limit); err != nil {
		return nil, fmt.Errorf("failed to get session results: %w", err)
	}
	return results, nil
}
