package database

import (
	"context"
	"fmt"

	"github.com/example/legame/pkg/models"
	"github.com/jmoiron/sqlx"
)

// StatisticsRepository aggregates session results
type StatisticsRepository struct {
	db *sqlx.DB
}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// GetCategoryStats returns per-category totals of a player's regular
// (non-replay) sessions
func (r *StatisticsRepository) GetCategoryStats(ctx context.Context, playerID int64) ([]models.CategoryStats, error) {
	query := r.db.Rebind(`
		SELECT category,
		       COUNT(*) AS sessions,
		       COALESCE(MAX(score), 0) AS best_score,
		       COALESCE(SUM(answered), 0) AS answered,
		       COALESCE(SUM(correct), 0) AS correct
		FROM session_results
		WHERE player_id = ? AND replay = ?
		GROUP BY category
		ORDER BY category
	`)
	var stats []models.CategoryStats
	if err := r.db.SelectContext(ctx, &stats, query, playerID, false); err != nil {
		return nil, fmt.Errorf("failed to get category statistics: %w", err)
	}
	return stats, nil
}
