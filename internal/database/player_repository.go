package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/legame/pkg/models"
	"github.com/jmoiron/sqlx"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *sqlx.DB
}

// NewPlayerRepository creates a new repository instance
func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Upsert inserts a player or refreshes the profile fields of an existing one.
// The reminder preference of an existing player is left untouched.
func (r *PlayerRepository) Upsert(ctx context.Context, player *models.Player) error {
	query := upsert(r.db,
		"INSERT INTO players (id, username, first_name, reminders_enabled) VALUES (?, ?, ?, ?)",
		[]string{"id"},
		[]string{"username", "first_name"},
	)
	_, err := r.db.ExecContext(ctx, query, player.ID, player.Username, player.FirstName, player.RemindersEnabled)
	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// GetByID returns a player by Telegram ID, or nil when unknown
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	query := r.db.Rebind(`
		SELECT id, username, first_name, reminders_enabled, created_at, updated_at
		FROM players WHERE id = ?
	`)
	err := r.db.GetContext(ctx, &player, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}
	return &player, nil
}

// SetReminders enables or disables daily review reminders
func (r *PlayerRepository) SetReminders(ctx context.Context, id int64, enabled bool) error {
	query := r.db.Rebind("UPDATE players SET reminders_enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?")
	result, err := r.db.ExecContext(ctx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update reminders: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("player %d not found", id)
	}
	return nil
}

// GetWithReminders returns the players who want review reminders
func (r *PlayerRepository) GetWithReminders(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	query := r.db.Rebind(`
		SELECT id, username, first_name, reminders_enabled, created_at, updated_at
		FROM players WHERE reminders_enabled = ? ORDER BY id
	`)
	if err := r.db.SelectContext(ctx, &players, query, true); err != nil {
		return nil, fmt.Errorf("failed to get players for reminders: %w", err)
	}
	return players, nil
}
