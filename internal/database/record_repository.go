package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// RecordRepository stores small keyed values per player
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new repository instance
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Get returns the value stored under key and whether it exists
func (r *RecordRepository) Get(playerID int64, key string) (string, bool, error) {
	var value string
	query := r.db.Rebind("SELECT record_value FROM player_records WHERE player_id = ? AND record_key = ?")
	err := r.db.Get(&value, query, playerID, key)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	return value, true, nil
}

// Put creates or replaces the value stored under key
func (r *RecordRepository) Put(playerID int64, key, value string) error {
	query := upsert(r.db,
		"INSERT INTO player_records (player_id, record_key, record_value) VALUES (?, ?, ?)",
		[]string{"player_id", "record_key"},
		[]string{"record_value"},
	)
	if _, err := r.db.Exec(query, playerID, key, value); err != nil {
		return fmt.Errorf("failed to save record %s: %w", key, err)
	}
	return nil
}
