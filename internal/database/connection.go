package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config selects the database to connect to
type Config struct {
	Driver string
	DSN    string
}

// Connect opens the database, applies driver settings and creates the schema
func Connect(cfg Config) (*sqlx.DB, error) {
	driver, err := normalizeDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	switch driver {
	case DriverSQLite:
		if err := ensureDataDir(dsn); err != nil {
			return nil, err
		}
	case DriverMySQL:
		dsn, err = mysqlDSN(dsn)
		if err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite doesn't support multiple writers, and every ":memory:"
		// connection would be a separate database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func normalizeDriver(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "mysql":
		return DriverMySQL, nil
	}
	return "", fmt.Errorf("unsupported database driver: %s", name)
}

// ensureDataDir creates the directory holding an SQLite file
func ensureDataDir(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, ":memory:") || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// mysqlDSN makes sure DATETIME/TIMESTAMP columns scan into time.Time
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// upsert appends the driver's conflict clause to an INSERT statement.
// conflict lists the key columns, update the columns taking the new values.
func upsert(db *sqlx.DB, insert string, conflict, update []string) string {
	var sets []string
	if db.DriverName() == DriverMySQL {
		for _, col := range update {
			sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", col, col))
		}
		sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
		return db.Rebind(insert + " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", "))
	}
	for _, col := range update {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	return db.Rebind(fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s",
		insert, strings.Join(conflict, ", "), strings.Join(sets, ", ")))
}

// InitSchema creates necessary tables if they don't exist
func InitSchema(db *sqlx.DB) error {
	// Create players table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS players (
			id BIGINT PRIMARY KEY,
			username VARCHAR(255) NOT NULL DEFAULT '',
			first_name VARCHAR(255) NOT NULL DEFAULT '',
			reminders_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create players table: %w", err)
	}

	// Create player_records table: the keyed bestScore/missedWords records
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS player_records (
			player_id BIGINT NOT NULL,
			record_key VARCHAR(64) NOT NULL,
			record_value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player_id, record_key)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create player_records table: %w", err)
	}

	// Create session_results table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS session_results (
			id VARCHAR(36) PRIMARY KEY,
			player_id BIGINT NOT NULL,
			category VARCHAR(32) NOT NULL,
			replay BOOLEAN NOT NULL DEFAULT FALSE,
			score INTEGER NOT NULL DEFAULT 0,
			answered INTEGER NOT NULL DEFAULT 0,
			correct INTEGER NOT NULL DEFAULT 0,
			missed INTEGER NOT NULL DEFAULT 0,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			played_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create session_results table: %w", err)
	}

	return nil
}
