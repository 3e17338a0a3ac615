package models

import "time"

// SessionResult records one finished play or replay session
type SessionResult struct {
	ID              string    `json:"id" db:"id"`
	PlayerID        int64     `json:"player_id" db:"player_id"`
	Category        string    `json:"category" db:"category"`
	Replay          bool      `json:"replay" db:"replay"`
	Score           int       `json:"score" db:"score"`
	Answered        int       `json:"answered" db:"answered"`
	Correct         int       `json:"correct" db:"correct"`
	Missed          int       `json:"missed" db:"missed"` // distinct words missed during the session
	DurationSeconds int       `json:"duration_seconds" db:"duration_seconds"`
	PlayedAt        time.Time `json:"played_at" db:"played_at"`
}

// CategoryStats aggregates a player's session results for one category
type CategoryStats struct {
	Category  string `json:"category" db:"category"`
	Sessions  int    `json:"sessions" db:"sessions"`
	BestScore int    `json:"best_score" db:"best_score"`
	Answered  int    `json:"answered" db:"answered"`
	Correct   int    `json:"correct" db:"correct"`
}

// Accuracy returns the share of correct answers as a percentage
func (s CategoryStats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Answered)
}
