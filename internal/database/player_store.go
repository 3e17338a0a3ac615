package database

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/example/legame/pkg/models"
	"github.com/jmoiron/sqlx"
)

// Record keys of the persisted game state
const (
	BestScoreKey   = "bestScore"
	MissedWordsKey = "missedWords"
)

// PlayerStore persists one player's best score and missed words.
// It satisfies game.Store.
type PlayerStore struct {
	records  *RecordRepository
	playerID int64
}

// NewPlayerStore binds a store to a player
func NewPlayerStore(db *sqlx.DB, playerID int64) *PlayerStore {
	return &PlayerStore{records: NewRecordRepository(db), playerID: playerID}
}

// Load returns the saved best score and missed words. Records that are
// absent or cannot be decoded yield the defaults.
func (s *PlayerStore) Load() (int, []models.Word, error) {
	best, err := s.loadBestScore()
	if err != nil {
		return 0, nil, err
	}
	missed, err := s.LoadMissed()
	if err != nil {
		return 0, nil, err
	}
	return best, missed, nil
}

func (s *PlayerStore) loadBestScore() (int, error) {
	raw, ok, err := s.records.Get(s.playerID, BestScoreKey)
	if err != nil || !ok {
		return 0, err
	}
	best, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || best < 0 {
		log.Printf("Ignoring unreadable best score for player %d: %q", s.playerID, raw)
		return 0, nil
	}
	return best, nil
}

// LoadMissed returns the saved missed words only
func (s *PlayerStore) LoadMissed() ([]models.Word, error) {
	raw, ok, err := s.records.Get(s.playerID, MissedWordsKey)
	if err != nil || !ok {
		return nil, err
	}
	return decodeMissed(s.playerID, raw), nil
}

// decodeMissed parses the stored JSON array, skipping malformed entries
func decodeMissed(playerID int64, raw string) []models.Word {
	var entries []models.Word
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("Ignoring unreadable missed words for player %d: %v", playerID, err)
		return nil
	}

	words := make([]models.Word, 0, len(entries))
	for _, w := range entries {
		if w.EnglishWord == "" || w.FrenchWord == "" {
			continue
		}
		if _, err := models.ParseGender(string(w.Gender)); err != nil {
			continue
		}
		words = append(words, w)
	}
	return words
}

// SaveBestScore writes the best score record
func (s *PlayerStore) SaveBestScore(score int) error {
	return s.records.Put(s.playerID, BestScoreKey, strconv.Itoa(score))
}

// SaveMissed replaces the missed words record
func (s *PlayerStore) SaveMissed(missed []models.Word) error {
	if missed == nil {
		missed = []models.Word{}
	}
	data, err := json.Marshal(missed)
	if err != nil {
		return fmt.Errorf("failed to encode missed words: %w", err)
	}
	return s.records.Put(s.playerID, MissedWordsKey, string(data))
}
