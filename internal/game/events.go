package game

import (
	"time"

	"github.com/example/legame/internal/catalog"
	"github.com/example/legame/pkg/models"
)

// EventKind names a session state change
type EventKind string

// Session event kinds
const (
	EventStarted       EventKind = "started"
	EventAnswered      EventKind = "answered"
	EventAdvanced      EventKind = "advanced"
	EventEnded         EventKind = "ended"
	EventMissedDeleted EventKind = "missed-deleted"
)

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	Category          catalog.Category
	Current           *models.Word
	CurrentScore      int
	BestScore         int
	InProgress        bool
	Replay            bool
	LastAnswerCorrect bool
	// ShowResult is true between an answer and the next advance
	ShowResult  bool
	MissedCount int
}

// Summary describes a session that has just ended
type Summary struct {
	Category  catalog.Category
	Replay    bool
	Score     int
	BestScore int
	Answered  int
	Correct   int
	Missed    int
	StartedAt time.Time
	Duration  time.Duration
}

// Event is delivered to subscribers after every state change
type Event struct {
	Kind    EventKind
	State   Snapshot
	Summary *Summary // set for EventEnded only
}

// Listener receives session events
type Listener func(Event)
