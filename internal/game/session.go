// Package game implements the gender quiz session: word selection, scoring
// and missed-word tracking.
package game

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/example/legame/internal/catalog"
	"github.com/example/legame/pkg/models"
)

var (
	// ErrNotInProgress is returned by actions that need an active session
	ErrNotInProgress = errors.New("no session in progress")
	// ErrNoPrompt is returned when answering while no word is shown
	ErrNoPrompt = errors.New("no word to answer")
	// ErrAlreadyAnswered is returned when the current word was already answered
	ErrAlreadyAnswered = errors.New("word already answered")
)

// Store persists the best score and the missed-word set.
// Load must treat absent or unreadable records as "no prior data".
type Store interface {
	Load() (bestScore int, missed []models.Word, err error)
	SaveBestScore(score int) error
	SaveMissed(missed []models.Word) error
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used to pick words
func WithRand(rnd *rand.Rand) Option {
	return func(s *Session) {
		s.rnd = rnd
	}
}

// WithClock sets the time source used for session durations
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session holds the state of one player's game
type Session struct {
	mu    sync.Mutex
	store Store
	rnd   *rand.Rand
	now   func() time.Time

	category          catalog.Category
	words             []models.Word
	current           *models.Word
	currentScore      int
	bestScore         int
	inProgress        bool
	replay            bool
	lastAnswerCorrect bool
	showResult        bool

	// missed is every word ever missed and not deleted; sessionMissed only
	// the current playthrough's misses
	missed        *MissedSet
	sessionMissed *MissedSet
	answered      int
	correct       int
	startedAt     time.Time

	// unsynced is set while the saved state could not be read; nothing is
	// written back until a later Load succeeds and is merged in
	unsynced bool

	listeners map[int]Listener
	nextID    int
}

// NewSession creates an idle session seeded from the store
func NewSession(store Store, opts ...Option) *Session {
	s := &Session{
		store:         store,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
		missed:        NewMissedSet(),
		sessionMissed: NewMissedSet(),
		listeners:     make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}

	best, missed, err := store.Load()
	if err != nil {
		log.Printf("Error loading saved progress, starting fresh: %v", err)
		s.unsynced = true
		return s
	}
	if best > 0 {
		s.bestScore = best
	}
	s.missed = NewMissedSet(missed...)
	return s
}

// sync merges the saved state into a session that started without it and
// reports whether writes may proceed. Callers hold s.mu.
func (s *Session) sync() bool {
	if !s.unsynced {
		return true
	}
	best, missed, err := s.store.Load()
	if err != nil {
		log.Printf("Saved progress still unreadable, not overwriting it: %v", err)
		return false
	}

	merged := NewMissedSet(missed...)
	for _, w := range s.missed.Words() {
		merged.Add(w)
	}
	s.missed = merged
	if best > s.bestScore {
		s.bestScore = best
	}
	s.unsynced = false
	return true
}

// Start begins a play session over the category's word list
func (s *Session) Start(category catalog.Category) {
	words := catalog.Words(category)

	s.mu.Lock()
	s.begin(category, words, false)
	ev, listeners := s.event(EventStarted, nil)
	s.mu.Unlock()

	notify(listeners, ev)
}

// Replay begins a session over the words missed in the category
func (s *Session) Replay(category catalog.Category) {
	s.mu.Lock()
	words := s.missedIn(category)
	s.begin(category, words, true)
	ev, listeners := s.event(EventStarted, nil)
	s.mu.Unlock()

	notify(listeners, ev)
}

func (s *Session) begin(category catalog.Category, words []models.Word, replay bool) {
	s.category = category
	s.words = words
	s.replay = replay
	s.currentScore = 0
	s.answered = 0
	s.correct = 0
	s.lastAnswerCorrect = false
	s.sessionMissed.Clear()
	s.startedAt = s.now()
	s.inProgress = true
	s.advance()
}

// Answer checks the player's gender choice against the current word
func (s *Session) Answer(gender models.Gender) (bool, error) {
	snap, err := s.AnswerSnapshot(gender)
	if err != nil {
		return false, err
	}
	return snap.LastAnswerCorrect, nil
}

// AnswerSnapshot is Answer returning the state right after the answer, so
// the answered word can be shown even if the session moves on meanwhile
func (s *Session) AnswerSnapshot(gender models.Gender) (Snapshot, error) {
	s.mu.Lock()
	if !s.inProgress {
		s.mu.Unlock()
		return Snapshot{}, ErrNotInProgress
	}
	if s.current == nil {
		s.mu.Unlock()
		return Snapshot{}, ErrNoPrompt
	}
	if s.showResult {
		s.mu.Unlock()
		return Snapshot{}, ErrAlreadyAnswered
	}

	word := *s.current
	correct := word.Gender == gender
	s.lastAnswerCorrect = correct
	s.showResult = true
	s.answered++

	if correct {
		s.correct++
		s.currentScore++
		if s.currentScore > s.bestScore {
			s.bestScore = s.currentScore
			if s.sync() && s.currentScore >= s.bestScore {
				if err := s.store.SaveBestScore(s.bestScore); err != nil {
					log.Printf("Error saving best score: %v", err)
				}
			}
		}
	} else {
		s.missed.Add(word)
		s.sessionMissed.Add(word)
	}

	ev, listeners := s.event(EventAnswered, nil)
	s.mu.Unlock()

	notify(listeners, ev)
	return ev.State, nil
}

// Advance moves to the next word, picked uniformly at random with replacement
func (s *Session) Advance() error {
	s.mu.Lock()
	if !s.inProgress {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	s.advance()
	ev, listeners := s.event(EventAdvanced, nil)
	s.mu.Unlock()

	notify(listeners, ev)
	return nil
}

func (s *Session) advance() {
	s.showResult = false
	if len(s.words) == 0 {
		s.current = nil
		return
	}
	w := s.words[s.rnd.Intn(len(s.words))]
	s.current = &w
}

// End stops the session and persists the missed set and best score
func (s *Session) End() (Summary, error) {
	s.mu.Lock()
	if !s.inProgress {
		s.mu.Unlock()
		return Summary{}, ErrNotInProgress
	}

	summary := Summary{
		Category:  s.category,
		Replay:    s.replay,
		Score:     s.currentScore,
		BestScore: s.bestScore,
		Answered:  s.answered,
		Correct:   s.correct,
		Missed:    s.sessionMissed.Len(),
		StartedAt: s.startedAt,
		Duration:  s.now().Sub(s.startedAt),
	}

	s.inProgress = false
	s.current = nil
	s.showResult = false
	s.words = nil

	if s.sync() {
		if err := s.store.SaveMissed(s.missed.Words()); err != nil {
			log.Printf("Error saving missed words: %v", err)
		}
		if err := s.store.SaveBestScore(s.bestScore); err != nil {
			log.Printf("Error saving best score: %v", err)
		}
	}
	summary.BestScore = s.bestScore

	ev, listeners := s.event(EventEnded, &summary)
	s.mu.Unlock()

	notify(listeners, ev)
	return summary, nil
}

// DeleteMissed removes missed words belonging to the given categories, or
// every missed word when none are given, and persists the result. It returns
// the number of words removed.
func (s *Session) DeleteMissed(categories ...catalog.Category) int {
	s.mu.Lock()
	// a failed merge keeps the in-memory deletion but leaves the saved record alone
	persist := s.sync()
	var removed int
	if len(categories) == 0 {
		removed = s.missed.Len()
		s.missed.Clear()
	} else {
		removed = s.missed.RemoveIf(func(w models.Word) bool {
			for _, c := range categories {
				if catalog.Contains(c, w) {
					return true
				}
			}
			return false
		})
	}

	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	if persist {
		if err := s.store.SaveMissed(s.missed.Words()); err != nil {
			log.Printf("Error saving missed words: %v", err)
		}
	}

	ev, listeners := s.event(EventMissedDeleted, nil)
	s.mu.Unlock()

	notify(listeners, ev)
	return removed
}

// Missed returns the missed words belonging to the category
func (s *Session) Missed(category catalog.Category) []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missedIn(category)
}

func (s *Session) missedIn(category catalog.Category) []models.Word {
	return s.missed.Filter(func(w models.Word) bool {
		return catalog.Contains(category, w)
	})
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		Category:          s.category,
		CurrentScore:      s.currentScore,
		BestScore:         s.bestScore,
		InProgress:        s.inProgress,
		Replay:            s.replay,
		LastAnswerCorrect: s.lastAnswerCorrect,
		ShowResult:        s.showResult,
		MissedCount:       s.missed.Len(),
	}
	if s.current != nil {
		w := *s.current
		snap.Current = &w
	}
	return snap
}

// Subscribe registers a listener and returns a function removing it
func (s *Session) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// event builds an event and collects listeners; callers hold s.mu
func (s *Session) event(kind EventKind, summary *Summary) (Event, []Listener) {
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	return Event{Kind: kind, State: s.snapshot(), Summary: summary}, listeners
}

// notify runs listeners without holding the session lock
func notify(listeners []Listener, ev Event) {
	for _, l := range listeners {
		l(ev)
	}
}
