package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/legame/internal/database"
	"github.com/go-co-op/gocron"
	"github.com/jmoiron/sqlx"
)

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	db        *sqlx.DB
	players   *database.PlayerRepository
	hour      int
}

// Notifier interface for sending notifications
type Notifier interface {
	SendReminder(playerID int64, missed int) error
}

// New creates a scheduler that sends review reminders daily at hour in loc
func New(db *sqlx.DB, notifier Notifier, hour int, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		notifier:  notifier,
		db:        db,
		players:   database.NewPlayerRepository(db),
		hour:      hour,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() error {
	at := fmt.Sprintf("%02d:00", s.hour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.sendReminders); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	log.Printf("Review reminders scheduled daily at %s %s", at, s.scheduler.Location())
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sendReminders() {
	sent, err := s.RunOnce(context.Background())
	if err != nil {
		log.Printf("Error sending review reminders: %v", err)
		return
	}
	log.Printf("Sent %d review reminders", sent)
}

// RunOnce reminds every opted-in player who has missed words to review and
// returns the number of reminders delivered
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	players, err := s.players.GetWithReminders(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, player := range players {
		missed, err := database.NewPlayerStore(s.db, player.ID).LoadMissed()
		if err != nil {
			log.Printf("Error loading missed words for player %d: %v", player.ID, err)
			continue
		}
		if len(missed) == 0 {
			continue
		}
		if err := s.notifier.SendReminder(player.ID, len(missed)); err != nil {
			log.Printf("Error sending reminder to player %d: %v", player.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
