package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/legame/internal/database"
	"github.com/example/legame/pkg/models"
)

type fakeNotifier struct {
	sent    map[int64]int
	failFor int64
}

func (n *fakeNotifier) SendReminder(playerID int64, missed int) error {
	if playerID == n.failFor {
		return errors.New("blocked by user")
	}
	n.sent[playerID] = missed
	return nil
}

func TestRunOnceRemindsPlayersWithMissedWords(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	players := database.NewPlayerRepository(db)
	for _, id := range []int64{1, 2, 3, 4} {
		if err := players.Upsert(ctx, &models.Player{ID: id, RemindersEnabled: true}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}
	// player 2 opted out, player 3 has nothing to review, player 4 cannot be reached
	if err := players.SetReminders(ctx, 2, false); err != nil {
		t.Fatalf("SetReminders failed: %v", err)
	}

	words := []models.Word{
		{EnglishWord: "Time", FrenchWord: "Le temps", Gender: models.Masculine},
		{EnglishWord: "Year", FrenchWord: "L'année", Gender: models.Feminine},
	}
	for _, id := range []int64{1, 2, 4} {
		if err := database.NewPlayerStore(db, id).SaveMissed(words); err != nil {
			t.Fatalf("SaveMissed failed: %v", err)
		}
	}
	if err := database.NewPlayerStore(db, 3).SaveMissed(nil); err != nil {
		t.Fatalf("SaveMissed failed: %v", err)
	}

	notifier := &fakeNotifier{sent: make(map[int64]int), failFor: 4}
	s := New(db, notifier, 18, time.UTC)

	sent, err := s.RunOnce(ctx)
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if len(notifier.sent) != 1 || notifier.sent[1] != 2 {
		t.Errorf("reminders = %v, want player 1 with 2 words", notifier.sent)
	}
}

func TestStartSchedulesDailyJob(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	s := New(db, &fakeNotifier{sent: make(map[int64]int)}, 7, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	jobs := s.scheduler.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("scheduled %d jobs, want 1", len(jobs))
	}
	next := jobs[0].NextRun()
	if next.Hour() != 7 || next.Minute() != 0 {
		t.Errorf("next run at %s, want 07:00", next)
	}
}
