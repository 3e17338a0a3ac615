package database

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/example/legame/pkg/models"
	"github.com/jmoiron/sqlx"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Connect(Config{Driver: DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNormalizeDriver(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", DriverSQLite, false},
		{"sqlite", DriverSQLite, false},
		{"SQLite3", DriverSQLite, false},
		{"postgresql", DriverPostgres, false},
		{" postgres ", DriverPostgres, false},
		{"mysql", DriverMySQL, false},
		{"oracle", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeDriver(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizeDriver(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeDriver(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMySQLDSNEnablesParseTime(t *testing.T) {
	dsn, err := mysqlDSN("user:pass@tcp(localhost:3306)/legame")
	if err != nil {
		t.Fatalf("mysqlDSN failed: %v", err)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("dsn %q should enable parseTime", dsn)
	}

	if _, err := mysqlDSN("not a dsn"); err == nil {
		t.Error("expected error for malformed dsn")
	}
}

func TestUpsertQueryPerDriver(t *testing.T) {
	insert := "INSERT INTO player_records (player_id, record_key, record_value) VALUES (?, ?, ?)"
	conflict := []string{"player_id", "record_key"}
	update := []string{"record_value"}

	tests := []struct {
		driver string
		want   []string
	}{
		{DriverSQLite, []string{
			"ON CONFLICT (player_id, record_key) DO UPDATE SET record_value = excluded.record_value",
			"VALUES (?, ?, ?)",
		}},
		{DriverPostgres, []string{
			"ON CONFLICT (player_id, record_key)",
			"VALUES ($1, $2, $3)",
		}},
		{DriverMySQL, []string{
			"ON DUPLICATE KEY UPDATE record_value = VALUES(record_value), updated_at = CURRENT_TIMESTAMP",
		}},
	}
	for _, tt := range tests {
		// sqlx.NewDb only records the driver name; no connection is made
		db := sqlx.NewDb(nil, tt.driver)
		got := upsert(db, insert, conflict, update)
		for _, part := range tt.want {
			if !strings.Contains(got, part) {
				t.Errorf("%s: query %q missing %q", tt.driver, got, part)
			}
		}
	}
}

func TestPlayerStoreDefaults(t *testing.T) {
	store := NewPlayerStore(setupTestDB(t), 1)

	best, missed, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if best != 0 || len(missed) != 0 {
		t.Errorf("Load() = %d, %v; want 0 and no words", best, missed)
	}
}

func TestPlayerStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewPlayerStore(db, 7)

	words := []models.Word{
		{EnglishWord: "Time", FrenchWord: "Le temps", Gender: models.Masculine},
		{EnglishWord: "Year", FrenchWord: "L'année", Gender: models.Feminine},
	}
	if err := store.SaveBestScore(12); err != nil {
		t.Fatalf("SaveBestScore failed: %v", err)
	}
	if err := store.SaveMissed(words); err != nil {
		t.Fatalf("SaveMissed failed: %v", err)
	}
	// second save replaces the record
	if err := store.SaveBestScore(13); err != nil {
		t.Fatalf("SaveBestScore failed: %v", err)
	}

	best, missed, err := NewPlayerStore(db, 7).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if best != 13 {
		t.Errorf("best = %d, want 13", best)
	}
	if len(missed) != 2 || missed[0] != words[0] || missed[1] != words[1] {
		t.Errorf("missed = %v, want %v", missed, words)
	}

	// other players are unaffected
	best, missed, err = NewPlayerStore(db, 8).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if best != 0 || len(missed) != 0 {
		t.Errorf("player 8 Load() = %d, %v; want defaults", best, missed)
	}
}

func TestPlayerStoreMissedWordsFormat(t *testing.T) {
	db := setupTestDB(t)
	store := NewPlayerStore(db, 1)

	if err := store.SaveMissed(nil); err != nil {
		t.Fatalf("SaveMissed failed: %v", err)
	}
	raw, ok, err := NewRecordRepository(db).Get(1, MissedWordsKey)
	if err != nil || !ok {
		t.Fatalf("Get = %q, %v, %v", raw, ok, err)
	}
	if raw != "[]" {
		t.Errorf("empty missed set stored as %q, want []", raw)
	}

	err = store.SaveMissed([]models.Word{{EnglishWord: "Hand", FrenchWord: "La main", Gender: models.Feminine}})
	if err != nil {
		t.Fatalf("SaveMissed failed: %v", err)
	}
	raw, _, _ = NewRecordRepository(db).Get(1, MissedWordsKey)
	want := `[{"englishWord":"Hand","frenchWord":"La main","gender":"feminine"}]`
	if raw != want {
		t.Errorf("stored %s, want %s", raw, want)
	}
}

func TestPlayerStoreIgnoresCorruptRecords(t *testing.T) {
	db := setupTestDB(t)
	records := NewRecordRepository(db)

	tests := []struct {
		name       string
		best       string
		missed     string
		wantBest   int
		wantMissed int
	}{
		{"garbage", "lots", "{not json", 0, 0},
		{"negative best", "-3", "[]", 0, 0},
		{"padded best", " 4 ", "[]", 4, 0},
		{"bad entries skipped", "1", `[
			{"englishWord":"Arm","frenchWord":"Le bras","gender":"masculine"},
			{"englishWord":"","frenchWord":"La tête","gender":"feminine"},
			{"englishWord":"Cat","frenchWord":"Le chat","gender":"neuter"}
		]`, 1, 1},
	}
	for i, tt := range tests {
		playerID := int64(100 + i)
		if err := records.Put(playerID, BestScoreKey, tt.best); err != nil {
			t.Fatalf("%s: Put failed: %v", tt.name, err)
		}
		if err := records.Put(playerID, MissedWordsKey, tt.missed); err != nil {
			t.Fatalf("%s: Put failed: %v", tt.name, err)
		}

		best, missed, err := NewPlayerStore(db, playerID).Load()
		if err != nil {
			t.Errorf("%s: Load failed: %v", tt.name, err)
			continue
		}
		if best != tt.wantBest || len(missed) != tt.wantMissed {
			t.Errorf("%s: Load() = %d, %d words; want %d, %d words",
				tt.name, best, len(missed), tt.wantBest, tt.wantMissed)
		}
	}
}

func TestPlayerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(setupTestDB(t))

	missing, err := repo.GetByID(ctx, 42)
	if err != nil || missing != nil {
		t.Fatalf("GetByID(unknown) = %v, %v; want nil, nil", missing, err)
	}

	player := &models.Player{ID: 42, Username: "marie", FirstName: "Marie", RemindersEnabled: true}
	if err := repo.Upsert(ctx, player); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := repo.SetReminders(ctx, 42, false); err != nil {
		t.Fatalf("SetReminders failed: %v", err)
	}

	// a profile refresh keeps the reminder preference
	player.FirstName = "Marie-Claire"
	if err := repo.Upsert(ctx, player); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	got, err := repo.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.FirstName != "Marie-Claire" {
		t.Errorf("FirstName = %q, want Marie-Claire", got.FirstName)
	}
	if got.RemindersEnabled {
		t.Error("RemindersEnabled should stay false after upsert")
	}

	if err := repo.Upsert(ctx, &models.Player{ID: 43, RemindersEnabled: true}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	players, err := repo.GetWithReminders(ctx)
	if err != nil {
		t.Fatalf("GetWithReminders failed: %v", err)
	}
	if len(players) != 1 || players[0].ID != 43 {
		t.Errorf("GetWithReminders = %v, want only player 43", players)
	}

	if err := repo.SetReminders(ctx, 999, true); err == nil {
		t.Error("expected error for unknown player")
	}
}

func TestSessionResultsAndStatistics(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	results := NewSessionResultRepository(db)
	stats := NewStatisticsRepository(db)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	sessions := []models.SessionResult{
		{PlayerID: 1, Category: "basic", Score: 4, Answered: 6, Correct: 4, Missed: 2, PlayedAt: base},
		{PlayerID: 1, Category: "basic", Score: 9, Answered: 10, Correct: 9, Missed: 1, PlayedAt: base.Add(time.Hour)},
		{PlayerID: 1, Category: "family", Score: 2, Answered: 4, Correct: 2, Missed: 2, PlayedAt: base.Add(2 * time.Hour)},
		{PlayerID: 1, Category: "basic", Replay: true, Score: 3, Answered: 3, Correct: 3, PlayedAt: base.Add(3 * time.Hour)},
		{PlayerID: 2, Category: "basic", Score: 20, Answered: 20, Correct: 20, PlayedAt: base},
	}
	for i := range sessions {
		if err := results.Create(ctx, &sessions[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if sessions[i].ID == "" {
			t.Fatal("Create should assign an ID")
		}
	}

	recent, err := results.GetRecent(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("GetRecent returned %d results, want 2", len(recent))
	}
	if !recent[0].Replay || recent[1].Category != "family" {
		t.Errorf("GetRecent not ordered newest first: %+v", recent)
	}

	got, err := stats.GetCategoryStats(ctx, 1)
	if err != nil {
		t.Fatalf("GetCategoryStats failed: %v", err)
	}
	want := []models.CategoryStats{
		{Category: "basic", Sessions: 2, BestScore: 9, Answered: 16, Correct: 13},
		{Category: "family", Sessions: 1, BestScore: 2, Answered: 4, Correct: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("GetCategoryStats = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stats[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
