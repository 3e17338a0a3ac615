package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/legame/internal/bot"
	"github.com/example/legame/internal/config"
	"github.com/example/legame/internal/database"
	"github.com/example/legame/internal/scheduler"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	db, err := database.Connect(database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	b, err := bot.New(cfg.TelegramToken, cfg.Debug, db)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if cfg.EnableScheduler {
		reminders := scheduler.New(db, b, cfg.ReminderHour, cfg.ReminderLocation)
		if err := reminders.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer reminders.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Printf("Bot error: %v", err)
	}

	b.Stop()
	log.Println("Bot stopped successfully")
}
