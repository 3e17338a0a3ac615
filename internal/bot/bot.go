package bot

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/example/legame/internal/database"
	"github.com/example/legame/internal/game"
	"github.com/example/legame/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

// messenger is the part of the Telegram API the bot talks to
type messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// playerSession is a player's game together with the chat it is shown in
type playerSession struct {
	game   *game.Session
	chatID int64
}

// Bot represents the Telegram bot application
type Bot struct {
	api         messenger
	client      *tgbotapi.BotAPI
	db          *sqlx.DB
	players     *database.PlayerRepository
	results     *database.SessionResultRepository
	stats       *database.StatisticsRepository
	sessionOpts []game.Option

	mu       sync.Mutex
	sessions map[int64]*playerSession

	// handlers tracks in-flight update handlers
	handlers sync.WaitGroup
}

// New connects to Telegram and creates a new bot instance
func New(token string, debug bool, db *sqlx.DB) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	if db == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	client, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %w", err)
	}
	client.Debug = debug
	log.Printf("Authorized on account %s", client.Self.UserName)

	b := newBot(client, db)
	b.client = client
	return b, nil
}

func newBot(api messenger, db *sqlx.DB, opts ...game.Option) *Bot {
	return &Bot{
		api:         api,
		db:          db,
		players:     database.NewPlayerRepository(db),
		results:     database.NewSessionResultRepository(db),
		stats:       database.NewStatisticsRepository(db),
		sessionOpts: opts,
		sessions:    make(map[int64]*playerSession),
	}
}

// Start receives updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	if b.client == nil {
		return fmt.Errorf("bot is not connected to telegram")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.client.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.client.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch handles an update on its own goroutine
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	b.handlers.Add(1)
	go func() {
		defer b.handlers.Done()
		b.handleUpdate(ctx, update)
	}()
}

// Stop waits for in-flight updates, then ends every running game so missed
// words are saved. Start must have returned.
func (b *Bot) Stop() {
	b.handlers.Wait()

	b.mu.Lock()
	sessions := make([]*playerSession, 0, len(b.sessions))
	for _, ps := range b.sessions {
		sessions = append(sessions, ps)
	}
	b.mu.Unlock()

	for _, ps := range sessions {
		if _, err := ps.game.End(); err != nil && err != game.ErrNotInProgress {
			log.Printf("Error ending session: %v", err)
		}
	}
	log.Println("Bot stopped")
}

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var err error
	switch {
	case update.Message != nil && update.Message.IsCommand():
		err = b.HandleCommand(ctx, update.Message)
	case update.Message != nil:
		err = b.sendMessage(menuMessage(update.Message.Chat.ID, "I only understand buttons and commands. Use /help to see them."))
	case update.CallbackQuery != nil:
		err = b.HandleCallback(ctx, update.CallbackQuery)
	}
	if err != nil {
		log.Printf("Error handling update %d: %v", update.UpdateID, err)
	}
}

// sessionFor returns the player's game, registering the player and loading
// their saved progress on first contact
func (b *Bot) sessionFor(ctx context.Context, user *tgbotapi.User, chatID int64) (*game.Session, error) {
	b.mu.Lock()
	if ps, ok := b.sessions[user.ID]; ok {
		ps.chatID = chatID
		b.mu.Unlock()
		return ps.game, nil
	}
	b.mu.Unlock()

	player := &models.Player{
		ID:               user.ID,
		Username:         user.UserName,
		FirstName:        user.FirstName,
		RemindersEnabled: true,
	}
	if err := b.players.Upsert(ctx, player); err != nil {
		return nil, err
	}

	playerID := user.ID
	s := game.NewSession(database.NewPlayerStore(b.db, playerID), b.sessionOpts...)
	s.Subscribe(func(ev game.Event) {
		if ev.Kind == game.EventEnded {
			b.recordResult(playerID, ev.Summary)
		}
	})

	b.mu.Lock()
	defer b.mu.Unlock()
	// another update from the same player may have won the race
	if ps, ok := b.sessions[playerID]; ok {
		ps.chatID = chatID
		return ps.game, nil
	}
	b.sessions[playerID] = &playerSession{game: s, chatID: chatID}
	return s, nil
}

// recordResult stores a finished game in the player's history
func (b *Bot) recordResult(playerID int64, summary *game.Summary) {
	if summary == nil || summary.Answered == 0 {
		return
	}
	result := &models.SessionResult{
		PlayerID:        playerID,
		Category:        string(summary.Category),
		Replay:          summary.Replay,
		Score:           summary.Score,
		Answered:        summary.Answered,
		Correct:         summary.Correct,
		Missed:          summary.Missed,
		DurationSeconds: int(summary.Duration.Seconds()),
		PlayedAt:        summary.StartedAt.UTC(),
	}
	if err := b.results.Create(context.Background(), result); err != nil {
		log.Printf("Error saving session result for player %d: %v", playerID, err)
	}
}

// SendReminder implements the scheduler.Notifier interface
func (b *Bot) SendReminder(playerID int64, missed int) error {
	// Private chats share the user's ID
	msg := tgbotapi.NewMessage(playerID, reminderText(missed))
	msg.ReplyMarkup = createKeyboard(categoryButtons(callbackReview))
	if err := b.sendMessage(msg); err != nil {
		return err
	}
	log.Printf("Sent review reminder to player %d for %d words", playerID, missed)
	return nil
}

func menuMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(mainMenuButtons())
	return msg
}

func (b *Bot) sendMessage(msg tgbotapi.Chattable) error {
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// editMessage replaces the text and keyboard of a message the bot sent
func (b *Bot) editMessage(chatID int64, messageID int, text string, buttons [][]MenuButton) error {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, createKeyboard(buttons))
	if _, err := b.api.Send(edit); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Warning: Failed to answer callback: %v", err)
	}
}
