package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/example/legame/internal/catalog"
	"github.com/example/legame/internal/export"
	"github.com/example/legame/internal/game"
	"github.com/example/legame/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const recentResultsLimit = 5

// HandleCommand handles bot commands
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	if message == nil || message.From == nil || message.Chat == nil {
		return fmt.Errorf("invalid message: required fields are missing")
	}

	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		return b.handleStart(ctx, message)
	case "help":
		return b.sendMessage(menuMessage(chatID, helpText))
	case "menu":
		return b.sendMessage(menuMessage(chatID, "Main menu: choose an option."))
	case "play":
		if args == "" {
			return b.sendCategoryChoice(chatID, "🎮 Which words do you want to play?", callbackPlay)
		}
		return b.withCategory(chatID, args, func(c catalog.Category) error {
			return b.startGame(ctx, message.From, chatID, 0, c, false)
		})
	case "review":
		if args == "" {
			return b.sendCategoryChoice(chatID, "📋 Which missed words do you want to review?", callbackReview)
		}
		return b.withCategory(chatID, args, func(c catalog.Category) error {
			return b.showReview(ctx, message.From, chatID, 0, c)
		})
	case "replay":
		if args == "" {
			args = string(catalog.All)
		}
		return b.withCategory(chatID, args, func(c catalog.Category) error {
			return b.startGame(ctx, message.From, chatID, 0, c, true)
		})
	case "delete":
		if args == "" {
			args = string(catalog.All)
		}
		return b.withCategory(chatID, args, func(c catalog.Category) error {
			msg := tgbotapi.NewMessage(chatID, deletePrompt(c))
			msg.ReplyMarkup = createKeyboard(confirmDeleteButtons(c))
			return b.sendMessage(msg)
		})
	case "end":
		return b.endGame(ctx, message.From, chatID, 0)
	case "stats":
		return b.showStats(ctx, message.From, chatID)
	case "export":
		return b.sendExport(ctx, message.From, chatID, strings.EqualFold(args, "csv"))
	case "reminders":
		return b.handleReminders(ctx, message.From, chatID, args)
	default:
		return b.sendMessage(menuMessage(chatID, "Unknown command. Use /help to see what I can do."))
	}
}

const helpText = "📖 Le Game: guess the gender of French nouns\n\n" +
	"/play [category] - start a game\n" +
	"/review [category] - list the words you missed\n" +
	"/replay [category] - play only your missed words\n" +
	"/delete [category] - forget missed words\n" +
	"/end - finish the current game\n" +
	"/stats - your scores and history\n" +
	"/export [csv] - download your missed words\n" +
	"/reminders on|off - daily review reminders\n\n" +
	"Categories: basic, common, family, anatomy, advanced, all"

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	if _, err := b.sessionFor(ctx, message.From, message.Chat.ID); err != nil {
		return err
	}
	name := models.Player{Username: message.From.UserName, FirstName: message.From.FirstName}.DisplayName()
	text := fmt.Sprintf("👋 Bonjour %s!\n\n", name) +
		"I show you an English word, you tell me whether its French translation " +
		"is masculine or feminine. Words you miss are kept for review.\n\n" +
		"Ready? Tap Play."
	return b.sendMessage(menuMessage(message.Chat.ID, text))
}

// withCategory parses a player-supplied category name and runs fn with it
func (b *Bot) withCategory(chatID int64, name string, fn func(catalog.Category) error) error {
	c, err := catalog.ParseCategory(name)
	if err != nil {
		var names []string
		for _, c := range catalog.Categories() {
			names = append(names, string(c))
		}
		return b.sendMessage(tgbotapi.NewMessage(chatID,
			fmt.Sprintf("⚠️ Unknown category %q. Choose one of: %s", name, strings.Join(names, ", "))))
	}
	return fn(c)
}

func (b *Bot) sendCategoryChoice(chatID int64, text, prefix string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(categoryButtons(prefix))
	return b.sendMessage(msg)
}

// show sends a new message, or edits messageID in place when it is set
func (b *Bot) show(chatID int64, messageID int, text string, buttons [][]MenuButton) error {
	if messageID != 0 {
		return b.editMessage(chatID, messageID, text, buttons)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(buttons)
	return b.sendMessage(msg)
}

// startGame begins a game or a replay, finishing any game still running
func (b *Bot) startGame(ctx context.Context, user *tgbotapi.User, chatID int64, messageID int, c catalog.Category, replay bool) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	if s.Snapshot().InProgress {
		if _, err := s.End(); err != nil && !errors.Is(err, game.ErrNotInProgress) {
			return err
		}
	}

	if replay {
		s.Replay(c)
	} else {
		s.Start(c)
	}

	snap := s.Snapshot()
	if snap.Current == nil {
		// Nothing to quiz: an empty replay goes straight to the all-done screen
		if _, err := s.End(); err != nil {
			return err
		}
		return b.show(chatID, messageID, allDoneText(c), mainMenuButtons())
	}
	return b.show(chatID, messageID, promptText(snap), promptButtons())
}

func (b *Bot) endGame(ctx context.Context, user *tgbotapi.User, chatID int64, messageID int) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	summary, err := s.End()
	if errors.Is(err, game.ErrNotInProgress) {
		return b.show(chatID, messageID, "There is no game running. Tap Play to start one.", mainMenuButtons())
	}
	if err != nil {
		return err
	}
	return b.show(chatID, messageID, summaryText(summary), mainMenuButtons())
}

func (b *Bot) showReview(ctx context.Context, user *tgbotapi.User, chatID int64, messageID int, c catalog.Category) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	missed := s.Missed(c)
	return b.show(chatID, messageID, reviewText(c, missed), reviewButtons(c, len(missed) == 0))
}

func deletePrompt(c catalog.Category) string {
	if c == catalog.All {
		return "🗑 Delete every missed word? This cannot be undone."
	}
	return fmt.Sprintf("🗑 Delete the missed words of %s? This cannot be undone.", c.Title())
}

func (b *Bot) deleteMissed(ctx context.Context, user *tgbotapi.User, chatID int64, messageID int, c catalog.Category) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	var removed int
	if c == catalog.All {
		removed = s.DeleteMissed()
	} else {
		removed = s.DeleteMissed(c)
	}
	text := fmt.Sprintf("🗑 Removed %d missed words from %s.", removed, c.Title())
	if removed == 0 {
		text = fmt.Sprintf("Nothing to delete in %s.", c.Title())
	}
	return b.show(chatID, messageID, text, mainMenuButtons())
}

func (b *Bot) showStats(ctx context.Context, user *tgbotapi.User, chatID int64) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	stats, err := b.stats.GetCategoryStats(ctx, user.ID)
	if err != nil {
		return err
	}
	recent, err := b.results.GetRecent(ctx, user.ID, recentResultsLimit)
	if err != nil {
		return err
	}
	return b.sendMessage(menuMessage(chatID, statsText(s.Snapshot(), stats, recent)))
}

func (b *Bot) sendExport(ctx context.Context, user *tgbotapi.User, chatID int64, asCSV bool) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	missed := s.Missed(catalog.All)
	if len(missed) == 0 {
		return b.sendMessage(menuMessage(chatID, "You have no missed words to export. 🎉"))
	}

	var file tgbotapi.FileBytes
	if asCSV {
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, missed); err != nil {
			return err
		}
		file = tgbotapi.FileBytes{Name: "missed-words.csv", Bytes: buf.Bytes()}
	} else {
		buf, err := export.Workbook(missed)
		if err != nil {
			return err
		}
		file = tgbotapi.FileBytes{Name: "missed-words.xlsx", Bytes: buf.Bytes()}
	}

	doc := tgbotapi.NewDocument(chatID, file)
	doc.Caption = fmt.Sprintf("📥 %d missed words", len(missed))
	return b.sendMessage(doc)
}

func (b *Bot) handleReminders(ctx context.Context, user *tgbotapi.User, chatID int64, args string) error {
	if _, err := b.sessionFor(ctx, user, chatID); err != nil {
		return err
	}

	var enabled bool
	switch strings.ToLower(args) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		player, err := b.players.GetByID(ctx, user.ID)
		if err != nil {
			return err
		}
		state := "off"
		if player != nil && player.RemindersEnabled {
			state = "on"
		}
		return b.sendMessage(tgbotapi.NewMessage(chatID,
			fmt.Sprintf("⏰ Daily reminders are %s. Use /reminders on or /reminders off.", state)))
	}

	if err := b.players.SetReminders(ctx, user.ID, enabled); err != nil {
		return err
	}
	text := "⏰ Daily reminders disabled."
	if enabled {
		text = "⏰ Daily reminders enabled. I'll nudge you when missed words are waiting."
	}
	return b.sendMessage(menuMessage(chatID, text))
}

// HandleCallback handles taps on inline keyboard buttons
func (b *Bot) HandleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	if callback == nil || callback.Message == nil || callback.From == nil {
		return fmt.Errorf("invalid callback data: required fields are missing")
	}

	user := callback.From
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	data := callback.Data

	if strings.HasPrefix(data, callbackAnswerPrefix) {
		return b.handleAnswer(ctx, callback, strings.TrimPrefix(data, callbackAnswerPrefix))
	}

	// Every other action is acknowledged up front to stop the loading spinner
	b.answerCallback(callback.ID, "")

	switch data {
	case callbackNext:
		return b.handleNext(ctx, user, chatID, messageID)
	case callbackEnd:
		return b.endGame(ctx, user, chatID, messageID)
	case callbackMenu, callbackCancel:
		return b.editMessage(chatID, messageID, "Main menu: choose an option.", mainMenuButtons())
	case callbackPlayMenu:
		return b.editMessage(chatID, messageID, "🎮 Which words do you want to play?", categoryButtons(callbackPlay))
	case callbackReviewMenu:
		return b.editMessage(chatID, messageID, "📋 Which missed words do you want to review?", categoryButtons(callbackReview))
	case callbackStats:
		return b.showStats(ctx, user, chatID)
	case callbackExport:
		return b.sendExport(ctx, user, chatID, false)
	}

	prefix, name, ok := splitCallback(data)
	if !ok {
		return b.sendMessage(tgbotapi.NewMessage(chatID, "⚠️ Unknown action"))
	}
	c, err := catalog.ParseCategory(name)
	if err != nil {
		return fmt.Errorf("invalid category in callback %q: %w", data, err)
	}

	switch prefix {
	case callbackPlay:
		return b.startGame(ctx, user, chatID, messageID, c, false)
	case callbackReplay:
		return b.startGame(ctx, user, chatID, messageID, c, true)
	case callbackReview:
		return b.showReview(ctx, user, chatID, messageID, c)
	case callbackDelete:
		return b.editMessage(chatID, messageID, deletePrompt(c), confirmDeleteButtons(c))
	case callbackConfirmDelete:
		return b.deleteMissed(ctx, user, chatID, messageID, c)
	}
	return b.sendMessage(tgbotapi.NewMessage(chatID, "⚠️ Unknown action"))
}

// splitCallback separates "prefix:category" callback data
func splitCallback(data string) (prefix, category string, ok bool) {
	i := strings.Index(data, ":")
	if i < 0 {
		return "", "", false
	}
	return data[:i+1], data[i+1:], true
}

func (b *Bot) handleAnswer(ctx context.Context, callback *tgbotapi.CallbackQuery, choice string) error {
	gender, err := models.ParseGender(choice)
	if err != nil {
		b.answerCallback(callback.ID, "")
		return err
	}

	s, err := b.sessionFor(ctx, callback.From, callback.Message.Chat.ID)
	if err != nil {
		b.answerCallback(callback.ID, "")
		return err
	}

	snap, err := s.AnswerSnapshot(gender)
	switch {
	case errors.Is(err, game.ErrAlreadyAnswered):
		b.answerCallback(callback.ID, "Already answered. Tap Next word.")
		return nil
	case errors.Is(err, game.ErrNotInProgress), errors.Is(err, game.ErrNoPrompt):
		b.answerCallback(callback.ID, "This game is over. Start a new one!")
		return nil
	case err != nil:
		b.answerCallback(callback.ID, "")
		return err
	}

	toast := "❌"
	if snap.LastAnswerCorrect {
		toast = "✅"
	}
	b.answerCallback(callback.ID, toast)

	log.Printf("Player %d answered %s (correct: %t)", callback.From.ID, gender, snap.LastAnswerCorrect)
	return b.editMessage(callback.Message.Chat.ID, callback.Message.MessageID, feedbackText(snap), feedbackButtons())
}

func (b *Bot) handleNext(ctx context.Context, user *tgbotapi.User, chatID int64, messageID int) error {
	s, err := b.sessionFor(ctx, user, chatID)
	if err != nil {
		return err
	}
	if err := s.Advance(); errors.Is(err, game.ErrNotInProgress) {
		return b.show(chatID, messageID, "There is no game running. Tap Play to start one.", mainMenuButtons())
	}
	snap := s.Snapshot()
	if snap.Current == nil {
		return b.show(chatID, messageID, allDoneText(snap.Category), mainMenuButtons())
	}
	return b.show(chatID, messageID, promptText(snap), promptButtons())
}
