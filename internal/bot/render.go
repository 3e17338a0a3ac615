package bot

import (
	"fmt"
	"strings"

	"github.com/example/legame/internal/catalog"
	"github.com/example/legame/internal/game"
	"github.com/example/legame/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data understood by HandleCallback. Prefixed actions carry a
// category name after the colon.
const (
	callbackAnswerPrefix  = "answer:"
	callbackNext          = "next"
	callbackEnd           = "end"
	callbackMenu          = "menu"
	callbackCancel        = "cancel"
	callbackStats         = "stats"
	callbackExport        = "export"
	callbackPlayMenu      = "play_menu"
	callbackReviewMenu    = "review_menu"
	callbackPlay          = "play:"
	callbackReview        = "review:"
	callbackReplay        = "replay:"
	callbackDelete        = "delete:"
	callbackConfirmDelete = "confirm_delete:"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func mainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "🎮 Play", CallbackData: callbackPlayMenu},
			{Text: "📋 Review", CallbackData: callbackReviewMenu},
		},
		{
			{Text: "📊 Statistics", CallbackData: callbackStats},
			{Text: "📥 Export", CallbackData: callbackExport},
		},
	}
}

// categoryButtons lists categories two per row, each carrying prefix+name
func categoryButtons(prefix string) [][]MenuButton {
	var rows [][]MenuButton
	var row []MenuButton
	for _, c := range catalog.Categories() {
		row = append(row, MenuButton{Text: c.Title(), CallbackData: prefix + string(c)})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return append(rows, []MenuButton{{Text: "⬅️ Menu", CallbackData: callbackMenu}})
}

func promptButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "♂ Masculine", CallbackData: callbackAnswerPrefix + string(models.Masculine)},
			{Text: "♀ Feminine", CallbackData: callbackAnswerPrefix + string(models.Feminine)},
		},
		{{Text: "🏁 End game", CallbackData: callbackEnd}},
	}
}

func feedbackButtons() [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "➡️ Next word", CallbackData: callbackNext},
			{Text: "🏁 End game", CallbackData: callbackEnd},
		},
	}
}

func reviewButtons(c catalog.Category, empty bool) [][]MenuButton {
	if empty {
		return [][]MenuButton{{{Text: "⬅️ Menu", CallbackData: callbackMenu}}}
	}
	return [][]MenuButton{
		{{Text: "🔁 Replay missed words", CallbackData: callbackReplay + string(c)}},
		{{Text: "🗑 Delete this list", CallbackData: callbackDelete + string(c)}},
		{{Text: "⬅️ Menu", CallbackData: callbackMenu}},
	}
}

func confirmDeleteButtons(c catalog.Category) [][]MenuButton {
	return [][]MenuButton{
		{
			{Text: "✅ Yes, delete", CallbackData: callbackConfirmDelete + string(c)},
			{Text: "❌ Cancel", CallbackData: callbackCancel},
		},
	}
}

func genderLabel(g models.Gender) string {
	if g == models.Feminine {
		return "feminine"
	}
	return "masculine"
}

func scoreLine(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d · Best: %d", snap.CurrentScore, snap.BestScore)
}

// promptText renders the word awaiting an answer
func promptText(snap game.Snapshot) string {
	var sb strings.Builder
	if snap.Replay {
		sb.WriteString("🔁 Replay · ")
	}
	sb.WriteString(snap.Category.Title())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "🇬🇧 %s\n\n", snap.Current.EnglishWord)
	sb.WriteString("Masculine or feminine?\n\n")
	sb.WriteString(scoreLine(snap))
	return sb.String()
}

// feedbackText renders the result of the last answer
func feedbackText(snap game.Snapshot) string {
	var sb strings.Builder
	if snap.LastAnswerCorrect {
		sb.WriteString("✅ Correct!\n\n")
	} else {
		sb.WriteString("❌ Incorrect!\n\n")
	}
	if w := snap.Current; w != nil {
		fmt.Fprintf(&sb, "%s → %s (%s)\n\n", w.EnglishWord, w.FrenchWord, genderLabel(w.Gender))
	}
	sb.WriteString(scoreLine(snap))
	return sb.String()
}

func allDoneText(c catalog.Category) string {
	return fmt.Sprintf("🎉 All done! There are no missed words left in %s.", c.Title())
}

// summaryText renders the end-of-round summary
func summaryText(s game.Summary) string {
	var sb strings.Builder
	title := s.Category.Title()
	if s.Replay {
		title += " (replay)"
	}
	fmt.Fprintf(&sb, "🏁 Game over · %s\n\n", title)
	fmt.Fprintf(&sb, "Score: %d\n", s.Score)
	fmt.Fprintf(&sb, "Best score: %d\n", s.BestScore)
	fmt.Fprintf(&sb, "Answered: %d, correct: %d\n", s.Answered, s.Correct)
	if s.Missed > 0 {
		fmt.Fprintf(&sb, "Missed this round: %d\n", s.Missed)
	}
	return sb.String()
}

// reviewText lists the missed words of a category
func reviewText(c catalog.Category, missed []models.Word) string {
	if len(missed) == 0 {
		return fmt.Sprintf("📋 %s\n\nNothing to review here. 🎉", c.Title())
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "📋 Missed %s (%d)\n\n", c.Title(), len(missed))
	for _, w := range missed {
		fmt.Fprintf(&sb, "• %s: %s (%s)\n", w.EnglishWord, w.FrenchWord, genderLabel(w.Gender))
	}
	return sb.String()
}

// statsText renders per-category history alongside the saved state
func statsText(snap game.Snapshot, stats []models.CategoryStats, recent []models.SessionResult) string {
	var sb strings.Builder
	sb.WriteString("📊 Statistics\n\n")
	fmt.Fprintf(&sb, "Best score: %d\n", snap.BestScore)
	fmt.Fprintf(&sb, "Words to review: %d\n", snap.MissedCount)

	if len(stats) == 0 {
		sb.WriteString("\nNo games played yet. Tap Play to start!")
		return sb.String()
	}

	sb.WriteString("\nBy category:\n")
	for _, s := range stats {
		fmt.Fprintf(&sb, "• %s: %d games, best %d, accuracy %.0f%%\n",
			catalog.Category(s.Category).Title(), s.Sessions, s.BestScore, s.Accuracy())
	}

	if len(recent) > 0 {
		sb.WriteString("\nRecent games:\n")
		for _, r := range recent {
			kind := ""
			if r.Replay {
				kind = " (replay)"
			}
			fmt.Fprintf(&sb, "• %s %s%s: %d/%d\n", r.PlayedAt.Format("02 Jan"),
				catalog.Category(r.Category).Title(), kind, r.Correct, r.Answered)
		}
	}
	return sb.String()
}

func reminderText(missed int) string {
	noun := "words"
	if missed == 1 {
		noun = "word"
	}
	return fmt.Sprintf("⏰ You have %d missed %s waiting for review. Replay them to lock in their genders!", missed, noun)
}
