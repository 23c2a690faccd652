// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

// Error messages.
const (
	msgIncorrectNumber    = "Invalid input. Send a proverb number, for example: 7."
	msgOutOfRangeNumber   = "No proverb with that number."
	msgUseRange           = "Usage: /range 3 8."
	msgInvalidRange       = "Invalid range. Example: /range 3 8."
	msgProverbUnavailable = "Could not fetch a proverb. Please try again later."
	msgInternalError      = "Something went wrong. Please try again later."
	msgSubscribed         = "You are subscribed. The proverb of the day will arrive every day."
	msgUnsubscribed       = "You are unsubscribed. Use /subscribe to opt back in."
	msgAlreadySubscribed  = "You are already subscribed."
	msgSubscriptionFailed = "Could not update your subscription. Please try again later."
	msgUnknownCommand     = "Unknown command. Available commands:\n\n/today — proverb of the day\n/random — a random proverb\n/all — browse all proverbs\n/range N M — proverbs N through M"
)

const (
	lrm             = "‎"
	proverbsPerPage = 5
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	return msg
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMessage builds the /start message safely for MarkdownV2.
func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("Pashto Matal Bot"))
	sb.WriteString(md(" brings you Pashto proverbs (متلونه) with English translations and their meaning."))
	sb.WriteString("\n\n")

	sb.WriteString(md("Every day one proverb is the proverb of the day — the same one for everyone, everywhere."))
	sb.WriteString("\n\n")

	sb.WriteString(md("To get started:"))
	sb.WriteString("\n\n")

	sb.WriteString(md("1. Use /today for the proverb of the day."))
	sb.WriteString("\n")
	sb.WriteString(md("2. Use /random for a random proverb."))
	sb.WriteString("\n")
	sb.WriteString(md("3. Use /all to browse the whole collection."))
	sb.WriteString("\n")
	sb.WriteString(md("4. Send a number to jump straight to that proverb."))
	sb.WriteString("\n")
	sb.WriteString(md("5. Use /subscribe to receive the proverb of the day automatically."))

	return sb.String()
}

// helpMessage builds the /help message safely for MarkdownV2.
func helpMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("Commands"))
	sb.WriteString("\n\n")
	sb.WriteString(md("/today — proverb of the day"))
	sb.WriteString("\n")
	sb.WriteString(md("/random — a random proverb"))
	sb.WriteString("\n")
	sb.WriteString(md("/all — browse all proverbs"))
	sb.WriteString("\n")
	sb.WriteString(md("/range N M — proverbs N through M"))
	sb.WriteString("\n")
	sb.WriteString(md("/subscribe — daily proverb delivery"))
	sb.WriteString("\n")
	sb.WriteString(md("/unsubscribe — stop daily delivery"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Use the 📋 button to get a proverb as copyable plain text, or the ↗️ button to share it into any chat."))

	return sb.String()
}

// formatProverbMessage formats a single proverb message (MarkdownV2 safe).
// The proverb itself stays verbatim; the translation is shown quoted.
func formatProverbMessage(p *entities.Proverb) string {
	return fmt.Sprintf(
		"%s%s %s\n\n%s %s\n%s %s",
		lrm,
		md(fmt.Sprintf("%d.", p.Number)),
		bold(p.Proverb),
		md("Translation:"),
		bold("\""+p.Translation+"\""),
		md("Meaning:"),
		md(p.Meaning),
	)
}

// formatDailyMessage formats the proverb of the day message.
func formatDailyMessage(p *entities.Proverb) string {
	return fmt.Sprintf("%s\n\n%s",
		bold("🗓 Proverb of the day"),
		formatProverbMessage(p),
	)
}

// shareText renders the plain-text layout used by the copy and share
// actions: proverb, blank line, translation and meaning.
func shareText(p *entities.Proverb) string {
	return fmt.Sprintf("%s\n\nTranslation: %s\nMeaning: %s", p.Proverb, p.Translation, p.Meaning)
}

// buildProverbsPage builds a page of proverbs.
func buildProverbsPage(proverbs []*entities.Proverb, page int) (text string, totalPages int) {
	totalPages = (len(proverbs) + proverbsPerPage - 1) / proverbsPerPage
	if totalPages == 0 {
		return "", 0
	}

	pageProverbs := paginateProverbs(proverbs, page, proverbsPerPage)
	var b strings.Builder
	for i, p := range pageProverbs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(formatProverbMessage(p))
	}

	return b.String(), totalPages
}

// buildRangePages builds pages for a 1-based range of proverbs.
func buildRangePages(proverbs []*entities.Proverb, from, to int) (pages []string) {
	if from < 1 {
		from = 1
	}
	if to > len(proverbs) {
		to = len(proverbs)
	}
	if from > to {
		return nil
	}

	fromIdx := from - 1
	toIdx := to

	for start := fromIdx; start < toIdx; start += proverbsPerPage {
		end := start + proverbsPerPage
		if end > toIdx {
			end = toIdx
		}

		chunk := proverbs[start:end]
		var b strings.Builder
		for i, p := range chunk {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(formatProverbMessage(p))
		}

		pages = append(pages, b.String())
	}

	return pages
}

// paginateProverbs returns a slice of proverbs for a given page.
func paginateProverbs(proverbs []*entities.Proverb, page, perPage int) []*entities.Proverb {
	start := page * perPage
	end := start + perPage

	if start >= len(proverbs) {
		return nil
	}

	if end > len(proverbs) {
		end = len(proverbs)
	}

	return proverbs[start:end]
}
