package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

// buildProverbKeyboard builds the action row shown under every proverb:
// request another random one, get it as copyable plain text, or share it
// into another chat via inline mode.
func buildProverbKeyboard(p *entities.Proverb) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Another", buildRandomCallback()),
			tgbotapi.NewInlineKeyboardButtonData("📋 Copy", buildCopyCallback(p.Number)),
			tgbotapi.NewInlineKeyboardButtonSwitch("↗️ Share", strconv.Itoa(p.Number)),
		),
	)
}

// buildPageKeyboard builds the pagination keyboard for list views.
func buildPageKeyboard(page, totalPages int, prevData, nextData string) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", prevData))
	}

	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", nextData))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}

	return &kb
}
