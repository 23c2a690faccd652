package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/repository"
)

func (h *Handler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		h.answerCallback(cq.ID, "")
		return
	}

	cd := decodeCallback(cq.Data)
	chatID := cq.Message.Chat.ID

	switch cd.Action {
	case actionRandom:
		_ = h.withErrorHandling(h.handleRandom())(ctx, chatID)
		h.answerCallback(cq.ID, "")

	case actionCopy:
		h.callbackCopy(ctx, cq, chatID, cd)

	case actionList:
		h.callbackListPage(ctx, cq, chatID, cd)

	case actionRange:
		h.callbackRangePage(ctx, cq, chatID, cd)

	default:
		h.answerCallback(cq.ID, "")
	}
}

// callbackCopy sends the selected proverb as plain text so the user can
// copy it with the client's own copy action.
func (h *Handler) callbackCopy(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, cd callbackData) {
	if len(cd.Params) != 1 {
		h.answerCallback(cq.ID, "")
		return
	}

	number, err := strconv.Atoi(cd.Params[0])
	if err != nil {
		h.answerCallback(cq.ID, "")
		return
	}

	p, err := h.proverbService.ByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCollection) || errors.Is(err, repository.ErrInvalidNumber) {
			h.answerCallback(cq.ID, msgProverbUnavailable)
			return
		}
		h.logger.Error("failed to get proverb for copy",
			zap.Int("number", number),
			zap.Error(err),
		)
		h.answerCallback(cq.ID, msgInternalError)
		return
	}

	if err := h.send(newPlainMessage(chatID, shareText(p))); err != nil {
		h.answerCallback(cq.ID, msgInternalError)
		return
	}

	h.answerCallback(cq.ID, "Sent as plain text. Long-press to copy.")
}

// callbackListPage flips a page of the /all listing in place.
func (h *Handler) callbackListPage(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, cd callbackData) {
	defer h.answerCallback(cq.ID, "")

	if len(cd.Params) != 1 {
		return
	}

	page, err := strconv.Atoi(cd.Params[0])
	if err != nil || page < 0 {
		return
	}

	proverbs, err := h.proverbService.All(ctx)
	if err != nil || len(proverbs) == 0 {
		return
	}

	text, totalPages := buildProverbsPage(proverbs, page)
	if text == "" || page >= totalPages {
		return
	}

	edit := newEdit(chatID, cq.Message.MessageID, text)
	edit.ReplyMarkup = buildPageKeyboard(page, totalPages, buildListCallback(page-1), buildListCallback(page+1))
	_ = h.send(edit)
}

// callbackRangePage flips a page of a /range listing in place. The range
// bounds travel in the callback data so pages rebuild statelessly.
func (h *Handler) callbackRangePage(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, cd callbackData) {
	defer h.answerCallback(cq.ID, "")

	if len(cd.Params) != 3 {
		return
	}

	page, errPage := strconv.Atoi(cd.Params[0])
	from, errFrom := strconv.Atoi(cd.Params[1])
	to, errTo := strconv.Atoi(cd.Params[2])
	if errPage != nil || errFrom != nil || errTo != nil || page < 0 {
		return
	}

	proverbs, err := h.proverbService.All(ctx)
	if err != nil || len(proverbs) == 0 {
		return
	}

	pages := buildRangePages(proverbs, from, to)
	if page >= len(pages) {
		return
	}

	edit := newEdit(chatID, cq.Message.MessageID, pages[page])
	edit.ReplyMarkup = buildPageKeyboard(page, len(pages), buildRangeCallback(page-1, from, to), buildRangeCallback(page+1, from, to))
	_ = h.send(edit)
}

func (h *Handler) answerCallback(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Error("failed to answer callback",
			zap.Error(err),
		)
	}
}
