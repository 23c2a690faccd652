package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
)

// handleToday shows the proverb of the day.
func (h *Handler) handleToday() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		p, err := h.proverbService.Daily(ctx, time.Now())
		if err != nil {
			if errors.Is(err, repository.ErrEmptyCollection) {
				return h.send(newPlainMessage(chatID, msgProverbUnavailable))
			}
			return err
		}

		msg := newMessage(chatID, formatDailyMessage(p))
		msg.ReplyMarkup = buildProverbKeyboard(p)
		return h.send(msg)
	}
}

// handleRandom shows a random proverb.
func (h *Handler) handleRandom() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendProverbResponse(ctx, chatID, func(ctx context.Context) (*entities.Proverb, error) {
			return h.proverbService.Random(ctx)
		})
	}
}

// handleNumber processes numeric input and displays the corresponding proverb.
func (h *Handler) handleNumber(numStr string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return h.send(newPlainMessage(chatID, msgIncorrectNumber))
		}

		return h.sendProverbResponse(ctx, chatID, func(ctx context.Context) (*entities.Proverb, error) {
			return h.proverbService.ByNumber(ctx, n)
		})
	}
}

// handleAll sends a paginated list of all proverbs.
func (h *Handler) handleAll() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		proverbs, err := h.proverbService.All(ctx)
		if err != nil {
			return err
		}

		if len(proverbs) == 0 {
			return h.send(newPlainMessage(chatID, msgProverbUnavailable))
		}

		page := 0
		text, totalPages := buildProverbsPage(proverbs, page)

		msg := newMessage(chatID, text)
		kb := buildPageKeyboard(page, totalPages, buildListCallback(page-1), buildListCallback(page+1))
		if kb != nil {
			msg.ReplyMarkup = *kb
		}

		return h.send(msg)
	}
}

// handleRange sends a paginated list of proverbs in a specified range.
func (h *Handler) handleRange(argsStr string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		args := strings.Fields(argsStr)
		if len(args) != 2 {
			return h.send(newPlainMessage(chatID, msgUseRange))
		}

		from, errFrom := strconv.Atoi(args[0])
		to, errTo := strconv.Atoi(args[1])
		if errFrom != nil || errTo != nil || from < 1 || from > to {
			return h.send(newPlainMessage(chatID, msgInvalidRange))
		}

		proverbs, err := h.proverbService.All(ctx)
		if err != nil {
			return err
		}

		pages := buildRangePages(proverbs, from, to)
		if len(pages) == 0 {
			return h.send(newPlainMessage(chatID, msgProverbUnavailable))
		}

		page := 0
		totalPages := len(pages)

		msg := newMessage(chatID, pages[page])
		kb := buildPageKeyboard(page, totalPages, buildRangeCallback(page-1, from, to), buildRangeCallback(page+1, from, to))
		if kb != nil {
			msg.ReplyMarkup = *kb
		}

		return h.send(msg)
	}
}

// handleSubscribe opts the user in to the daily digest.
func (h *Handler) handleSubscribe(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		subscribed, err := h.subscriptionService.IsSubscribed(ctx, userID)
		if err == nil && subscribed {
			return h.send(newPlainMessage(chatID, msgAlreadySubscribed))
		}

		if err := h.subscriptionService.Subscribe(ctx, userID, chatID); err != nil {
			return h.send(newPlainMessage(chatID, msgSubscriptionFailed))
		}

		return h.send(newPlainMessage(chatID, msgSubscribed))
	}
}

// handleUnsubscribe opts the user out of the daily digest.
func (h *Handler) handleUnsubscribe(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.subscriptionService.Unsubscribe(ctx, userID, chatID); err != nil {
			return h.send(newPlainMessage(chatID, msgSubscriptionFailed))
		}

		return h.send(newPlainMessage(chatID, msgUnsubscribed))
	}
}

// sendProverbResponse fetches a proverb and sends it with the action
// keyboard, mapping collection errors onto user-facing messages.
func (h *Handler) sendProverbResponse(
	ctx context.Context,
	chatID int64,
	get func(ctx context.Context) (*entities.Proverb, error),
) error {
	p, err := get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidNumber) {
			return h.send(newPlainMessage(chatID, msgOutOfRangeNumber))
		}
		if errors.Is(err, repository.ErrEmptyCollection) {
			return h.send(newPlainMessage(chatID, msgProverbUnavailable))
		}
		return err
	}

	msg := newMessage(chatID, formatProverbMessage(p))
	msg.ReplyMarkup = buildProverbKeyboard(p)
	return h.send(msg)
}
