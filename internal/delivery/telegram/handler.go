package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) error
}

type ProverbService interface {
	Daily(ctx context.Context, at time.Time) (*entities.Proverb, error)
	Random(ctx context.Context) (*entities.Proverb, error)
	ByNumber(ctx context.Context, number int) (*entities.Proverb, error)
	All(ctx context.Context) ([]*entities.Proverb, error)
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, chatID int64) error
	Unsubscribe(ctx context.Context, userID, chatID int64) error
	IsSubscribed(ctx context.Context, userID int64) (bool, error)
}

type Handler struct {
	bot                 *tgbotapi.BotAPI
	logger              *zap.Logger
	proverbService      ProverbService
	userService         UserService
	subscriptionService SubscriptionService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	proverbService ProverbService,
	userService UserService,
	subscriptionService SubscriptionService,
) *Handler {
	return &Handler{
		bot:                 bot,
		logger:              logger,
		proverbService:      proverbService,
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.InlineQuery != nil {
		h.logger.Debug("inline query received",
			zap.Int64("user_id", update.InlineQuery.From.ID),
			zap.String("query", update.InlineQuery.Query),
		)
		h.handleInlineQuery(ctx, update.InlineQuery)
		return
	}

	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message, callback or inline query")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	from := update.Message.From
	chatID := update.Message.Chat.ID

	if err := h.userService.EnsureUser(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.send(newMessage(chatID, welcomeMessage()))

		case "today":
			_ = h.withErrorHandling(h.handleToday())(ctx, chatID)

		case "random":
			_ = h.withErrorHandling(h.handleRandom())(ctx, chatID)

		case "all":
			_ = h.withErrorHandling(h.handleAll())(ctx, chatID)

		case "range":
			_ = h.withErrorHandling(h.handleRange(update.Message.CommandArguments()))(ctx, chatID)

		case "subscribe":
			_ = h.withErrorHandling(h.handleSubscribe(from.ID))(ctx, chatID)

		case "unsubscribe":
			_ = h.withErrorHandling(h.handleUnsubscribe(from.ID))(ctx, chatID)

		case "help":
			_ = h.send(newMessage(chatID, helpMessage()))

		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.handleNumber(strings.TrimSpace(update.Message.Text)))(ctx, chatID)
}

// SendDaily delivers the daily digest for one chat. Implements
// service.DigestNotifier.
func (h *Handler) SendDaily(chatID int64, proverb entities.Proverb) error {
	msg := newMessage(chatID, formatDailyMessage(&proverb))
	msg.ReplyMarkup = buildProverbKeyboard(&proverb)
	return h.send(msg)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
