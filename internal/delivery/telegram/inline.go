package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

// handleInlineQuery implements sharing: picking a result posts the
// proverb as plain text into whatever chat the query came from. An empty
// query offers today's proverb and a random one; a numeric query offers
// that specific proverb.
func (h *Handler) handleInlineQuery(ctx context.Context, iq *tgbotapi.InlineQuery) {
	var results []interface{}

	query := strings.TrimSpace(iq.Query)
	if number, err := strconv.Atoi(query); err == nil {
		if p, err := h.proverbService.ByNumber(ctx, number); err == nil {
			results = append(results, buildInlineArticle("number", p))
		}
	} else {
		if p, err := h.proverbService.Daily(ctx, time.Now()); err == nil {
			results = append(results, buildInlineArticle("daily", p))
		}
		if p, err := h.proverbService.Random(ctx); err == nil {
			results = append(results, buildInlineArticle("random", p))
		}
	}

	// Random results must not be cached, and an empty result set is a
	// valid answer for an empty collection.
	cfg := tgbotapi.InlineConfig{
		InlineQueryID: iq.ID,
		Results:       results,
		IsPersonal:    true,
		CacheTime:     0,
	}

	if _, err := h.bot.Request(cfg); err != nil {
		h.logger.Error("failed to answer inline query",
			zap.Error(err),
		)
	}
}

func buildInlineArticle(kind string, p *entities.Proverb) tgbotapi.InlineQueryResultArticle {
	article := tgbotapi.NewInlineQueryResultArticle(
		fmt.Sprintf("%s-%d", kind, p.Number),
		p.Proverb,
		shareText(p),
	)
	article.Description = p.Translation
	return article
}
