package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/config"
	"github.com/aminkakar/pashto-matal-bot/internal/delivery/telegram"
	"github.com/aminkakar/pashto-matal-bot/internal/infra/postgres"
	pgrepo "github.com/aminkakar/pashto-matal-bot/internal/infra/postgres/repository"
	"github.com/aminkakar/pashto-matal-bot/internal/logger"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
	"github.com/aminkakar/pashto-matal-bot/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "today",
			Description: "Proverb of the day",
		},
		{
			Command:     "random",
			Description: "A random proverb",
		},
		{
			Command:     "all",
			Description: "Browse all proverbs",
		},
		{
			Command:     "range",
			Description: "Proverbs in a range (usage: /range 3 8)",
		},
		{
			Command:     "subscribe",
			Description: "Receive the proverb of the day automatically",
		},
		{
			Command:     "unsubscribe",
			Description: "Stop daily delivery",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	// A broken or missing data file must not take the bot down: fall
	// back to an empty collection and keep answering with a diagnostic.
	proverbRepo, err := repository.NewProverbRepository(cfg.ProverbsJSONPath)
	if err != nil {
		zl.Error("failed to load proverb collection, continuing with an empty one",
			zap.String("path", cfg.ProverbsJSONPath),
			zap.Error(err),
		)
		proverbRepo = repository.NewEmptyProverbRepository()
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database url not configured", zap.Error(err))
	}

	if err := postgres.Migrate(dsn); err != nil {
		zl.Fatal("failed to apply migrations", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	userRepo := pgrepo.NewUserRepository(pool)
	subscriptionRepo := pgrepo.NewSubscriptionRepository(pool)

	proverbService := service.NewProverbService(proverbRepo)
	userService := service.NewUserService(userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)

	handler := telegram.NewHandler(
		bot,
		zl,
		proverbService,
		userService,
		subscriptionService,
	)

	if cfg.Digest.Enabled {
		digest := service.NewDigestService(subscriptionRepo, proverbService, cfg.Digest.Cron, zl)
		digest.SetNotifier(handler)
		go digest.Start(ctx)
	}

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown complete")
}
