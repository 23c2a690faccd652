package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
	"github.com/aminkakar/pashto-matal-bot/internal/repository"
)

// DigestNotifier delivers the daily proverb to a chat. Implemented by
// the delivery layer and injected after the handler is created.
type DigestNotifier interface {
	SendDaily(chatID int64, proverb entities.Proverb) error
}

// DailyProverbProvider yields the proverb for a given moment.
type DailyProverbProvider interface {
	Daily(ctx context.Context, at time.Time) (*entities.Proverb, error)
}

// DigestService broadcasts the proverb of the day to all enabled
// subscriptions on a cron schedule.
type DigestService struct {
	subscriptionRepo SubscriptionRepository
	proverbs         DailyProverbProvider
	notifier         DigestNotifier
	cronSpec         string
	logger           *zap.Logger
}

func NewDigestService(
	subscriptionRepo SubscriptionRepository,
	proverbs DailyProverbProvider,
	cronSpec string,
	logger *zap.Logger,
) *DigestService {
	return &DigestService{
		subscriptionRepo: subscriptionRepo,
		proverbs:         proverbs,
		cronSpec:         cronSpec,
		logger:           logger,
	}
}

// SetNotifier sets the notifier (called after the handler is created).
func (s *DigestService) SetNotifier(notifier DigestNotifier) {
	s.notifier = notifier
}

// Start begins the digest scheduling loop and blocks until ctx is done.
func (s *DigestService) Start(ctx context.Context) {
	s.logger.Info("digest service started", zap.String("cron", s.cronSpec))

	// The schedule runs in UTC so that the broadcast day matches the
	// selection day.
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cronSpec, func() {
		s.logger.Info("cron triggered: sending daily digest")
		if err := s.sendDailyDigest(ctx); err != nil {
			s.logger.Error("failed to send daily digest", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("digest service stopped")
}

// sendDailyDigest sends today's proverb to every enabled subscription in
// batches.
func (s *DigestService) sendDailyDigest(ctx context.Context) error {
	const batchSize = 100
	offset := 0
	totalSent := 0

	proverb, err := s.proverbs.Daily(ctx, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCollection) {
			s.logger.Warn("digest skipped: proverb collection is empty")
			return nil
		}
		return fmt.Errorf("get daily proverb: %w", err)
	}

	for {
		subs, err := s.subscriptionRepo.GetEnabledBatch(ctx, batchSize, offset)
		if err != nil {
			return fmt.Errorf("get subscriptions batch: %w", err)
		}

		if len(subs) == 0 {
			break
		}

		totalSent += s.processBatch(subs, *proverb)

		if len(subs) < batchSize {
			break
		}

		offset += batchSize
	}

	s.logger.Info("daily digest sent",
		zap.Int("proverb_number", proverb.Number),
		zap.Int("total_sent", totalSent),
	)

	return nil
}

// processBatch sends to a batch of subscribers concurrently.
func (s *DigestService) processBatch(subs []*entities.Subscription, proverb entities.Proverb) int {
	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	if s.notifier == nil {
		s.logger.Error("notifier not set, cannot send digest")
		return 0
	}

	for _, sub := range subs {
		sub := sub
		wg.Add(1)
		sem <- struct{}{} // Acquire

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release

			if err := s.notifier.SendDaily(sub.ChatID, proverb); err != nil {
				s.logger.Error("failed to send digest",
					zap.Int64("user_id", sub.UserID),
					zap.Error(err))
			} else {
				mu.Lock()
				sent++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return sent
}
