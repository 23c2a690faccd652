package service

import (
	"context"
	"errors"

	"github.com/aminkakar/pashto-matal-bot/internal/domain/entities"
)

// ErrSubscriptionNotFound is returned by repositories when a user never
// touched the digest subscription.
var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionRepository interface {
	SetEnabled(ctx context.Context, userID, chatID int64, enabled bool) error
	Get(ctx context.Context, userID int64) (*entities.Subscription, error)
	GetEnabledBatch(ctx context.Context, limit, offset int) ([]*entities.Subscription, error)
}

type SubscriptionService struct {
	repository SubscriptionRepository
}

func NewSubscriptionService(repository SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{repository: repository}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, userID, chatID int64) error {
	return s.repository.SetEnabled(ctx, userID, chatID, true)
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, chatID int64) error {
	return s.repository.SetEnabled(ctx, userID, chatID, false)
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID int64) (bool, error) {
	sub, err := s.repository.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, err
	}

	return sub.Enabled, nil
}
